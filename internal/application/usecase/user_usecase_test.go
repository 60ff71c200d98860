package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/hubber-api/internal/application/dto"
	"github.com/jhoicas/hubber-api/internal/application/usecase"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
	"github.com/jhoicas/hubber-api/internal/testsupport/memory"
)

func seedPlainUser(t *testing.T, users *memory.UserRepository, id, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Ana",
		Tier:         entity.TierFree,
		Companies:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
}

func TestUserGet_SinHashEnLaRespuesta(t *testing.T) {
	users := memory.NewUserRepository()
	seedPlainUser(t, users, "u-1", "ana@hubber.test", "clave-segura")
	uc := usecase.NewUserUseCase(users)

	out, err := uc.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@hubber.test", out.Email)
	assert.Equal(t, entity.TierFree, out.Tier)
	assert.NotNil(t, out.Companies)

	_, err = uc.Get(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUpdate_EmailDuplicadoRechazado(t *testing.T) {
	users := memory.NewUserRepository()
	seedPlainUser(t, users, "u-1", "ana@hubber.test", "clave-segura")
	seedPlainUser(t, users, "u-2", "otro@hubber.test", "clave-segura")
	uc := usecase.NewUserUseCase(users)

	ocupado := "otro@hubber.test"
	_, err := uc.Update(context.Background(), "u-1", dto.UpdateUserRequest{Email: &ocupado})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_CambioDePassword(t *testing.T) {
	users := memory.NewUserRepository()
	seedPlainUser(t, users, "u-1", "ana@hubber.test", "clave-vieja")
	uc := usecase.NewUserUseCase(users)

	nueva := "clave-nueva-123"
	_, err := uc.Update(context.Background(), "u-1", dto.UpdateUserRequest{Password: &nueva})
	require.NoError(t, err)

	stored, err := users.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(nueva)),
		"el hash almacenado debe corresponder a la nueva contraseña")
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-vieja")))
}

func TestUserUpdate_PasswordCorta(t *testing.T) {
	users := memory.NewUserRepository()
	seedPlainUser(t, users, "u-1", "ana@hubber.test", "clave-segura")
	uc := usecase.NewUserUseCase(users)

	corta := "abc"
	_, err := uc.Update(context.Background(), "u-1", dto.UpdateUserRequest{Password: &corta})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
