package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hubber-api/internal/application/auth"
	"github.com/jhoicas/hubber-api/internal/application/dto"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
	"github.com/jhoicas/hubber-api/internal/testsupport/memory"
	pkgjwt "github.com/jhoicas/hubber-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() (*auth.AuthUseCase, *memory.UserRepository) {
	users := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "hubber-test",
	})
	return uc, users
}

func TestRegister_CreaUsuarioFree(t *testing.T) {
	uc, _ := newAuthUC()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:     "ana@hubber.test",
		Password:  "clave-segura",
		FirstName: "Ana",
		LastName:  "García",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TierFree, out.Tier, "todo registro nace en plan free")
	assert.NotNil(t, out.Companies)
	assert.Empty(t, out.Companies)
	assert.NotEmpty(t, out.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	req := dto.RegisterRequest{
		Email:     "ana@hubber.test",
		Password:  "clave-segura",
		FirstName: "Ana",
	}
	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:     "ana@hubber.test",
		Password:  "corta",
		FirstName: "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenConIdentidad(t *testing.T) {
	uc, _ := newAuthUC()

	reg, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:     "ana@hubber.test",
		Password:  "clave-segura",
		FirstName: "Ana",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@hubber.test",
		Password: "clave-segura",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	userID, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID, "el token lleva la identidad del usuario")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:     "ana@hubber.test",
		Password:  "clave-segura",
		FirstName: "Ana",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@hubber.test",
		Password: "clave-equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"contraseña incorrecta no distingue del usuario inexistente")

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@hubber.test",
		Password: "clave-segura",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
