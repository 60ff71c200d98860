package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hubber-api/internal/application/dto"
	"github.com/jhoicas/hubber-api/internal/application/usecase"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

type clientFixture struct {
	*companyFixture
	uc        *usecase.ClientUseCase
	companyID string
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()
	base := newCompanyFixture(t)
	base.seedUser(t, "owner-1", entity.TierFree)
	created, err := base.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)
	return &clientFixture{
		companyFixture: base,
		uc:             usecase.NewClientUseCase(base.clients, base.companies),
		companyID:      created.ID,
	}
}

func TestClientCreate_EnlazaConEmpresa(t *testing.T) {
	f := newClientFixture(t)

	out, err := f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "Laura",
		LastName:  "Pérez",
		Email:     "laura@cliente.test",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, f.companyID, out.CompanyID)
	assert.Empty(t, out.CompanyName, "sin company_name el cliente es persona")

	company, err := f.companies.GetByID(context.Background(), f.companyID)
	require.NoError(t, err)
	assert.Contains(t, company.Clients, out.ID,
		"el id del cliente debe quedar en la lista de la empresa")
}

func TestClientCreate_EmpresaAjenaProhibida(t *testing.T) {
	f := newClientFixture(t)
	f.seedUser(t, "intruso", entity.TierFree)

	_, err := f.uc.Create(context.Background(), "intruso", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "Laura",
		LastName:  "Pérez",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestClientCreate_ValidacionCampos(t *testing.T) {
	f := newClientFixture(t)

	_, err := f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "", // requerido
		LastName:  "Pérez",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "Laura",
		LastName:  "Pérez",
		Email:     "no-es-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientCreate_CompensaEnlaceFallido(t *testing.T) {
	f := newClientFixture(t)
	f.companies.FailPushClient = errors.New("write concern timeout")

	_, err := f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "Laura",
		LastName:  "Pérez",
	})
	require.Error(t, err)
	assert.Equal(t, 0, f.clients.Count(),
		"el documento huérfano debe eliminarse al fallar el enlace")
}

func TestClientList_SoloDeLaEmpresa(t *testing.T) {
	f := newClientFixture(t)

	for _, nombre := range []string{"Laura", "Marcos", "Sofía"} {
		_, err := f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
			CompanyID: f.companyID,
			FirstName: nombre,
			LastName:  "Pérez",
		})
		require.NoError(t, err)
	}

	out, err := f.uc.ListByCompany(context.Background(), "owner-1", f.companyID)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, "Laura", out.Items[0].FirstName, "orden de inserción estable")
}

func TestClientUpdate_TipoEmpresaConNombre(t *testing.T) {
	f := newClientFixture(t)

	created, err := f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "Laura",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	razon := "Constructora Pérez SAS"
	out, err := f.uc.Update(context.Background(), "owner-1", created.ID, dto.UpdateClientRequest{
		CompanyName: &razon,
	})
	require.NoError(t, err)
	assert.Equal(t, razon, out.CompanyName,
		"asignar company_name convierte al cliente en tipo empresa")
	assert.Equal(t, "Laura", out.FirstName)
}

func TestClientDelete_RetiraReferenciaExactamenteUnaVez(t *testing.T) {
	f := newClientFixture(t)

	created, err := f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "Laura",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	otro, err := f.uc.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: f.companyID,
		FirstName: "Marcos",
		LastName:  "Díaz",
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), "owner-1", created.ID))

	company, err := f.companies.GetByID(context.Background(), f.companyID)
	require.NoError(t, err)
	assert.NotContains(t, company.Clients, created.ID)
	assert.Contains(t, company.Clients, otro.ID, "los demás clientes no se tocan")
	assert.Equal(t, 1, f.clients.Count())

	// Repetir el borrado es 404, no corrupción de la lista.
	err = f.uc.Delete(context.Background(), "owner-1", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
