package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hubber-api/internal/application/dto"
	"github.com/jhoicas/hubber-api/internal/application/usecase"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
	"github.com/jhoicas/hubber-api/internal/testsupport/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testPortalBase = "https://hubber.test"

type companyFixture struct {
	users     *memory.UserRepository
	companies *memory.CompanyRepository
	clients   *memory.ClientRepository
	jobs      *memory.JobRepository
	uc        *usecase.CompanyUseCase
}

func newCompanyFixture(t *testing.T) *companyFixture {
	t.Helper()
	f := &companyFixture{
		users:     memory.NewUserRepository(),
		companies: memory.NewCompanyRepository(),
		clients:   memory.NewClientRepository(),
		jobs:      memory.NewJobRepository(),
	}
	f.uc = usecase.NewCompanyUseCase(f.companies, f.users, f.clients, f.jobs, testPortalBase)
	return f
}

func (f *companyFixture) seedUser(t *testing.T, id, tier string) {
	t.Helper()
	now := time.Now()
	err := f.users.Create(context.Background(), &entity.User{
		ID:        id,
		Email:     id + "@hubber.test",
		Tier:      tier,
		Companies: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func validCompanyRequest(name string) dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:         name,
		Email:        "contacto@acme.test",
		Phone:        "+57 300 000 0000",
		BusinessType: "construcción",
		Address: dto.AddressDTO{
			Street:          "Calle 10 #5-51",
			City:            "Medellín",
			StateOrProvince: "Antioquia",
			PostalCodeOrZip: "050021",
			Country:         "CO",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_InicializaDefaults(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	out, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "owner-1", out.OwnerID)
	assert.Equal(t, entity.CompanyStatusActive, out.Status, "una empresa nueva nace activa")
	assert.Equal(t, float64(0), out.TotalRevenue)
	assert.NotNil(t, out.Employees, "las listas nunca viajan como null")
	assert.Empty(t, out.Employees)
	assert.Empty(t, out.Clients)
	assert.Empty(t, out.Jobs)
	assert.NotEmpty(t, out.PublicID, "toda empresa recibe identificador público")
	assert.Contains(t, out.CompanyURL, out.ID, "la URL del portal deriva del id de la empresa")
	assert.Contains(t, out.CompanyURL, testPortalBase)

	owner, err := f.users.GetByID(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Contains(t, owner.Companies, out.ID, "la referencia debe quedar en la lista del dueño")
}

func TestCompanyCreate_CupoPlanFree(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	_, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Primera"))
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Segunda"))
	assert.ErrorIs(t, err, domain.ErrCompanyLimitReached,
		"el plan free permite exactamente una empresa")
}

func TestCompanyCreate_CupoPlanPremium(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierPremium)

	for i := 0; i < 10; i++ {
		req := validCompanyRequest("Empresa")
		_, err := f.uc.Create(context.Background(), "owner-1", req)
		require.NoError(t, err, "premium permite hasta 10 empresas")
	}
	_, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Once"))
	assert.ErrorIs(t, err, domain.ErrCompanyLimitReached)
}

func TestCompanyCreate_DireccionIncompletaRechazada(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	req := validCompanyRequest("Acme")
	req.Address.Country = ""
	_, err := f.uc.Create(context.Background(), "owner-1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una dirección sin país no debe aceptarse")
}

func TestCompanyCreate_CompensaEnlaceFallido(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)
	f.users.FailPushCompany = errors.New("write concern timeout")

	_, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.Error(t, err)

	// La empresa insertada debe haberse eliminado: no quedan huérfanas.
	assert.Equal(t, 0, f.companies.Count(),
		"el fallo de enlace debe compensar borrando la empresa")
}

func TestCompanyCreate_UsuarioInexistente(t *testing.T) {
	f := newCompanyFixture(t)
	_, err := f.uc.Create(context.Background(), "fantasma", validCompanyRequest("Acme"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyGetByID_PropiedadVerificada(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)
	f.seedUser(t, "owner-2", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	_, err = f.uc.GetByID(context.Background(), "owner-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro usuario no puede leer la empresa")

	_, err = f.uc.GetByID(context.Background(), "owner-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.uc.GetByID(context.Background(), "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCompanyListByOwner_SinEmpresas(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	out, err := f.uc.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.NotNil(t, out.Items, "lista vacía, nunca null")
	assert.Equal(t, 0, out.Total)
}

func TestCompanyListByOwner_RellenaURLFaltante(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	// Simular un registro antiguo sin URL de portal.
	stored, err := f.companies.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	stored.CompanyURL = ""
	require.NoError(t, f.companies.Update(context.Background(), stored))

	out, err := f.uc.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Contains(t, out.Items[0].CompanyURL, created.ID,
		"la URL debe reconstruirse al listar")

	persisted, err := f.companies.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, persisted.CompanyURL, "la URL reconstruida debe persistirse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyUpdate_CamposParciales(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	nombre := "Acme Renovada"
	revenue := 1500.50
	out, err := f.uc.Update(context.Background(), "owner-1", created.ID, dto.UpdateCompanyRequest{
		Name:         &nombre,
		TotalRevenue: &revenue,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renovada", out.Name)
	assert.Equal(t, 1500.50, out.TotalRevenue)
	assert.Equal(t, created.Email, out.Email, "los campos no enviados no cambian")
}

func TestCompanyUpdate_DireccionParcialRechazada(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	parcial := dto.AddressDTO{Street: "Nueva Calle", City: "Bogotá"}
	_, err = f.uc.Update(context.Background(), "owner-1", created.ID, dto.UpdateCompanyRequest{
		Address: &parcial,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"la actualización valida la dirección con el mismo esquema que la creación")
}

func TestCompanyUpdate_EstadoInvalido(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	estado := "pausada"
	_, err = f.uc.Update(context.Background(), "owner-1", created.ID, dto.UpdateCompanyRequest{
		Status: &estado,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete (cascada)
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyDelete_CascadaCompleta(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	// Sembrar hijos directamente en los repositorios.
	clientUC := usecase.NewClientUseCase(f.clients, f.companies)
	cl, err := clientUC.Create(context.Background(), "owner-1", dto.CreateClientRequest{
		CompanyID: created.ID,
		FirstName: "Laura",
		LastName:  "Pérez",
	})
	require.NoError(t, err)

	jobUC := usecase.NewJobUseCase(f.jobs, f.companies)
	_, err = jobUC.Create(context.Background(), "owner-1", dto.CreateJobRequest{
		CompanyID: created.ID,
		ClientID:  cl.ID,
		Title:     "Remodelación cocina",
		Location:  validCompanyRequest("x").Address,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), "owner-1", created.ID))

	gone, err := f.companies.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "la empresa debe desaparecer")
	assert.Equal(t, 0, f.clients.Count(), "los clientes se borran en cascada")
	assert.Equal(t, 0, f.jobs.Count(), "los trabajos se borran en cascada")

	owner, err := f.users.GetByID(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.NotContains(t, owner.Companies, created.ID,
		"la referencia del dueño debe retirarse")
}

func TestCompanyDelete_SoloElDueno(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)
	f.seedUser(t, "owner-2", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), "owner-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Portal público
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyPortal_VistaPublicaSinDatosDelDueno(t *testing.T) {
	f := newCompanyFixture(t)
	f.seedUser(t, "owner-1", entity.TierFree)

	created, err := f.uc.Create(context.Background(), "owner-1", validCompanyRequest("Acme"))
	require.NoError(t, err)

	pub, err := f.uc.GetByPublicID(context.Background(), created.PublicID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, pub.Name)
	assert.Equal(t, created.PublicID, pub.PublicID)
	assert.Equal(t, created.Email, pub.Email, "el contacto debe sobrevivir el viaje al portal")
	assert.Equal(t, created.Phone, pub.Phone)
	assert.Equal(t, created.BusinessType, pub.BusinessType)
	assert.Equal(t, created.Address, pub.Address, "la dirección completa viaja intacta")

	byID, err := f.uc.GetPublicByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, pub.PublicID, byID.PublicID)

	_, err = f.uc.GetByPublicID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
