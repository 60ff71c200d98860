package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hubber-api/internal/application/dto"
	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
	"github.com/jhoicas/hubber-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas: cupo por plan,
// dirección completa, URL de portal y consistencia de referencias con el dueño.
type CompanyUseCase struct {
	companies     repository.CompanyRepository
	users         repository.UserRepository
	clients       repository.ClientRepository
	jobs          repository.JobRepository
	portalBaseURL string
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	users repository.UserRepository,
	clients repository.ClientRepository,
	jobs repository.JobRepository,
	portalBaseURL string,
) *CompanyUseCase {
	return &CompanyUseCase{
		companies:     companies,
		users:         users,
		clients:       clients,
		jobs:          jobs,
		portalBaseURL: portalBaseURL,
	}
}

// Create crea una empresa para el usuario dueño. El cupo se verifica contra el
// plan leído de la base en este momento, nunca contra estado cacheado por el
// cliente. Si el enlace con la lista del dueño falla, se compensa borrando la
// empresa recién insertada para no dejar referencias colgantes.
func (uc *CompanyUseCase) Create(ctx context.Context, ownerID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	owner, err := uc.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	if len(owner.Companies) >= entity.CompanyLimit(owner.Tier) {
		return nil, domain.ErrCompanyLimitReached
	}

	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		OwnerID:      owner.ID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		BusinessType: in.BusinessType,
		Address:      toAddress(in.Address),
		Employees:    []string{},
		Clients:      []string{},
		Jobs:         []string{},
		TotalRevenue: 0,
		Status:       entity.CompanyStatusActive,
		PublicID:     uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	company.CompanyURL = uc.portalURL(company.ID)

	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	if err := uc.users.PushCompany(ctx, owner.ID, company.ID); err != nil {
		// Compensación: el enlace falló, eliminar la empresa huérfana.
		_ = uc.companies.Delete(ctx, company.ID)
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa del dueño autenticado.
func (uc *CompanyUseCase) GetByID(ctx context.Context, ownerID, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.ownedCompany(ctx, ownerID, companyID)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByPublicID obtiene la vista pública del portal por identificador público.
func (uc *CompanyUseCase) GetByPublicID(ctx context.Context, publicID string) (*dto.PublicCompanyResponse, error) {
	company, err := uc.companies.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toPublicCompanyResponse(company), nil
}

// GetPublicByID vista pública por id interno (respalda la página de portal que
// aún enlaza por id de registro).
func (uc *CompanyUseCase) GetPublicByID(ctx context.Context, companyID string) (*dto.PublicCompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toPublicCompanyResponse(company), nil
}

// ListByOwner expande la lista de referencias del dueño a documentos completos.
// Rellena la URL de portal en registros antiguos que no la tenían y persiste el
// arreglo para no repetirlo en cada lectura.
func (uc *CompanyUseCase) ListByOwner(ctx context.Context, ownerID string) (*dto.CompanyListResponse, error) {
	owner, err := uc.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	list, err := uc.companies.ListByIDs(ctx, owner.Companies)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		if c.CompanyURL == "" {
			c.CompanyURL = uc.portalURL(c.ID)
			if err := uc.companies.SetCompanyURL(ctx, c.ID, c.CompanyURL); err != nil {
				return nil, err
			}
		}
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza campos de la empresa del dueño. Una dirección parcial se
// rechaza con el mismo esquema de validación que en la creación.
func (uc *CompanyUseCase) Update(ctx context.Context, ownerID, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	company, err := uc.ownedCompany(ctx, ownerID, companyID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.BusinessType != nil {
		company.BusinessType = *in.BusinessType
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	if in.Address != nil {
		company.Address = toAddress(*in.Address)
	}
	if in.Employees != nil {
		company.Employees = *in.Employees
	}
	if in.TotalRevenue != nil {
		company.TotalRevenue = *in.TotalRevenue
	}
	company.UpdatedAt = time.Now()
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa del dueño en cascada: primero los documentos hijos
// (clientes y trabajos), luego la empresa y por último la referencia en la
// lista del dueño.
func (uc *CompanyUseCase) Delete(ctx context.Context, ownerID, companyID string) error {
	company, err := uc.ownedCompany(ctx, ownerID, companyID)
	if err != nil {
		return err
	}
	if err := uc.clients.DeleteByCompany(ctx, company.ID); err != nil {
		return err
	}
	if err := uc.jobs.DeleteByCompany(ctx, company.ID); err != nil {
		return err
	}
	if err := uc.companies.Delete(ctx, company.ID); err != nil {
		return err
	}
	return uc.users.PullCompany(ctx, company.OwnerID, company.ID)
}

// ownedCompany resuelve la empresa y verifica la propiedad del solicitante.
func (uc *CompanyUseCase) ownedCompany(ctx context.Context, ownerID, companyID string) (*entity.Company, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return company, nil
}

func (uc *CompanyUseCase) portalURL(companyID string) string {
	return uc.portalBaseURL + "/portal/" + companyID
}

func toAddress(in dto.AddressDTO) entity.Address {
	return entity.Address{
		Street:          in.Street,
		City:            in.City,
		StateOrProvince: in.StateOrProvince,
		PostalCodeOrZip: in.PostalCodeOrZip,
		Country:         in.Country,
	}
}

func toAddressDTO(a entity.Address) dto.AddressDTO {
	return dto.AddressDTO{
		Street:          a.Street,
		City:            a.City,
		StateOrProvince: a.StateOrProvince,
		PostalCodeOrZip: a.PostalCodeOrZip,
		Country:         a.Country,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	// Las listas nunca viajan como null en la respuesta.
	employees := c.Employees
	if employees == nil {
		employees = []string{}
	}
	clients := c.Clients
	if clients == nil {
		clients = []string{}
	}
	jobs := c.Jobs
	if jobs == nil {
		jobs = []string{}
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		BusinessType: c.BusinessType,
		Address:      toAddressDTO(c.Address),
		Employees:    employees,
		Clients:      clients,
		Jobs:         jobs,
		TotalRevenue: c.TotalRevenue,
		Status:       c.Status,
		CompanyURL:   c.CompanyURL,
		PublicID:     c.PublicID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toPublicCompanyResponse(c *entity.Company) *dto.PublicCompanyResponse {
	return &dto.PublicCompanyResponse{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		BusinessType: c.BusinessType,
		Address:      toAddressDTO(c.Address),
		Status:       c.Status,
		PublicID:     c.PublicID,
	}
}
