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

// ClientUseCase aplica reglas de negocio para clientes. Toda operación verifica
// primero que la empresa dueña exista y pertenezca al usuario autenticado, y
// mantiene la lista company.clients sincronizada con los documentos.
type ClientUseCase struct {
	clients   repository.ClientRepository
	companies repository.CompanyRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, companies repository.CompanyRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, companies: companies}
}

// Create crea un cliente y lo enlaza a la lista de la empresa. El enlace usa la
// primitiva atómica del almacén; si falla, se compensa borrando el documento.
func (uc *ClientUseCase) Create(ctx context.Context, ownerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	company, err := uc.ownedCompany(ctx, ownerID, in.CompanyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
		ImageURLs:   in.ImageURLs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Address != nil {
		client.Address = entity.ClientAddress{
			Street:          in.Address.Street,
			City:            in.Address.City,
			PostalCodeOrZip: in.Address.PostalCodeOrZip,
		}
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	if err := uc.companies.PushClient(ctx, company.ID, client.ID); err != nil {
		_ = uc.clients.Delete(ctx, client.ID)
		return nil, err
	}
	return toClientResponse(client), nil
}

// ListByCompany lista los clientes de una empresa del dueño.
func (uc *ClientUseCase) ListByCompany(ctx context.Context, ownerID, companyID string) (*dto.ClientListResponse, error) {
	if _, err := uc.ownedCompany(ctx, ownerID, companyID); err != nil {
		return nil, err
	}
	list, err := uc.clients.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}, nil
}

// Update actualiza campos del cliente con el mismo esquema de validación que la
// creación.
func (uc *ClientUseCase) Update(ctx context.Context, ownerID, clientID string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	client, err := uc.ownedClient(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		client.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.CompanyName != nil {
		client.CompanyName = *in.CompanyName
	}
	if in.Address != nil {
		client.Address = entity.ClientAddress{
			Street:          in.Address.Street,
			City:            in.Address.City,
			PostalCodeOrZip: in.Address.PostalCodeOrZip,
		}
	}
	if in.ImageURLs != nil {
		client.ImageURLs = *in.ImageURLs
	}
	client.UpdatedAt = time.Now()
	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina el cliente: retira la referencia de la lista de la empresa y
// luego borra el documento.
func (uc *ClientUseCase) Delete(ctx context.Context, ownerID, clientID string) error {
	client, err := uc.ownedClient(ctx, ownerID, clientID)
	if err != nil {
		return err
	}
	if err := uc.companies.PullClient(ctx, client.CompanyID, client.ID); err != nil {
		return err
	}
	return uc.clients.Delete(ctx, client.ID)
}

func (uc *ClientUseCase) ownedCompany(ctx context.Context, ownerID, companyID string) (*entity.Company, error) {
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

func (uc *ClientUseCase) ownedClient(ctx context.Context, ownerID, clientID string) (*entity.Client, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.ownedCompany(ctx, ownerID, client.CompanyID); err != nil {
		return nil, err
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		Address: dto.ClientAddressDTO{
			Street:          c.Address.Street,
			City:            c.Address.City,
			PostalCodeOrZip: c.Address.PostalCodeOrZip,
		},
		ImageURLs: c.ImageURLs,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
