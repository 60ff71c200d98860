package repository

import (
	"context"

	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
	// DeleteByCompany elimina todos los clientes de una empresa (cascada al
	// borrar la empresa).
	DeleteByCompany(ctx context.Context, companyID string) error
}
