package repository

import (
	"context"

	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el documento no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	// PushCompany/PullCompany mantienen la lista de referencias user.companies
	// con primitivas atómicas del almacén ($addToSet / $pull).
	PushCompany(ctx context.Context, userID, companyID string) error
	PullCompany(ctx context.Context, userID, companyID string) error

	SetTier(ctx context.Context, userID, tier string) error
	SetStripeCustomerID(ctx context.Context, userID, customerID string) error
}
