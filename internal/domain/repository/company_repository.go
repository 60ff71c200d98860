package repository

import (
	"context"

	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByPublicID(ctx context.Context, publicID string) (*entity.Company, error)
	// ListByIDs expande una lista de referencias (user.companies) a documentos.
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// SetCompanyURL rellena la URL del portal en registros creados antes de que
	// existiera el campo.
	SetCompanyURL(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error

	PushClient(ctx context.Context, companyID, clientID string) error
	PullClient(ctx context.Context, companyID, clientID string) error
	PushJob(ctx context.Context, companyID, jobID string) error
	PullJob(ctx context.Context, companyID, jobID string) error
}
