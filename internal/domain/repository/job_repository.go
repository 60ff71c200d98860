package repository

import (
	"context"

	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

// JobRepository define el puerto de persistencia para Job.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id string) error
	DeleteByCompany(ctx context.Context, companyID string) error
}
