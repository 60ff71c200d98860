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

// JobUseCase aplica reglas de negocio para trabajos/proyectos: el cliente debe
// pertenecer a la lista de la empresa y la ubicación es todo-o-nada.
type JobUseCase struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(jobs repository.JobRepository, companies repository.CompanyRepository) *JobUseCase {
	return &JobUseCase{jobs: jobs, companies: companies}
}

// Create crea un trabajo. Rechaza clientes que no figuren en la lista de la
// empresa: un trabajo nunca referencia clientes de otra empresa.
func (uc *JobUseCase) Create(ctx context.Context, ownerID string, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	company, err := uc.ownedCompany(ctx, ownerID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.HasClient(in.ClientID) {
		return nil, domain.ErrClientNotInCompany
	}

	status := in.Status
	if status == "" {
		status = entity.JobStatusActive
	}
	employees := in.Employees
	if employees == nil {
		employees = []string{}
	}
	now := time.Now()
	job := &entity.Job{
		ID:          uuid.New().String(),
		CompanyID:   company.ID,
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		Location:    toAddress(in.Location),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		Employees:   employees,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	if err := uc.companies.PushJob(ctx, company.ID, job.ID); err != nil {
		_ = uc.jobs.Delete(ctx, job.ID)
		return nil, err
	}
	return toJobResponse(job), nil
}

// ListByCompany lista los trabajos de una empresa del dueño.
func (uc *JobUseCase) ListByCompany(ctx context.Context, ownerID, companyID string) (*dto.JobListResponse, error) {
	if _, err := uc.ownedCompany(ctx, ownerID, companyID); err != nil {
		return nil, err
	}
	return uc.listByCompany(ctx, companyID)
}

// ListPublic lista los trabajos de una empresa para el portal público, sin
// exigir identidad del solicitante.
func (uc *JobUseCase) ListPublic(ctx context.Context, companyID string) (*dto.JobListResponse, error) {
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.listByCompany(ctx, companyID)
}

// Update actualiza campos del trabajo. La ubicación solo se re-valida si viene
// en el payload, con el mismo esquema que la creación.
func (uc *JobUseCase) Update(ctx context.Context, ownerID, jobID string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	job, _, err := uc.ownedJob(ctx, ownerID, jobID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		job.Title = *in.Title
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.Location != nil {
		job.Location = toAddress(*in.Location)
	}
	if in.StartDate != nil {
		job.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		job.EndDate = in.EndDate
	}
	if in.Status != nil {
		job.Status = *in.Status
	}
	if in.Employees != nil {
		job.Employees = *in.Employees
	}
	job.UpdatedAt = time.Now()
	if err := uc.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Delete elimina el trabajo. La empresa dueña se resuelve desde el propio
// documento del trabajo: el enlace almacenado es la fuente de verdad y evita
// que el caller pueda indicar una empresa distinta.
func (uc *JobUseCase) Delete(ctx context.Context, ownerID, jobID string) error {
	job, company, err := uc.ownedJob(ctx, ownerID, jobID)
	if err != nil {
		return err
	}
	if err := uc.companies.PullJob(ctx, company.ID, job.ID); err != nil {
		return err
	}
	return uc.jobs.Delete(ctx, job.ID)
}

func (uc *JobUseCase) listByCompany(ctx context.Context, companyID string) (*dto.JobListResponse, error) {
	list, err := uc.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JobResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *toJobResponse(j))
	}
	return &dto.JobListResponse{Items: items, Total: len(items)}, nil
}

func (uc *JobUseCase) ownedCompany(ctx context.Context, ownerID, companyID string) (*entity.Company, error) {
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

func (uc *JobUseCase) ownedJob(ctx context.Context, ownerID, jobID string) (*entity.Job, *entity.Company, error) {
	job, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job == nil {
		return nil, nil, domain.ErrNotFound
	}
	company, err := uc.ownedCompany(ctx, ownerID, job.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return job, company, nil
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	if j == nil {
		return nil
	}
	employees := j.Employees
	if employees == nil {
		employees = []string{}
	}
	return &dto.JobResponse{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		ClientID:    j.ClientID,
		Title:       j.Title,
		Description: j.Description,
		Location:    toAddressDTO(j.Location),
		StartDate:   j.StartDate,
		EndDate:     j.EndDate,
		Status:      j.Status,
		Employees:   employees,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
