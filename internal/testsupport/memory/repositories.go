// Package memory provee implementaciones en memoria de los puertos de
// persistencia para tests unitarios. Reproducen el contrato de la capa Mongo:
// los Get* devuelven (nil, nil) cuando el documento no existe y las listas de
// referencias se mantienen con semántica addToSet/pull.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/hubber-api/internal/domain"
	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// UserRepository
// ──────────────────────────────────────────────────────────────────────────────

// UserRepository repositorio de usuarios en memoria.
type UserRepository struct {
	mu   sync.RWMutex
	byID map[string]*entity.User

	// FailPushCompany, si no es nil, hace fallar el siguiente PushCompany. Se
	// usa para ejercitar la compensación al crear empresas.
	FailPushCompany error
}

// NewUserRepository crea el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByStripeCustomerID(_ context.Context, customerID string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.StripeCustomerID == customerID && customerID != "" {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *UserRepository) PushCompany(_ context.Context, userID, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailPushCompany != nil {
		err := r.FailPushCompany
		r.FailPushCompany = nil
		return err
	}
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Companies = addToSet(u.Companies, companyID)
	return nil
}

func (r *UserRepository) PullCompany(_ context.Context, userID, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Companies = pull(u.Companies, companyID)
	return nil
}

func (r *UserRepository) SetTier(_ context.Context, userID, tier string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Tier = tier
	return nil
}

func (r *UserRepository) SetStripeCustomerID(_ context.Context, userID, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.StripeCustomerID = customerID
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// CompanyRepository
// ──────────────────────────────────────────────────────────────────────────────

// CompanyRepository repositorio de empresas en memoria.
type CompanyRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Company
	order []string

	// FailPushClient/FailPushJob hacen fallar el próximo enlace para ejercitar
	// las compensaciones de creación.
	FailPushClient error
	FailPushJob    error
}

// NewCompanyRepository crea el repositorio vacío.
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{byID: make(map[string]*entity.Company)}
}

func (r *CompanyRepository) Create(_ context.Context, company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if c.PublicID == company.PublicID {
			return domain.ErrDuplicate
		}
	}
	cp := *company
	r.byID[company.ID] = &cp
	r.order = append(r.order, company.ID)
	return nil
}

func (r *CompanyRepository) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CompanyRepository) GetByPublicID(_ context.Context, publicID string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byID {
		if c.PublicID == publicID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *CompanyRepository) ListByIDs(_ context.Context, ids []string) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]*entity.Company, 0, len(ids))
	for _, id := range r.order {
		if wanted[id] {
			cp := *r.byID[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *CompanyRepository) Update(_ context.Context, company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[company.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *company
	r.byID[company.ID] = &cp
	return nil
}

func (r *CompanyRepository) SetCompanyURL(_ context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.CompanyURL = url
	return nil
}

func (r *CompanyRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	r.order = pull(r.order, id)
	return nil
}

// Count devuelve el total de empresas almacenadas (inspección en tests).
func (r *CompanyRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *CompanyRepository) PushClient(_ context.Context, companyID, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailPushClient != nil {
		err := r.FailPushClient
		r.FailPushClient = nil
		return err
	}
	c, ok := r.byID[companyID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Clients = addToSet(c.Clients, clientID)
	return nil
}

func (r *CompanyRepository) PullClient(_ context.Context, companyID, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[companyID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Clients = pull(c.Clients, clientID)
	return nil
}

func (r *CompanyRepository) PushJob(_ context.Context, companyID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailPushJob != nil {
		err := r.FailPushJob
		r.FailPushJob = nil
		return err
	}
	c, ok := r.byID[companyID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Jobs = addToSet(c.Jobs, jobID)
	return nil
}

func (r *CompanyRepository) PullJob(_ context.Context, companyID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[companyID]
	if !ok {
		return domain.ErrNotFound
	}
	c.Jobs = pull(c.Jobs, jobID)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ClientRepository
// ──────────────────────────────────────────────────────────────────────────────

// ClientRepository repositorio de clientes en memoria.
type ClientRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Client
	order []string
}

// NewClientRepository crea el repositorio vacío.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{byID: make(map[string]*entity.Client)}
}

func (r *ClientRepository) Create(_ context.Context, client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *client
	r.byID[client.ID] = &cp
	r.order = append(r.order, client.ID)
	return nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *ClientRepository) ListByCompany(_ context.Context, companyID string) ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c != nil && c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ClientRepository) Update(_ context.Context, client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[client.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *client
	r.byID[client.ID] = &cp
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	r.order = pull(r.order, id)
	return nil
}

func (r *ClientRepository) DeleteByCompany(_ context.Context, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if c := r.byID[id]; c != nil && c.CompanyID == companyID {
			delete(r.byID, id)
		}
	}
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.byID[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
	return nil
}

// Count devuelve el total de clientes almacenados (inspección en tests).
func (r *ClientRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// ──────────────────────────────────────────────────────────────────────────────
// JobRepository
// ──────────────────────────────────────────────────────────────────────────────

// JobRepository repositorio de trabajos en memoria.
type JobRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Job
	order []string
}

// NewJobRepository crea el repositorio vacío.
func NewJobRepository() *JobRepository {
	return &JobRepository{byID: make(map[string]*entity.Job)}
}

func (r *JobRepository) Create(_ context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *job
	r.byID[job.ID] = &cp
	r.order = append(r.order, job.ID)
	return nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (*entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r *JobRepository) ListByCompany(_ context.Context, companyID string) ([]*entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Job, 0)
	for _, id := range r.order {
		if j := r.byID[id]; j != nil && j.CompanyID == companyID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *JobRepository) Update(_ context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[job.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *job
	r.byID[job.ID] = &cp
	return nil
}

func (r *JobRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	r.order = pull(r.order, id)
	return nil
}

func (r *JobRepository) DeleteByCompany(_ context.Context, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if j := r.byID[id]; j != nil && j.CompanyID == companyID {
			delete(r.byID, id)
		}
	}
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.byID[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
	return nil
}

// Count devuelve el total de trabajos almacenados (inspección en tests).
func (r *JobRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func addToSet(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func pull(list []string, v string) []string {
	out := list[:0]
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
