package dto

import "time"

// CreateJobRequest entrada para crear un trabajo. El cliente debe pertenecer a
// la lista de clientes de la empresa indicada.
type CreateJobRequest struct {
	CompanyID   string     `json:"company_id" validate:"required"`
	ClientID    string     `json:"client_id" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description"`
	Location    AddressDTO `json:"location" validate:"required"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `json:"status" validate:"omitempty,oneof=active finished on-hold cancelled"`
	Employees   []string   `json:"employees"`
}

// UpdateJobRequest entrada PATCH de trabajo. La ubicación solo se re-valida
// completa si viene en el payload.
type UpdateJobRequest struct {
	Title       *string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string     `json:"description"`
	Location    *AddressDTO `json:"location"`
	StartDate   *time.Time  `json:"start_date"`
	EndDate     *time.Time  `json:"end_date"`
	Status      *string     `json:"status" validate:"omitempty,oneof=active finished on-hold cancelled"`
	Employees   *[]string   `json:"employees"`
}

// JobResponse salida de un trabajo.
type JobResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	ClientID    string     `json:"client_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    AddressDTO `json:"location"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
	Employees   []string   `json:"employees"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// JobListResponse lista de trabajos de una empresa.
type JobListResponse struct {
	Items []JobResponse `json:"items"`
	Total int           `json:"total"`
}
