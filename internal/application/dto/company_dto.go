package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	Email        string     `json:"email" validate:"required,email"`
	Phone        string     `json:"phone" validate:"required"`
	BusinessType string     `json:"business_type" validate:"required"`
	Address      AddressDTO `json:"address" validate:"required"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
// Si viene Address, se valida completa: no se aceptan direcciones parciales.
type UpdateCompanyRequest struct {
	Name         *string     `json:"name" validate:"omitempty,min=1,max=200"`
	Email        *string     `json:"email" validate:"omitempty,email"`
	Phone        *string     `json:"phone"`
	BusinessType *string     `json:"business_type"`
	Status       *string     `json:"status" validate:"omitempty,oneof=active inactive"`
	Address      *AddressDTO `json:"address"`
	Employees    *[]string   `json:"employees"`
	TotalRevenue *float64    `json:"total_revenue" validate:"omitempty,min=0"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	BusinessType string     `json:"business_type"`
	Address      AddressDTO `json:"address"`
	Employees    []string   `json:"employees"`
	Clients      []string   `json:"clients"`
	Jobs         []string   `json:"jobs"`
	TotalRevenue float64    `json:"total_revenue"`
	Status       string     `json:"status"`
	CompanyURL   string     `json:"company_url"`
	PublicID     string     `json:"public_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CompanyListResponse lista de empresas del usuario.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Total int               `json:"total"`
}

// PublicCompanyResponse vista pública del portal (sin datos del dueño).
type PublicCompanyResponse struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	BusinessType string     `json:"business_type"`
	Address      AddressDTO `json:"address"`
	Status       string     `json:"status"`
	PublicID     string     `json:"public_id"`
}
