package dto

import "time"

// CreateClientRequest entrada para crear un cliente de una empresa.
// CompanyName vacío significa cliente persona; con valor, cliente empresa.
type CreateClientRequest struct {
	CompanyID   string            `json:"company_id" validate:"required"`
	FirstName   string            `json:"first_name" validate:"required"`
	LastName    string            `json:"last_name" validate:"required"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Phone       string            `json:"phone"`
	CompanyName string            `json:"company_name"`
	Address     *ClientAddressDTO `json:"address"`
	ImageURLs   []string          `json:"image_urls" validate:"omitempty,dive,url"`
}

// UpdateClientRequest entrada PATCH de cliente (campos opcionales).
type UpdateClientRequest struct {
	FirstName   *string           `json:"first_name" validate:"omitempty,min=1"`
	LastName    *string           `json:"last_name" validate:"omitempty,min=1"`
	Email       *string           `json:"email" validate:"omitempty,email"`
	Phone       *string           `json:"phone"`
	CompanyName *string           `json:"company_name"`
	Address     *ClientAddressDTO `json:"address"`
	ImageURLs   *[]string         `json:"image_urls" validate:"omitempty,dive,url"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID          string           `json:"id"`
	CompanyID   string           `json:"company_id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	CompanyName string           `json:"company_name,omitempty"`
	Address     ClientAddressDTO `json:"address"`
	ImageURLs   []string         `json:"image_urls,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ClientListResponse lista de clientes de una empresa.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}
