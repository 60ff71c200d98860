package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AddressDTO dirección completa (empresas y ubicación de trabajos).
// Los cinco campos son obligatorios como unidad.
type AddressDTO struct {
	Street          string `json:"street" validate:"required"`
	City            string `json:"city" validate:"required"`
	StateOrProvince string `json:"state_or_province" validate:"required"`
	PostalCodeOrZip string `json:"postal_code_or_zip" validate:"required"`
	Country         string `json:"country" validate:"required"`
}

// ClientAddressDTO subconjunto de dirección para clientes.
type ClientAddressDTO struct {
	Street          string `json:"street" validate:"required"`
	City            string `json:"city" validate:"required"`
	PostalCodeOrZip string `json:"postal_code_or_zip" validate:"required"`
}
