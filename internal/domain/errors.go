package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrCompanyLimitReached = errors.New("límite de empresas alcanzado para el plan actual")
	ErrClientNotInCompany  = errors.New("el cliente no pertenece a la empresa")
	ErrUnknownPrice        = errors.New("price id de suscripción desconocido")
)
