package ports

import "context"

// BillingGateway define el puerto de salida hacia la plataforma de facturación.
// Cualquier adaptador (Stripe, mock) debe implementar esta interfaz; la capa de
// aplicación solo conoce este contrato, no la implementación concreta.
type BillingGateway interface {
	// CustomerEmail consulta el email del customer en la plataforma externa.
	// Se usa como camino de reconciliación cuando el usuario local todavía no
	// tiene almacenada la referencia de customer.
	CustomerEmail(ctx context.Context, customerID string) (string, error)
}
