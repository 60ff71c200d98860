package stripegw

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway adaptador Stripe del puerto ports.BillingGateway.
type Gateway struct {
	api *client.API
}

// New construye el gateway con la clave secreta de la cuenta.
func New(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// CustomerEmail consulta el email del customer en Stripe. Se usa en el camino
// de reconciliación del webhook cuando el usuario local no tiene almacenado el
// customer id.
func (g *Gateway) CustomerEmail(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx
	cust, err := g.api.Customers.Get(customerID, params)
	if err != nil {
		return "", fmt.Errorf("stripe customer %s: %w", customerID, err)
	}
	return cust.Email, nil
}
