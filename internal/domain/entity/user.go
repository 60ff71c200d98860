package entity

import "time"

// Planes de suscripción válidos para User.
const (
	TierFree    = "free"
	TierBasic   = "basic"
	TierPremium = "premium"
)

// CompanyLimit devuelve cuántas empresas puede poseer un usuario según su plan.
func CompanyLimit(tier string) int {
	if tier == TierPremium {
		return 10
	}
	return 1
}

// User representa un usuario del sistema (dueño de cero o más empresas).
// Nunca se elimina; el plan lo mantiene sincronizado el webhook de facturación.
type User struct {
	ID               string    `bson:"_id,omitempty"`
	Email            string    `bson:"email"`
	PasswordHash     string    `bson:"password_hash"` // bcrypt, nunca plano después de persistir
	FirstName        string    `bson:"first_name"`
	LastName         string    `bson:"last_name"`
	Tier             string    `bson:"tier"` // free, basic, premium
	Companies        []string  `bson:"companies"`
	StripeCustomerID string    `bson:"stripe_customer_id,omitempty"`
	CreatedAt        time.Time `bson:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at"`
}
