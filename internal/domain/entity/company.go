package entity

import "time"

// Estados válidos para Company.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company representa una empresa/tenant del sistema. Las listas de referencias
// (employees, clients, jobs) modelan la propiedad uno-a-muchos y se mantienen
// consistentes con los documentos hijos en cada mutación.
type Company struct {
	ID           string    `bson:"_id,omitempty"`
	OwnerID      string    `bson:"owner_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Phone        string    `bson:"phone"`
	BusinessType string    `bson:"business_type"`
	Address      Address   `bson:"address"`
	Employees    []string  `bson:"employees"`
	Clients      []string  `bson:"clients"`
	Jobs         []string  `bson:"jobs"`
	TotalRevenue float64   `bson:"total_revenue"`
	Status       string    `bson:"status"` // active, inactive
	CompanyURL   string    `bson:"company_url"`
	PublicID     string    `bson:"public_id"` // identificador público del portal, distinto del _id
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// HasClient informa si el cliente pertenece a la lista de la empresa.
func (c *Company) HasClient(clientID string) bool {
	for _, id := range c.Clients {
		if id == clientID {
			return true
		}
	}
	return false
}
