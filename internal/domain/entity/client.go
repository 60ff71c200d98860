package entity

import "time"

// Client representa un cliente de una empresa. CompanyName distingue clientes
// "empresa" de clientes "persona" (vacío = persona).
type Client struct {
	ID          string        `bson:"_id,omitempty"`
	CompanyID   string        `bson:"company_id"`
	FirstName   string        `bson:"first_name"`
	LastName    string        `bson:"last_name"`
	Email       string        `bson:"email"`
	Phone       string        `bson:"phone"`
	CompanyName string        `bson:"company_name,omitempty"`
	Address     ClientAddress `bson:"address"`
	ImageURLs   []string      `bson:"image_urls,omitempty"`
	CreatedAt   time.Time     `bson:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}
