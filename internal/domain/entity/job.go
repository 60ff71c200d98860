package entity

import "time"

// Estados válidos para Job.
const (
	JobStatusActive    = "active"
	JobStatusFinished  = "finished"
	JobStatusOnHold    = "on-hold"
	JobStatusCancelled = "cancelled"
)

// Job representa un trabajo/proyecto de una empresa para un cliente concreto.
// El cliente referenciado debe pertenecer a la lista de clientes de la empresa.
type Job struct {
	ID          string     `bson:"_id,omitempty"`
	CompanyID   string     `bson:"company_id"`
	ClientID    string     `bson:"client_id"`
	Title       string     `bson:"title"`
	Description string     `bson:"description"`
	Location    Address    `bson:"location"`
	StartDate   *time.Time `bson:"start_date,omitempty"`
	EndDate     *time.Time `bson:"end_date,omitempty"`
	Status      string     `bson:"status"` // active, finished, on-hold, cancelled
	Employees   []string   `bson:"employees"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}
