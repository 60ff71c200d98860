package entity

// Address dirección estructurada completa (empresas y ubicación de trabajos).
// Es todo-o-nada: o vienen los cinco campos o la capa de aplicación la rechaza.
type Address struct {
	Street          string `bson:"street" json:"street"`
	City            string `bson:"city" json:"city"`
	StateOrProvince string `bson:"state_or_province" json:"state_or_province"`
	PostalCodeOrZip string `bson:"postal_code_or_zip" json:"postal_code_or_zip"`
	Country         string `bson:"country" json:"country"`
}

// Complete informa si los cinco campos están presentes.
func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.StateOrProvince != "" &&
		a.PostalCodeOrZip != "" && a.Country != ""
}

// ClientAddress subconjunto de dirección usado por los clientes.
type ClientAddress struct {
	Street          string `bson:"street" json:"street"`
	City            string `bson:"city" json:"city"`
	PostalCodeOrZip string `bson:"postal_code_or_zip" json:"postal_code_or_zip"`
}

// Complete informa si los tres campos están presentes.
func (a ClientAddress) Complete() bool {
	return a.Street != "" && a.City != "" && a.PostalCodeOrZip != ""
}
