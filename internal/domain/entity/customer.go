package entity

import "time"

// Customer representa um cliente da empresa.
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	Document  string // CPF ou CNPJ
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
