package entity

import "time"

// Supplier representa um fornecedor da empresa.
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	Document  string // CNPJ
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
