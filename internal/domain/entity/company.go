package entity

import "time"

// Company representa uma empresa (tenant). Todos os registros de negócio pertencem a uma Company.
type Company struct {
	ID        string
	Name      string
	CNPJ      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
