package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock saldo atual de um produto (uma linha por produto/empresa).
type Stock struct {
	CompanyID string
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
