package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch representa um lote de um produto. Code é sequencial por empresa
// (ex. LOTE-000042), alocado pelo contador de numeração na mesma transação da entrada.
type Batch struct {
	ID         string
	CompanyID  string
	ProductID  string
	Code       string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	ExpiryDate *time.Time // nil para produtos sem validade
	CreatedAt  time.Time
}
