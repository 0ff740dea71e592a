package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeIn  = "entrada" // compra / custo
	MovementTypeOut = "saida"   // venda / receita
)

// Movement representa uma movimentação de estoque já confirmada no razão.
// Imutável após criada: o motor de DRE e os relatórios apenas leem.
type Movement struct {
	ID          string
	CompanyID   string
	ProductID   string
	BatchID     string // opcional, vincula a um lote
	Type        string // entrada, saida
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
