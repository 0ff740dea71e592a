package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto ou SKU do estoque.
// Cost é custo médio ponderado calculado a partir de movimentações; o saldo fica em Stock.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal // preço de venda
	Cost        decimal.Decimal // custo médio ponderado (inicia em 0)
	Unit        string          // un, kg, cx, lt...
	MinStock    decimal.Decimal // nível de alerta de estoque mínimo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
