package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest registro de entrada ou saída de estoque.
// UnitPrice é obrigatório em entradas (custo unitário) e em saídas (preço de venda).
// ExpiryDate opcional: quando presente numa entrada, cria um lote com validade.
type RegisterMovementRequest struct {
	ProductID   string           `json:"product_id"`
	Type        string           `json:"type"` // entrada, saida
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Description string           `json:"description"`
	Date        *time.Time       `json:"date"` // default: agora
	ExpiryDate  *time.Time       `json:"expiry_date"`
}

// MovementResponse movimentação confirmada.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	BatchID     string          `json:"batch_id,omitempty"`
	BatchCode   string          `json:"batch_code,omitempty"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// MovementListResponse listagem paginada de movimentações.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockResponse saldo atual de um produto.
type StockResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BatchResponse lote.
type BatchResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Code       string          `json:"code"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	ExpiryDate *time.Time      `json:"expiry_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
