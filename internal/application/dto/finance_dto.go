package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest criação de conta a pagar ou a receber.
// Counterparty é o nome do fornecedor (pagar) ou cliente (receber).
type CreateAccountRequest struct {
	Description      string           `json:"description"`
	CounterpartyID   string           `json:"counterparty_id"`
	CounterpartyName string           `json:"counterparty_name"`
	AmountTotal      *decimal.Decimal `json:"amount_total"`
	Amount           *decimal.Decimal `json:"amount"`
	DueDate          time.Time        `json:"due_date"`
	Category         string           `json:"category"`
	LinkedMovementID string           `json:"linked_movement_id"`
}

// SettleAccountRequest baixa de conta (pagamento/recebimento).
// Valor opcional: quando ausente, usa o valor total da conta.
type SettleAccountRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date"` // default: agora
}

// AccountResponse conta a pagar ou a receber.
type AccountResponse struct {
	ID               string           `json:"id"`
	CompanyID        string           `json:"company_id"`
	Description      string           `json:"description"`
	CounterpartyID   string           `json:"counterparty_id,omitempty"`
	CounterpartyName string           `json:"counterparty_name,omitempty"`
	AmountTotal      *decimal.Decimal `json:"amount_total,omitempty"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	AmountSettled    *decimal.Decimal `json:"amount_settled,omitempty"`
	DueDate          time.Time        `json:"due_date"`
	SettledAt        *time.Time       `json:"settled_at,omitempty"`
	Status           string           `json:"status"`
	Category         string           `json:"category,omitempty"`
	LinkedMovementID string           `json:"linked_movement_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// AccountListResponse listagem paginada de contas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
