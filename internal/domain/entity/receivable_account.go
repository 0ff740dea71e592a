package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableAccount representa uma conta a receber (ativo). Espelho de PayableAccount.
type ReceivableAccount struct {
	ID               string
	CompanyID        string
	Description      string
	CustomerID       string           // opcional
	CustomerName     string           // denormalizado, usado no casamento heurístico do DRE
	AmountTotal      *decimal.Decimal // valor autoritativo
	Amount           *decimal.Decimal // campo genérico de valor (legado)
	AmountReceived   *decimal.Decimal // valor efetivamente recebido
	DueDate          time.Time
	ReceivedAt       *time.Time
	Status           string // pendente, pago, recebido, vencido, cancelado, finalizado
	PaymentStatus    string // campo secundário que também pode indicar liquidação
	Category         string // categoria DRE em texto; string desconhecida = sem categoria
	LinkedMovementID string // referência à movimentação de estoque correspondente (evita dupla contagem)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
