package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableAccount representa uma conta a pagar (passivo).
//
// Os campos de valor são opcionais porque dados legados podem ter qualquer
// combinação preenchida; a ordem de resolução (AmountTotal → Amount → AmountPaid)
// fica no motor de DRE, não aqui.
type PayableAccount struct {
	ID               string
	CompanyID        string
	Description      string
	SupplierID       string           // opcional
	SupplierName     string           // denormalizado, usado no casamento heurístico do DRE
	AmountTotal      *decimal.Decimal // valor autoritativo
	Amount           *decimal.Decimal // campo genérico de valor (legado)
	AmountPaid       *decimal.Decimal // valor efetivamente desembolsado
	DueDate          time.Time
	PaidAt           *time.Time
	Status           string // pendente, pago, vencido, cancelado, finalizado
	PaymentStatus    string // campo secundário que também pode indicar liquidação
	Category         string // categoria DRE em texto; string desconhecida = sem categoria
	LinkedMovementID string // referência à movimentação de estoque correspondente (evita dupla contagem)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
