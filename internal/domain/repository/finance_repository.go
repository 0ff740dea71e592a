package repository

import (
	"context"
	"time"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// PayableRepository porta de persistência para contas a pagar.
type PayableRepository interface {
	Create(account *entity.PayableAccount) error
	GetByID(id string) (*entity.PayableAccount, error)
	Update(account *entity.PayableAccount) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.PayableAccount, error)
	Delete(id string) error
}

// ReceivableRepository porta de persistência para contas a receber.
type ReceivableRepository interface {
	Create(account *entity.ReceivableAccount) error
	GetByID(id string) (*entity.ReceivableAccount, error)
	Update(account *entity.ReceivableAccount) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.ReceivableAccount, error)
	Delete(id string) error
}

// FinanceRepository consultas de leitura que montam o snapshot de entrada do
// motor de DRE: as três coleções já recortadas por empresa e período.
// As implementações são read-only.
type FinanceRepository interface {
	// ListPayablesByPeriod contas a pagar com vencimento em [start, end].
	ListPayablesByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entity.PayableAccount, error)
	// ListReceivablesByPeriod contas a receber com vencimento em [start, end].
	ListReceivablesByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entity.ReceivableAccount, error)
	// ListMovementsByPeriod movimentações com data em [start, end].
	ListMovementsByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entity.Movement, error)
}
