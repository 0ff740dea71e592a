package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo consultas read-only que montam o snapshot de entrada do motor
// de DRE. O filtro de período é inclusivo nas duas pontas, igual ao motor.
type FinanceRepo struct {
	q Querier
}

// NewFinanceRepository constrói o adaptador de consultas financeiras.
func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{q: q}
}

// ListPayablesByPeriod contas a pagar com vencimento em [start, end].
func (r *FinanceRepo) ListPayablesByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entity.PayableAccount, error) {
	query := `
		SELECT ` + payableColumns + `
		FROM payable_accounts
		WHERE company_id = $1 AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date`
	rows, err := r.q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list payables by period: %w", err)
	}
	defer rows.Close()
	var list []entity.PayableAccount
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

// ListReceivablesByPeriod contas a receber com vencimento em [start, end].
func (r *FinanceRepo) ListReceivablesByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entity.ReceivableAccount, error) {
	query := `
		SELECT ` + receivableColumns + `
		FROM receivable_accounts
		WHERE company_id = $1 AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date`
	rows, err := r.q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list receivables by period: %w", err)
	}
	defer rows.Close()
	var list []entity.ReceivableAccount
	for rows.Next() {
		a, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

// ListMovementsByPeriod movimentações com data em [start, end].
func (r *FinanceRepo) ListMovementsByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE company_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date`
	rows, err := r.q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list movements by period: %w", err)
	}
	defer rows.Close()
	var list []entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}
