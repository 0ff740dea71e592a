package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

var _ repository.ReceivableRepository = (*ReceivableRepo)(nil)

// ReceivableRepo implementação de ReceivableRepository sobre PostgreSQL.
// Espelho de PayableRepo.
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository constrói o adaptador de contas a receber.
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

const receivableColumns = `id, company_id, description, customer_id, customer_name, amount_total, amount, amount_received, due_date, received_at, status, payment_status, category, linked_movement_id, created_at, updated_at`

// Create persiste uma nova conta a receber.
func (r *ReceivableRepo) Create(account *entity.ReceivableAccount) error {
	query := `
		INSERT INTO receivable_accounts (` + receivableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.CompanyID, account.Description, account.CustomerID, account.CustomerName,
		account.AmountTotal, account.Amount, account.AmountReceived, account.DueDate, account.ReceivedAt,
		account.Status, account.PaymentStatus, account.Category, account.LinkedMovementID,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receivable: %w", err)
	}
	return nil
}

func scanReceivable(row pgx.Row) (*entity.ReceivableAccount, error) {
	var a entity.ReceivableAccount
	err := row.Scan(&a.ID, &a.CompanyID, &a.Description, &a.CustomerID, &a.CustomerName,
		&a.AmountTotal, &a.Amount, &a.AmountReceived, &a.DueDate, &a.ReceivedAt,
		&a.Status, &a.PaymentStatus, &a.Category, &a.LinkedMovementID,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetByID obtém uma conta a receber por ID.
func (r *ReceivableRepo) GetByID(id string) (*entity.ReceivableAccount, error) {
	a, err := scanReceivable(r.q.QueryRow(context.Background(),
		`SELECT `+receivableColumns+` FROM receivable_accounts WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get receivable: %w", err)
	}
	return a, nil
}

// Update atualiza uma conta a receber (inclusive a baixa).
func (r *ReceivableRepo) Update(account *entity.ReceivableAccount) error {
	query := `
		UPDATE receivable_accounts
		SET description = $2, customer_id = $3, customer_name = $4, amount_total = $5,
		    amount = $6, amount_received = $7, due_date = $8, received_at = $9, status = $10,
		    payment_status = $11, category = $12, linked_movement_id = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Description, account.CustomerID, account.CustomerName, account.AmountTotal,
		account.Amount, account.AmountReceived, account.DueDate, account.ReceivedAt, account.Status,
		account.PaymentStatus, account.Category, account.LinkedMovementID, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update receivable: %w", err)
	}
	return nil
}

// ListByCompany lista contas a receber da empresa, por vencimento.
func (r *ReceivableRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.ReceivableAccount, error) {
	query := `
		SELECT ` + receivableColumns + `
		FROM receivable_accounts WHERE company_id = $1 ORDER BY due_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReceivableAccount
	for rows.Next() {
		a, err := scanReceivable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Delete remove uma conta a receber por ID.
func (r *ReceivableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM receivable_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receivable: %w", err)
	}
	return nil
}
