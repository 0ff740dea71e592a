package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

var _ repository.PayableRepository = (*PayableRepo)(nil)

// PayableRepo implementação de PayableRepository sobre PostgreSQL.
// Os campos de valor são NUMERIC anuláveis: dados legados podem ter qualquer
// combinação preenchida, e o NULL precisa sobreviver à ida e volta.
type PayableRepo struct {
	q Querier
}

// NewPayableRepository constrói o adaptador de contas a pagar.
func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

const payableColumns = `id, company_id, description, supplier_id, supplier_name, amount_total, amount, amount_paid, due_date, paid_at, status, payment_status, category, linked_movement_id, created_at, updated_at`

// Create persiste uma nova conta a pagar.
func (r *PayableRepo) Create(account *entity.PayableAccount) error {
	query := `
		INSERT INTO payable_accounts (` + payableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.CompanyID, account.Description, account.SupplierID, account.SupplierName,
		account.AmountTotal, account.Amount, account.AmountPaid, account.DueDate, account.PaidAt,
		account.Status, account.PaymentStatus, account.Category, account.LinkedMovementID,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payable: %w", err)
	}
	return nil
}

func scanPayable(row pgx.Row) (*entity.PayableAccount, error) {
	var p entity.PayableAccount
	err := row.Scan(&p.ID, &p.CompanyID, &p.Description, &p.SupplierID, &p.SupplierName,
		&p.AmountTotal, &p.Amount, &p.AmountPaid, &p.DueDate, &p.PaidAt,
		&p.Status, &p.PaymentStatus, &p.Category, &p.LinkedMovementID,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByID obtém uma conta a pagar por ID.
func (r *PayableRepo) GetByID(id string) (*entity.PayableAccount, error) {
	p, err := scanPayable(r.q.QueryRow(context.Background(),
		`SELECT `+payableColumns+` FROM payable_accounts WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get payable: %w", err)
	}
	return p, nil
}

// Update atualiza uma conta a pagar (inclusive a baixa).
func (r *PayableRepo) Update(account *entity.PayableAccount) error {
	query := `
		UPDATE payable_accounts
		SET description = $2, supplier_id = $3, supplier_name = $4, amount_total = $5,
		    amount = $6, amount_paid = $7, due_date = $8, paid_at = $9, status = $10,
		    payment_status = $11, category = $12, linked_movement_id = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Description, account.SupplierID, account.SupplierName, account.AmountTotal,
		account.Amount, account.AmountPaid, account.DueDate, account.PaidAt, account.Status,
		account.PaymentStatus, account.Category, account.LinkedMovementID, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payable: %w", err)
	}
	return nil
}

// ListByCompany lista contas a pagar da empresa, por vencimento.
func (r *PayableRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PayableAccount, error) {
	query := `
		SELECT ` + payableColumns + `
		FROM payable_accounts WHERE company_id = $1 ORDER BY due_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()
	var list []*entity.PayableAccount
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete remove uma conta a pagar por ID.
func (r *PayableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payable_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payable: %w", err)
	}
	return nil
}
