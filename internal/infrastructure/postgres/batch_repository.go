package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementação de BatchRepository sobre PostgreSQL
// (usável com pool ou tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository constrói o adaptador de lotes. Passar pool ou tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, company_id, product_id, code, quantity, unit_cost, expiry_date, created_at`

// Create persiste um novo lote.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.CompanyID, batch.ProductID, batch.Code,
		batch.Quantity, batch.UnitCost, batch.ExpiryDate, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(&b.ID, &b.CompanyID, &b.ProductID, &b.Code,
		&b.Quantity, &b.UnitCost, &b.ExpiryDate, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// GetByID obtém um lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	b, err := scanBatch(r.q.QueryRow(context.Background(),
		`SELECT `+batchColumns+` FROM batches WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// ListByProduct lista lotes de um produto, mais recentes primeiro.
func (r *BatchRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// NextSequence incrementa e devolve o contador de lotes da empresa.
// O UPDATE do upsert trava a linha do contador até o fim da transação,
// então dois registros concorrentes nunca recebem o mesmo número.
func (r *BatchRepo) NextSequence(companyID string) (int64, error) {
	query := `
		INSERT INTO batch_counters (company_id, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (company_id)
		DO UPDATE SET last_seq = batch_counters.last_seq + 1
		RETURNING last_seq`
	var seq int64
	if err := r.q.QueryRow(context.Background(), query, companyID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next batch sequence: %w", err)
	}
	return seq, nil
}
