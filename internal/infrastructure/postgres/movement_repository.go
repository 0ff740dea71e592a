package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL
// (usável com pool ou tx). Movimentações são imutáveis: só INSERT e SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de movimentações. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, company_id, product_id, batch_id, type, quantity, unit_price, total, date, description, created_at, created_by`

// Create persiste uma nova movimentação.
func (r *MovementRepo) Create(mov *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.CompanyID, mov.ProductID, mov.BatchID, mov.Type,
		mov.Quantity, mov.UnitPrice, mov.Total, mov.Date, mov.Description,
		mov.CreatedAt, mov.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var batchID *string
	err := row.Scan(&m.ID, &m.CompanyID, &m.ProductID, &batchID, &m.Type,
		&m.Quantity, &m.UnitPrice, &m.Total, &m.Date, &m.Description,
		&m.CreatedAt, &m.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if batchID != nil {
		m.BatchID = *batchID
	}
	return &m, nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(context.Background(),
		`SELECT `+movementColumns+` FROM movements WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByCompany lista movimentações da empresa, mais recentes primeiro.
func (r *MovementRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE company_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
