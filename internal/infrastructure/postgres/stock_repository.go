package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementação de StockRepository sobre PostgreSQL (usável com pool ou tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constrói o adaptador de saldo de estoque. Passar pool ou tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtém o saldo atual de um produto. Saldo inexistente = zero.
func (r *StockRepo) Get(companyID, productID string) (*entity.Stock, error) {
	query := `
		SELECT company_id, product_id, quantity, updated_at
		FROM stock WHERE company_id = $1 AND product_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, companyID, productID).Scan(
		&s.CompanyID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{CompanyID: companyID, ProductID: productID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtém o saldo e bloqueia a linha (SELECT FOR UPDATE).
// Cria a linha zerada antes, se não existir, para haver o que bloquear.
// Só faz sentido dentro de uma transação.
func (r *StockRepo) GetForUpdate(companyID, productID string) (*entity.Stock, error) {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock (company_id, product_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (company_id, product_id) DO NOTHING`,
		companyID, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}

	query := `
		SELECT company_id, product_id, quantity, updated_at
		FROM stock WHERE company_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.Stock
	err = r.q.QueryRow(context.Background(), query, companyID, productID).Scan(
		&s.CompanyID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert insere ou atualiza a quantidade em estoque.
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (company_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (company_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.CompanyID, stock.ProductID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
