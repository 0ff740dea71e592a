package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de leitura para o dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics devolve receita (saídas) e custo (entradas) das movimentações
// do período. Usa COALESCE para devolver zero num período sem movimentações.
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) (revenue, cost decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(total) FILTER (WHERE type = 'saida'),   0) AS revenue,
	    COALESCE(SUM(total) FILTER (WHERE type = 'entrada'), 0) AS cost
	FROM movements
	WHERE company_id = $1
	  AND date BETWEEN $2 AND $3`

	err = r.pool.QueryRow(ctx, query, companyID, startDate, endDate).
		Scan(&revenue, &cost)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return revenue, cost, nil
}

// GetTopProducts devolve os `limit` produtos com maior receita no período.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.id            AS product_id,
	    p.sku,
	    p.name          AS product_name,
	    SUM(m.quantity) AS units_sold,
	    SUM(m.total)    AS revenue
	FROM movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.company_id = $1
	  AND m.type = 'saida'
	  AND m.date BETWEEN $2 AND $3
	GROUP BY p.id, p.sku, p.name
	ORDER BY revenue DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, companyID, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(
			&row.ProductID,
			&row.SKU,
			&row.ProductName,
			&row.UnitsSold,
			&row.Revenue,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountLowStock conta produtos com saldo abaixo do estoque mínimo configurado.
func (r *AnalyticsRepo) CountLowStock(ctx context.Context, companyID string) (int, error) {
	const query = `
	SELECT COUNT(*)
	FROM products p
	LEFT JOIN stock s ON s.company_id = p.company_id AND s.product_id = p.id
	WHERE p.company_id = $1
	  AND p.min_stock > 0
	  AND COALESCE(s.quantity, 0) < p.min_stock`

	var count int
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return count, nil
}
