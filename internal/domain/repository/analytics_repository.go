package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult resultado cru da consulta de produtos mais vendidos.
// A DB produz; o use case converte em DTO.
type TopProductResult struct {
	ProductID   string
	SKU         string
	ProductName string
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal
}

// AnalyticsRepository define as consultas de leitura para o dashboard.
// As implementações são read-only (não modificam dados).
type AnalyticsRepository interface {
	// GetSalesMetrics devolve receita (saídas) e custo (entradas) das
	// movimentações da empresa no intervalo dado. Usa COALESCE para devolver
	// zero quando não há movimentações no período.
	GetSalesMetrics(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
	) (revenue, cost decimal.Decimal, err error)

	// GetTopProducts devolve os `limit` produtos com maior receita no período.
	GetTopProducts(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
		limit int,
	) ([]TopProductResult, error)

	// CountLowStock conta produtos com saldo abaixo do estoque mínimo.
	CountLowStock(ctx context.Context, companyID string) (int, error)
}
