package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// DashboardUseCase monta o resumo financeiro do dashboard:
// vendas e margem do dia, do mês em curso, produtos mais vendidos e
// alerta de estoque mínimo. As consultas rodam em paralelo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// topProductsLimit quantidade de linhas no widget de mais vendidos.
const topProductsLimit = 5

// GetSummary calcula o resumo do dashboard relativo a `now` (fuso do servidor).
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string, now time.Time) (*dto.DashboardSummaryDTO, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type metricsFetch struct {
		revenue decimal.Decimal
		cost    decimal.Decimal
		err     error
	}
	type topFetch struct {
		list []repository.TopProductResult
		err  error
	}
	type lowStockFetch struct {
		count int
		err   error
	}

	todayCh := make(chan metricsFetch, 1)
	monthCh := make(chan metricsFetch, 1)
	topCh := make(chan topFetch, 1)
	lowStockCh := make(chan lowStockFetch, 1)

	go func() {
		revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, companyID, todayStart, todayEnd)
		todayCh <- metricsFetch{revenue, cost, err}
	}()
	go func() {
		revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, companyID, monthStart, todayEnd)
		monthCh <- metricsFetch{revenue, cost, err}
	}()
	go func() {
		list, err := uc.analyticsRepo.GetTopProducts(ctx, companyID, monthStart, todayEnd, topProductsLimit)
		topCh <- topFetch{list, err}
	}()
	go func() {
		count, err := uc.analyticsRepo.CountLowStock(ctx, companyID)
		lowStockCh <- lowStockFetch{count, err}
	}()

	today := <-todayCh
	month := <-monthCh
	top := <-topCh
	lowStock := <-lowStockCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas do dia: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas do mês: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: mais vendidos: %w", top.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: estoque mínimo: %w", lowStock.err)
	}

	topProducts := make([]dto.TopProductDTO, 0, len(top.list))
	for _, p := range top.list {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			SKU:       p.SKU,
			Name:      p.ProductName,
			UnitsSold: p.UnitsSold,
			Revenue:   p.Revenue.Round(2),
		})
	}

	return &dto.DashboardSummaryDTO{
		TodaySales:    today.revenue.Round(2),
		TodayMargin:   today.revenue.Sub(today.cost).Round(2),
		MonthlySales:  month.revenue.Round(2),
		MonthlyMargin: month.revenue.Sub(month.cost).Round(2),
		LowStockCount: lowStock.count,
		TopProducts:   topProducts,
		DateLabel:     monthLabel(now),
	}, nil
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// monthLabel ex.: "agosto de 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[t.Month()-1], t.Year())
}
