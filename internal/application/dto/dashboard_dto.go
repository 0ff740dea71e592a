package dto

import "github.com/shopspring/decimal"

// TopProductDTO linha do widget de produtos mais vendidos.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitsSold decimal.Decimal `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO resumo financeiro do dia e do mês em curso.
type DashboardSummaryDTO struct {
	TodaySales    decimal.Decimal `json:"today_sales"`
	TodayMargin   decimal.Decimal `json:"today_margin"`
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyMargin decimal.Decimal `json:"monthly_margin"`
	LowStockCount int             `json:"low_stock_count"`
	TopProducts   []TopProductDTO `json:"top_products"`
	DateLabel     string          `json:"date_label"`
}
