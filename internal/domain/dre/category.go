package dre

import "strings"

// Category categoria de linha do DRE (enum fechado).
// O valor zero (CategoryNone) significa "sem categoria": o lançamento ainda
// participa dos totais por direção (receita/custo), mas não entra em nenhum
// subtotal categorizado. Comportamento permissivo intencional, não erro.
type Category string

const (
	CategoryNone                  Category = ""
	CategoryOperatingRevenue      Category = "operating_revenue"
	CategoryCostOfGoodsSold       Category = "cost_of_goods_sold"
	CategoryOperatingExpense      Category = "operating_expense"
	CategoryAdministrativeExpense Category = "administrative_expense"
	CategoryCommercialExpense     Category = "commercial_expense"
	CategoryFinancialExpense      Category = "financial_expense"
	CategoryFinancialRevenue      Category = "financial_revenue"
	CategoryOtherRevenue          Category = "other_revenue"
	CategoryOtherExpense          Category = "other_expense"
)

// categorySynonyms mapeia as grafias conhecidas (incluindo as em português de
// dados legados) para o valor canônico.
var categorySynonyms = map[string]Category{
	"operating_revenue":      CategoryOperatingRevenue,
	"receita_operacional":    CategoryOperatingRevenue,
	"cost_of_goods_sold":     CategoryCostOfGoodsSold,
	"cmv":                    CategoryCostOfGoodsSold,
	"custo_mercadoria":       CategoryCostOfGoodsSold,
	"operating_expense":      CategoryOperatingExpense,
	"despesa_operacional":    CategoryOperatingExpense,
	"administrative_expense": CategoryAdministrativeExpense,
	"despesa_administrativa": CategoryAdministrativeExpense,
	"administrativa":         CategoryAdministrativeExpense,
	"commercial_expense":     CategoryCommercialExpense,
	"despesa_comercial":      CategoryCommercialExpense,
	"comercial":              CategoryCommercialExpense,
	"financial_expense":      CategoryFinancialExpense,
	"despesa_financeira":     CategoryFinancialExpense,
	"financial_revenue":      CategoryFinancialRevenue,
	"receita_financeira":     CategoryFinancialRevenue,
	"other_revenue":          CategoryOtherRevenue,
	"outras_receitas":        CategoryOtherRevenue,
	"other_expense":          CategoryOtherExpense,
	"outras_despesas":        CategoryOtherExpense,
}

// ParseCategory normaliza uma categoria em texto para o valor canônico.
// Strings desconhecidas ou vazias resultam em CategoryNone, nunca em erro:
// o lançamento simplesmente não casa com nenhum filtro de categoria.
func ParseCategory(s string) Category {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	if c, ok := categorySynonyms[key]; ok {
		return c
	}
	return CategoryNone
}

// Label devolve o rótulo de exibição da categoria no relatório.
func (c Category) Label() string {
	switch c {
	case CategoryOperatingRevenue:
		return "Receita Operacional"
	case CategoryCostOfGoodsSold:
		return "Custo das Mercadorias Vendidas"
	case CategoryOperatingExpense:
		return "Outras Despesas Operacionais"
	case CategoryAdministrativeExpense:
		return "Despesas Administrativas"
	case CategoryCommercialExpense:
		return "Despesas Comerciais"
	case CategoryFinancialExpense:
		return "Despesas Financeiras"
	case CategoryFinancialRevenue:
		return "Receitas Financeiras"
	case CategoryOtherRevenue:
		return "Outras Receitas"
	case CategoryOtherExpense:
		return "Outras Despesas"
	}
	return "Sem Categoria"
}
