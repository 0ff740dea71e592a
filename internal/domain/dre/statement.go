package dre

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period limites do período do relatório (inclusivos nas duas pontas).
type Period struct {
	Start time.Time `json:"inicio"`
	End   time.Time `json:"fim"`
}

// BreakdownEntry um lançamento individual dentro de um grupo do detalhamento.
type BreakdownEntry struct {
	ID          string          `json:"id"`
	Description string          `json:"descricao"`
	Value       decimal.Decimal `json:"valor"`
}

// CategoryBreakdown grupo do detalhamento: categoria, total e lançamentos.
type CategoryBreakdown struct {
	Category   Category         `json:"categoria"`
	Label      string           `json:"rotulo"`
	TotalValue decimal.Decimal  `json:"valorTotal"`
	Entries    []BreakdownEntry `json:"itens"`
}

// Breakdown as três tabelas expansíveis do relatório (auditoria).
type Breakdown struct {
	Revenues []CategoryBreakdown `json:"receitas"`
	Costs    []CategoryBreakdown `json:"custos"`
	Expenses []CategoryBreakdown `json:"despesas"`
}

// Statement é a DRE computada para um período: construída a cada chamada,
// nunca persistida. Os valores são acumulados sem arredondamento; o
// arredondamento a 2 casas é responsabilidade de quem formata (Rounded).
type Statement struct {
	Period Period `json:"periodo"`

	SalesRevenue          decimal.Decimal `json:"receitaVendas"`
	ReceivablesRevenue    decimal.Decimal `json:"receitaContasRecebidas"`
	GrossOperatingRevenue decimal.Decimal `json:"receitaBrutaOperacional"`
	SalesDeductions       decimal.Decimal `json:"deducoesVendas"` // reservado, sempre 0 nesta versão
	NetOperatingRevenue   decimal.Decimal `json:"receitaLiquidaOperacional"`

	PurchaseCosts   decimal.Decimal `json:"custoCompras"`
	PayablesCosts   decimal.Decimal `json:"custoContasPagas"`
	CostOfGoodsSold decimal.Decimal `json:"cmv"`
	GrossProfit     decimal.Decimal `json:"lucroBruto"`

	AdministrativeExpenses decimal.Decimal `json:"despesasAdministrativas"`
	CommercialExpenses     decimal.Decimal `json:"despesasComerciais"`
	FinancialExpenses      decimal.Decimal `json:"despesasFinanceiras"`
	OtherOperatingExpenses decimal.Decimal `json:"outrasDespesasOperacionais"`
	TotalOperatingExpenses decimal.Decimal `json:"totalDespesasOperacionais"`
	OperatingResult        decimal.Decimal `json:"resultadoOperacional"`

	FinancialRevenue decimal.Decimal `json:"receitasFinanceiras"`
	FinancialResult  decimal.Decimal `json:"resultadoFinanceiro"`

	OtherRevenue  decimal.Decimal `json:"outrasReceitas"`
	OtherExpenses decimal.Decimal `json:"outrasDespesas"`

	ResultBeforeTax decimal.Decimal `json:"resultadoAntesImpostos"`
	Taxes           decimal.Decimal `json:"impostos"` // reservado, sempre 0 nesta versão
	NetResult       decimal.Decimal `json:"resultadoLiquido"`

	Breakdown Breakdown `json:"detalhamento"`
}

// Rounded devolve uma cópia com todos os valores monetários em 2 casas decimais,
// pronta para serialização/exibição. O Statement original permanece sem
// arredondamento para não acumular erro.
func (s *Statement) Rounded() *Statement {
	out := *s
	out.SalesRevenue = s.SalesRevenue.Round(2)
	out.ReceivablesRevenue = s.ReceivablesRevenue.Round(2)
	out.GrossOperatingRevenue = s.GrossOperatingRevenue.Round(2)
	out.SalesDeductions = s.SalesDeductions.Round(2)
	out.NetOperatingRevenue = s.NetOperatingRevenue.Round(2)
	out.PurchaseCosts = s.PurchaseCosts.Round(2)
	out.PayablesCosts = s.PayablesCosts.Round(2)
	out.CostOfGoodsSold = s.CostOfGoodsSold.Round(2)
	out.GrossProfit = s.GrossProfit.Round(2)
	out.AdministrativeExpenses = s.AdministrativeExpenses.Round(2)
	out.CommercialExpenses = s.CommercialExpenses.Round(2)
	out.FinancialExpenses = s.FinancialExpenses.Round(2)
	out.OtherOperatingExpenses = s.OtherOperatingExpenses.Round(2)
	out.TotalOperatingExpenses = s.TotalOperatingExpenses.Round(2)
	out.OperatingResult = s.OperatingResult.Round(2)
	out.FinancialRevenue = s.FinancialRevenue.Round(2)
	out.FinancialResult = s.FinancialResult.Round(2)
	out.OtherRevenue = s.OtherRevenue.Round(2)
	out.OtherExpenses = s.OtherExpenses.Round(2)
	out.ResultBeforeTax = s.ResultBeforeTax.Round(2)
	out.Taxes = s.Taxes.Round(2)
	out.NetResult = s.NetResult.Round(2)

	out.Breakdown = Breakdown{
		Revenues: roundGroups(s.Breakdown.Revenues),
		Costs:    roundGroups(s.Breakdown.Costs),
		Expenses: roundGroups(s.Breakdown.Expenses),
	}
	return &out
}

func roundGroups(groups []CategoryBreakdown) []CategoryBreakdown {
	out := make([]CategoryBreakdown, len(groups))
	for i, g := range groups {
		entries := make([]BreakdownEntry, len(g.Entries))
		for j, e := range g.Entries {
			e.Value = e.Value.Round(2)
			entries[j] = e
		}
		g.TotalValue = g.TotalValue.Round(2)
		g.Entries = entries
		out[i] = g
	}
	return out
}
