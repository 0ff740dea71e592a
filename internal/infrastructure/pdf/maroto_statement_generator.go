// Package pdf implementa a representação gráfica do Demonstrativo de
// Resultado do Exercício (DRE) usando Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razão Social + CNPJ  │  Período do relatório        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LINHAS DA DRE: Receita Bruta → ... → Resultado Líquido      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALHAMENTO: Receitas | Custos | Despesas                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/application/finance"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/dre"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

var _ finance.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa finance.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator constrói o gerador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF gera o PDF da DRE e devolve seus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	company *entity.Company,
	statement *dre.Statement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Demonstrativo de Resultado do Exercício", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, statement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Linhas da DRE na ordem fixa do relatório
	for _, r := range statementRows(statement) {
		m.AddRows(r)
	}

	// Detalhamento por categoria
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(breakdownSection("DETALHAMENTO DE RECEITAS", statement.Breakdown.Revenues)...)
	m.AddRows(breakdownSection("DETALHAMENTO DE CUSTOS", statement.Breakdown.Costs)...)
	m.AddRows(breakdownSection("DETALHAMENTO DE DESPESAS", statement.Breakdown.Expenses)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: razão social + CNPJ (esq) e período do relatório (dir).
func headerRow(company *entity.Company, statement *dre.Statement) core.Row {
	periodo := fmt.Sprintf("%s a %s",
		statement.Period.Start.Format("02/01/2006"),
		statement.Period.End.Format("02/01/2006"),
	)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+nonEmpty(company.CNPJ, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DEMONSTRATIVO DE RESULTADO (DRE)", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodo, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// statementLine uma linha do relatório: rótulo, valor e nível de destaque.
type statementLine struct {
	label    string
	value    decimal.Decimal
	emphasis bool // subtotais e resultado
	indent   bool // componentes dentro de um bloco
}

// statementRows monta as linhas da DRE na ordem contábil fixa.
func statementRows(s *dre.Statement) []core.Row {
	lines := []statementLine{
		{label: "Receita Bruta Operacional", value: s.GrossOperatingRevenue, emphasis: true},
		{label: "Receita de Vendas", value: s.SalesRevenue, indent: true},
		{label: "Receita de Contas Recebidas", value: s.ReceivablesRevenue, indent: true},
		{label: "(-) Deduções de Vendas", value: s.SalesDeductions.Neg(), indent: true},
		{label: "Receita Líquida Operacional", value: s.NetOperatingRevenue, emphasis: true},
		{label: "(-) Custo das Mercadorias Vendidas (CMV)", value: s.CostOfGoodsSold.Neg()},
		{label: "Lucro Bruto", value: s.GrossProfit, emphasis: true},
		{label: "(-) Despesas Administrativas", value: s.AdministrativeExpenses.Neg(), indent: true},
		{label: "(-) Despesas Comerciais", value: s.CommercialExpenses.Neg(), indent: true},
		{label: "(-) Despesas Financeiras", value: s.FinancialExpenses.Neg(), indent: true},
		{label: "(-) Outras Despesas Operacionais", value: s.OtherOperatingExpenses.Neg(), indent: true},
		{label: "Total de Despesas Operacionais", value: s.TotalOperatingExpenses.Neg()},
		{label: "Resultado Operacional", value: s.OperatingResult, emphasis: true},
		{label: "Receitas Financeiras", value: s.FinancialRevenue, indent: true},
		{label: "Resultado Financeiro", value: s.FinancialResult},
		{label: "Outras Receitas", value: s.OtherRevenue, indent: true},
		{label: "(-) Outras Despesas", value: s.OtherExpenses.Neg(), indent: true},
		{label: "Resultado Antes dos Impostos", value: s.ResultBeforeTax, emphasis: true},
		{label: "(-) Impostos", value: s.Taxes.Neg(), indent: true},
		{label: "Resultado Líquido do Exercício", value: s.NetResult, emphasis: true},
	}

	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, statementRow(l))
	}
	return rows
}

func statementRow(l statementLine) core.Row {
	size := 9.0
	style := fontstyle.Normal
	color := colorGray
	left := 1.0
	if l.emphasis {
		size = 10
		style = fontstyle.Bold
		color = colorPrimary
	}
	if l.indent {
		left = 6
	}

	valueColor := color
	if l.value.IsNegative() {
		valueColor = colorRed
	}

	return row.New(6).Add(
		col.New(8).Add(text.New(l.label, props.Text{
			Size: size, Style: style, Color: color, Top: 1, Left: left,
		})),
		col.New(4).Add(text.New(formatMoney(l.value), props.Text{
			Size: size, Style: style, Color: valueColor, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// breakdownSection: título + um bloco por categoria, com seus lançamentos.
func breakdownSection(title string, groups []dre.CategoryBreakdown) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	if len(groups) == 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Sem lançamentos no período.", props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
		return rows
	}

	for _, g := range groups {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(text.New(g.Label, props.Text{
				Style: fontstyle.Bold, Size: 8.5, Top: 1, Left: 2,
			})),
			col.New(4).Add(text.New(formatMoney(g.TotalValue), props.Text{
				Style: fontstyle.Bold, Size: 8.5, Align: align.Right, Top: 1, Right: 1,
			})),
		))
		for _, e := range g.Entries {
			rows = append(rows, row.New(5).Add(
				col.New(8).Add(text.New(nonEmpty(e.Description, "(sem descrição)"), props.Text{
					Size: 8, Color: colorGray, Top: 1, Left: 6,
				})),
				col.New(4).Add(text.New(formatMoney(e.Value), props.Text{
					Size: 8, Color: colorGray, Align: align.Right, Top: 1, Right: 1,
				})),
			))
		}
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formata um valor em reais: R$ 1.234,56 (negativo entre parênteses).
func formatMoney(v decimal.Decimal) string {
	negative := v.IsNegative()
	s := v.Abs().StringFixed(2)

	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}

	out := "R$ " + string(buf) + "," + decPart
	if negative {
		return "(" + out + ")"
	}
	return out
}
