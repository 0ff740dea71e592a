package dre_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/dre"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	periodStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	midPeriod   = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func movementOut(id string, total float64, desc string) entity.Movement {
	return entity.Movement{
		ID:          id,
		Type:        entity.MovementTypeOut,
		Total:       dec(total),
		Date:        midPeriod,
		Description: desc,
	}
}

func movementIn(id string, total float64, desc string) entity.Movement {
	return entity.Movement{
		ID:          id,
		Type:        entity.MovementTypeIn,
		Total:       dec(total),
		Date:        midPeriod,
		Description: desc,
	}
}

func settledReceivable(id string, amount float64, desc string) entity.ReceivableAccount {
	return entity.ReceivableAccount{
		ID:          id,
		Description: desc,
		AmountTotal: decPtr(amount),
		DueDate:     midPeriod,
		Status:      "pago",
	}
}

func settledPayable(id string, amount float64, desc, category string) entity.PayableAccount {
	return entity.PayableAccount{
		ID:          id,
		Description: desc,
		AmountTotal: decPtr(amount),
		DueDate:     midPeriod,
		Status:      "pago",
		Category:    category,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas vazias
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_EntradasVazias valida que coleções vazias produzem um relatório
// totalmente zerado com detalhamentos vazios, nunca erro ou pânico.
func TestCompute_EntradasVazias(t *testing.T) {
	st := dre.Compute(nil, nil, nil, periodStart, periodEnd)
	require.NotNil(t, st)

	assert.True(t, st.SalesRevenue.IsZero())
	assert.True(t, st.ReceivablesRevenue.IsZero())
	assert.True(t, st.GrossOperatingRevenue.IsZero())
	assert.True(t, st.SalesDeductions.IsZero(), "deduções ficam fixas em 0 nesta versão")
	assert.True(t, st.NetOperatingRevenue.IsZero())
	assert.True(t, st.CostOfGoodsSold.IsZero())
	assert.True(t, st.GrossProfit.IsZero())
	assert.True(t, st.TotalOperatingExpenses.IsZero())
	assert.True(t, st.OperatingResult.IsZero())
	assert.True(t, st.FinancialResult.IsZero())
	assert.True(t, st.ResultBeforeTax.IsZero())
	assert.True(t, st.Taxes.IsZero(), "impostos ficam fixos em 0 nesta versão")
	assert.True(t, st.NetResult.IsZero())

	assert.Empty(t, st.Breakdown.Revenues)
	assert.Empty(t, st.Breakdown.Costs)
	assert.Empty(t, st.Breakdown.Expenses)
}

// ──────────────────────────────────────────────────────────────────────────────
// Identidades algébricas (exatas, não aproximadas)
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_Identidades valida as identidades que valem para qualquer entrada:
// receita líquida == receita bruta (deduções fixas em 0), lucro bruto ==
// receita líquida - CMV e resultado líquido == resultado antes dos impostos.
func TestCompute_Identidades(t *testing.T) {
	payables := []entity.PayableAccount{
		settledPayable("p1", 37.53, "Energia elétrica", "administrative_expense"),
		settledPayable("p2", 120.10, "Frete mercadoria", "cost_of_goods_sold"),
	}
	receivables := []entity.ReceivableAccount{
		settledReceivable("r1", 310.77, "Serviço avulso"),
	}
	movements := []entity.Movement{
		movementOut("m1", 199.99, "Venda balcão"),
		movementIn("m2", 80.40, "Compra insumos"),
	}

	st := dre.Compute(payables, receivables, movements, periodStart, periodEnd)

	assert.True(t, st.NetOperatingRevenue.Equal(st.GrossOperatingRevenue),
		"receita líquida deve ser igual à bruta enquanto deduções forem 0")
	assert.True(t, st.GrossProfit.Equal(st.NetOperatingRevenue.Sub(st.CostOfGoodsSold)),
		"lucro bruto deve ser exatamente receita líquida menos CMV")
	assert.True(t, st.NetResult.Equal(st.ResultBeforeTax),
		"resultado líquido deve ser igual ao resultado antes dos impostos enquanto impostos forem 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Deduplicação
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_DeduplicacaoPorVinculo valida que uma conta a receber vinculada a
// uma movimentação de saída do período NÃO soma de novo na receita: vale só o
// total da movimentação.
func TestCompute_DeduplicacaoPorVinculo(t *testing.T) {
	mov := movementOut("mov-1", 250, "Venda NF 123")
	rec := settledReceivable("rec-1", 250, "Recebimento NF 123")
	rec.LinkedMovementID = "mov-1"

	st := dre.Compute(nil, []entity.ReceivableAccount{rec}, []entity.Movement{mov}, periodStart, periodEnd)

	assert.True(t, st.SalesRevenue.Equal(dec(250)))
	assert.True(t, st.ReceivablesRevenue.IsZero(),
		"conta vinculada à movimentação não pode contar de novo")
	assert.True(t, st.GrossOperatingRevenue.Equal(dec(250)))
}

// TestCompute_VinculoForaDoConjunto valida que um LinkedMovementID que não
// aparece entre as saídas do período deixa a conta contável normalmente.
func TestCompute_VinculoForaDoConjunto(t *testing.T) {
	mov := movementOut("mov-1", 250, "Venda NF 123")
	rec := settledReceivable("rec-1", 90, "Aluguel de equipamento")
	rec.LinkedMovementID = "mov-de-outro-periodo"

	st := dre.Compute(nil, []entity.ReceivableAccount{rec}, []entity.Movement{mov}, periodStart, periodEnd)

	assert.True(t, st.ReceivablesRevenue.Equal(dec(90)))
	assert.True(t, st.GrossOperatingRevenue.Equal(dec(340)))
}

// TestCompute_DeduplicacaoHeuristica valida a exclusão por casamento difuso:
// mesma quantia e descrição equivalente (caixa/espaços ignorados) contam uma
// vez só, via movimentação.
func TestCompute_DeduplicacaoHeuristica(t *testing.T) {
	mov := movementOut("mov-1", 100, "venda   cliente x")
	rec := settledReceivable("rec-1", 100, "Venda Cliente X") // sem vínculo explícito

	st := dre.Compute(nil, []entity.ReceivableAccount{rec}, []entity.Movement{mov}, periodStart, periodEnd)

	assert.True(t, st.SalesRevenue.Equal(dec(100)))
	assert.True(t, st.ReceivablesRevenue.IsZero(),
		"conta que duplica movimentação legada deve ser descartada pela heurística")
}

// TestCompute_DeduplicacaoSimetricaPagar o mesmo vale para contas a pagar
// contra as entradas de estoque.
func TestCompute_DeduplicacaoSimetricaPagar(t *testing.T) {
	mov := movementIn("mov-1", 500, "Compra Fornecedor ABC")
	pay := settledPayable("pay-1", 500, "compra fornecedor abc", "cost_of_goods_sold")

	st := dre.Compute([]entity.PayableAccount{pay}, nil, []entity.Movement{mov}, periodStart, periodEnd)

	assert.True(t, st.PurchaseCosts.Equal(dec(500)))
	assert.True(t, st.PayablesCosts.IsZero(),
		"conta a pagar que duplica a entrada não pode somar no CMV de novo")
	assert.True(t, st.CostOfGoodsSold.Equal(dec(500)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorias
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_SemCategoriaForaDosSubtotais valida o default permissivo: conta
// liquidada sem categoria (ou com categoria desconhecida) fica fora de TODOS os
// subtotais categorizados do Passo 7, independente da deduplicação, mas ainda
// soma no total por direção se passou pela deduplicação.
func TestCompute_SemCategoriaForaDosSubtotais(t *testing.T) {
	semCategoria := settledPayable("p1", 50, "Lançamento avulso", "")
	desconhecida := settledPayable("p2", 70, "Outro lançamento", "categoria_que_nao_existe")

	st := dre.Compute([]entity.PayableAccount{semCategoria, desconhecida}, nil, nil, periodStart, periodEnd)

	assert.True(t, st.AdministrativeExpenses.IsZero())
	assert.True(t, st.CommercialExpenses.IsZero())
	assert.True(t, st.FinancialExpenses.IsZero())
	assert.True(t, st.OtherOperatingExpenses.IsZero())
	assert.True(t, st.TotalOperatingExpenses.IsZero(),
		"conta sem categoria não entra em nenhum subtotal de despesa")
	assert.True(t, st.PayablesCosts.IsZero(),
		"sem categoria CMV explícita também não soma no custo de contas")
}

// TestCompute_ReceitaFinanceiraEOutras valida os Passos 8 e 9: categorias de
// receita financeira e outras receitas saem das contas a receber únicas.
func TestCompute_ReceitaFinanceiraEOutras(t *testing.T) {
	finRev := settledReceivable("r1", 40, "Rendimento aplicação")
	finRev.Category = "financial_revenue"
	otherRev := settledReceivable("r2", 25, "Venda de sucata")
	otherRev.Category = "other_revenue"
	finExp := settledPayable("p1", 15, "Juros cheque especial", "financial_expense")

	st := dre.Compute(
		[]entity.PayableAccount{finExp},
		[]entity.ReceivableAccount{finRev, otherRev},
		nil, periodStart, periodEnd,
	)

	assert.True(t, st.FinancialRevenue.Equal(dec(40)))
	assert.True(t, st.OtherRevenue.Equal(dec(25)))
	assert.True(t, st.FinancialExpenses.Equal(dec(15)))
	assert.True(t, st.FinancialResult.Equal(dec(25)), "40 - 15 = 25")
	// As receitas categorizadas também compõem a receita bruta (Passo 5 soma
	// todas as contas únicas, sem filtro de categoria).
	assert.True(t, st.ReceivablesRevenue.Equal(dec(65)))
}

// TestCompute_CategoriasEmPortugues valida que sinônimos em português de dados
// legados casam com as categorias canônicas.
func TestCompute_CategoriasEmPortugues(t *testing.T) {
	pay := settledPayable("p1", 35, "Material de escritório", "Despesa Administrativa")

	st := dre.Compute([]entity.PayableAccount{pay}, nil, nil, periodStart, periodEnd)

	assert.True(t, st.AdministrativeExpenses.Equal(dec(35)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenários ponta a ponta
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_CenarioSomenteMovimentacoes uma saída de 500 e uma entrada de 200:
// receita 500, custo 200, lucro bruto / resultado operacional / líquido = 300.
func TestCompute_CenarioSomenteMovimentacoes(t *testing.T) {
	movements := []entity.Movement{
		movementOut("m1", 500, "Venda do dia"),
		movementIn("m2", 200, "Reposição de estoque"),
	}

	st := dre.Compute(nil, nil, movements, periodStart, periodEnd)

	assert.True(t, st.SalesRevenue.Equal(dec(500)))
	assert.True(t, st.PurchaseCosts.Equal(dec(200)))
	assert.True(t, st.GrossProfit.Equal(dec(300)))
	assert.True(t, st.OperatingResult.Equal(dec(300)))
	assert.True(t, st.NetResult.Equal(dec(300)))
}

// TestCompute_CenarioSomenteDespesa uma conta administrativa de 80 liquidada,
// sem movimentações: resultado operacional e líquido = -80.
func TestCompute_CenarioSomenteDespesa(t *testing.T) {
	pay := settledPayable("p1", 80, "Honorários contador", "administrative_expense")

	st := dre.Compute([]entity.PayableAccount{pay}, nil, nil, periodStart, periodEnd)

	assert.True(t, st.AdministrativeExpenses.Equal(dec(80)))
	assert.True(t, st.OperatingResult.Equal(dec(-80)), "0 - 80 = -80")
	assert.True(t, st.NetResult.Equal(dec(-80)))
}

// TestCompute_DespesaOperacionalNaoDeduplicada despesas categorizadas entram
// sempre, mesmo coincidindo com uma movimentação (são linhas de despesa, não CMV).
func TestCompute_DespesaOperacionalNaoDeduplicada(t *testing.T) {
	mov := movementIn("m1", 150, "Pagamento aluguel")
	pay := settledPayable("p1", 150, "pagamento aluguel", "administrative_expense")

	st := dre.Compute([]entity.PayableAccount{pay}, nil, []entity.Movement{mov}, periodStart, periodEnd)

	assert.True(t, st.AdministrativeExpenses.Equal(dec(150)),
		"despesa categorizada não passa pela deduplicação do Passo 3/4")
	assert.True(t, st.PurchaseCosts.Equal(dec(150)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fronteiras de período e liquidação
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_FronteiraDePeriodo vencimento exatamente no fim do período entra
// (intervalo fechado); um dia depois fica fora.
func TestCompute_FronteiraDePeriodo(t *testing.T) {
	noLimite := settledReceivable("r1", 10, "No último dia")
	noLimite.DueDate = periodEnd
	umDiaDepois := settledReceivable("r2", 20, "Um dia depois")
	umDiaDepois.DueDate = periodEnd.AddDate(0, 0, 1)
	noInicio := settledReceivable("r3", 30, "No primeiro dia")
	noInicio.DueDate = periodStart

	st := dre.Compute(nil, []entity.ReceivableAccount{noLimite, umDiaDepois, noInicio}, nil, periodStart, periodEnd)

	assert.True(t, st.ReceivablesRevenue.Equal(dec(40)), "10 (limite) + 30 (início); 20 fica fora")
}

// TestCompute_ContaNaoLiquidadaIgnorada contas pendentes ou canceladas não
// participam de nenhum total.
func TestCompute_ContaNaoLiquidadaIgnorada(t *testing.T) {
	pendente := settledReceivable("r1", 99, "Ainda em aberto")
	pendente.Status = "pendente"
	cancelada := settledPayable("p1", 45, "Compra cancelada", "administrative_expense")
	cancelada.Status = "cancelado"

	st := dre.Compute([]entity.PayableAccount{cancelada}, []entity.ReceivableAccount{pendente}, nil, periodStart, periodEnd)

	assert.True(t, st.ReceivablesRevenue.IsZero())
	assert.True(t, st.AdministrativeExpenses.IsZero())
	assert.True(t, st.NetResult.IsZero())
}

// TestCompute_PaymentStatusSecundario o campo secundário de pagamento também
// pode indicar liquidação.
func TestCompute_PaymentStatusSecundario(t *testing.T) {
	rec := settledReceivable("r1", 60, "Mensalidade")
	rec.Status = "pendente"
	rec.PaymentStatus = "recebido"

	st := dre.Compute(nil, []entity.ReceivableAccount{rec}, nil, periodStart, periodEnd)

	assert.True(t, st.ReceivablesRevenue.Equal(dec(60)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolução de valor
// ──────────────────────────────────────────────────────────────────────────────

// TestReceivableAmount_OrdemDeResolucao AmountTotal → Amount → AmountReceived
// (somente se > 0) → 0.
func TestReceivableAmount_OrdemDeResolucao(t *testing.T) {
	total := entity.ReceivableAccount{AmountTotal: decPtr(100), Amount: decPtr(90), AmountReceived: decPtr(80)}
	assert.True(t, dre.ReceivableAmount(total).Equal(dec(100)), "AmountTotal tem prioridade")

	generic := entity.ReceivableAccount{Amount: decPtr(90), AmountReceived: decPtr(80)}
	assert.True(t, dre.ReceivableAmount(generic).Equal(dec(90)))

	received := entity.ReceivableAccount{AmountReceived: decPtr(80)}
	assert.True(t, dre.ReceivableAmount(received).Equal(dec(80)))

	receivedZero := entity.ReceivableAccount{AmountReceived: decPtr(0)}
	assert.True(t, dre.ReceivableAmount(receivedZero).IsZero(),
		"AmountReceived só vale se for maior que zero")

	empty := entity.ReceivableAccount{}
	assert.True(t, dre.ReceivableAmount(empty).IsZero(),
		"conta sem nenhum campo de valor resolve para 0 silenciosamente")
}

func TestPayableAmount_OrdemDeResolucao(t *testing.T) {
	total := entity.PayableAccount{AmountTotal: decPtr(100), Amount: decPtr(90), AmountPaid: decPtr(80)}
	assert.True(t, dre.PayableAmount(total).Equal(dec(100)))

	paidOnly := entity.PayableAccount{AmountPaid: decPtr(80)}
	assert.True(t, dre.PayableAmount(paidOnly).Equal(dec(80)))

	empty := entity.PayableAccount{}
	assert.True(t, dre.PayableAmount(empty).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Detalhamento
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_DetalhamentoReceitaOperacional o grupo de receita operacional
// lista cada saída de estoque e cada conta única, para auditoria, sem somar as
// movimentações de novo.
func TestCompute_DetalhamentoReceitaOperacional(t *testing.T) {
	movements := []entity.Movement{
		movementOut("m1", 300, "Venda A"),
		movementOut("m2", 200, "Venda B"),
	}
	rec := settledReceivable("r1", 50, "Serviço extra")

	st := dre.Compute(nil, []entity.ReceivableAccount{rec}, movements, periodStart, periodEnd)

	require.Len(t, st.Breakdown.Revenues, 1)
	group := st.Breakdown.Revenues[0]
	assert.Equal(t, dre.CategoryOperatingRevenue, group.Category)
	assert.True(t, group.TotalValue.Equal(dec(550)), "300 + 200 + 50, movimentações não somam duas vezes")
	require.Len(t, group.Entries, 3, "duas saídas + uma conta única")

	ids := []string{group.Entries[0].ID, group.Entries[1].ID, group.Entries[2].ID}
	assert.Contains(t, ids, "m1")
	assert.Contains(t, ids, "m2")
	assert.Contains(t, ids, "r1")
}

// TestCompute_DetalhamentoOmiteCategoriaZerada categoria sem valor positivo não
// vira linha zero no detalhamento: é omitida.
func TestCompute_DetalhamentoOmiteCategoriaZerada(t *testing.T) {
	pay := settledPayable("p1", 80, "Comissão vendedor", "commercial_expense")

	st := dre.Compute([]entity.PayableAccount{pay}, nil, nil, periodStart, periodEnd)

	require.Len(t, st.Breakdown.Expenses, 1, "só a categoria com valor aparece")
	assert.Equal(t, dre.CategoryCommercialExpense, st.Breakdown.Expenses[0].Category)
	assert.Empty(t, st.Breakdown.Revenues, "não há receita no cenário")
}

// ──────────────────────────────────────────────────────────────────────────────
// Arredondamento
// ──────────────────────────────────────────────────────────────────────────────

// TestStatement_Rounded o arredondamento a 2 casas acontece só na formatação;
// o acumulado interno preserva as casas originais.
func TestStatement_Rounded(t *testing.T) {
	movements := []entity.Movement{
		movementOut("m1", 10.333, "Venda fracionada A"),
		movementOut("m2", 10.333, "Venda fracionada B"),
		movementOut("m3", 10.334, "Venda fracionada C"),
	}

	st := dre.Compute(nil, nil, movements, periodStart, periodEnd)

	assert.True(t, st.SalesRevenue.Equal(dec(31)),
		"acumulação sem arredondar: 10.333+10.333+10.334 = 31 exato")

	rounded := st.Rounded()
	assert.True(t, rounded.SalesRevenue.Equal(dec(31)))
	require.Len(t, rounded.Breakdown.Revenues, 1)
	assert.True(t, rounded.Breakdown.Revenues[0].Entries[0].Value.Equal(dec(10.33)),
		"itens individuais arredondados a 2 casas na saída")
}
