// Package dre implementa o motor de cálculo da Demonstração do Resultado do
// Exercício (DRE): função pura que recebe contas a pagar, contas a receber e
// movimentações de estoque de um período e produz o demonstrativo com
// detalhamento por categoria.
//
// O motor não faz I/O, não usa concorrência e é total: qualquer entrada bem
// tipada produz um Statement, nunca um erro. Coleções vazias geram relatório
// zerado. Seguro para chamadas simultâneas de períodos/empresas diferentes
// (nenhum estado compartilhado; as entradas são tratadas como somente leitura).
package dre

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// PayableAmount resolve o valor de uma conta a pagar na ordem:
// AmountTotal → Amount → AmountPaid (somente se > 0) → 0.
func PayableAmount(p entity.PayableAccount) decimal.Decimal {
	switch {
	case p.AmountTotal != nil:
		return *p.AmountTotal
	case p.Amount != nil:
		return *p.Amount
	case p.AmountPaid != nil && p.AmountPaid.GreaterThan(decimal.Zero):
		return *p.AmountPaid
	}
	return decimal.Zero
}

// ReceivableAmount resolve o valor de uma conta a receber na ordem:
// AmountTotal → Amount → AmountReceived (somente se > 0) → 0.
func ReceivableAmount(r entity.ReceivableAccount) decimal.Decimal {
	switch {
	case r.AmountTotal != nil:
		return *r.AmountTotal
	case r.Amount != nil:
		return *r.Amount
	case r.AmountReceived != nil && r.AmountReceived.GreaterThan(decimal.Zero):
		return *r.AmountReceived
	}
	return decimal.Zero
}

// inPeriod intervalo fechado nas duas pontas: [start, end].
func inPeriod(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// Compute calcula a DRE do período.
//
// Regras de conciliação (evitar dupla contagem entre razão de movimentações e
// contas lançadas manualmente):
//   - conta liquidada com LinkedMovementID apontando para movimentação do
//     período, na direção oposta, conta só uma vez (vale a movimentação);
//   - conta liquidada sem vínculo ainda pode duplicar uma movimentação legada:
//     o predicado MatchesMovement descarta essas por heurística de valor+texto.
//
// As despesas operacionais (Passo 7) usam o conjunto liquidado completo, sem
// deduplicação: são linhas de despesa categorizadas, não CMV.
func Compute(
	payables []entity.PayableAccount,
	receivables []entity.ReceivableAccount,
	movements []entity.Movement,
	periodStart, periodEnd time.Time,
) *Statement {
	// ── Passo 1: filtro de período (única porta temporal) ────────────────────
	var periodPayables []entity.PayableAccount
	for _, p := range payables {
		if inPeriod(p.DueDate, periodStart, periodEnd) {
			periodPayables = append(periodPayables, p)
		}
	}
	var periodReceivables []entity.ReceivableAccount
	for _, r := range receivables {
		if inPeriod(r.DueDate, periodStart, periodEnd) {
			periodReceivables = append(periodReceivables, r)
		}
	}

	// ── Passo 2: partição das movimentações por direção ──────────────────────
	var movementsIn, movementsOut []entity.Movement
	movementsInIDs := make(map[string]bool)
	movementsOutIDs := make(map[string]bool)
	for _, m := range movements {
		if !inPeriod(m.Date, periodStart, periodEnd) {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIn:
			movementsIn = append(movementsIn, m)
			movementsInIDs[m.ID] = true
		case entity.MovementTypeOut:
			movementsOut = append(movementsOut, m)
			movementsOutIDs[m.ID] = true
		}
	}

	// Somente contas liquidadas participam do resultado.
	var settledPayables []entity.PayableAccount
	for _, p := range periodPayables {
		if IsSettled(p.Status, p.PaymentStatus) {
			settledPayables = append(settledPayables, p)
		}
	}
	var settledReceivables []entity.ReceivableAccount
	for _, r := range periodReceivables {
		if IsSettled(r.Status, r.PaymentStatus) {
			settledReceivables = append(settledReceivables, r)
		}
	}

	// ── Passo 3: deduplicação por vínculo explícito ──────────────────────────
	var receivablesNoLink []entity.ReceivableAccount
	for _, r := range settledReceivables {
		if r.LinkedMovementID == "" || !movementsOutIDs[r.LinkedMovementID] {
			receivablesNoLink = append(receivablesNoLink, r)
		}
	}
	var payablesNoLink []entity.PayableAccount
	for _, p := range settledPayables {
		if p.LinkedMovementID == "" || !movementsInIDs[p.LinkedMovementID] {
			payablesNoLink = append(payablesNoLink, p)
		}
	}

	// ── Passo 4: deduplicação heurística (dados legados sem vínculo) ─────────
	var receivablesUnique []entity.ReceivableAccount
	for _, r := range receivablesNoLink {
		if !HasCorrespondingMovement(ReceivableAmount(r), r.Description, r.CustomerName, movementsOut) {
			receivablesUnique = append(receivablesUnique, r)
		}
	}
	var payablesUnique []entity.PayableAccount
	for _, p := range payablesNoLink {
		if !HasCorrespondingMovement(PayableAmount(p), p.Description, p.SupplierName, movementsIn) {
			payablesUnique = append(payablesUnique, p)
		}
	}

	// ── Passo 5: receitas ────────────────────────────────────────────────────
	salesRevenue := decimal.Zero
	for _, m := range movementsOut {
		salesRevenue = salesRevenue.Add(m.Total)
	}
	receivablesRevenue := decimal.Zero
	for _, r := range receivablesUnique {
		receivablesRevenue = receivablesRevenue.Add(ReceivableAmount(r))
	}
	grossOperatingRevenue := salesRevenue.Add(receivablesRevenue)
	salesDeductions := decimal.Zero // devoluções/descontos: reservado, sempre 0
	netOperatingRevenue := grossOperatingRevenue.Sub(salesDeductions)

	// ── Passo 6: custos ──────────────────────────────────────────────────────
	purchaseCosts := decimal.Zero
	for _, m := range movementsIn {
		purchaseCosts = purchaseCosts.Add(m.Total)
	}
	payablesCosts := decimal.Zero
	var cogsPayables []entity.PayableAccount
	for _, p := range payablesUnique {
		if ParseCategory(p.Category) == CategoryCostOfGoodsSold {
			payablesCosts = payablesCosts.Add(PayableAmount(p))
			cogsPayables = append(cogsPayables, p)
		}
	}
	costOfGoodsSold := purchaseCosts.Add(payablesCosts)
	grossProfit := netOperatingRevenue.Sub(costOfGoodsSold)

	// ── Passo 7: despesas operacionais ───────────────────────────────────────
	// Conjunto liquidado completo, sem deduplicação contra movimentações.
	adminExpenses := decimal.Zero
	commercialExpenses := decimal.Zero
	financialExpenses := decimal.Zero
	otherOperatingExpenses := decimal.Zero
	otherExpenses := decimal.Zero
	var adminPayables, commercialPayables, finExpPayables, otherOpPayables, otherExpPayables []entity.PayableAccount
	for _, p := range settledPayables {
		amount := PayableAmount(p)
		switch ParseCategory(p.Category) {
		case CategoryAdministrativeExpense:
			adminExpenses = adminExpenses.Add(amount)
			adminPayables = append(adminPayables, p)
		case CategoryCommercialExpense:
			commercialExpenses = commercialExpenses.Add(amount)
			commercialPayables = append(commercialPayables, p)
		case CategoryFinancialExpense:
			financialExpenses = financialExpenses.Add(amount)
			finExpPayables = append(finExpPayables, p)
		case CategoryOperatingExpense:
			otherOperatingExpenses = otherOperatingExpenses.Add(amount)
			otherOpPayables = append(otherOpPayables, p)
		case CategoryOtherExpense: // Passo 9, coletado aqui na mesma passada
			otherExpenses = otherExpenses.Add(amount)
			otherExpPayables = append(otherExpPayables, p)
		}
	}
	totalOperatingExpenses := adminExpenses.
		Add(commercialExpenses).
		Add(financialExpenses).
		Add(otherOperatingExpenses)
	operatingResult := grossProfit.Sub(totalOperatingExpenses)

	// ── Passos 8 e 9: resultado financeiro e outras receitas ─────────────────
	financialRevenue := decimal.Zero
	otherRevenue := decimal.Zero
	var finRevReceivables, otherRevReceivables []entity.ReceivableAccount
	for _, r := range receivablesUnique {
		switch ParseCategory(r.Category) {
		case CategoryFinancialRevenue:
			financialRevenue = financialRevenue.Add(ReceivableAmount(r))
			finRevReceivables = append(finRevReceivables, r)
		case CategoryOtherRevenue:
			otherRevenue = otherRevenue.Add(ReceivableAmount(r))
			otherRevReceivables = append(otherRevReceivables, r)
		}
	}
	// FinancialExpenses é reaproveitado do Passo 7, não recalculado.
	financialResult := financialRevenue.Sub(financialExpenses)

	// ── Passo 10: agregação final ────────────────────────────────────────────
	resultBeforeTax := operatingResult.
		Add(financialResult).
		Add(otherRevenue).
		Sub(otherExpenses)
	taxes := decimal.Zero // reservado, sempre 0
	netResult := resultBeforeTax.Sub(taxes)

	// ── Passo 11: detalhamento ───────────────────────────────────────────────
	// O grupo de Receita Operacional lista também cada saída de estoque, para
	// transparência de auditoria (os totais delas já estão em SalesRevenue,
	// não são somados de novo aqui).
	var opRevEntries []BreakdownEntry
	for _, m := range movementsOut {
		opRevEntries = append(opRevEntries, movementEntry(m))
	}
	for _, r := range receivablesUnique {
		switch ParseCategory(r.Category) {
		case CategoryFinancialRevenue, CategoryOtherRevenue:
			// aparecem nos próprios grupos
		default:
			opRevEntries = append(opRevEntries, receivableEntry(r))
		}
	}
	revenues := appendGroup(nil, CategoryOperatingRevenue, grossOperatingRevenue, opRevEntries)
	revenues = appendGroup(revenues, CategoryFinancialRevenue, financialRevenue, receivableEntries(finRevReceivables))
	revenues = appendGroup(revenues, CategoryOtherRevenue, otherRevenue, receivableEntries(otherRevReceivables))

	var cogsEntries []BreakdownEntry
	for _, m := range movementsIn {
		cogsEntries = append(cogsEntries, movementEntry(m))
	}
	cogsEntries = append(cogsEntries, payableEntries(cogsPayables)...)
	costs := appendGroup(nil, CategoryCostOfGoodsSold, costOfGoodsSold, cogsEntries)

	expenses := appendGroup(nil, CategoryAdministrativeExpense, adminExpenses, payableEntries(adminPayables))
	expenses = appendGroup(expenses, CategoryCommercialExpense, commercialExpenses, payableEntries(commercialPayables))
	expenses = appendGroup(expenses, CategoryFinancialExpense, financialExpenses, payableEntries(finExpPayables))
	expenses = appendGroup(expenses, CategoryOperatingExpense, otherOperatingExpenses, payableEntries(otherOpPayables))
	expenses = appendGroup(expenses, CategoryOtherExpense, otherExpenses, payableEntries(otherExpPayables))

	return &Statement{
		Period: Period{Start: periodStart, End: periodEnd},

		SalesRevenue:          salesRevenue,
		ReceivablesRevenue:    receivablesRevenue,
		GrossOperatingRevenue: grossOperatingRevenue,
		SalesDeductions:       salesDeductions,
		NetOperatingRevenue:   netOperatingRevenue,

		PurchaseCosts:   purchaseCosts,
		PayablesCosts:   payablesCosts,
		CostOfGoodsSold: costOfGoodsSold,
		GrossProfit:     grossProfit,

		AdministrativeExpenses: adminExpenses,
		CommercialExpenses:     commercialExpenses,
		FinancialExpenses:      financialExpenses,
		OtherOperatingExpenses: otherOperatingExpenses,
		TotalOperatingExpenses: totalOperatingExpenses,
		OperatingResult:        operatingResult,

		FinancialRevenue: financialRevenue,
		FinancialResult:  financialResult,

		OtherRevenue:  otherRevenue,
		OtherExpenses: otherExpenses,

		ResultBeforeTax: resultBeforeTax,
		Taxes:           taxes,
		NetResult:       netResult,

		Breakdown: Breakdown{Revenues: revenues, Costs: costs, Expenses: expenses},
	}
}

// appendGroup acrescenta o grupo apenas se o total for estritamente positivo;
// categorias zeradas (ou negativas) são omitidas do detalhamento, não exibidas
// como linha zero.
func appendGroup(groups []CategoryBreakdown, cat Category, total decimal.Decimal, entries []BreakdownEntry) []CategoryBreakdown {
	if !total.GreaterThan(decimal.Zero) {
		return groups
	}
	return append(groups, CategoryBreakdown{
		Category:   cat,
		Label:      cat.Label(),
		TotalValue: total,
		Entries:    entries,
	})
}

func movementEntry(m entity.Movement) BreakdownEntry {
	return BreakdownEntry{ID: m.ID, Description: m.Description, Value: m.Total}
}

func receivableEntry(r entity.ReceivableAccount) BreakdownEntry {
	return BreakdownEntry{ID: r.ID, Description: r.Description, Value: ReceivableAmount(r)}
}

func receivableEntries(list []entity.ReceivableAccount) []BreakdownEntry {
	var out []BreakdownEntry
	for _, r := range list {
		out = append(out, receivableEntry(r))
	}
	return out
}

func payableEntries(list []entity.PayableAccount) []BreakdownEntry {
	var out []BreakdownEntry
	for _, p := range list {
		out = append(out, BreakdownEntry{ID: p.ID, Description: p.Description, Value: PayableAmount(p)})
	}
	return out
}
