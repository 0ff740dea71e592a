package inventory

import "github.com/shopspring/decimal"

// AverageCost implementa a lógica de custo médio ponderado (serviço de domínio).
// NovoCusto = ((EstoqueAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (EstoqueAtual + QtdEntrada)
func AverageCost(currentStock, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := currentStock.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := currentStock.Mul(currentCost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}
