package dre

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// amountTolerance tolerância absoluta para considerar dois valores iguais (0,01).
var amountTolerance = decimal.New(1, -2)

// MatchesMovement verifica se uma conta corresponde heuristicamente a uma
// movimentação sem vínculo explícito (dados legados): valores iguais dentro da
// tolerância E (descrições normalizadas iguais OU nome da contraparte contido
// na descrição da movimentação).
//
// A heurística é aproximada e fonte conhecida de falsos positivos/negativos;
// por isso vive isolada aqui, separada da agregação, para poder ser ajustada
// ou trocada sem tocar no motor.
func MatchesMovement(amount decimal.Decimal, description, counterparty string, mov entity.Movement) bool {
	if amount.Sub(mov.Total).Abs().GreaterThan(amountTolerance) {
		return false
	}
	movDesc := normalizeText(mov.Description)
	if desc := normalizeText(description); desc != "" && desc == movDesc {
		return true
	}
	if name := normalizeText(counterparty); name != "" && strings.Contains(movDesc, name) {
		return true
	}
	return false
}

// HasCorrespondingMovement devolve true se alguma movimentação da lista casa
// com a conta. O primeiro casamento encerra a busca.
func HasCorrespondingMovement(amount decimal.Decimal, description, counterparty string, movements []entity.Movement) bool {
	for _, mov := range movements {
		if MatchesMovement(amount, description, counterparty, mov) {
			return true
		}
	}
	return false
}

// normalizeText minúsculas, sem espaços nas pontas e com espaços internos colapsados.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
