package dre

import "strings"

// settledStatuses sinônimos conhecidos de "liquidado". Dados legados gravam
// o mesmo estado de formas diferentes conforme a tela que fez a baixa.
var settledStatuses = map[string]bool{
	"pago":       true,
	"recebido":   true,
	"finalizado": true,
}

// IsSettled informa se uma conta está liquidada, olhando o status principal e o
// campo secundário de pagamento. Status desconhecido = não liquidado (default
// permissivo, documentado e testado).
func IsSettled(status, paymentStatus string) bool {
	return settledStatuses[normalizeStatus(status)] || settledStatuses[normalizeStatus(paymentStatus)]
}

func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
