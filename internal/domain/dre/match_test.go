package dre_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/dre"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Predicado de casamento difuso (isolado do motor de agregação)
// ──────────────────────────────────────────────────────────────────────────────

// TestMatchesMovement_DescricaoEquivalente valores iguais e descrições iguais
// após normalização (caixa, espaços nas pontas e internos) casam.
func TestMatchesMovement_DescricaoEquivalente(t *testing.T) {
	mov := movementOut("m1", 100, "  venda   CLIENTE x  ")
	assert.True(t, dre.MatchesMovement(dec(100), "Venda Cliente X", "", mov))
}

// TestMatchesMovement_ContraparteComoSubstring o nome do cliente/fornecedor
// contido na descrição da movimentação também casa.
func TestMatchesMovement_ContraparteComoSubstring(t *testing.T) {
	mov := movementOut("m1", 100, "Venda para Mercado Central filial 2")
	assert.True(t, dre.MatchesMovement(dec(100), "Recebimento duplicata", "Mercado Central", mov))
}

// TestMatchesMovement_ToleranciaDeValor diferença de até 0,01 ainda casa;
// acima disso não, mesmo com descrição idêntica.
func TestMatchesMovement_ToleranciaDeValor(t *testing.T) {
	mov := movementOut("m1", 100, "venda cliente x")

	assert.True(t, dre.MatchesMovement(dec(100.01), "venda cliente x", "", mov),
		"diferença exatamente na tolerância casa")
	assert.False(t, dre.MatchesMovement(dec(100.02), "venda cliente x", "", mov),
		"acima da tolerância não casa")
}

// TestMatchesMovement_ValorIgualTextoDiferente valor igual sozinho não basta:
// precisa de descrição equivalente ou contraparte contida.
func TestMatchesMovement_ValorIgualTextoDiferente(t *testing.T) {
	mov := movementOut("m1", 100, "Venda balcão")
	assert.False(t, dre.MatchesMovement(dec(100), "Mensalidade plano", "Fornecedor Y", mov))
}

// TestMatchesMovement_CamposVazios descrição e contraparte vazias nunca casam
// (evita que toda conta sem texto seja descartada por qualquer movimentação de
// mesmo valor).
func TestMatchesMovement_CamposVazios(t *testing.T) {
	mov := movementOut("m1", 100, "Venda balcão")
	assert.False(t, dre.MatchesMovement(dec(100), "", "", mov))
}

// TestHasCorrespondingMovement_PrimeiroCasamentoEncerra o primeiro casamento
// encerra a busca (semântica de some() preservada).
func TestHasCorrespondingMovement_PrimeiroCasamentoEncerra(t *testing.T) {
	movements := []entity.Movement{
		movementOut("m1", 100, "outra coisa"),
		movementOut("m2", 100, "venda cliente x"),
		movementOut("m3", 100, "venda cliente x"), // duplicada, nunca consultada
	}
	assert.True(t, dre.HasCorrespondingMovement(dec(100), "venda cliente x", "", movements))
	assert.False(t, dre.HasCorrespondingMovement(dec(999), "venda cliente x", "", movements))
}
