package dre_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/dre"
)

// TestParseCategory_Canonicas os identificadores canônicos passam direto.
func TestParseCategory_Canonicas(t *testing.T) {
	assert.Equal(t, dre.CategoryAdministrativeExpense, dre.ParseCategory("administrative_expense"))
	assert.Equal(t, dre.CategoryCostOfGoodsSold, dre.ParseCategory("cost_of_goods_sold"))
	assert.Equal(t, dre.CategoryFinancialRevenue, dre.ParseCategory("financial_revenue"))
}

// TestParseCategory_SinonimosLegados sinônimos em português, com caixa mista,
// espaços e hífens, normalizam para o valor canônico.
func TestParseCategory_SinonimosLegados(t *testing.T) {
	assert.Equal(t, dre.CategoryAdministrativeExpense, dre.ParseCategory("Despesa Administrativa"))
	assert.Equal(t, dre.CategoryCommercialExpense, dre.ParseCategory(" despesa-comercial "))
	assert.Equal(t, dre.CategoryCostOfGoodsSold, dre.ParseCategory("CMV"))
	assert.Equal(t, dre.CategoryOtherRevenue, dre.ParseCategory("outras receitas"))
}

// TestParseCategory_DesconhecidaViraNone string desconhecida ou vazia resulta
// em CategoryNone, nunca em erro — o lançamento só não casa com nenhum filtro.
func TestParseCategory_DesconhecidaViraNone(t *testing.T) {
	assert.Equal(t, dre.CategoryNone, dre.ParseCategory(""))
	assert.Equal(t, dre.CategoryNone, dre.ParseCategory("categoria_inventada"))
	assert.Equal(t, dre.CategoryNone, dre.ParseCategory("   "))
}

// TestIsSettled_Sinonimos "pago", "recebido" e "finalizado" indicam liquidação,
// em qualquer dos dois campos de status; qualquer outro valor não.
func TestIsSettled_Sinonimos(t *testing.T) {
	assert.True(t, dre.IsSettled("pago", ""))
	assert.True(t, dre.IsSettled("Recebido", ""))
	assert.True(t, dre.IsSettled(" FINALIZADO ", ""))
	assert.True(t, dre.IsSettled("pendente", "pago"), "campo secundário também conta")

	assert.False(t, dre.IsSettled("pendente", ""))
	assert.False(t, dre.IsSettled("vencido", "cancelado"))
	assert.False(t, dre.IsSettled("", ""))
}
