package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/inventory"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// TestAverageCost_Ponderado (10 un a 5,00) + (10 un a 7,00) = 20 un a 6,00.
func TestAverageCost_Ponderado(t *testing.T) {
	got := inventory.AverageCost(d(10), d(5), d(10), d(7))
	assert.True(t, got.Equal(d(6)))
}

// TestAverageCost_EstoqueZerado primeira entrada assume o custo da entrada.
func TestAverageCost_EstoqueZerado(t *testing.T) {
	got := inventory.AverageCost(decimal.Zero, decimal.Zero, d(4), d(12.5))
	assert.True(t, got.Equal(d(12.5)))
}

// TestAverageCost_SomaNaoPositiva soma de quantidades <= 0 devolve custo zero
// em vez de dividir por zero.
func TestAverageCost_SomaNaoPositiva(t *testing.T) {
	got := inventory.AverageCost(decimal.Zero, d(5), decimal.Zero, d(7))
	assert.True(t, got.IsZero())
}
