package inventory

import (
	"context"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados àquela tx. Garante atomicidade para o motor de estoque:
// saldo, custo médio, lote e movimentação mudam juntos ou não mudam.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		batchRepo repository.BatchRepository,
	) error) error
}
