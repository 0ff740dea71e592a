package repository

import (
	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// ProductRepository porta de persistência para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCost atualiza apenas o custo médio (usado pelo motor de estoque).
	UpdateCost(productID string, cost decimal.Decimal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}

// StockRepository porta de persistência para o saldo de estoque por produto.
type StockRepository interface {
	Get(companyID, productID string) (*entity.Stock, error)
	// GetForUpdate bloqueia a linha (SELECT FOR UPDATE); cria saldo zerado se não existir.
	GetForUpdate(companyID, productID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
}

// MovementRepository porta de persistência para movimentações (imutáveis após Create).
type MovementRepository interface {
	Create(mov *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error)
}

// BatchRepository porta de persistência para lotes, incluindo o alocador de
// numeração sequencial por empresa.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Batch, error)
	// NextSequence incrementa e devolve o contador de lotes da empresa.
	// Deve rodar dentro da mesma transação da entrada de estoque para o
	// código alocado nunca se perder nem repetir.
	NextSequence(companyID string) (int64, error)
}
