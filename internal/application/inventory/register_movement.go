package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	invdomain "github.com/flexigestor/flexi-gestor-api/internal/domain/inventory"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// RegisterMovementUseCase registra entradas e saídas de estoque.
// Entrada: recalcula o custo médio ponderado, soma no saldo e cria um lote
// com código sequencial por empresa. Saída: valida saldo suficiente e subtrai.
// Tudo dentro de uma única transação, com o saldo travado (SELECT FOR UPDATE).
type RegisterMovementUseCase struct {
	productRepo repository.ProductRepository
	txRunner    TxRunner
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(productRepo repository.ProductRepository, txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{productRepo: productRepo, txRunner: txRunner}
}

// Execute valida e registra a movimentação, devolvendo o registro confirmado.
func (uc *RegisterMovementUseCase) Execute(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, fmt.Errorf("%w: tipo de movimentação %q", domain.ErrInvalidInput, in.Type)
	}
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantidade deve ser positiva", domain.ErrInvalidInput)
	}
	if in.UnitPrice == nil || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: preço unitário obrigatório e não negativo", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("movimentação: produto: %w", err)
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	unitPrice := *in.UnitPrice

	mov := &entity.Movement{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProductID:   product.ID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UnitPrice:   unitPrice,
		Total:       in.Quantity.Mul(unitPrice),
		Date:        date,
		Description: in.Description,
		CreatedAt:   time.Now(),
		CreatedBy:   userID,
	}
	var batchCode string

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		batchRepo repository.BatchRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(companyID, product.ID)
		if err != nil {
			return fmt.Errorf("travar saldo: %w", err)
		}

		switch in.Type {
		case entity.MovementTypeIn:
			newCost := invdomain.AverageCost(stock.Quantity, product.Cost, in.Quantity, unitPrice)
			if err := productRepo.UpdateCost(product.ID, newCost); err != nil {
				return fmt.Errorf("atualizar custo médio: %w", err)
			}
			stock.Quantity = stock.Quantity.Add(in.Quantity)

			seq, err := batchRepo.NextSequence(companyID)
			if err != nil {
				return fmt.Errorf("alocar número de lote: %w", err)
			}
			batch := &entity.Batch{
				ID:         uuid.New().String(),
				CompanyID:  companyID,
				ProductID:  product.ID,
				Code:       fmt.Sprintf("LOTE-%06d", seq),
				Quantity:   in.Quantity,
				UnitCost:   unitPrice,
				ExpiryDate: in.ExpiryDate,
				CreatedAt:  time.Now(),
			}
			if err := batchRepo.Create(batch); err != nil {
				return fmt.Errorf("criar lote: %w", err)
			}
			mov.BatchID = batch.ID
			batchCode = batch.Code

		case entity.MovementTypeOut:
			if stock.Quantity.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			stock.Quantity = stock.Quantity.Sub(in.Quantity)
		}

		stock.UpdatedAt = time.Now()
		if err := stockRepo.Upsert(stock); err != nil {
			return fmt.Errorf("atualizar saldo: %w", err)
		}
		if err := movRepo.Create(mov); err != nil {
			return fmt.Errorf("criar movimentação: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ID:          mov.ID,
		ProductID:   mov.ProductID,
		BatchID:     mov.BatchID,
		BatchCode:   batchCode,
		Type:        mov.Type,
		Quantity:    mov.Quantity,
		UnitPrice:   mov.UnitPrice,
		Total:       mov.Total,
		Date:        mov.Date,
		Description: mov.Description,
	}, nil
}

func movementToResponse(mov *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          mov.ID,
		ProductID:   mov.ProductID,
		BatchID:     mov.BatchID,
		Type:        mov.Type,
		Quantity:    mov.Quantity,
		UnitPrice:   mov.UnitPrice,
		Total:       mov.Total,
		Date:        mov.Date,
		Description: mov.Description,
	}
}
