package inventory

import (
	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// QueryUseCase leituras de movimentações e lotes (fora de transação).
type QueryUseCase struct {
	movRepo   repository.MovementRepository
	batchRepo repository.BatchRepository
	stockRepo repository.StockRepository
}

// NewQueryUseCase constrói o caso de uso de consultas.
func NewQueryUseCase(movRepo repository.MovementRepository, batchRepo repository.BatchRepository, stockRepo repository.StockRepository) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, batchRepo: batchRepo, stockRepo: stockRepo}
}

// GetMovement obtém uma movimentação por ID, restrita à empresa do usuário.
func (uc *QueryUseCase) GetMovement(companyID, id string) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil || mov.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return movementToResponse(mov), nil
}

// ListMovements lista movimentações da empresa com paginação.
func (uc *QueryUseCase) ListMovements(companyID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, mov := range list {
		items = append(items, *movementToResponse(mov))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBatches lista lotes de um produto da empresa.
func (uc *QueryUseCase) ListBatches(companyID, productID string, limit, offset int) ([]dto.BatchResponse, error) {
	list, err := uc.batchRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		if b.CompanyID != companyID {
			continue
		}
		items = append(items, *batchToResponse(b))
	}
	return items, nil
}

// GetStock consulta o saldo atual de um produto (zero quando nunca movimentado).
func (uc *QueryUseCase) GetStock(companyID, productID string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.Get(companyID, productID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		ProductID: productID,
		Quantity:  stock.Quantity,
		UpdatedAt: stock.UpdatedAt,
	}, nil
}

func batchToResponse(b *entity.Batch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:         b.ID,
		ProductID:  b.ProductID,
		Code:       b.Code,
		Quantity:   b.Quantity,
		UnitCost:   b.UnitCost,
		ExpiryDate: b.ExpiryDate,
		CreatedAt:  b.CreatedAt,
	}
}
