package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para fornecedores. Espelho de CustomerUseCase.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create cria um fornecedor.
func (uc *SupplierUseCase) Create(companyID string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplierToParty(supplier), nil
}

// GetByID obtém um fornecedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.PartyResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return supplierToParty(supplier), nil
}

// Update atualiza um fornecedor.
func (uc *SupplierUseCase) Update(id string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != "" {
		supplier.Name = in.Name
	}
	supplier.Document = in.Document
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplierToParty(supplier), nil
}

// List lista fornecedores por empresa com paginação.
func (uc *SupplierUseCase) List(companyID string, limit, offset int) (*dto.PartyListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *supplierToParty(s))
	}
	return &dto.PartyListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete remove um fornecedor por ID.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func supplierToParty(s *entity.Supplier) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Document:  s.Document,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
