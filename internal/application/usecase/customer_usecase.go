package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create cria um cliente.
func (uc *CustomerUseCase) Create(companyID string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerToParty(customer), nil
}

// GetByID obtém um cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.PartyResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return customerToParty(customer), nil
}

// Update atualiza um cliente.
func (uc *CustomerUseCase) Update(id string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	customer.Document = in.Document
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customerToParty(customer), nil
}

// List lista clientes por empresa com paginação.
func (uc *CustomerUseCase) List(companyID string, limit, offset int) (*dto.PartyListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *customerToParty(c))
	}
	return &dto.PartyListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Delete remove um cliente por ID.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func customerToParty(c *entity.Customer) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
