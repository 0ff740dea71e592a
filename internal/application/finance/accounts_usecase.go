package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/dre"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// PayableUseCase casos de uso para contas a pagar: CRUD e baixa.
type PayableUseCase struct {
	repo repository.PayableRepository
}

// NewPayableUseCase constrói o caso de uso.
func NewPayableUseCase(repo repository.PayableRepository) *PayableUseCase {
	return &PayableUseCase{repo: repo}
}

// Create cria uma conta a pagar com status "pendente".
// A categoria é guardada como veio; a normalização acontece no motor de DRE.
func (uc *PayableUseCase) Create(companyID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Description == "" || in.DueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.PayableAccount{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Description:      in.Description,
		SupplierID:       in.CounterpartyID,
		SupplierName:     in.CounterpartyName,
		AmountTotal:      in.AmountTotal,
		Amount:           in.Amount,
		DueDate:          in.DueDate,
		Status:           "pendente",
		Category:         in.Category,
		LinkedMovementID: in.LinkedMovementID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return payableToResponse(account), nil
}

// GetByID obtém uma conta a pagar por ID.
func (uc *PayableUseCase) GetByID(id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return payableToResponse(account), nil
}

// List lista contas a pagar por empresa com paginação.
func (uc *PayableUseCase) List(companyID string, limit, offset int) (*dto.AccountListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *payableToResponse(a))
	}
	return &dto.AccountListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update edita os campos de uma conta a pagar ainda pendente.
// Conta já liquidada devolve ErrAlreadySettled: o histórico é imutável.
func (uc *PayableUseCase) Update(id string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if dre.IsSettled(account.Status, account.PaymentStatus) {
		return nil, domain.ErrAlreadySettled
	}
	if in.Description == "" || in.DueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	account.Description = in.Description
	account.SupplierID = in.CounterpartyID
	account.SupplierName = in.CounterpartyName
	account.AmountTotal = in.AmountTotal
	account.Amount = in.Amount
	account.DueDate = in.DueDate
	account.Category = in.Category
	account.LinkedMovementID = in.LinkedMovementID
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return payableToResponse(account), nil
}

// Settle dá baixa na conta (pagamento). Valor ausente usa o valor resolvido da
// conta. Conta já liquidada devolve ErrAlreadySettled.
func (uc *PayableUseCase) Settle(id string, in dto.SettleAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if dre.IsSettled(account.Status, account.PaymentStatus) {
		return nil, domain.ErrAlreadySettled
	}
	paid := dre.PayableAmount(*account)
	if in.Amount != nil && in.Amount.GreaterThan(decimal.Zero) {
		paid = *in.Amount
	}
	when := time.Now()
	if in.Date != nil {
		when = *in.Date
	}
	account.AmountPaid = &paid
	account.PaidAt = &when
	account.Status = "pago"
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return payableToResponse(account), nil
}

// Delete remove uma conta a pagar por ID.
func (uc *PayableUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ReceivableUseCase casos de uso para contas a receber: CRUD e baixa.
type ReceivableUseCase struct {
	repo repository.ReceivableRepository
}

// NewReceivableUseCase constrói o caso de uso.
func NewReceivableUseCase(repo repository.ReceivableRepository) *ReceivableUseCase {
	return &ReceivableUseCase{repo: repo}
}

// Create cria uma conta a receber com status "pendente".
func (uc *ReceivableUseCase) Create(companyID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Description == "" || in.DueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	account := &entity.ReceivableAccount{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Description:      in.Description,
		CustomerID:       in.CounterpartyID,
		CustomerName:     in.CounterpartyName,
		AmountTotal:      in.AmountTotal,
		Amount:           in.Amount,
		DueDate:          in.DueDate,
		Status:           "pendente",
		Category:         in.Category,
		LinkedMovementID: in.LinkedMovementID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return receivableToResponse(account), nil
}

// GetByID obtém uma conta a receber por ID.
func (uc *ReceivableUseCase) GetByID(id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return receivableToResponse(account), nil
}

// List lista contas a receber por empresa com paginação.
func (uc *ReceivableUseCase) List(companyID string, limit, offset int) (*dto.AccountListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *receivableToResponse(a))
	}
	return &dto.AccountListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update edita os campos de uma conta a receber ainda pendente.
// Conta já liquidada devolve ErrAlreadySettled: o histórico é imutável.
func (uc *ReceivableUseCase) Update(id string, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if dre.IsSettled(account.Status, account.PaymentStatus) {
		return nil, domain.ErrAlreadySettled
	}
	if in.Description == "" || in.DueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	account.Description = in.Description
	account.CustomerID = in.CounterpartyID
	account.CustomerName = in.CounterpartyName
	account.AmountTotal = in.AmountTotal
	account.Amount = in.Amount
	account.DueDate = in.DueDate
	account.Category = in.Category
	account.LinkedMovementID = in.LinkedMovementID
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return receivableToResponse(account), nil
}

// Settle dá baixa na conta (recebimento).
func (uc *ReceivableUseCase) Settle(id string, in dto.SettleAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if dre.IsSettled(account.Status, account.PaymentStatus) {
		return nil, domain.ErrAlreadySettled
	}
	received := dre.ReceivableAmount(*account)
	if in.Amount != nil && in.Amount.GreaterThan(decimal.Zero) {
		received = *in.Amount
	}
	when := time.Now()
	if in.Date != nil {
		when = *in.Date
	}
	account.AmountReceived = &received
	account.ReceivedAt = &when
	account.Status = "recebido"
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return receivableToResponse(account), nil
}

// Delete remove uma conta a receber por ID.
func (uc *ReceivableUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func payableToResponse(a *entity.PayableAccount) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:               a.ID,
		CompanyID:        a.CompanyID,
		Description:      a.Description,
		CounterpartyID:   a.SupplierID,
		CounterpartyName: a.SupplierName,
		AmountTotal:      a.AmountTotal,
		Amount:           a.Amount,
		AmountSettled:    a.AmountPaid,
		DueDate:          a.DueDate,
		SettledAt:        a.PaidAt,
		Status:           a.Status,
		Category:         a.Category,
		LinkedMovementID: a.LinkedMovementID,
		CreatedAt:        a.CreatedAt,
	}
}

func receivableToResponse(a *entity.ReceivableAccount) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:               a.ID,
		CompanyID:        a.CompanyID,
		Description:      a.Description,
		CounterpartyID:   a.CustomerID,
		CounterpartyName: a.CustomerName,
		AmountTotal:      a.AmountTotal,
		Amount:           a.Amount,
		AmountSettled:    a.AmountReceived,
		DueDate:          a.DueDate,
		SettledAt:        a.ReceivedAt,
		Status:           a.Status,
		Category:         a.Category,
		LinkedMovementID: a.LinkedMovementID,
		CreatedAt:        a.CreatedAt,
	}
}
