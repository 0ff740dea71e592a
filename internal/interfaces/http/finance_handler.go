package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/application/finance"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
)

// accountUseCase o que PayableUseCase e ReceivableUseCase têm em comum.
type accountUseCase interface {
	Create(companyID string, in dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetByID(id string) (*dto.AccountResponse, error)
	Update(id string, in dto.CreateAccountRequest) (*dto.AccountResponse, error)
	List(companyID string, limit, offset int) (*dto.AccountListResponse, error)
	Settle(id string, in dto.SettleAccountRequest) (*dto.AccountResponse, error)
	Delete(id string) error
}

var (
	_ accountUseCase = (*finance.PayableUseCase)(nil)
	_ accountUseCase = (*finance.ReceivableUseCase)(nil)
)

// AccountHandler trata contas a pagar ou a receber, conforme o use case injetado.
type AccountHandler struct {
	uc   accountUseCase
	kind string // "conta a pagar" ou "conta a receber"
}

// NewPayableHandler constrói o handler de contas a pagar.
func NewPayableHandler(uc *finance.PayableUseCase) *AccountHandler {
	return &AccountHandler{uc: uc, kind: "conta a pagar"}
}

// NewReceivableHandler constrói o handler de contas a receber.
func NewReceivableHandler(uc *finance.ReceivableUseCase) *AccountHandler {
	return &AccountHandler{uc: uc, kind: "conta a receber"}
}

// Create cria uma conta.
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.DueDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "due_date é obrigatório"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtém uma conta por ID, restrita à empresa do usuário.
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil || out.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.kind + " não encontrada"})
	}
	return c.JSON(out)
}

// List lista as contas da empresa.
func (h *AccountHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetCompanyID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update edita uma conta pendente, restrita à empresa do usuário.
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if existing == nil || existing.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.kind + " não encontrada"})
	}

	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadySettled):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SETTLED", Message: "conta liquidada não pode ser editada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Settle dá baixa numa conta (pagamento ou recebimento).
func (h *AccountHandler) Settle(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if existing == nil || existing.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.kind + " não encontrada"})
	}

	// Corpo opcional: baixa sem corpo usa o valor da conta e a data atual.
	var in dto.SettleAccountRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
		}
	}
	out, err := h.uc.Settle(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadySettled):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SETTLED", Message: "conta já liquidada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Delete remove uma conta, restrita à empresa do usuário.
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if existing == nil || existing.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.kind + " não encontrada"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
