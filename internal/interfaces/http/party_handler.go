package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/application/usecase"
)

// partyUseCase o que CustomerUseCase e SupplierUseCase têm em comum.
// Permite um único handler HTTP para clientes e fornecedores.
type partyUseCase interface {
	Create(companyID string, in dto.PartyRequest) (*dto.PartyResponse, error)
	GetByID(id string) (*dto.PartyResponse, error)
	Update(id string, in dto.PartyRequest) (*dto.PartyResponse, error)
	List(companyID string, limit, offset int) (*dto.PartyListResponse, error)
	Delete(id string) error
}

var (
	_ partyUseCase = (*usecase.CustomerUseCase)(nil)
	_ partyUseCase = (*usecase.SupplierUseCase)(nil)
)

// PartyHandler trata clientes ou fornecedores, conforme o use case injetado.
type PartyHandler struct {
	uc   partyUseCase
	kind string // "cliente" ou "fornecedor", para mensagens de erro
}

// NewCustomerHandler constrói o handler de clientes.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *PartyHandler {
	return &PartyHandler{uc: uc, kind: "cliente"}
}

// NewSupplierHandler constrói o handler de fornecedores.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *PartyHandler {
	return &PartyHandler{uc: uc, kind: "fornecedor"}
}

// Create cria um cliente/fornecedor.
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name é obrigatório"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtém um cliente/fornecedor por ID.
func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil || out.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.kind + " não encontrado"})
	}
	return c.JSON(out)
}

// Update atualiza um cliente/fornecedor.
func (h *PartyHandler) Update(c *fiber.Ctx) error {
	var in dto.PartyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: h.kind + " não encontrado"})
	}
	return c.JSON(out)
}

// List lista clientes/fornecedores da empresa.
func (h *PartyHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(GetCompanyID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete remove um cliente/fornecedor.
func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
