package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/application/finance"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
)

// DREHandler trata o demonstrativo de resultado (JSON e PDF).
type DREHandler struct {
	dreUC *finance.DREUseCase
	pdfUC *finance.DREPDFUseCase
}

// NewDREHandler constrói o handler.
func NewDREHandler(dreUC *finance.DREUseCase, pdfUC *finance.DREPDFUseCase) *DREHandler {
	return &DREHandler{dreUC: dreUC, pdfUC: pdfUC}
}

// parsePeriod lê start/end da query string (YYYY-MM-DD). O fim do período é
// estendido até o último instante do dia para o filtro inclusivo funcionar
// com timestamps intradiários.
func parsePeriod(c *fiber.Ctx) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start inválido (use YYYY-MM-DD)")
	}
	end, err = time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end inválido (use YYYY-MM-DD)")
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

// GetStatement godoc
// @Summary      Demonstrativo de Resultado do Exercício (DRE)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  true  "Início do período (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim do período (YYYY-MM-DD)"
// @Success      200  {object}  dre.Statement
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/dre [get]
func (h *DREHandler) GetStatement(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.dreUC.Generate(c.Context(), GetCompanyID(c), start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetStatementPDF godoc
// @Summary      DRE em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  true  "Início do período (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fim do período (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/dre/pdf [get]
func (h *DREHandler) GetStatementPDF(c *fiber.Ctx) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdf, err := h.pdfUC.Generate(c.Context(), GetCompanyID(c), start, end)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa não encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	filename := fmt.Sprintf("dre_%s_%s.pdf", start.Format("20060102"), end.Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
