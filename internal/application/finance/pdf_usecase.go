package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// DREPDFUseCase gera a representação em PDF do demonstrativo de resultado.
type DREPDFUseCase struct {
	dreUC        *DREUseCase
	companyRepo  repository.CompanyRepository
	pdfGenerator StatementPDFGenerator
}

// NewDREPDFUseCase constrói o caso de uso.
func NewDREPDFUseCase(dreUC *DREUseCase, companyRepo repository.CompanyRepository, pdfGenerator StatementPDFGenerator) *DREPDFUseCase {
	return &DREPDFUseCase{dreUC: dreUC, companyRepo: companyRepo, pdfGenerator: pdfGenerator}
}

// Generate calcula a DRE do período e renderiza o PDF, devolvendo os bytes.
func (uc *DREPDFUseCase) Generate(ctx context.Context, companyID string, start, end time.Time) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	statement, err := uc.dreUC.Generate(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdfGenerator.GenerateStatementPDF(ctx, company, statement)
	if err != nil {
		return nil, fmt.Errorf("dre: gerar pdf: %w", err)
	}
	return pdf, nil
}
