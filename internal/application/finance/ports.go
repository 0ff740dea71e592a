package finance

import (
	"context"

	"github.com/flexigestor/flexi-gestor-api/internal/domain/dre"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// StatementPDFGenerator porta para o gerador de PDF do demonstrativo.
// A implementação (Maroto) vive em infrastructure/pdf.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, company *entity.Company, statement *dre.Statement) ([]byte, error)
}
