package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/dre"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// DREUseCase monta o snapshot de entrada (contas a pagar, contas a receber e
// movimentações do período) e delega todo o cálculo ao motor puro dre.Compute.
//
// As três consultas rodam em paralelo; o snapshot é consistente porque as
// coleções são somente leitura depois de carregadas e o motor não as modifica.
type DREUseCase struct {
	financeRepo repository.FinanceRepository
}

// NewDREUseCase constrói o caso de uso.
func NewDREUseCase(financeRepo repository.FinanceRepository) *DREUseCase {
	return &DREUseCase{financeRepo: financeRepo}
}

// Generate calcula a DRE da empresa no período [start, end] (inclusivo nas
// duas pontas) e devolve o demonstrativo já arredondado a 2 casas para exibição.
func (uc *DREUseCase) Generate(ctx context.Context, companyID string, start, end time.Time) (*dre.Statement, error) {
	if companyID == "" || start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	type payablesFetch struct {
		list []entity.PayableAccount
		err  error
	}
	type receivablesFetch struct {
		list []entity.ReceivableAccount
		err  error
	}
	type movementsFetch struct {
		list []entity.Movement
		err  error
	}

	payablesCh := make(chan payablesFetch, 1)
	receivablesCh := make(chan receivablesFetch, 1)
	movementsCh := make(chan movementsFetch, 1)

	go func() {
		list, err := uc.financeRepo.ListPayablesByPeriod(ctx, companyID, start, end)
		payablesCh <- payablesFetch{list, err}
	}()
	go func() {
		list, err := uc.financeRepo.ListReceivablesByPeriod(ctx, companyID, start, end)
		receivablesCh <- receivablesFetch{list, err}
	}()
	go func() {
		list, err := uc.financeRepo.ListMovementsByPeriod(ctx, companyID, start, end)
		movementsCh <- movementsFetch{list, err}
	}()

	payables := <-payablesCh
	receivables := <-receivablesCh
	movements := <-movementsCh

	if payables.err != nil {
		return nil, fmt.Errorf("dre: contas a pagar: %w", payables.err)
	}
	if receivables.err != nil {
		return nil, fmt.Errorf("dre: contas a receber: %w", receivables.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dre: movimentações: %w", movements.err)
	}

	statement := dre.Compute(payables.list, receivables.list, movements.list, start, end)
	return statement.Rounded(), nil
}
