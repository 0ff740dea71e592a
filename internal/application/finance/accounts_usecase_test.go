package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/application/finance"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

type fakePayableRepo struct {
	byID    map[string]*entity.PayableAccount
	updated *entity.PayableAccount
}

func newFakePayableRepo(accounts ...*entity.PayableAccount) *fakePayableRepo {
	r := &fakePayableRepo{byID: make(map[string]*entity.PayableAccount)}
	for _, a := range accounts {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakePayableRepo) Create(account *entity.PayableAccount) error {
	r.byID[account.ID] = account
	return nil
}

func (r *fakePayableRepo) GetByID(id string) (*entity.PayableAccount, error) {
	return r.byID[id], nil
}

func (r *fakePayableRepo) Update(account *entity.PayableAccount) error {
	r.updated = account
	r.byID[account.ID] = account
	return nil
}

func (r *fakePayableRepo) ListByCompany(_ string, _, _ int) ([]*entity.PayableAccount, error) {
	out := make([]*entity.PayableAccount, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakePayableRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func TestPayableSettle_BaixaPreencheValorEData(t *testing.T) {
	due := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	repo := newFakePayableRepo(&entity.PayableAccount{
		ID:          "p1",
		CompanyID:   "empresa-1",
		Description: "Energia elétrica",
		AmountTotal: decPtr(180.5),
		DueDate:     due,
		Status:      "pendente",
		Category:    "despesa_administrativa",
	})
	uc := finance.NewPayableUseCase(repo)

	out, err := uc.Settle("p1", dto.SettleAccountRequest{})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "pago", out.Status)
	require.NotNil(t, repo.updated.AmountPaid)
	assert.True(t, repo.updated.AmountPaid.Equal(dec(180.5)), "valor pago: %s", repo.updated.AmountPaid)
	assert.NotNil(t, repo.updated.PaidAt)
}

func TestPayableSettle_ValorParcialInformado(t *testing.T) {
	when := time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC)
	repo := newFakePayableRepo(&entity.PayableAccount{
		ID:          "p1",
		CompanyID:   "empresa-1",
		Description: "Fornecedor",
		AmountTotal: decPtr(500),
		DueDate:     when,
		Status:      "pendente",
	})
	uc := finance.NewPayableUseCase(repo)

	out, err := uc.Settle("p1", dto.SettleAccountRequest{Amount: decPtr(350), Date: &when})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.NotNil(t, repo.updated.AmountPaid)
	assert.True(t, repo.updated.AmountPaid.Equal(dec(350)), "valor pago: %s", repo.updated.AmountPaid)
	assert.Equal(t, when, *repo.updated.PaidAt)
}

func TestPayableSettle_ContaJaLiquidada(t *testing.T) {
	repo := newFakePayableRepo(&entity.PayableAccount{
		ID:          "p1",
		CompanyID:   "empresa-1",
		Description: "Já paga",
		AmountTotal: decPtr(100),
		DueDate:     midPeriod,
		Status:      "pago",
	})
	uc := finance.NewPayableUseCase(repo)

	out, err := uc.Settle("p1", dto.SettleAccountRequest{})
	require.ErrorIs(t, err, domain.ErrAlreadySettled)
	assert.Nil(t, out)
}

func TestPayableSettle_ContaInexistente(t *testing.T) {
	uc := finance.NewPayableUseCase(newFakePayableRepo())

	out, err := uc.Settle("nope", dto.SettleAccountRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPayableUpdate_EditaContaPendente(t *testing.T) {
	due := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	repo := newFakePayableRepo(&entity.PayableAccount{
		ID:          "p1",
		CompanyID:   "empresa-1",
		Description: "Internet",
		AmountTotal: decPtr(99.9),
		DueDate:     due,
		Status:      "pendente",
	})
	uc := finance.NewPayableUseCase(repo)

	out, err := uc.Update("p1", dto.CreateAccountRequest{
		Description: "Internet fibra",
		AmountTotal: decPtr(119.9),
		DueDate:     due,
		Category:    "despesa_administrativa",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Internet fibra", repo.updated.Description)
	assert.True(t, repo.updated.AmountTotal.Equal(dec(119.9)))
	assert.Equal(t, "despesa_administrativa", repo.updated.Category)
}

func TestPayableUpdate_ContaLiquidadaNaoEdita(t *testing.T) {
	repo := newFakePayableRepo(&entity.PayableAccount{
		ID:          "p1",
		CompanyID:   "empresa-1",
		Description: "Já paga",
		AmountTotal: decPtr(50),
		DueDate:     midPeriod,
		Status:      "pago",
	})
	uc := finance.NewPayableUseCase(repo)

	out, err := uc.Update("p1", dto.CreateAccountRequest{Description: "Nova", DueDate: midPeriod})
	require.ErrorIs(t, err, domain.ErrAlreadySettled)
	assert.Nil(t, out)
}

func TestPayableCreate_Validacao(t *testing.T) {
	uc := finance.NewPayableUseCase(newFakePayableRepo())

	_, err := uc.Create("empresa-1", dto.CreateAccountRequest{Description: ""})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
