package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexigestor/flexi-gestor-api/internal/application/dto"
	"github.com/flexigestor/flexi-gestor-api/internal/application/inventory"
	"github.com/flexigestor/flexi-gestor-api/internal/domain"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/repository"
)

// ────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	costs    map[string]decimal.Decimal
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateCost(productID string, cost decimal.Decimal) error {
	f.costs[productID] = cost
	return nil
}
func (f *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id string) error { return nil }

type fakeStockRepo struct {
	stocks map[string]*entity.Stock // chave: productID
}

func (f *fakeStockRepo) Get(companyID, productID string) (*entity.Stock, error) {
	return f.stocks[productID], nil
}
func (f *fakeStockRepo) GetForUpdate(companyID, productID string) (*entity.Stock, error) {
	if s, ok := f.stocks[productID]; ok {
		return s, nil
	}
	s := &entity.Stock{CompanyID: companyID, ProductID: productID, Quantity: decimal.Zero}
	f.stocks[productID] = s
	return s, nil
}
func (f *fakeStockRepo) Upsert(s *entity.Stock) error { f.stocks[s.ProductID] = s; return nil }

type fakeMovementRepo struct {
	created []*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error { f.created = append(f.created, m); return nil }
func (f *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range f.created {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMovementRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Movement, error) {
	return f.created, nil
}

type fakeBatchRepo struct {
	created []*entity.Batch
	seq     int64
}

func (f *fakeBatchRepo) Create(b *entity.Batch) error { f.created = append(f.created, b); return nil }
func (f *fakeBatchRepo) GetByID(id string) (*entity.Batch, error) { return nil, nil }
func (f *fakeBatchRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Batch, error) {
	return f.created, nil
}
func (f *fakeBatchRepo) NextSequence(companyID string) (int64, error) {
	f.seq++
	return f.seq, nil
}

type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	stockRepo   *fakeStockRepo
	productRepo *fakeProductRepo
	batchRepo   *fakeBatchRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	batchRepo repository.BatchRepository,
) error) error {
	return fn(f.movRepo, f.stockRepo, f.productRepo, f.batchRepo)
}

func newFixture(stock decimal.Decimal, cost decimal.Decimal) (*inventory.RegisterMovementUseCase, *fakeTxRunner) {
	productRepo := &fakeProductRepo{
		products: map[string]*entity.Product{
			"prod-1": {ID: "prod-1", CompanyID: "co-1", SKU: "SKU-1", Name: "Produto 1", Cost: cost},
		},
		costs: map[string]decimal.Decimal{},
	}
	runner := &fakeTxRunner{
		movRepo:     &fakeMovementRepo{},
		stockRepo:   &fakeStockRepo{stocks: map[string]*entity.Stock{}},
		productRepo: productRepo,
		batchRepo:   &fakeBatchRepo{},
	}
	if stock.GreaterThan(decimal.Zero) {
		runner.stockRepo.stocks["prod-1"] = &entity.Stock{CompanyID: "co-1", ProductID: "prod-1", Quantity: stock}
	}
	return inventory.NewRegisterMovementUseCase(productRepo, runner), runner
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ────────────────────────────────────────────────────────────────────────────
// Entradas
// ────────────────────────────────────────────────────────────────────────────

func TestExecute_EntradaCriaLoteEAtualizaCusto(t *testing.T) {
	// saldo 10 @ custo 5, entrada de 10 @ 15 → custo médio 10
	uc, runner := newFixture(dec("10"), dec("5"))

	resp, err := uc.Execute(context.Background(), "co-1", "user-1", dto.RegisterMovementRequest{
		ProductID:   "prod-1",
		Type:        entity.MovementTypeIn,
		Quantity:    dec("10"),
		UnitPrice:   decPtr("15"),
		Description: "compra fornecedor",
	})
	require.NoError(t, err)

	assert.True(t, dec("10").Equal(runner.productRepo.costs["prod-1"]), "custo médio = %s", runner.productRepo.costs["prod-1"])
	assert.True(t, dec("20").Equal(runner.stockRepo.stocks["prod-1"].Quantity))

	require.Len(t, runner.batchRepo.created, 1)
	assert.Equal(t, "LOTE-000001", runner.batchRepo.created[0].Code)
	assert.Equal(t, runner.batchRepo.created[0].ID, resp.BatchID)
	assert.Equal(t, "LOTE-000001", resp.BatchCode)
	assert.True(t, dec("150").Equal(resp.Total))
}

func TestExecute_NumeracaoDeLoteSequencial(t *testing.T) {
	uc, runner := newFixture(decimal.Zero, decimal.Zero)

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), "co-1", "user-1", dto.RegisterMovementRequest{
			ProductID: "prod-1",
			Type:      entity.MovementTypeIn,
			Quantity:  dec("1"),
			UnitPrice: decPtr("10"),
		})
		require.NoError(t, err)
	}

	require.Len(t, runner.batchRepo.created, 3)
	assert.Equal(t, "LOTE-000001", runner.batchRepo.created[0].Code)
	assert.Equal(t, "LOTE-000002", runner.batchRepo.created[1].Code)
	assert.Equal(t, "LOTE-000003", runner.batchRepo.created[2].Code)
}

func TestExecute_EntradaComValidade(t *testing.T) {
	uc, runner := newFixture(decimal.Zero, decimal.Zero)
	expiry := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), "co-1", "user-1", dto.RegisterMovementRequest{
		ProductID:  "prod-1",
		Type:       entity.MovementTypeIn,
		Quantity:   dec("5"),
		UnitPrice:  decPtr("2"),
		ExpiryDate: &expiry,
	})
	require.NoError(t, err)

	require.Len(t, runner.batchRepo.created, 1)
	require.NotNil(t, runner.batchRepo.created[0].ExpiryDate)
	assert.True(t, expiry.Equal(*runner.batchRepo.created[0].ExpiryDate))
}

// ────────────────────────────────────────────────────────────────────────────
// Saídas
// ────────────────────────────────────────────────────────────────────────────

func TestExecute_SaidaSubtraiSaldo(t *testing.T) {
	uc, runner := newFixture(dec("10"), dec("5"))

	resp, err := uc.Execute(context.Background(), "co-1", "user-1", dto.RegisterMovementRequest{
		ProductID:   "prod-1",
		Type:        entity.MovementTypeOut,
		Quantity:    dec("4"),
		UnitPrice:   decPtr("25"),
		Description: "venda balcão",
	})
	require.NoError(t, err)

	assert.True(t, dec("6").Equal(runner.stockRepo.stocks["prod-1"].Quantity))
	assert.True(t, dec("100").Equal(resp.Total))
	assert.Empty(t, resp.BatchID, "saída não cria lote")
	assert.Empty(t, runner.batchRepo.created)
}

func TestExecute_SaidaSemSaldoSuficiente(t *testing.T) {
	uc, runner := newFixture(dec("3"), dec("5"))

	_, err := uc.Execute(context.Background(), "co-1", "user-1", dto.RegisterMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementTypeOut,
		Quantity:  dec("4"),
		UnitPrice: decPtr("25"),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// nada persistiu
	assert.True(t, dec("3").Equal(runner.stockRepo.stocks["prod-1"].Quantity))
	assert.Empty(t, runner.movRepo.created)
}

// ────────────────────────────────────────────────────────────────────────────
// Validação
// ────────────────────────────────────────────────────────────────────────────

func TestExecute_ValidacaoDeEntrada(t *testing.T) {
	uc, _ := newFixture(dec("10"), dec("5"))

	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
		want error
	}{
		{
			name: "tipo desconhecido",
			in:   dto.RegisterMovementRequest{ProductID: "prod-1", Type: "ajuste", Quantity: dec("1"), UnitPrice: decPtr("1")},
			want: domain.ErrInvalidInput,
		},
		{
			name: "quantidade zero",
			in:   dto.RegisterMovementRequest{ProductID: "prod-1", Type: entity.MovementTypeIn, Quantity: decimal.Zero, UnitPrice: decPtr("1")},
			want: domain.ErrInvalidInput,
		},
		{
			name: "preço ausente",
			in:   dto.RegisterMovementRequest{ProductID: "prod-1", Type: entity.MovementTypeIn, Quantity: dec("1")},
			want: domain.ErrInvalidInput,
		},
		{
			name: "preço negativo",
			in:   dto.RegisterMovementRequest{ProductID: "prod-1", Type: entity.MovementTypeIn, Quantity: dec("1"), UnitPrice: decPtr("-1")},
			want: domain.ErrInvalidInput,
		},
		{
			name: "produto inexistente",
			in:   dto.RegisterMovementRequest{ProductID: "prod-9", Type: entity.MovementTypeIn, Quantity: dec("1"), UnitPrice: decPtr("1")},
			want: domain.ErrNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), "co-1", "user-1", tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExecute_ProdutoDeOutraEmpresa(t *testing.T) {
	uc, _ := newFixture(dec("10"), dec("5"))

	_, err := uc.Execute(context.Background(), "co-2", "user-1", dto.RegisterMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementTypeOut,
		Quantity:  dec("1"),
		UnitPrice: decPtr("1"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
