package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

// ======================================================
// STUBS
// ======================================================

type stubRepo struct {
	shop      *models.DetailShop
	services  []models.Service
	prices    []models.ServicePrice
	recipe    map[uint][]models.ServiceConsumption
	inventory []models.InventoryItem
	usage     map[uint]int

	nextID         uint
	upsertCalls    int
	savedBatches   [][]models.ServicePrice
	recipeReplaces int
}

func (r *stubRepo) GetShopByID(_ context.Context, id uint) (*models.DetailShop, error) {
	return r.shop, nil
}

func (r *stubRepo) GetService(_ context.Context, shopID, serviceID uint) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == serviceID && r.services[i].ShopID == shopID {
			return &r.services[i], nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (r *stubRepo) ListActiveServices(_ context.Context, shopID uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.ShopID == shopID && s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubRepo) ListPrices(_ context.Context, shopID uint) ([]models.ServicePrice, error) {
	out := make([]models.ServicePrice, len(r.prices))
	copy(out, r.prices)
	return out, nil
}

func (r *stubRepo) ListPricesForService(_ context.Context, shopID, serviceID uint) ([]models.ServicePrice, error) {
	var out []models.ServicePrice
	for _, p := range r.prices {
		if p.ServiceID == serviceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) UpsertPrice(_ context.Context, price *models.ServicePrice) error {
	r.upsertCalls++
	for i := range r.prices {
		if r.prices[i].ServiceID == price.ServiceID && r.prices[i].Size == price.Size {
			r.prices[i].Price = price.Price
			price.ID = r.prices[i].ID
			return nil
		}
	}
	r.nextID++
	price.ID = r.nextID
	r.prices = append(r.prices, *price)
	return nil
}

func (r *stubRepo) SavePrices(_ context.Context, prices []models.ServicePrice) error {
	r.savedBatches = append(r.savedBatches, prices)
	for _, p := range prices {
		for i := range r.prices {
			if r.prices[i].ID == p.ID {
				r.prices[i].Price = p.Price
			}
		}
	}
	return nil
}

func (r *stubRepo) ListConsumption(_ context.Context, shopID, serviceID uint) ([]models.ServiceConsumption, error) {
	return r.recipe[serviceID], nil
}

func (r *stubRepo) ReplaceConsumption(_ context.Context, shopID, serviceID uint, lines []models.ServiceConsumption) error {
	if r.recipe == nil {
		r.recipe = make(map[uint][]models.ServiceConsumption)
	}
	r.recipe[serviceID] = lines
	r.recipeReplaces++
	return nil
}

func (r *stubRepo) ListInventory(_ context.Context, shopID uint) ([]models.InventoryItem, error) {
	return r.inventory, nil
}

func (r *stubRepo) CountServiceUsage(_ context.Context, shopID, serviceID uint) (int, error) {
	return r.usage[serviceID], nil
}

type stubCache struct {
	stored      map[uint]*Report
	invalidated int
}

func newStubCache() *stubCache {
	return &stubCache{stored: make(map[uint]*Report)}
}

func (c *stubCache) Get(_ context.Context, shopID uint) (*Report, bool) {
	r, ok := c.stored[shopID]
	return r, ok
}

func (c *stubCache) Set(_ context.Context, shopID uint, report *Report) {
	c.stored[shopID] = report
}

func (c *stubCache) Invalidate(_ context.Context, shopID uint) {
	delete(c.stored, shopID)
	c.invalidated++
}

// ======================================================
// SET PRICE
// ======================================================

func TestSetPrice_CriaLinhaNova(t *testing.T) {
	repo := &stubRepo{
		services: []models.Service{{ID: 1, ShopID: 7, Active: true}},
	}
	uc := NewSetPrice(repo, nil, nil)

	entry, err := uc.Execute(context.Background(), SetPriceInput{
		ShopID:    7,
		ServiceID: 1,
		Size:      "medium",
		Price:     "1.234,56",
	})
	require.NoError(t, err)

	assert.Equal(t, "medium", entry.Size)
	assert.InDelta(t, 1234.56, entry.Price, 1e-9)
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestSetPrice_EdicaoIdempotente(t *testing.T) {
	repo := &stubRepo{
		services: []models.Service{{ID: 1, ShopID: 7, Active: true}},
		prices: []models.ServicePrice{
			{ID: 10, ShopID: 7, ServiceID: 1, Size: "medium", Price: 80},
		},
	}
	uc := NewSetPrice(repo, nil, nil)

	// mesmo valor: não toca a persistência
	entry, err := uc.Execute(context.Background(), SetPriceInput{
		ShopID: 7, ServiceID: 1, Size: "medium", Price: "80",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), entry.ID)
	assert.Equal(t, 0, repo.upsertCalls)

	// valor novo: persiste na mesma linha
	entry, err = uc.Execute(context.Background(), SetPriceInput{
		ShopID: 7, ServiceID: 1, Size: "medium", Price: "99,90",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), entry.ID)
	assert.InDelta(t, 99.90, entry.Price, 1e-9)
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestSetPrice_RejeitaEntradaInvalida(t *testing.T) {
	repo := &stubRepo{
		services: []models.Service{{ID: 1, ShopID: 7, Active: true}},
	}
	uc := NewSetPrice(repo, nil, nil)

	cases := []SetPriceInput{
		{ShopID: 7, ServiceID: 1, Size: "medium", Price: "abc"},
		{ShopID: 7, ServiceID: 1, Size: "medium", Price: "-10"},
		{ShopID: 7, ServiceID: 1, Size: "gigante", Price: "10"},
		{ShopID: 7, ServiceID: 99, Size: "medium", Price: "10"},
	}
	wantCodes := []string{"invalid_price", "invalid_price", "invalid_size", "service_not_found"}

	for i, in := range cases {
		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err, "caso %d", i)
		assert.Equal(t, wantCodes[i], httperr.BusinessCode(err), "caso %d", i)
	}
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestSetPrice_InvalidaCache(t *testing.T) {
	repo := &stubRepo{
		services: []models.Service{{ID: 1, ShopID: 7, Active: true}},
	}
	cache := newStubCache()
	cache.stored[7] = &Report{}

	uc := NewSetPrice(repo, nil, cache)
	_, err := uc.Execute(context.Background(), SetPriceInput{
		ShopID: 7, ServiceID: 1, Size: "large", Price: "120",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)
}

// ======================================================
// BULK ADJUST
// ======================================================

func TestBulkAdjust_PersisteSoOAlvo(t *testing.T) {
	repo := &stubRepo{
		prices: []models.ServicePrice{
			{ID: 1, ShopID: 7, ServiceID: 1, Size: "small", Price: 50},
			{ID: 2, ShopID: 7, ServiceID: 1, Size: "medium", Price: 80},
			{ID: 3, ShopID: 7, ServiceID: 2, Size: "medium", Price: 100},
		},
	}
	cache := newStubCache()
	uc := NewBulkAdjustPrices(repo, nil, cache)

	changed, err := uc.Execute(context.Background(), BulkAdjustInput{
		ShopID:     7,
		Target:     "medium",
		Percentage: "10",
	})
	require.NoError(t, err)
	require.Len(t, changed, 2)

	assert.InDelta(t, 88, changed[0].Price, 1e-9)
	assert.InDelta(t, 110, changed[1].Price, 1e-9)

	// porte fora do alvo fica intocado, em igualdade exata
	assert.Equal(t, float64(50), repo.prices[0].Price)

	require.Len(t, repo.savedBatches, 1)
	assert.Equal(t, 1, cache.invalidated)
}

func TestBulkAdjust_RejeitaEntradaInvalida(t *testing.T) {
	repo := &stubRepo{}
	uc := NewBulkAdjustPrices(repo, nil, nil)

	_, err := uc.Execute(context.Background(), BulkAdjustInput{
		ShopID: 7, Target: "medium", Percentage: "dez",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_percentage"))

	_, err = uc.Execute(context.Background(), BulkAdjustInput{
		ShopID: 7, Target: "gigante", Percentage: "10",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_size"))

	assert.Empty(t, repo.savedBatches)
}

func TestBulkAdjust_SemMudancaNaoPersiste(t *testing.T) {
	repo := &stubRepo{
		prices: []models.ServicePrice{
			{ID: 1, ShopID: 7, ServiceID: 1, Size: "small", Price: 50},
		},
	}
	cache := newStubCache()
	uc := NewBulkAdjustPrices(repo, nil, cache)

	changed, err := uc.Execute(context.Background(), BulkAdjustInput{
		ShopID: 7, Target: "xl", Percentage: "25",
	})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Empty(t, repo.savedBatches)
	assert.Equal(t, 0, cache.invalidated)
}

// ======================================================
// REPLACE RECIPE
// ======================================================

func TestReplaceRecipe_SubstituiEInvalidaCache(t *testing.T) {
	repo := &stubRepo{
		services: []models.Service{{ID: 1, ShopID: 7, Active: true}},
		recipe: map[uint][]models.ServiceConsumption{
			1: {{ServiceID: 1, InventoryItemID: 3, Quantity: 50, UsageUnit: "mL"}},
		},
	}
	cache := newStubCache()
	cache.stored[7] = &Report{}

	uc := NewReplaceRecipe(repo, nil, cache)
	lines, err := uc.Execute(context.Background(), ReplaceRecipeInput{
		ShopID:    7,
		ServiceID: 1,
		Lines: []RecipeLineInput{
			{InventoryItemID: 3, Quantity: 100, UsageUnit: "mL"},
			{InventoryItemID: 4, Quantity: 0.2, UsageUnit: "L"},
		},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// a receita antiga foi substituída por inteiro
	assert.Equal(t, 1, repo.recipeReplaces)
	require.Len(t, repo.recipe[1], 2)
	assert.Equal(t, uint(4), repo.recipe[1][1].InventoryItemID)

	// receita muda o custo, então o relatório em cache não pode sobreviver
	assert.Equal(t, 1, cache.invalidated)
	assert.NotContains(t, cache.stored, uint(7))
}

func TestReplaceRecipe_EsvaziaReceita(t *testing.T) {
	repo := &stubRepo{
		services: []models.Service{{ID: 1, ShopID: 7, Active: true}},
		recipe: map[uint][]models.ServiceConsumption{
			1: {{ServiceID: 1, InventoryItemID: 3, Quantity: 50, UsageUnit: "mL"}},
		},
	}
	uc := NewReplaceRecipe(repo, nil, nil)

	lines, err := uc.Execute(context.Background(), ReplaceRecipeInput{
		ShopID: 7, ServiceID: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Empty(t, repo.recipe[1])
}

func TestReplaceRecipe_RejeitaEntradaInvalida(t *testing.T) {
	repo := &stubRepo{
		services: []models.Service{{ID: 1, ShopID: 7, Active: true}},
	}
	cache := newStubCache()
	uc := NewReplaceRecipe(repo, nil, cache)

	_, err := uc.Execute(context.Background(), ReplaceRecipeInput{
		ShopID: 7, ServiceID: 99,
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	_, err = uc.Execute(context.Background(), ReplaceRecipeInput{
		ShopID:    7,
		ServiceID: 1,
		Lines:     []RecipeLineInput{{InventoryItemID: 3, Quantity: -1, UsageUnit: "mL"}},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	assert.Equal(t, 0, repo.recipeReplaces)
	assert.Equal(t, 0, cache.invalidated)
}

// ======================================================
// PROFITABILITY REPORT
// ======================================================

func reportFixture() *stubRepo {
	return &stubRepo{
		shop: &models.DetailShop{ID: 7, HourlyRate: 50},
		services: []models.Service{
			{ID: 1, ShopID: 7, Name: "Lavagem Detalhada", StandardTimeMin: 90, Active: true},
			{ID: 2, ShopID: 7, Name: "Vitrificação", StandardTimeMin: 180, Active: true},
			{ID: 3, ShopID: 7, Name: "Higienização Antiga", Active: false},
		},
		prices: []models.ServicePrice{
			{ID: 1, ShopID: 7, ServiceID: 1, Size: "medium", Price: 150},
			{ID: 2, ShopID: 7, ServiceID: 2, Size: "medium", Price: 200},
		},
		recipe: map[uint][]models.ServiceConsumption{
			1: {{ServiceID: 1, InventoryItemID: 1, Quantity: 100, UsageUnit: "mL"}},
		},
		inventory: []models.InventoryItem{
			{ID: 1, ShopID: 7, Unit: "mL", CostPrice: 0.10},
		},
		usage: map[uint]int{1: 12, 2: 2},
	}
}

func TestComputeReport_MontaRankingComServicosAtivos(t *testing.T) {
	repo := reportFixture()
	uc := NewComputeReport(repo, nil)

	report, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, float64(50), report.HourlyRate)
	require.Len(t, report.Ranking, 2, "serviço inativo fica de fora")

	// serviço 1: preço 150, custo 10, mão de obra 75 -> lucro 65
	// serviço 2: preço 200, custo 0, mão de obra 150 -> lucro 50
	assert.Equal(t, uint(1), report.Ranking[0].ServiceID)
	assert.InDelta(t, 65, report.Ranking[0].NetProfit, 1e-9)
	assert.Equal(t, uint(2), report.Ranking[1].ServiceID)
	assert.InDelta(t, 50, report.Ranking[1].NetProfit, 1e-9)

	// vitrificação: 3h com lucro/hora abaixo do custo-hora
	require.Len(t, report.ScheduleHogs, 1)
	assert.Equal(t, uint(2), report.ScheduleHogs[0].ServiceID)

	require.Len(t, report.TopPerformers, 2)
	assert.Equal(t, uint(1), report.TopPerformers[0].ServiceID)
}

func TestComputeReport_UsaEPreencheCache(t *testing.T) {
	repo := reportFixture()
	cache := newStubCache()
	uc := NewComputeReport(repo, cache)

	first, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Contains(t, cache.stored, uint(7))

	// segunda chamada sai do cache, sem recomputar
	repo.shop.HourlyRate = 999
	second, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, float64(50), second.HourlyRate)
}

// ======================================================
// SERVICE COST
// ======================================================

func TestGetServiceCost(t *testing.T) {
	repo := reportFixture()
	uc := NewGetServiceCost(repo)

	cost, err := uc.Execute(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10, cost.Total, 1e-9)
	assert.Empty(t, cost.MissingItemIDs)

	_, err = uc.Execute(context.Background(), 7, 99)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}
