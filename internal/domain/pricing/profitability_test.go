package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

func fullMatrix(small, medium, large, xl float64) map[Size]float64 {
	return map[Size]float64{
		SizeSmall:  small,
		SizeMedium: medium,
		SizeLarge:  large,
		SizeXL:     xl,
	}
}

func TestCompute_FullScenario(t *testing.T) {
	svc := models.Service{ID: 1, Name: "Polimento", StandardTimeMin: 90}
	prices := fullMatrix(100, 200, 300, 400)
	cost := CostBreakdown{Total: 30}

	rec := Compute(svc, prices, cost, 50, 8)

	assert.InDelta(t, 200.0, rec.Price, 1e-9) // preço de referência = porte médio
	assert.InDelta(t, 30.0, rec.Cost, 1e-9)
	assert.InDelta(t, 170.0, rec.GrossMargin, 1e-9)
	assert.InDelta(t, 1.5, rec.TimeHours, 1e-9)
	assert.InDelta(t, 75.0, rec.LaborCost, 1e-9)
	assert.InDelta(t, 95.0, rec.NetProfit, 1e-9)
	assert.InDelta(t, 47.5, rec.NetMarginPercent, 1e-9)
	assert.InDelta(t, 63.3333, rec.ProfitPerHour, 1e-3)
	assert.Equal(t, QuadrantStar, rec.Quadrant)
	assert.False(t, rec.ScheduleHog) // 90 min não passa do limite de 120
}

func TestCompute_ZeroPriceGuards(t *testing.T) {
	svc := models.Service{ID: 1, StandardTimeMin: 60}

	// sem linha de preço para o porte médio = Sob Consulta
	rec := Compute(svc, nil, CostBreakdown{Total: 20}, 50, 0)

	assert.Zero(t, rec.Price)
	assert.Zero(t, rec.MarginPercent)
	assert.Zero(t, rec.NetMarginPercent)
	assert.False(t, rec.NetMarginPercent != rec.NetMarginPercent, "NaN escapou da guarda")
}

func TestCompute_ZeroDurationGuards(t *testing.T) {
	svc := models.Service{ID: 1, StandardTimeMin: 0}

	rec := Compute(svc, fullMatrix(50, 100, 150, 200), CostBreakdown{Total: 10}, 50, 3)

	assert.Zero(t, rec.TimeHours)
	assert.Zero(t, rec.LaborCost)
	assert.Zero(t, rec.ProfitPerHour)
}

func TestClassify_BoundariesAreStrict(t *testing.T) {
	// exatamente nos limiares 30 / 5 → dog (ambos usam > estrito)
	assert.Equal(t, QuadrantDog, classify(30, 5))

	assert.Equal(t, QuadrantStar, classify(30.01, 6))
	assert.Equal(t, QuadrantQuestion, classify(30.01, 5))
	assert.Equal(t, QuadrantCashCow, classify(30, 6))
	assert.Equal(t, QuadrantDog, classify(-10, 0))
}

func TestCompute_ScheduleHogBoundary(t *testing.T) {
	prices := fullMatrix(0, 10, 0, 0)
	cost := CostBreakdown{Total: 5}

	// 120 min exatos nunca é devorador de agenda, mesmo com lucro/hora ruim
	at := Compute(models.Service{ID: 1, StandardTimeMin: 120}, prices, cost, 50, 0)
	require.Less(t, at.ProfitPerHour, 50.0)
	assert.False(t, at.ScheduleHog)

	// 121 min com lucro/hora abaixo do custo-hora é flagrado
	over := Compute(models.Service{ID: 1, StandardTimeMin: 121}, prices, cost, 50, 0)
	require.Less(t, over.ProfitPerHour, 50.0)
	assert.True(t, over.ScheduleHog)
}

func TestCompute_ScheduleHogIndependentOfQuadrant(t *testing.T) {
	// serviço longo e caro: estrela no quadrante E devorador de agenda
	svc := models.Service{ID: 1, StandardTimeMin: 180}
	prices := fullMatrix(0, 400, 0, 0)
	cost := CostBreakdown{Total: 10}

	rec := Compute(svc, prices, cost, 100, 10)

	// net = 390 - 300 = 90 → margem 22.5 → cash_cow; pph = 30 < 100
	assert.Equal(t, QuadrantCashCow, rec.Quadrant)
	assert.True(t, rec.ScheduleHog)
}

func TestReportViews_Ordering(t *testing.T) {
	records := []Record{
		{ServiceID: 1, NetProfit: 10, ProfitPerHour: 5, ScheduleHog: true},
		{ServiceID: 2, NetProfit: 50, ProfitPerHour: 100},
		{ServiceID: 3, NetProfit: 30, ProfitPerHour: 2, ScheduleHog: true},
	}

	RankByNetProfit(records)
	assert.Equal(t, uint(2), records[0].ServiceID)
	assert.Equal(t, uint(3), records[1].ServiceID)
	assert.Equal(t, uint(1), records[2].ServiceID)

	top := TopPerformers(records)
	assert.Equal(t, uint(2), top[0].ServiceID)
	assert.Equal(t, uint(1), top[1].ServiceID)
	assert.Equal(t, uint(3), top[2].ServiceID)

	// só os devoradores, do pior lucro/hora para o melhor
	hogs := ScheduleHogs(records)
	require.Len(t, hogs, 2)
	assert.Equal(t, uint(3), hogs[0].ServiceID)
	assert.Equal(t, uint(1), hogs[1].ServiceID)
}
