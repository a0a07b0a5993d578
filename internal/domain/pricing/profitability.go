package pricing

import (
	"sort"

	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

// ===============================
// Profitability
// ===============================

type Quadrant string

const (
	QuadrantStar     Quadrant = "star"
	QuadrantQuestion Quadrant = "question"
	QuadrantCashCow  Quadrant = "cash_cow"
	QuadrantDog      Quadrant = "dog"
)

const (
	netMarginThreshold = 30.0
	usageThreshold     = 5
	// Acima deste tempo, serviço com retorno/hora abaixo do custo-hora
	// vira "devorador de agenda"
	scheduleHogMinutes = 120
)

type Record struct {
	ServiceID   uint   `json:"service_id"`
	ServiceName string `json:"service_name"`
	Category    string `json:"category"`

	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	GrossMargin float64 `json:"gross_margin"`

	MarginPercent    float64 `json:"margin_percent"`
	TimeHours        float64 `json:"time_hours"`
	LaborCost        float64 `json:"labor_cost"`
	NetProfit        float64 `json:"net_profit"`
	NetMarginPercent float64 `json:"net_margin_percent"`
	ProfitPerHour    float64 `json:"profit_per_hour"`

	UsageCount int `json:"usage_count"`

	Quadrant    Quadrant `json:"quadrant"`
	ScheduleHog bool     `json:"schedule_hog"`

	MissingItemIDs []uint `json:"missing_item_ids,omitempty"`
}

// Compute deriva as métricas de lucratividade de um serviço. O preço de
// referência é sempre o do porte médio; linha ausente vale 0 (Sob Consulta).
// Todas as divisões são protegidas: divisor zero devolve 0, nunca NaN/Inf.
func Compute(svc models.Service, priceBySize map[Size]float64, cost CostBreakdown, hourlyRate float64, usageCount int) Record {
	price := priceBySize[ReferenceSize]

	rec := Record{
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		Category:       svc.Category,
		Price:          price,
		Cost:           cost.Total,
		UsageCount:     usageCount,
		MissingItemIDs: cost.MissingItemIDs,
	}

	rec.GrossMargin = price - cost.Total
	if price != 0 {
		rec.MarginPercent = rec.GrossMargin / price * 100
	}

	rec.TimeHours = float64(svc.StandardTimeMin) / 60
	rec.LaborCost = rec.TimeHours * hourlyRate
	rec.NetProfit = rec.GrossMargin - rec.LaborCost

	if price != 0 {
		rec.NetMarginPercent = rec.NetProfit / price * 100
	}
	if rec.TimeHours != 0 {
		rec.ProfitPerHour = rec.NetProfit / rec.TimeHours
	}

	rec.Quadrant = classify(rec.NetMarginPercent, usageCount)
	rec.ScheduleHog = rec.ProfitPerHour < hourlyRate && svc.StandardTimeMin > scheduleHogMinutes

	return rec
}

// Quadrantes mutuamente exclusivos, avaliados nesta ordem.
// Ambos os limiares usam > estrito: margem exatamente 30 ou uso
// exatamente 5 não promovem o serviço.
func classify(netMarginPercent float64, usageCount int) Quadrant {
	highMargin := netMarginPercent > netMarginThreshold
	highUsage := usageCount > usageThreshold

	switch {
	case highMargin && highUsage:
		return QuadrantStar
	case highMargin:
		return QuadrantQuestion
	case highUsage:
		return QuadrantCashCow
	default:
		return QuadrantDog
	}
}

// ===============================
// Report Views
// ===============================

// RankByNetProfit ordena o ranking principal: maior lucro líquido primeiro.
func RankByNetProfit(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].NetProfit > records[j].NetProfit
	})
}

// TopPerformers devolve os serviços por lucro/hora decrescente.
func TopPerformers(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProfitPerHour > out[j].ProfitPerHour
	})
	return out
}

// ScheduleHogs devolve só os devoradores de agenda, do pior lucro/hora
// para o melhor.
func ScheduleHogs(records []Record) []Record {
	var out []Record
	for _, r := range records {
		if r.ScheduleHog {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProfitPerHour < out[j].ProfitPerHour
	})
	return out
}
