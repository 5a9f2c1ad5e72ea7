// Package analytics derives dashboard views from an inventory snapshot.
// Every function is pure and total: no errors, zero values for empty input.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/pkg/enums"
)

// AlertLevel classifies an item's stock against its reorder threshold.
type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
	AlertOk       AlertLevel = "ok"
)

const dayLayout = "2006-01-02"

// warningFactor is the band above minStock that still deserves attention.
var warningFactor = decimal.NewFromFloat(1.5)

// TotalStock sums stock across the whole inventory.
func TotalStock(state inventory.State) int {
	total := 0
	for _, item := range state.Inventory {
		total += item.Stock
	}
	return total
}

// CriticalItems returns the items at or below their reorder threshold,
// preserving input order.
func CriticalItems(state inventory.State) []inventory.ToolItem {
	critical := make([]inventory.ToolItem, 0)
	for _, item := range state.Inventory {
		if item.Stock <= item.MinStock {
			critical = append(critical, item)
		}
	}
	return critical
}

// AlertLevelFor classifies a single item. Critical wins ties: an item at
// exactly minStock is critical, and the warning band runs up to and
// including minStock × 1.5, computed exactly.
func AlertLevelFor(item inventory.ToolItem) AlertLevel {
	if item.Stock <= item.MinStock {
		return AlertCritical
	}
	warningCeiling := decimal.NewFromInt(int64(item.MinStock)).Mul(warningFactor)
	if decimal.NewFromInt(int64(item.Stock)).LessThanOrEqual(warningCeiling) {
		return AlertWarning
	}
	return AlertOk
}

// StockByModel sums stock per tool model. All three models are present in
// the result even when no item carries them.
func StockByModel(state inventory.State) map[enums.ToolModel]int {
	totals := make(map[enums.ToolModel]int, 3)
	for _, model := range enums.AllToolModels() {
		totals[model] = 0
	}
	for _, item := range state.Inventory {
		totals[item.Model] += item.Stock
	}
	return totals
}

// WithdrawalsToday sums the quantities withdrawn on the same calendar day
// as now, in now's location.
func WithdrawalsToday(state inventory.State, now time.Time) int {
	today := now.Format(dayLayout)
	total := 0
	for _, w := range state.Withdrawals {
		if w.Date.In(now.Location()).Format(dayLayout) == today {
			total += w.Quantity
		}
	}
	return total
}

// DailyTotal is one bar of the withdrawal trend chart.
type DailyTotal struct {
	Day   string `json:"day"`
	Total int    `json:"total"`
}

// DailyWithdrawalTotals groups withdrawals by calendar day and returns the
// seven most recent distinct days present in the data, oldest first. Days
// with no withdrawals are simply absent.
func DailyWithdrawalTotals(state inventory.State) []DailyTotal {
	byDay := make(map[string]int)
	for _, w := range state.Withdrawals {
		day := w.Date.UTC().Format(dayLayout)
		byDay[day] += w.Quantity
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) > 7 {
		days = days[len(days)-7:]
	}

	out := make([]DailyTotal, 0, len(days))
	for _, day := range days {
		out = append(out, DailyTotal{Day: day, Total: byDay[day]})
	}
	return out
}
