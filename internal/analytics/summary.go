package analytics

import (
	"time"

	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/pkg/enums"
)

// Summary is the dashboard payload: headline numbers plus the two chart
// series.
type Summary struct {
	TotalStock       int                     `json:"total_stock"`
	CriticalItems    []inventory.ToolItem    `json:"critical_items"`
	CriticalCount    int                     `json:"critical_count"`
	WithdrawalsToday int                     `json:"withdrawals_today"`
	StockByModel     map[enums.ToolModel]int `json:"stock_by_model"`
	DailyTotals      []DailyTotal            `json:"daily_totals"`
}

// BuildSummary assembles the dashboard view for a snapshot.
func BuildSummary(state inventory.State, now time.Time) Summary {
	critical := CriticalItems(state)
	return Summary{
		TotalStock:       TotalStock(state),
		CriticalItems:    critical,
		CriticalCount:    len(critical),
		WithdrawalsToday: WithdrawalsToday(state, now),
		StockByModel:     StockByModel(state),
		DailyTotals:      DailyWithdrawalTotals(state),
	}
}
