package inventory

import (
	"time"

	"github.com/rdmartins/drilltrack-backend/pkg/enums"
)

// ToolItem is one stock-keeping unit of drilling consumables.
// Stock is the only mutable field; everything else is fixed at seed time.
type ToolItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Model    enums.ToolModel `json:"model"`
	Category enums.Category  `json:"category"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
}

// Withdrawal is an immutable record of stock leaving inventory. ToolName and
// Model are denormalized from the item at withdrawal time so history stays
// accurate even if the item's display data changes later.
type Withdrawal struct {
	ID         string                 `json:"id"`
	ToolID     string                 `json:"tool_id"`
	ToolName   string                 `json:"tool_name"`
	Model      enums.ToolModel        `json:"model"`
	Quantity   int                    `json:"quantity"`
	Date       time.Time              `json:"date"`
	Reason     enums.WithdrawalReason `json:"reason"`
	Supervisor enums.Supervisor       `json:"supervisor"`
}

// State is the aggregate the whole application reads: the item list in seed
// order and the withdrawal log, newest first.
type State struct {
	Inventory   []ToolItem   `json:"inventory"`
	Withdrawals []Withdrawal `json:"withdrawals"`
}

// Clone returns a deep copy so callers can hold a snapshot without racing
// store mutations.
func (s State) Clone() State {
	out := State{
		Inventory:   make([]ToolItem, len(s.Inventory)),
		Withdrawals: make([]Withdrawal, len(s.Withdrawals)),
	}
	copy(out.Inventory, s.Inventory)
	copy(out.Withdrawals, s.Withdrawals)
	return out
}
