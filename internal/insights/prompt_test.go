package insights

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rdmartins/drilltrack-backend/internal/inventory"
	"github.com/rdmartins/drilltrack-backend/pkg/enums"
)

func TestBuildPromptIncludesStockAndRecentWithdrawals(t *testing.T) {
	state := inventory.State{
		Inventory: []inventory.ToolItem{
			{Name: "Punho T51", Stock: 15, MinStock: 5},
			{Name: "Haste T51", Stock: 25, MinStock: 8},
		},
		Withdrawals: []inventory.Withdrawal{
			{Quantity: 5, ToolName: "Punho T51", Date: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), Reason: enums.ReasonDesgasteNatural},
		},
	}

	prompt := BuildPrompt(state)

	if !strings.Contains(prompt, "Punho T51: 15 em estoque (mínimo 5)") {
		t.Fatalf("missing stock line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Haste T51: 25 em estoque (mínimo 8)") {
		t.Fatalf("missing second stock line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "5x Punho T51 em 2026-09-01T10:00:00Z por Desgaste Natural") {
		t.Fatalf("missing withdrawal line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "máximo 150 palavras") {
		t.Fatalf("missing word cap instruction:\n%s", prompt)
	}
	if !strings.Contains(prompt, "consultor especialista em perfuração de rochas") {
		t.Fatalf("missing preamble:\n%s", prompt)
	}
}

func TestBuildPromptCapsWithdrawalsAtTenMostRecent(t *testing.T) {
	state := inventory.State{}
	// Newest first, like the store keeps them.
	for i := 15; i >= 1; i-- {
		state.Withdrawals = append(state.Withdrawals, inventory.Withdrawal{
			Quantity: i,
			ToolName: fmt.Sprintf("Item %d", i),
			Date:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Reason:   enums.ReasonDesgasteNatural,
		})
	}

	prompt := BuildPrompt(state)

	if !strings.Contains(prompt, "Item 15") || !strings.Contains(prompt, "Item 6") {
		t.Fatalf("newest ten should be present:\n%s", prompt)
	}
	if strings.Contains(prompt, "Item 5 ") || strings.Contains(prompt, "Item 1 ") {
		t.Fatalf("older than the newest ten should be absent:\n%s", prompt)
	}
}

func TestBuildPromptEmptyState(t *testing.T) {
	prompt := BuildPrompt(inventory.State{})
	if !strings.Contains(prompt, "ESTOQUE ATUAL:") || !strings.Contains(prompt, "RETIRADAS RECENTES:") {
		t.Fatalf("sections must exist even when empty:\n%s", prompt)
	}
}
