package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/rdmartins/drilltrack-backend/internal/inventory"
)

// recentWindow is how many of the newest withdrawals make it into the prompt.
const recentWindow = 10

// BuildPrompt renders the analysis request the way the drilling consultants
// expect it: current stock per item, the most recent withdrawals, and the
// three questions, all in Portuguese.
func BuildPrompt(state inventory.State) string {
	stockLines := make([]string, 0, len(state.Inventory))
	for _, item := range state.Inventory {
		stockLines = append(stockLines, fmt.Sprintf("%s: %d em estoque (mínimo %d)", item.Name, item.Stock, item.MinStock))
	}

	recent := state.Withdrawals
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	withdrawalLines := make([]string, 0, len(recent))
	for _, w := range recent {
		withdrawalLines = append(withdrawalLines, fmt.Sprintf("%dx %s em %s por %s", w.Quantity, w.ToolName, w.Date.Format(time.RFC3339), w.Reason))
	}

	var b strings.Builder
	b.WriteString("Como um consultor especialista em perfuração de rochas, analise o seguinte estoque:\n\n")
	b.WriteString("ESTOQUE ATUAL:\n")
	b.WriteString(strings.Join(stockLines, "\n"))
	b.WriteString("\n\nRETIRADAS RECENTES:\n")
	b.WriteString(strings.Join(withdrawalLines, "\n"))
	b.WriteString("\n\nPor favor, forneça uma análise curta (máximo 150 palavras) em Português sobre:\n")
	b.WriteString("1. Quais ferramentas estão em nível crítico.\n")
	b.WriteString("2. Padrões de consumo anormais detectados.\n")
	b.WriteString("3. Recomendações para o próximo pedido de compra.\n")
	return b.String()
}
