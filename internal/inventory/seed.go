package inventory

import "github.com/rdmartins/drilltrack-backend/pkg/enums"

// SeedItems returns the fixed opening inventory: eleven items across the
// three tool lines. The store is seeded with this list once at startup.
func SeedItems() []ToolItem {
	return []ToolItem{
		// T51
		{ID: "t51-p", Name: "Punho T51", Model: enums.ToolModelT51, Category: enums.CategoryPunho, Stock: 15, MinStock: 5},
		{ID: "t51-h", Name: "Haste T51", Model: enums.ToolModelT51, Category: enums.CategoryHaste, Stock: 25, MinStock: 8},
		{ID: "t51-b35", Name: "Bit 3,5'' T51", Model: enums.ToolModelT51, Category: enums.CategoryBit, Stock: 40, MinStock: 10},
		{ID: "t51-b45", Name: "Bit 4,5'' T51", Model: enums.ToolModelT51, Category: enums.CategoryBit, Stock: 35, MinStock: 10},
		// T50
		{ID: "t50-p", Name: "Punho T50", Model: enums.ToolModelT50, Category: enums.CategoryPunho, Stock: 12, MinStock: 4},
		{ID: "t50-h", Name: "Haste T50", Model: enums.ToolModelT50, Category: enums.CategoryHaste, Stock: 20, MinStock: 6},
		{ID: "t50-b45", Name: "Bit 4,5'' T50", Model: enums.ToolModelT50, Category: enums.CategoryBit, Stock: 30, MinStock: 8},
		// T45
		{ID: "t45-p", Name: "Punho T45", Model: enums.ToolModelT45, Category: enums.CategoryPunho, Stock: 18, MinStock: 5},
		{ID: "t45-h", Name: "Haste T45", Model: enums.ToolModelT45, Category: enums.CategoryHaste, Stock: 30, MinStock: 10},
		{ID: "t45-b35", Name: "Bit 3,5'' T45", Model: enums.ToolModelT45, Category: enums.CategoryBit, Stock: 45, MinStock: 15},
		{ID: "t45-b45", Name: "Bit 4,5'' T45", Model: enums.ToolModelT45, Category: enums.CategoryBit, Stock: 38, MinStock: 12},
	}
}
