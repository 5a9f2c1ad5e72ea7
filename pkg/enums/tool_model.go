package enums

import "fmt"

// ToolModel identifies the drilling-tool line an item belongs to.
type ToolModel string

const (
	ToolModelT45 ToolModel = "T45"
	ToolModelT50 ToolModel = "T50"
	ToolModelT51 ToolModel = "T51"
)

var validToolModels = []ToolModel{
	ToolModelT45,
	ToolModelT50,
	ToolModelT51,
}

// AllToolModels returns the canonical model list in display order.
func AllToolModels() []ToolModel {
	out := make([]ToolModel, len(validToolModels))
	copy(out, validToolModels)
	return out
}

// IsValid reports whether the value matches the canonical tool model enum.
func (m ToolModel) IsValid() bool {
	for _, candidate := range validToolModels {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseToolModel converts the raw string to ToolModel.
func ParseToolModel(value string) (ToolModel, error) {
	for _, candidate := range validToolModels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tool model %q", value)
}
