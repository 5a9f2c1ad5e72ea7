package enums

import "fmt"

// Category is the part category of a stock item. Labels follow the
// site's Portuguese vocabulary.
type Category string

const (
	CategoryPunho Category = "Punho"
	CategoryHaste Category = "Haste"
	CategoryBit   Category = "Bit"
)

var validCategories = []Category{
	CategoryPunho,
	CategoryHaste,
	CategoryBit,
}

// IsValid reports whether the value matches the canonical category enum.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts the raw string to Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
