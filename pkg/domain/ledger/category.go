package ledger

import "strings"

// Category is a coarse spending label derived from a transaction description.
type Category string

// Categories assignable by Categorize.
const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryIncome         Category = "Income"
	CategoryOther          Category = "Other"
)

// categoryRules are evaluated in order; the first keyword hit wins.
var categoryRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"grocery", "supermarket"}, CategoryFood},
	{[]string{"gas", "fuel"}, CategoryTransportation},
	{[]string{"salary", "payroll"}, CategoryIncome},
}

// Categorize maps a free-text description to a Category using
// case-insensitive substring matching. It is pure and deterministic;
// entries are categorized exactly once, at creation.
func Categorize(description string) Category {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}
