// Package courtdir models the court directory: the full set of courts known
// to CourtListener, partitioned by jurisdiction category and indexed by state
package courtdir

import "strings"

// Category is the coarse jurisdiction classification of a court
type Category string

// The closed category set. Unknown jurisdiction codes bucket into CategorySpecial,
// they are never dropped
const (
	CategoryFederal           Category = "federal"
	CategoryState             Category = "state"
	CategoryFederalBankruptcy Category = "federal-bankruptcy"
	CategoryMilitary          Category = "military"
	CategorySpecial           Category = "special"
)

// Categories returns the fixed category order used for deterministic iteration
func Categories() []Category {
	return []Category{
		CategoryFederal,
		CategoryState,
		CategoryFederalBankruptcy,
		CategoryMilitary,
		CategorySpecial,
	}
}

// ParseCategory maps a category string back to a Category, CategorySpecial otherwise
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFederal:
		return CategoryFederal
	case CategoryState:
		return CategoryState
	case CategoryFederalBankruptcy:
		return CategoryFederalBankruptcy
	case CategoryMilitary:
		return CategoryMilitary
	default:
		return CategorySpecial
	}
}

// CategoryFromJurisdiction maps a raw CourtListener jurisdiction code to a Category.
// F/FD federal appellate and district, FB/FBP bankruptcy, S/SA/ST/SS the state
// tiers, MA/MT military appellate and trial. Everything else, including codes
// this build has never seen, lands in CategorySpecial
func CategoryFromJurisdiction(code string) Category {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "F", "FD":
		return CategoryFederal
	case "FB", "FBP":
		return CategoryFederalBankruptcy
	case "S", "SA", "ST", "SS":
		return CategoryState
	case "MA", "MT":
		return CategoryMilitary
	default:
		return CategorySpecial
	}
}

// Record is one court known to the external system
type Record struct {
	ID        string   `json:"id"`
	ShortName string   `json:"short_name,omitempty"`
	FullName  string   `json:"full_name,omitempty"`
	Category  Category `json:"jurisdiction_category"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
}

// DisplayName falls back full name -> short name -> id
func (r Record) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.ID
}
