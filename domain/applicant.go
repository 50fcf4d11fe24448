package domain

import "strings"

// LoanCategory is the closed set of loan product lines banks publish
// eligibility criteria for.
type LoanCategory string

const (
	CategoryHome     LoanCategory = "home"
	CategoryPersonal LoanCategory = "personal"
	CategoryBusiness LoanCategory = "business"
)

// Valid reports whether the category is one of the known product lines.
func (c LoanCategory) Valid() bool {
	switch c {
	case CategoryHome, CategoryPersonal, CategoryBusiness:
		return true
	}
	return false
}

// CategoryFromPurpose maps a free-text loan purpose onto a category.
// Empty or unrecognized purposes resolve to the home category, the
// catalog-wide default product line.
func CategoryFromPurpose(purpose string) LoanCategory {
	p := strings.ToLower(strings.TrimSpace(purpose))
	switch {
	case p == "":
		return CategoryHome
	case strings.Contains(p, "home"), strings.Contains(p, "house"), strings.Contains(p, "property"):
		return CategoryHome
	case strings.Contains(p, "business"), strings.Contains(p, "commercial"):
		return CategoryBusiness
	default:
		return CategoryPersonal
	}
}

// Property areas serviced by banks in the catalog.
const (
	AreaUrban     = "Urban"
	AreaSemiurban = "Semiurban"
	AreaRural     = "Rural"
)

// KnownPropertyArea reports whether the area is one of the recognized
// categorical values.
func KnownPropertyArea(area string) bool {
	switch area {
	case AreaUrban, AreaSemiurban, AreaRural:
		return true
	}
	return false
}

// ApplicantProfile is the immutable input to one evaluation run.
// CreditHistory is a binary indicator: 1 means an established good history,
// 0 means none or poor. It is not a continuous score.
type ApplicantProfile struct {
	Age               int          `json:"age"`
	Income            float64      `json:"income"`
	CoapplicantIncome float64      `json:"coapplicantIncome"`
	CreditHistory     int          `json:"creditHistory"`
	SelfEmployed      bool         `json:"selfEmployed"`
	PropertyArea      string       `json:"propertyArea"`
	LoanAmount        float64      `json:"loanAmount"`
	LoanTerm          int          `json:"loanTerm"`
	LoanCategory      LoanCategory `json:"loanCategory"`
}

// TotalIncome is the household income used wherever scoring refers to income.
func (p ApplicantProfile) TotalIncome() float64 {
	return p.Income + p.CoapplicantIncome
}
