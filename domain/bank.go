package domain

// RateRange is a bank's published annual interest rate band in percent.
type RateRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the rate used for cost estimates.
func (r RateRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// BankCriteria is one bank's eligibility thresholds for a single loan
// category. MaxLTVRatio, ProcessingTime and RequiredDocuments are display
// metadata and take no part in scoring.
type BankCriteria struct {
	MinAge              int       `json:"minAge"`
	MaxAge              int       `json:"maxAge"`
	MinIncome           float64   `json:"minIncome"`
	MinCreditScore      int       `json:"minCreditScore"`
	AcceptsNoCredit     bool      `json:"acceptsNoCredit"`
	MinLoanAmount       float64   `json:"minLoanAmount"`
	MaxLoanAmount       float64   `json:"maxLoanAmount"`
	AcceptsSelfEmployed bool      `json:"acceptsSelfEmployed"`
	PropertyAreas       []string  `json:"propertyAreas"`
	InterestRateRange   RateRange `json:"interestRateRange"`
	MaxEMIRatio         float64   `json:"maxEMIRatio"`
	MaxLTVRatio         float64   `json:"maxLTVRatio"`
	ProcessingTime      string    `json:"processingTime"`
	RequiredDocuments   []string  `json:"requiredDocuments"`
}

// ServesArea reports whether the bank services the given property area under
// these criteria.
func (c BankCriteria) ServesArea(area string) bool {
	for _, a := range c.PropertyAreas {
		if a == area {
			return true
		}
	}
	return false
}

// Bank is a catalog entity. Banks are loaded once at startup and shared
// read-only across evaluations.
type Bank struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Established     int      `json:"established"`
	Headquarters    string   `json:"headquarters"`
	Website         string   `json:"website"`
	CustomerCare    string   `json:"customerCare"`
	Branches        int      `json:"branches"`
	Rating          float64  `json:"rating"`
	SpecialPrograms []string `json:"specialPrograms"`
	Strengths       []string `json:"strengths"`
	DigitalServices []string `json:"digitalServices"`

	HomeLoanCriteria     BankCriteria `json:"homeLoanCriteria"`
	PersonalLoanCriteria BankCriteria `json:"personalLoanCriteria"`
	BusinessLoanCriteria BankCriteria `json:"businessLoanCriteria"`
}

// CriteriaFor selects the criteria block for the given loan category. It is
// total over LoanCategory: an unknown category resolves to the home loan
// block, the bank's default product line.
func (b *Bank) CriteriaFor(category LoanCategory) BankCriteria {
	switch category {
	case CategoryPersonal:
		return b.PersonalLoanCriteria
	case CategoryBusiness:
		return b.BusinessLoanCriteria
	case CategoryHome:
		return b.HomeLoanCriteria
	default:
		return b.HomeLoanCriteria
	}
}
