package repository

import "github.com/sooryathamilselvan/LoanPrediction/domain"

// defaultBanks is the static reference catalog. Amounts are in rupees,
// incomes are monthly, rates are annual percentages.
func defaultBanks() []*domain.Bank {
	homeDocs := []string{"Identity proof", "Address proof", "Income proof", "Property documents"}
	personalDocs := []string{"Identity proof", "Address proof", "Salary slips", "Bank statements"}
	businessDocs := []string{"Identity proof", "Business registration", "ITR (2 years)", "Bank statements"}
	allAreas := []string{domain.AreaUrban, domain.AreaSemiurban, domain.AreaRural}
	urbanSemi := []string{domain.AreaUrban, domain.AreaSemiurban}

	return []*domain.Bank{
		{
			ID:              "sbi",
			Name:            "State Bank of India",
			Type:            "Public Sector",
			Established:     1955,
			Headquarters:    "Mumbai, Maharashtra",
			Website:         "https://sbi.co.in",
			CustomerCare:    "1800-1234",
			Branches:        22405,
			Rating:          4.1,
			SpecialPrograms: []string{"SBI MaxGain", "Privilege Home Loan for Government Employees", "Flexipay Home Loan"},
			Strengths:       []string{"Largest branch network", "Low processing fees", "Rural reach"},
			DigitalServices: []string{"YONO app", "Internet banking", "Doorstep banking"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 18, MaxAge: 70, MinIncome: 25000, MinCreditScore: 650,
				AcceptsNoCredit: false, MinLoanAmount: 300000, MaxLoanAmount: 100000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 8.4, Max: 9.15}, MaxEMIRatio: 55,
				MaxLTVRatio: 90, ProcessingTime: "7-10 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 58, MinIncome: 15000, MinCreditScore: 700,
				AcceptsNoCredit: false, MinLoanAmount: 25000, MaxLoanAmount: 2000000,
				AcceptsSelfEmployed: false, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 11.0, Max: 14.0}, MaxEMIRatio: 45,
				MaxLTVRatio: 0, ProcessingTime: "2-3 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 40000, MinCreditScore: 680,
				AcceptsNoCredit: false, MinLoanAmount: 500000, MaxLoanAmount: 50000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 9.1, Max: 13.5}, MaxEMIRatio: 50,
				MaxLTVRatio: 0, ProcessingTime: "10-15 days", RequiredDocuments: businessDocs,
			},
		},
		{
			ID:              "hdfc",
			Name:            "HDFC Bank",
			Type:            "Private Sector",
			Established:     1994,
			Headquarters:    "Mumbai, Maharashtra",
			Website:         "https://hdfcbank.com",
			CustomerCare:    "1800-202-6161",
			Branches:        8344,
			Rating:          4.4,
			SpecialPrograms: []string{"Reach Home Loans for informal income", "Women Power special rates"},
			Strengths:       []string{"Fast processing", "Strong digital platform", "Premium service"},
			DigitalServices: []string{"PayZapp", "NetBanking", "SmartBUY"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 30000, MinCreditScore: 700,
				AcceptsNoCredit: false, MinLoanAmount: 500000, MaxLoanAmount: 100000000,
				AcceptsSelfEmployed: true, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 8.5, Max: 9.4}, MaxEMIRatio: 50,
				MaxLTVRatio: 80, ProcessingTime: "5-7 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 60, MinIncome: 25000, MinCreditScore: 720,
				AcceptsNoCredit: false, MinLoanAmount: 50000, MaxLoanAmount: 4000000,
				AcceptsSelfEmployed: false, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 10.5, Max: 15.5}, MaxEMIRatio: 40,
				MaxLTVRatio: 0, ProcessingTime: "1-2 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 23, MaxAge: 65, MinIncome: 50000, MinCreditScore: 700,
				AcceptsNoCredit: false, MinLoanAmount: 1000000, MaxLoanAmount: 75000000,
				AcceptsSelfEmployed: true, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 10.0, Max: 14.5}, MaxEMIRatio: 50,
				MaxLTVRatio: 0, ProcessingTime: "7-10 days", RequiredDocuments: businessDocs,
			},
		},
		{
			ID:              "icici",
			Name:            "ICICI Bank",
			Type:            "Private Sector",
			Established:     1994,
			Headquarters:    "Mumbai, Maharashtra",
			Website:         "https://icicibank.com",
			CustomerCare:    "1800-1080",
			Branches:        5900,
			Rating:          4.3,
			SpecialPrograms: []string{"Instant home loan for pre-approved customers", "Step Up EMI"},
			Strengths:       []string{"Digital-first onboarding", "Quick disbursal", "Flexible tenures"},
			DigitalServices: []string{"iMobile Pay", "Internet banking", "WhatsApp banking"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 30000, MinCreditScore: 700,
				AcceptsNoCredit: false, MinLoanAmount: 500000, MaxLoanAmount: 80000000,
				AcceptsSelfEmployed: true, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 8.6, Max: 9.5}, MaxEMIRatio: 50,
				MaxLTVRatio: 85, ProcessingTime: "5-7 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 23, MaxAge: 58, MinIncome: 30000, MinCreditScore: 710,
				AcceptsNoCredit: false, MinLoanAmount: 50000, MaxLoanAmount: 2500000,
				AcceptsSelfEmployed: false, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 10.75, Max: 16.0}, MaxEMIRatio: 40,
				MaxLTVRatio: 0, ProcessingTime: "1-3 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 25, MaxAge: 65, MinIncome: 50000, MinCreditScore: 700,
				AcceptsNoCredit: false, MinLoanAmount: 1000000, MaxLoanAmount: 60000000,
				AcceptsSelfEmployed: true, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 10.25, Max: 14.0}, MaxEMIRatio: 45,
				MaxLTVRatio: 0, ProcessingTime: "7-12 days", RequiredDocuments: businessDocs,
			},
		},
		{
			ID:              "axis",
			Name:            "Axis Bank",
			Type:            "Private Sector",
			Established:     1993,
			Headquarters:    "Mumbai, Maharashtra",
			Website:         "https://axisbank.com",
			CustomerCare:    "1860-419-5555",
			Branches:        4900,
			Rating:          4.2,
			SpecialPrograms: []string{"Shubh Aarambh with EMI waivers", "Asha Home Loan for affordable housing"},
			Strengths:       []string{"EMI waiver schemes", "Affordable housing focus", "Balance transfer offers"},
			DigitalServices: []string{"Axis Mobile", "Internet banking", "Open by Axis"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 25000, MinCreditScore: 680,
				AcceptsNoCredit: false, MinLoanAmount: 300000, MaxLoanAmount: 50000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 8.7, Max: 9.6}, MaxEMIRatio: 50,
				MaxLTVRatio: 85, ProcessingTime: "6-8 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 60, MinIncome: 15000, MinCreditScore: 700,
				AcceptsNoCredit: false, MinLoanAmount: 50000, MaxLoanAmount: 1500000,
				AcceptsSelfEmployed: false, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 10.49, Max: 15.75}, MaxEMIRatio: 45,
				MaxLTVRatio: 0, ProcessingTime: "2-4 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 40000, MinCreditScore: 690,
				AcceptsNoCredit: false, MinLoanAmount: 500000, MaxLoanAmount: 50000000,
				AcceptsSelfEmployed: true, PropertyAreas: urbanSemi,
				InterestRateRange: domain.RateRange{Min: 10.5, Max: 14.25}, MaxEMIRatio: 50,
				MaxLTVRatio: 0, ProcessingTime: "8-12 days", RequiredDocuments: businessDocs,
			},
		},
		{
			ID:              "pnb",
			Name:            "Punjab National Bank",
			Type:            "Public Sector",
			Established:     1894,
			Headquarters:    "New Delhi",
			Website:         "https://pnbindia.in",
			CustomerCare:    "1800-180-2222",
			Branches:        10000,
			Rating:          3.9,
			SpecialPrograms: []string{"PNB Gen-Next Housing Finance for young earners", "Pride Housing Loan for government employees"},
			Strengths:       []string{"Wide rural presence", "Competitive public sector rates", "Lenient income norms"},
			DigitalServices: []string{"PNB ONE", "Internet banking"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 18, MaxAge: 70, MinIncome: 20000, MinCreditScore: 630,
				AcceptsNoCredit: true, MinLoanAmount: 200000, MaxLoanAmount: 50000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 8.45, Max: 9.25}, MaxEMIRatio: 60,
				MaxLTVRatio: 90, ProcessingTime: "10-14 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 58, MinIncome: 12000, MinCreditScore: 650,
				AcceptsNoCredit: true, MinLoanAmount: 25000, MaxLoanAmount: 1000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 11.4, Max: 15.0}, MaxEMIRatio: 50,
				MaxLTVRatio: 0, ProcessingTime: "3-5 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 30000, MinCreditScore: 660,
				AcceptsNoCredit: true, MinLoanAmount: 300000, MaxLoanAmount: 30000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 9.25, Max: 13.0}, MaxEMIRatio: 55,
				MaxLTVRatio: 0, ProcessingTime: "12-18 days", RequiredDocuments: businessDocs,
			},
		},
		{
			ID:              "bob",
			Name:            "Bank of Baroda",
			Type:            "Public Sector",
			Established:     1908,
			Headquarters:    "Vadodara, Gujarat",
			Website:         "https://bankofbaroda.in",
			CustomerCare:    "1800-258-4455",
			Branches:        8200,
			Rating:          4.0,
			SpecialPrograms: []string{"Baroda Home Loan Advantage with linked savings", "Pre-approved takeover offers"},
			Strengths:       []string{"Low rates for high credit scores", "No hidden charges", "Semi-urban coverage"},
			DigitalServices: []string{"bob World", "Internet banking"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 70, MinIncome: 22000, MinCreditScore: 650,
				AcceptsNoCredit: true, MinLoanAmount: 200000, MaxLoanAmount: 100000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 8.4, Max: 9.1}, MaxEMIRatio: 55,
				MaxLTVRatio: 90, ProcessingTime: "8-12 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 60, MinIncome: 15000, MinCreditScore: 680,
				AcceptsNoCredit: false, MinLoanAmount: 50000, MaxLoanAmount: 1000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 11.05, Max: 14.75}, MaxEMIRatio: 50,
				MaxLTVRatio: 0, ProcessingTime: "3-5 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 35000, MinCreditScore: 670,
				AcceptsNoCredit: false, MinLoanAmount: 500000, MaxLoanAmount: 40000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 9.5, Max: 13.25}, MaxEMIRatio: 50,
				MaxLTVRatio: 0, ProcessingTime: "10-15 days", RequiredDocuments: businessDocs,
			},
		},
		{
			ID:              "kotak",
			Name:            "Kotak Mahindra Bank",
			Type:            "Private Sector",
			Established:     2003,
			Headquarters:    "Mumbai, Maharashtra",
			Website:         "https://kotak.com",
			CustomerCare:    "1860-266-2666",
			Branches:        1780,
			Rating:          4.2,
			SpecialPrograms: []string{"Digital sanction in 24 hours", "Balance transfer with top-up"},
			Strengths:       []string{"Low starting rates", "Fully digital journey", "Urban premium service"},
			DigitalServices: []string{"Kotak Mobile Banking", "811 digital account"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 35000, MinCreditScore: 720,
				AcceptsNoCredit: false, MinLoanAmount: 1000000, MaxLoanAmount: 75000000,
				AcceptsSelfEmployed: true, PropertyAreas: []string{domain.AreaUrban},
				InterestRateRange: domain.RateRange{Min: 8.65, Max: 9.3}, MaxEMIRatio: 45,
				MaxLTVRatio: 80, ProcessingTime: "4-6 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 22, MaxAge: 58, MinIncome: 30000, MinCreditScore: 730,
				AcceptsNoCredit: false, MinLoanAmount: 100000, MaxLoanAmount: 3500000,
				AcceptsSelfEmployed: false, PropertyAreas: []string{domain.AreaUrban},
				InterestRateRange: domain.RateRange{Min: 10.99, Max: 16.0}, MaxEMIRatio: 40,
				MaxLTVRatio: 0, ProcessingTime: "1-2 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 25, MaxAge: 65, MinIncome: 60000, MinCreditScore: 720,
				AcceptsNoCredit: false, MinLoanAmount: 1500000, MaxLoanAmount: 50000000,
				AcceptsSelfEmployed: true, PropertyAreas: []string{domain.AreaUrban},
				InterestRateRange: domain.RateRange{Min: 10.5, Max: 15.0}, MaxEMIRatio: 45,
				MaxLTVRatio: 0, ProcessingTime: "6-10 days", RequiredDocuments: businessDocs,
			},
		},
		{
			ID:              "canara",
			Name:            "Canara Bank",
			Type:            "Public Sector",
			Established:     1906,
			Headquarters:    "Bengaluru, Karnataka",
			Website:         "https://canarabank.com",
			CustomerCare:    "1800-425-0018",
			Branches:        9500,
			Rating:          3.8,
			SpecialPrograms: []string{"Housing-cum-Solar loan", "Canara Kuteera for rural housing"},
			Strengths:       []string{"Rural and semi-urban focus", "Flexible eligibility", "Agricultural tie-ins"},
			DigitalServices: []string{"Canara ai1", "Internet banking"},
			HomeLoanCriteria: domain.BankCriteria{
				MinAge: 18, MaxAge: 70, MinIncome: 18000, MinCreditScore: 620,
				AcceptsNoCredit: true, MinLoanAmount: 100000, MaxLoanAmount: 40000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 8.5, Max: 9.4}, MaxEMIRatio: 60,
				MaxLTVRatio: 90, ProcessingTime: "10-15 days", RequiredDocuments: homeDocs,
			},
			PersonalLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 60, MinIncome: 10000, MinCreditScore: 640,
				AcceptsNoCredit: true, MinLoanAmount: 20000, MaxLoanAmount: 800000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 11.25, Max: 14.9}, MaxEMIRatio: 50,
				MaxLTVRatio: 0, ProcessingTime: "4-6 days", RequiredDocuments: personalDocs,
			},
			BusinessLoanCriteria: domain.BankCriteria{
				MinAge: 21, MaxAge: 65, MinIncome: 25000, MinCreditScore: 650,
				AcceptsNoCredit: true, MinLoanAmount: 200000, MaxLoanAmount: 25000000,
				AcceptsSelfEmployed: true, PropertyAreas: allAreas,
				InterestRateRange: domain.RateRange{Min: 9.75, Max: 13.5}, MaxEMIRatio: 55,
				MaxLTVRatio: 0, ProcessingTime: "12-20 days", RequiredDocuments: businessDocs,
			},
		},
	}
}
