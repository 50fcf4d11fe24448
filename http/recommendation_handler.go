package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
	"github.com/sooryathamilselvan/LoanPrediction/service"
)

// RecommendationHandler serves the full evaluation pipeline over JSON.
type RecommendationHandler struct {
	service *service.RecommendationService
	logger  *zap.Logger
}

func NewRecommendationHandler(svc *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{service: svc, logger: logger}
}

type recommendationRequest struct {
	Age               int     `json:"age"`
	Income            float64 `json:"income"`
	CoapplicantIncome float64 `json:"coapplicantIncome"`
	CreditHistory     int     `json:"creditHistory"`
	SelfEmployed      bool    `json:"selfEmployed"`
	PropertyArea      string  `json:"propertyArea"`
	LoanAmount        float64 `json:"loanAmount"`
	LoanTerm          int     `json:"loanTerm"`
	LoanCategory      string  `json:"loanCategory"`
	LoanPurpose       string  `json:"loanPurpose"`
}

// profile maps the request onto an applicant profile. An explicit valid
// category wins; otherwise the free-text purpose decides, defaulting to home.
func (req recommendationRequest) profile() domain.ApplicantProfile {
	category := domain.LoanCategory(req.LoanCategory)
	if !category.Valid() {
		category = domain.CategoryFromPurpose(req.LoanPurpose)
	}
	return domain.ApplicantProfile{
		Age:               req.Age,
		Income:            req.Income,
		CoapplicantIncome: req.CoapplicantIncome,
		CreditHistory:     req.CreditHistory,
		SelfEmployed:      req.SelfEmployed,
		PropertyArea:      req.PropertyArea,
		LoanAmount:        req.LoanAmount,
		LoanTerm:          req.LoanTerm,
		LoanCategory:      category,
	}
}

type recommendationView struct {
	BankID                string                 `json:"bankId"`
	BankName              string                 `json:"bankName"`
	BankType              string                 `json:"bankType"`
	MatchScore            int                    `json:"matchScore"`
	EligibilityStatus     domain.EligibilityTier `json:"eligibilityStatus"`
	Reasons               []string               `json:"reasons"`
	Improvements          []string               `json:"improvements"`
	EstimatedInterestRate float64                `json:"estimatedInterestRate"`
	EstimatedEMI          float64                `json:"estimatedEMI"`
	BankDetails           bankDetailsView        `json:"bankDetails"`
}

type bankDetailsView struct {
	Established     int      `json:"established"`
	Headquarters    string   `json:"headquarters"`
	Website         string   `json:"website"`
	CustomerCare    string   `json:"customerCare"`
	Branches        int      `json:"branches"`
	Rating          float64  `json:"rating"`
	SpecialPrograms []string `json:"specialPrograms"`
	Strengths       []string `json:"strengths"`
	DigitalServices []string `json:"digitalServices"`
}

type groupedRecommendations struct {
	All                   []recommendationView `json:"all"`
	HighlyEligible        []recommendationView `json:"highlyEligible"`
	Eligible              []recommendationView `json:"eligible"`
	ConditionallyEligible []recommendationView `json:"conditionallyEligible"`
	NotEligible           []recommendationView `json:"notEligible"`
}

type recommendationResponse struct {
	UserProfile            domain.ApplicantProfile `json:"userProfile"`
	Summary                domain.TierSummary      `json:"summary"`
	Metrics                domain.ApplicantMetrics `json:"metrics"`
	Recommendations        groupedRecommendations  `json:"recommendations"`
	ImprovementSuggestions []string                `json:"improvementSuggestions"`
}

// Recommend handles POST /loan/recommendations.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("decoding recommendation request failed", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile := req.profile()
	if err := service.ValidateProfile(profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.service.Evaluate(profile)
	writeJSON(w, h.logger, buildRecommendationResponse(result))
}

func buildRecommendationResponse(result domain.EvaluationResult) recommendationResponse {
	grouped := groupedRecommendations{
		All: make([]recommendationView, 0, len(result.Recommendations)),
	}
	for _, rec := range result.Recommendations {
		view := toRecommendationView(rec)
		grouped.All = append(grouped.All, view)
		switch rec.EligibilityTier {
		case domain.TierHighlyEligible:
			grouped.HighlyEligible = append(grouped.HighlyEligible, view)
		case domain.TierEligible:
			grouped.Eligible = append(grouped.Eligible, view)
		case domain.TierConditionallyEligible:
			grouped.ConditionallyEligible = append(grouped.ConditionallyEligible, view)
		case domain.TierNotEligible:
			grouped.NotEligible = append(grouped.NotEligible, view)
		}
	}

	return recommendationResponse{
		UserProfile:            result.Profile,
		Summary:                result.Summary,
		Metrics:                result.Metrics,
		Recommendations:        grouped,
		ImprovementSuggestions: result.Suggestions,
	}
}

func toRecommendationView(rec domain.Recommendation) recommendationView {
	return recommendationView{
		BankID:                rec.Bank.ID,
		BankName:              rec.Bank.Name,
		BankType:              rec.Bank.Type,
		MatchScore:            rec.MatchScore,
		EligibilityStatus:     rec.EligibilityTier,
		Reasons:               domain.Messages(rec.Reasons),
		Improvements:          domain.Messages(rec.Improvements),
		EstimatedInterestRate: rec.EstimatedInterestRate,
		EstimatedEMI:          rec.EstimatedEMI,
		BankDetails: bankDetailsView{
			Established:     rec.Bank.Established,
			Headquarters:    rec.Bank.Headquarters,
			Website:         rec.Bank.Website,
			CustomerCare:    rec.Bank.CustomerCare,
			Branches:        rec.Bank.Branches,
			Rating:          rec.Bank.Rating,
			SpecialPrograms: rec.Bank.SpecialPrograms,
			Strengths:       rec.Bank.Strengths,
			DigitalServices: rec.Bank.DigitalServices,
		},
	}
}

// writeJSON encodes into a buffer first so a failed encode never writes a
// partial 200 response.
func writeJSON(w http.ResponseWriter, logger *zap.Logger, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Error("encoding response failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("writing response failed", zap.Error(err))
	}
}
