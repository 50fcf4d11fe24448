package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
	"github.com/sooryathamilselvan/LoanPrediction/service"
)

// AdvisorHandler serves the generative advisory endpoints. Both endpoints
// consume engine output only; the engine itself never depends on them.
type AdvisorHandler struct {
	recommendations *service.RecommendationService
	advisor         *service.AdvisorService
	logger          *zap.Logger
}

func NewAdvisorHandler(recommendations *service.RecommendationService, advisor *service.AdvisorService, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		recommendations: recommendations,
		advisor:         advisor,
		logger:          logger,
	}
}

// Insights handles POST /loan/insights: evaluate the profile, then summarize
// the result as personalized advice.
func (h *AdvisorHandler) Insights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile := req.profile()
	if err := service.ValidateProfile(profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.recommendations.Evaluate(profile)
	insights := h.advisor.GenerateInsights(r.Context(), result)

	writeJSON(w, h.logger, map[string]string{"insights": insights})
}

type chatRequest struct {
	Question string `json:"question"`
	Context  struct {
		Income            float64 `json:"income"`
		CoapplicantIncome float64 `json:"coapplicantIncome"`
		CreditHistory     int     `json:"creditHistory"`
		SelfEmployed      bool    `json:"selfEmployed"`
	} `json:"context"`
}

// Chat handles POST /loan/advisor. The applicant context is optional; only
// the question is required.
func (h *AdvisorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	profile := domain.ApplicantProfile{
		Income:            req.Context.Income,
		CoapplicantIncome: req.Context.CoapplicantIncome,
		CreditHistory:     req.Context.CreditHistory,
		SelfEmployed:      req.Context.SelfEmployed,
	}

	answer, err := h.advisor.Chat(r.Context(), req.Question, profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, map[string]string{"response": answer})
}
