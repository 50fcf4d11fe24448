package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sooryathamilselvan/LoanPrediction/repository"
	"github.com/sooryathamilselvan/LoanPrediction/service"
)

func newTestHandlers() (*RecommendationHandler, *BankHandler, *AdvisorHandler) {
	logger := zap.NewNop()
	banks := repository.NewBankRepositoryMemory()
	emi := service.NewEMIService()
	recommendations := service.NewRecommendationService(
		banks,
		service.NewEligibilityService(emi),
		emi,
		service.NewImprovementService(),
		repository.NewMemoryCache(),
		logger,
	)
	advisor := service.NewAdvisorService(nil, logger)

	return NewRecommendationHandler(recommendations, logger),
		NewBankHandler(banks, logger),
		NewAdvisorHandler(recommendations, advisor, logger)
}

const validRequestBody = `{
	"age": 32,
	"income": 65000,
	"coapplicantIncome": 15000,
	"creditHistory": 1,
	"selfEmployed": false,
	"propertyArea": "Urban",
	"loanAmount": 2500000,
	"loanTerm": 240,
	"loanPurpose": "home renovation"
}`

func TestRecommend_Success(t *testing.T) {
	handler, _, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodPost, "/loan/recommendations", strings.NewReader(validRequestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Recommend(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var resp recommendationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Summary.TotalBanks == 0 {
		t.Errorf("expected banks in the summary")
	}
	if len(resp.Recommendations.All) != resp.Summary.TotalBanks {
		t.Errorf("expected %d recommendations, got %d", resp.Summary.TotalBanks, len(resp.Recommendations.All))
	}
	grouped := len(resp.Recommendations.HighlyEligible) +
		len(resp.Recommendations.Eligible) +
		len(resp.Recommendations.ConditionallyEligible) +
		len(resp.Recommendations.NotEligible)
	if grouped != len(resp.Recommendations.All) {
		t.Errorf("tier groups hold %d entries, want %d", grouped, len(resp.Recommendations.All))
	}
}

func TestRecommend_MethodNotAllowed(t *testing.T) {
	handler, _, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/loan/recommendations", nil)
	rr := httptest.NewRecorder()

	handler.Recommend(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rr.Code)
	}
}

func TestRecommend_RequiresJSONContentType(t *testing.T) {
	handler, _, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodPost, "/loan/recommendations", strings.NewReader(validRequestBody))
	rr := httptest.NewRecorder()

	handler.Recommend(rr, req)

	if rr.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", rr.Code)
	}
}

func TestRecommend_InvalidBody(t *testing.T) {
	handler, _, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodPost, "/loan/recommendations", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Recommend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestRecommend_ValidationFailure(t *testing.T) {
	handler, _, _ := newTestHandlers()

	body := `{"age": 0, "income": 65000, "creditHistory": 1, "propertyArea": "Urban", "loanAmount": 2500000, "loanTerm": 240}`
	req := httptest.NewRequest(http.MethodPost, "/loan/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Recommend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid profile, got %d", rr.Code)
	}
}

func TestBankDetails_Success(t *testing.T) {
	_, handler, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/loan/banks/sbi", nil)
	rr := httptest.NewRecorder()

	handler.Details(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp bankDetailsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Bank == nil || resp.Bank.ID != "sbi" {
		t.Errorf("expected sbi details, got %+v", resp.Bank)
	}
	for _, product := range []string{"homeLoan", "personalLoan", "businessLoan"} {
		if _, ok := resp.LoanProducts[product]; !ok {
			t.Errorf("missing loan product %q", product)
		}
	}
}

func TestBankDetails_NotFound(t *testing.T) {
	_, handler, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/loan/banks/unknown", nil)
	rr := httptest.NewRecorder()

	handler.Details(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestBankDetails_MissingID(t *testing.T) {
	_, handler, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/loan/banks/", nil)
	rr := httptest.NewRecorder()

	handler.Details(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestInsights_Success(t *testing.T) {
	_, _, handler := newTestHandlers()

	req := httptest.NewRequest(http.MethodPost, "/loan/insights", strings.NewReader(validRequestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Insights(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["insights"] == "" {
		t.Errorf("expected insights text in response")
	}
}

func TestChat_RequiresQuestion(t *testing.T) {
	_, _, handler := newTestHandlers()

	req := httptest.NewRequest(http.MethodPost, "/loan/advisor", strings.NewReader(`{"question": ""}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Chat(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty question, got %d", rr.Code)
	}
}

func TestChat_Success(t *testing.T) {
	_, _, handler := newTestHandlers()

	body := `{"question": "Can I afford a home loan?", "context": {"income": 40000, "creditHistory": 1}}`
	req := httptest.NewRequest(http.MethodPost, "/loan/advisor", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Chat(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["response"] == "" {
		t.Errorf("expected advisor response text")
	}
}
