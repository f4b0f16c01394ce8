package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warp/maternity-engine/benefit"
	"github.com/warp/maternity-engine/calendar"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestRouter() http.Handler {
	return NewRouter(NewHandler(benefit.NewDefaultEngine()))
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// futureDueDate returns a due date safely inside the validation window.
func futureDueDate() string {
	return calendar.Today().AddMonths(3).String()
}

// =============================================================================
// CALCULATION ENDPOINT TESTS
// =============================================================================

func TestCreateCalculation_Success(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/calculations", CalculationRequest{
		Salary:        300000,
		DueDate:       futureDueDate(),
		PregnancyType: "single",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp CalculationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Result.StandardRemuneration != 300000 {
		t.Errorf("remuneration: expected 300000, got %d", resp.Result.StandardRemuneration)
	}
	if resp.Result.BenefitDailyAmount != 6666 {
		t.Errorf("daily benefit: expected 6666, got %d", resp.Result.BenefitDailyAmount)
	}
	if resp.Result.TotalDays != 98 {
		t.Errorf("total days: expected 98, got %d", resp.Result.TotalDays)
	}
	if resp.Result.MaintenanceRate == nil {
		t.Error("expected a maintenance rate")
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", resp.Warnings)
	}
}

func TestCreateCalculation_BlockingValidation(t *testing.T) {
	// GIVEN: a zero salary
	// WHEN: posting a calculation
	// THEN: 422 with the field-scoped findings and no result
	router := newTestRouter()

	rec := postJSON(t, router, "/api/calculations", CalculationRequest{
		Salary:        0,
		DueDate:       futureDueDate(),
		PregnancyType: "single",
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors) == 0 {
		t.Fatal("expected validation findings in the body")
	}
	if resp.Errors[0].Field != "salary" {
		t.Errorf("expected a salary finding, got %s", resp.Errors[0].Field)
	}
}

func TestCreateCalculation_WarningsRideAlong(t *testing.T) {
	// A below-bound salary warns but still computes.
	router := newTestRouter()

	rec := postJSON(t, router, "/api/calculations", CalculationRequest{
		Salary:        49999,
		DueDate:       futureDueDate(),
		PregnancyType: "single",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp CalculationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Severity != "warning" {
		t.Fatalf("expected one warning, got %v", resp.Warnings)
	}
	if resp.Result.StandardRemuneration != 58000 {
		t.Errorf("expected the lowest bracket, got %d", resp.Result.StandardRemuneration)
	}
}

func TestCreateCalculation_UnparseableDueDate(t *testing.T) {
	// A garbage date is a field finding, not a transport error.
	router := newTestRouter()

	rec := postJSON(t, router, "/api/calculations", CalculationRequest{
		Salary:        300000,
		DueDate:       "next spring",
		PregnancyType: "single",
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body)
	}
}

func TestCreateCalculation_MalformedBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/calculations", bytes.NewReader([]byte(`{`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// =============================================================================
// VALIDATION ENDPOINT TESTS
// =============================================================================

func TestValidateInput_AlwaysReturns200(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/validations", CalculationRequest{
		Salary:        0,
		DueDate:       "",
		PregnancyType: "unknown",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp ValidationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Valid {
		t.Error("expected valid=false")
	}
	if len(resp.Errors) != 3 {
		t.Errorf("expected 3 findings, got %d", len(resp.Errors))
	}
}

func TestValidateInput_CleanInput(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(t, router, "/api/validations", CalculationRequest{
		Salary:        300000,
		DueDate:       futureDueDate(),
		PregnancyType: "multiple",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ValidationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Valid || len(resp.Errors) != 0 {
		t.Errorf("expected a clean pass, got %+v", resp)
	}
}

// =============================================================================
// SCHEDULE ENDPOINT TESTS
// =============================================================================

func TestGetSchedule(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		RemunerationTable []int64 `json:"remuneration_table"`
		BenefitRate       string  `json:"benefit_rate"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.RemunerationTable) != 30 {
		t.Errorf("expected the 30-entry table, got %d entries", len(body.RemunerationTable))
	}
	if body.RemunerationTable[0] != 58000 || body.RemunerationTable[29] != 500000 {
		t.Errorf("unexpected table boundaries: %v", body.RemunerationTable)
	}
	if body.BenefitRate == "" {
		t.Error("expected the benefit rate to be exposed")
	}
}
