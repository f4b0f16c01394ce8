/*
handlers.go - HTTP API handlers for the maternity benefit engine

PURPOSE:
  Exposes the calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  POST /api/calculations   Validate input and run a full calculation
  POST /api/validations    Validation only, never blocks
  GET  /api/schedule       The active rate schedule

REQUEST FLOW:
  1. Parse HTTP request
  2. Run engine validation
  3. Call the engine
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed request body, precondition violations
  - 422: Blocking validation errors (field-scoped list in body)
  - 500: Internal errors

SEE ALSO:
  - dto.go: request/response data structures
  - server.go: router setup and middleware
  - benefit/engine.go: the engine being exposed
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/maternity-engine/benefit"
	"github.com/warp/maternity-engine/calendar"
	"github.com/warp/maternity-engine/factory"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *benefit.Engine
}

// NewHandler creates a new handler around the given engine.
func NewHandler(engine *benefit.Engine) *Handler {
	return &Handler{Engine: engine}
}

// parseDueDate turns the wire string into a Date. Empty or unparseable
// values become the zero Date, which the validator reports as a field
// error rather than failing the transport.
func parseDueDate(s string) calendar.Date {
	if s == "" {
		return calendar.Date{}
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return calendar.Date{}
	}
	return d
}

// =============================================================================
// CALCULATION HANDLERS
// =============================================================================

// CreateCalculation validates the input and, when nothing blocks, runs the
// full calculation. Warnings ride along with the result.
func (h *Handler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dueDate := parseDueDate(req.DueDate)
	findings := h.Engine.Validate(req.Salary, dueDate, req.PregnancyType)
	if benefit.HasBlocking(findings) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:  "Validation failed",
			Errors: toValidationErrorDTOs(findings),
		})
		return
	}

	result, err := h.Engine.Calculate(benefit.Input{
		Salary:        req.Salary,
		DueDate:       dueDate,
		PregnancyType: benefit.PregnancyType(req.PregnancyType),
	})
	if err != nil {
		if benefit.IsPreconditionViolation(err) {
			writeError(w, http.StatusBadRequest, "Invalid input", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, CalculationResponse{
		Result:   toResultDTO(result),
		Warnings: toValidationErrorDTOs(findings),
	})
}

// ValidateInput runs validation only. Always 200; the findings list may be
// empty.
func (h *Handler) ValidateInput(w http.ResponseWriter, r *http.Request) {
	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	findings := h.Engine.Validate(req.Salary, parseDueDate(req.DueDate), req.PregnancyType)
	dtos := toValidationErrorDTOs(findings)
	if dtos == nil {
		dtos = []ValidationErrorDTO{}
	}

	writeJSON(w, http.StatusOK, ValidationResponse{
		Valid:  !benefit.HasBlocking(findings),
		Errors: dtos,
	})
}

// =============================================================================
// SCHEDULE HANDLER
// =============================================================================

// GetSchedule returns the active rate schedule.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, factory.ExportSchedule(h.Engine.Schedule()))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
