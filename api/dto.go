/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain records from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific formatting (dates as YYYY-MM-DD strings)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done by the engine, not in DTOs. DTOs are pure data
  carriers; the due date arrives as a string so that an unparseable value
  becomes a field-scoped validation finding rather than a transport error.

SEE ALSO:
  - handlers.go: uses these types
  - benefit/types.go: the domain records behind them
*/
package api

import (
	"github.com/warp/maternity-engine/benefit"
	"github.com/warp/maternity-engine/calendar"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculationRequest is the input for both calculation and validation calls.
type CalculationRequest struct {
	Salary        int64  `json:"salary"`
	DueDate       string `json:"due_date"`
	PregnancyType string `json:"pregnancy_type"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PeriodDTO is an inclusive leave window.
type PeriodDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// SocialInsuranceDTO is the monthly premium breakdown, yen.
type SocialInsuranceDTO struct {
	HealthInsurance     int64 `json:"health_insurance"`
	CareInsurance       int64 `json:"care_insurance"`
	PensionInsurance    int64 `json:"pension_insurance"`
	EmploymentInsurance int64 `json:"employment_insurance"`
	Total               int64 `json:"total"`
}

// TaxDTO is the monthly tax breakdown, yen.
type TaxDTO struct {
	IncomeTax   int64 `json:"income_tax"`
	ResidentTax int64 `json:"resident_tax"`
	Total       int64 `json:"total"`
}

// CurrentIncomeDTO is the estimated monthly take-home pay.
type CurrentIncomeDTO struct {
	GrossSalary     int64              `json:"gross_salary"`
	SocialInsurance SocialInsuranceDTO `json:"social_insurance"`
	Tax             TaxDTO             `json:"tax"`
	NetIncome       int64              `json:"net_income"`
}

// ResultDTO is the full calculation output. MaintenanceRate is omitted when
// the ratio is undefined (zero net income).
type ResultDTO struct {
	Salary               int64            `json:"salary"`
	DueDate              string           `json:"due_date"`
	PregnancyType        string           `json:"pregnancy_type"`
	StandardRemuneration int64            `json:"standard_remuneration"`
	StandardDailyWage    int64            `json:"standard_daily_wage"`
	BenefitDailyAmount   int64            `json:"benefit_daily_amount"`
	PrenatalPeriod       PeriodDTO        `json:"prenatal_period"`
	PostnatalPeriod      PeriodDTO        `json:"postnatal_period"`
	TotalDays            int              `json:"total_days"`
	TotalBenefit         int64            `json:"total_benefit"`
	MonthlyEquivalent    int64            `json:"monthly_equivalent"`
	CurrentIncome        CurrentIncomeDTO `json:"current_income"`
	MaintenanceRate      *int64           `json:"maintenance_rate,omitempty"`
}

// ValidationErrorDTO is one field-scoped validation finding.
type ValidationErrorDTO struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// CalculationResponse wraps a successful calculation with any non-blocking
// warnings that accompanied it.
type CalculationResponse struct {
	Result   ResultDTO            `json:"result"`
	Warnings []ValidationErrorDTO `json:"warnings,omitempty"`
}

// ValidationResponse is the output of the validation-only endpoint.
type ValidationResponse struct {
	Valid  bool                 `json:"valid"`
	Errors []ValidationErrorDTO `json:"errors"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string               `json:"error"`
	Details string               `json:"details,omitempty"`
	Errors  []ValidationErrorDTO `json:"errors,omitempty"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toPeriodDTO(p calendar.Period) PeriodDTO {
	return PeriodDTO{Start: p.Start.String(), End: p.End.String(), Days: p.Days}
}

func toValidationErrorDTOs(errs []benefit.ValidationError) []ValidationErrorDTO {
	if len(errs) == 0 {
		return nil
	}
	dtos := make([]ValidationErrorDTO, len(errs))
	for i, e := range errs {
		dtos[i] = ValidationErrorDTO{
			Field:    string(e.Field),
			Message:  e.Message,
			Severity: string(e.Severity),
		}
	}
	return dtos
}

func toResultDTO(r *benefit.Result) ResultDTO {
	return ResultDTO{
		Salary:               r.Input.Salary,
		DueDate:              r.Input.DueDate.String(),
		PregnancyType:        string(r.Input.PregnancyType),
		StandardRemuneration: r.StandardRemuneration,
		StandardDailyWage:    r.StandardDailyWage,
		BenefitDailyAmount:   r.BenefitDailyAmount,
		PrenatalPeriod:       toPeriodDTO(r.PrenatalPeriod),
		PostnatalPeriod:      toPeriodDTO(r.PostnatalPeriod),
		TotalDays:            r.TotalDays,
		TotalBenefit:         r.TotalBenefit,
		MonthlyEquivalent:    r.MonthlyEquivalent,
		CurrentIncome: CurrentIncomeDTO{
			GrossSalary: r.CurrentIncome.GrossSalary,
			SocialInsurance: SocialInsuranceDTO{
				HealthInsurance:     r.CurrentIncome.SocialInsurance.HealthInsurance,
				CareInsurance:       r.CurrentIncome.SocialInsurance.CareInsurance,
				PensionInsurance:    r.CurrentIncome.SocialInsurance.PensionInsurance,
				EmploymentInsurance: r.CurrentIncome.SocialInsurance.EmploymentInsurance,
				Total:               r.CurrentIncome.SocialInsurance.Total,
			},
			Tax: TaxDTO{
				IncomeTax:   r.CurrentIncome.Tax.IncomeTax,
				ResidentTax: r.CurrentIncome.Tax.ResidentTax,
				Total:       r.CurrentIncome.Tax.Total,
			},
			NetIncome: r.CurrentIncome.NetIncome,
		},
		MaintenanceRate: r.MaintenanceRate,
	}
}
