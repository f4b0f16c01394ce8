/*
Package benefit implements the maternity benefit calculation engine (出産手当金).

PURPOSE:
  Computes the Japanese maternity-leave allowance from a monthly salary, an
  expected due date and the pregnancy type, and compares the allowance against
  an estimate of the user's current take-home pay. The engine covers:
  - standard monthly remuneration bracket lookup (remuneration.go)
  - daily/total benefit derivation (calculator.go)
  - prenatal/postnatal leave windows (periods.go)
  - simplified social-insurance and progressive-tax estimation (income.go)
  - input validation (validate.go)
  - orchestration into one result record (engine.go)

KEY CONCEPTS IN THIS FILE (types.go):
  - Input: validated user input (salary, due date, pregnancy type)
  - SocialInsurance / Tax / CurrentIncome: take-home pay breakdown
  - Result: the complete calculation output
  - ValidationError: field-scoped error or warning

DESIGN PRINCIPLES:
  1. Immutability: every record is a fresh value; nothing is mutated after
     construction and nothing is cached across calls.
  2. Precision: amounts are integer yen (int64); fractional rates live in the
     Schedule as decimal.Decimal and every floor is explicit.
  3. Purity: no I/O, no shared state; safe to call concurrently at any rate.

SEE ALSO:
  - schedule.go: rate tables and named constants
  - engine.go: Engine and the Calculate entry point
*/
package benefit

import (
	"github.com/warp/maternity-engine/calendar"
)

// =============================================================================
// PREGNANCY TYPE
// =============================================================================

// PregnancyType distinguishes single from multiple pregnancies; the prenatal
// leave window is longer for multiples.
type PregnancyType string

const (
	PregnancySingle   PregnancyType = "single"
	PregnancyMultiple PregnancyType = "multiple"
)

// Valid reports whether the value is one of the two recognized types.
func (p PregnancyType) Valid() bool {
	return p == PregnancySingle || p == PregnancyMultiple
}

// =============================================================================
// INPUT
// =============================================================================

// Input is the validated user input for one calculation.
type Input struct {
	Salary        int64 // monthly gross, yen
	DueDate       calendar.Date
	PregnancyType PregnancyType
}

// =============================================================================
// CURRENT INCOME BREAKDOWN
// =============================================================================

// SocialInsurance is the employee-borne monthly premium breakdown, in yen.
// Total is always the exact sum of the four components.
type SocialInsurance struct {
	HealthInsurance     int64
	CareInsurance       int64
	PensionInsurance    int64
	EmploymentInsurance int64
	Total               int64
}

// Tax is the estimated monthly tax breakdown, in yen.
// Total is always IncomeTax + ResidentTax.
type Tax struct {
	IncomeTax   int64
	ResidentTax int64
	Total       int64
}

// CurrentIncome is the estimated monthly take-home pay.
// NetIncome = GrossSalary - SocialInsurance.Total - Tax.Total, never clamped.
type CurrentIncome struct {
	GrossSalary     int64
	SocialInsurance SocialInsurance
	Tax             Tax
	NetIncome       int64
}

// =============================================================================
// BENEFIT FIGURES
// =============================================================================

// BenefitFigures holds the monetary outputs of the benefit derivation.
type BenefitFigures struct {
	StandardRemuneration int64 // bracket value, yen/month
	StandardDailyWage    int64 // floor(remuneration / 30)
	BenefitDailyAmount   int64 // floor(daily wage x benefit rate)
	TotalDays            int   // prenatal + postnatal days
	TotalBenefit         int64 // daily amount x total days, exact
	MonthlyEquivalent    int64 // floor(daily amount x 30), comparison only
}

// =============================================================================
// RESULT
// =============================================================================

// Result is the complete output of one calculation. It is a pure value
// record: each Calculate call constructs a fresh one.
//
// MaintenanceRate is the benefit as a percentage of normal net income,
// rounded to an integer. It is nil when net income is zero, in which case
// the ratio is undefined; callers must check before dereferencing.
type Result struct {
	Input                Input
	StandardRemuneration int64
	StandardDailyWage    int64
	BenefitDailyAmount   int64
	PrenatalPeriod       calendar.Period
	PostnatalPeriod      calendar.Period
	TotalDays            int
	TotalBenefit         int64
	MonthlyEquivalent    int64
	CurrentIncome        CurrentIncome
	MaintenanceRate      *int64
}

// =============================================================================
// VALIDATION
// =============================================================================

// Field identifies which input a validation entry refers to.
type Field string

const (
	FieldSalary        Field = "salary"
	FieldDueDate       Field = "dueDate"
	FieldPregnancyType Field = "pregnancyType"
)

// Severity distinguishes blocking errors from informational warnings.
// Warnings never prevent a calculation; errors do.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is one field-scoped validation finding.
type ValidationError struct {
	Field    Field
	Message  string
	Severity Severity
}

// HasBlocking reports whether any entry has error severity.
func HasBlocking(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
