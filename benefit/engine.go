/*
engine.go - Engine construction and the Calculate entry point

PURPOSE:
  The Engine binds a validated Schedule to the calculation operations and
  composes them into one Result. It holds no mutable state: a single Engine
  can serve any number of concurrent callers.

CONTRACT:
  Calculate assumes the input already passed Validate with zero blocking
  findings; that boundary is the caller's responsibility. Inputs that could
  never pass validation (negative salary, zero due date, unknown pregnancy
  type) are precondition violations and fail fast with a sentinel error
  instead of computing garbage. Either everything computes or nothing does;
  there are no partial results.

MAINTENANCE RATE:
  maintenanceRate = round(monthly equivalent / net income x 100), as an
  integer percentage. When net income is zero the ratio is undefined and the
  Result carries a nil MaintenanceRate; no infinity or NaN can appear.

SEE ALSO:
  - types.go: the Result record
  - errors.go: the precondition sentinels
*/
package benefit

import "github.com/shopspring/decimal"

// =============================================================================
// ENGINE
// =============================================================================

// Engine performs maternity benefit calculations against one rate schedule.
type Engine struct {
	schedule Schedule
}

// NewEngine builds an engine after validating the schedule.
func NewEngine(schedule Schedule) (*Engine, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return &Engine{schedule: schedule}, nil
}

// NewDefaultEngine builds an engine with the built-in schedule.
func NewDefaultEngine() *Engine {
	return &Engine{schedule: DefaultSchedule()}
}

// Schedule returns a copy of the engine's rate schedule.
func (e *Engine) Schedule() Schedule {
	return e.schedule
}

// =============================================================================
// CALCULATE
// =============================================================================

// Calculate runs the full calculation for one validated input and returns a
// fresh Result.
func (e *Engine) Calculate(input Input) (*Result, error) {
	if input.Salary < 0 {
		return nil, ErrNegativeSalary
	}
	if input.DueDate.IsZero() {
		return nil, ErrMissingDueDate
	}
	if !input.PregnancyType.Valid() {
		return nil, ErrInvalidPregnancyType
	}

	figures := e.Benefit(input.Salary, input.PregnancyType)
	income := e.EstimateCurrentIncome(input.Salary)

	return &Result{
		Input:                input,
		StandardRemuneration: figures.StandardRemuneration,
		StandardDailyWage:    figures.StandardDailyWage,
		BenefitDailyAmount:   figures.BenefitDailyAmount,
		PrenatalPeriod:       e.PrenatalPeriod(input.DueDate, input.PregnancyType),
		PostnatalPeriod:      e.PostnatalPeriod(input.DueDate),
		TotalDays:            figures.TotalDays,
		TotalBenefit:         figures.TotalBenefit,
		MonthlyEquivalent:    figures.MonthlyEquivalent,
		CurrentIncome:        income,
		MaintenanceRate:      maintenanceRate(figures.MonthlyEquivalent, income.NetIncome),
	}, nil
}

// maintenanceRate computes the integer percentage of net income the benefit
// maintains, rounded half away from zero. Returns nil when net income is
// zero (undefined ratio).
func maintenanceRate(monthlyEquivalent, netIncome int64) *int64 {
	if netIncome == 0 {
		return nil
	}

	rate := decimal.NewFromInt(monthlyEquivalent).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(netIncome)).
		Round(0).
		IntPart()
	return &rate
}
