/*
schedule.go - Rate schedule: every domain constant the engine depends on

PURPOSE:
  The bracket table, premium rates, tax tables, leave-day constants and
  validation limits are domain data, not code. They live in one immutable
  Schedule value constructed at startup and passed explicitly to the Engine,
  so a rate revision is a data change, never a logic edit.

STRUCTURE:
  Schedule
  ├── RemunerationTable    standard monthly remuneration brackets (ascending)
  ├── BenefitRate          fraction of daily wage paid as benefit (2/3)
  ├── Prenatal/Postnatal   leave window lengths in days
  ├── DaysPerMonth         monthly-equivalent divisor (30)
  ├── Insurance            employee premium rates
  ├── Tax                  deduction and progressive bracket tables
  └── Limits               validator sanity bounds

TABLE CONVENTIONS:
  - DeductionRow with a zero Rate is a fixed-amount row.
  - A zero Ceiling means "no ceiling" and is only legal on the last row.
  - Subtraction may be negative (the statutory salary-deduction table adds
    a constant in its middle bands).

SEE ALSO:
  - defaults.go: the built-in FY2024 schedule
  - factory/rates.go: loading a schedule from JSON
*/
package benefit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SCHEDULE
// =============================================================================

// InsuranceRates holds the full statutory premium rates. Health and pension
// premiums are shared evenly with the employer; the engine halves them.
// The employment premium rate is the employee share directly.
type InsuranceRates struct {
	Health     decimal.Decimal
	Pension    decimal.Decimal
	Employment decimal.Decimal
}

// DeductionRow is one band of the salary-income deduction table.
// Rows are tried in order; the first row whose Ceiling covers the annual
// salary applies. A zero Rate means the Fixed amount is the deduction;
// otherwise the deduction is floor(annual x Rate - Subtraction).
type DeductionRow struct {
	Ceiling     int64 // annual income upper bound, inclusive; 0 = unbounded
	Fixed       int64
	Rate        decimal.Decimal
	Subtraction int64
}

// TaxBracket is one band of the progressive income-tax table:
// tax = floor(taxable x Rate - Subtraction).
type TaxBracket struct {
	Ceiling     int64 // taxable income upper bound, inclusive; 0 = unbounded
	Rate        decimal.Decimal
	Subtraction int64
}

// TaxSchedule holds every tax constant, annual figures in yen.
type TaxSchedule struct {
	BasicDeduction         int64
	ResidentBasicDeduction int64
	ResidentPerCapitaLevy  int64
	ResidentIncomeRate     decimal.Decimal
	SurtaxRate             decimal.Decimal // reconstruction surtax multiplier (1.021)
	SalaryDeductionRows    []DeductionRow
	IncomeTaxBrackets      []TaxBracket
}

// Limits holds the validator's sanity bounds.
type Limits struct {
	SalaryWarnBelow      int64 // below this, eligibility warning
	SalaryMax            int64 // above this, data-entry error
	DueDateHorizonMonths int   // due date must fall within this many months
}

// Schedule is the complete set of domain constants for one fiscal year.
type Schedule struct {
	RemunerationTable []int64

	BenefitRate          decimal.Decimal
	PrenatalDaysSingle   int
	PrenatalDaysMultiple int
	PostnatalDays        int
	DaysPerMonth         decimal.Decimal

	Insurance InsuranceRates
	Tax       TaxSchedule
	Limits    Limits
}

// PrenatalDays returns the prenatal leave length for the pregnancy type.
func (s *Schedule) PrenatalDays(p PregnancyType) int {
	if p == PregnancyMultiple {
		return s.PrenatalDaysMultiple
	}
	return s.PrenatalDaysSingle
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the schedule's structural invariants. A schedule that
// passes is safe for every Engine operation.
func (s *Schedule) Validate() error {
	if len(s.RemunerationTable) == 0 {
		return fmt.Errorf("%w: empty remuneration table", ErrInvalidSchedule)
	}
	for i := 1; i < len(s.RemunerationTable); i++ {
		if s.RemunerationTable[i] <= s.RemunerationTable[i-1] {
			return fmt.Errorf("%w: remuneration table not strictly ascending at index %d", ErrInvalidSchedule, i)
		}
	}
	if s.RemunerationTable[0] <= 0 {
		return fmt.Errorf("%w: remuneration table entries must be positive", ErrInvalidSchedule)
	}

	if !s.BenefitRate.IsPositive() || s.BenefitRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: benefit rate must be in (0, 1]", ErrInvalidSchedule)
	}
	if s.PrenatalDaysSingle <= 0 || s.PrenatalDaysMultiple <= 0 || s.PostnatalDays <= 0 {
		return fmt.Errorf("%w: leave day counts must be positive", ErrInvalidSchedule)
	}
	if !s.DaysPerMonth.IsPositive() {
		return fmt.Errorf("%w: days per month must be positive", ErrInvalidSchedule)
	}

	if s.Insurance.Health.IsNegative() || s.Insurance.Pension.IsNegative() || s.Insurance.Employment.IsNegative() {
		return fmt.Errorf("%w: insurance rates must be non-negative", ErrInvalidSchedule)
	}

	if err := validateDeductionRows(s.Tax.SalaryDeductionRows); err != nil {
		return err
	}
	if err := validateTaxBrackets(s.Tax.IncomeTaxBrackets); err != nil {
		return err
	}
	if s.Tax.ResidentIncomeRate.IsNegative() {
		return fmt.Errorf("%w: resident income rate must be non-negative", ErrInvalidSchedule)
	}
	if s.Tax.SurtaxRate.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: surtax rate must be at least 1", ErrInvalidSchedule)
	}

	if s.Limits.SalaryMax <= s.Limits.SalaryWarnBelow {
		return fmt.Errorf("%w: salary max must exceed the warning bound", ErrInvalidSchedule)
	}
	if s.Limits.DueDateHorizonMonths <= 0 {
		return fmt.Errorf("%w: due date horizon must be positive", ErrInvalidSchedule)
	}
	return nil
}

func validateDeductionRows(rows []DeductionRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: empty salary deduction table", ErrInvalidSchedule)
	}
	for i, row := range rows {
		last := i == len(rows)-1
		if row.Ceiling == 0 && !last {
			return fmt.Errorf("%w: unbounded salary deduction row before the last position", ErrInvalidSchedule)
		}
		if i > 0 && row.Ceiling != 0 && row.Ceiling <= rows[i-1].Ceiling {
			return fmt.Errorf("%w: salary deduction ceilings not ascending at index %d", ErrInvalidSchedule, i)
		}
		if row.Rate.IsNegative() {
			return fmt.Errorf("%w: salary deduction rate negative at index %d", ErrInvalidSchedule, i)
		}
	}
	return nil
}

func validateTaxBrackets(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: empty income tax table", ErrInvalidSchedule)
	}
	for i, b := range brackets {
		last := i == len(brackets)-1
		if b.Ceiling == 0 && !last {
			return fmt.Errorf("%w: unbounded tax bracket before the last position", ErrInvalidSchedule)
		}
		if i > 0 && b.Ceiling != 0 && b.Ceiling <= brackets[i-1].Ceiling {
			return fmt.Errorf("%w: tax bracket ceilings not ascending at index %d", ErrInvalidSchedule, i)
		}
		if b.Rate.IsNegative() {
			return fmt.Errorf("%w: tax bracket rate negative at index %d", ErrInvalidSchedule, i)
		}
	}
	return nil
}
