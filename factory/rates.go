/*
Package factory provides JSON to Go rate-schedule conversion.

PURPOSE:
  Converts a JSON rate schedule into a validated benefit.Schedule. Rates and
  tables are domain data that change with fiscal years - an operator can ship
  a new schedule file without a code change, and anything the file omits
  falls back to the built-in defaults.

JSON SCHEMA (all sections optional):
  {
    "remuneration_table": [58000, 68000, ...],
    "benefit_rate": "2/3",
    "prenatal_days_single": 42,
    "prenatal_days_multiple": 98,
    "postnatal_days": 56,
    "days_per_month": "30",
    "insurance_rates": {
      "health": "0.0998",
      "pension": "0.183",
      "employment": "0.006"
    },
    "tax": {
      "basic_deduction": 480000,
      "resident_basic_deduction": 430000,
      "resident_per_capita_levy": 5000,
      "resident_income_rate": "0.10",
      "surtax_rate": "1.021",
      "salary_deduction_rows": [
        {"ceiling": 1625000, "fixed": 550000},
        {"ceiling": 1800000, "rate": "0.40", "subtraction": 100000}
      ],
      "income_tax_brackets": [
        {"ceiling": 1950000, "rate": "0.05", "subtraction": 0}
      ]
    },
    "limits": {
      "salary_warn_below": 50000,
      "salary_max": 1500000,
      "due_date_horizon_months": 12
    }
  }

RATE STRINGS:
  Rates are strings, not JSON numbers, so they survive without float drift.
  A "numerator/denominator" form is accepted for rates that have no finite
  decimal representation (the 2/3 benefit rate).

USAGE:
  data, _ := os.ReadFile("rates.json")
  schedule, err := factory.ParseSchedule(data)
  engine, err := benefit.NewEngine(schedule)

SEE ALSO:
  - benefit/schedule.go: target types and validation
  - benefit/defaults.go: fallback values
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/maternity-engine/benefit"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ScheduleJSON is the JSON representation of a rate schedule.
type ScheduleJSON struct {
	RemunerationTable    []int64             `json:"remuneration_table,omitempty"`
	BenefitRate          string              `json:"benefit_rate,omitempty"`
	PrenatalDaysSingle   *int                `json:"prenatal_days_single,omitempty"`
	PrenatalDaysMultiple *int                `json:"prenatal_days_multiple,omitempty"`
	PostnatalDays        *int                `json:"postnatal_days,omitempty"`
	DaysPerMonth         string              `json:"days_per_month,omitempty"`
	InsuranceRates       *InsuranceRatesJSON `json:"insurance_rates,omitempty"`
	Tax                  *TaxJSON            `json:"tax,omitempty"`
	Limits               *LimitsJSON         `json:"limits,omitempty"`
}

// InsuranceRatesJSON holds premium rates as decimal strings.
type InsuranceRatesJSON struct {
	Health     string `json:"health,omitempty"`
	Pension    string `json:"pension,omitempty"`
	Employment string `json:"employment,omitempty"`
}

// TaxJSON holds the tax constants and tables.
type TaxJSON struct {
	BasicDeduction         *int64             `json:"basic_deduction,omitempty"`
	ResidentBasicDeduction *int64             `json:"resident_basic_deduction,omitempty"`
	ResidentPerCapitaLevy  *int64             `json:"resident_per_capita_levy,omitempty"`
	ResidentIncomeRate     string             `json:"resident_income_rate,omitempty"`
	SurtaxRate             string             `json:"surtax_rate,omitempty"`
	SalaryDeductionRows    []DeductionRowJSON `json:"salary_deduction_rows,omitempty"`
	IncomeTaxBrackets      []TaxBracketJSON   `json:"income_tax_brackets,omitempty"`
}

// DeductionRowJSON is one salary-income deduction band. Omit "rate" for a
// fixed-amount row; a zero ceiling means unbounded (last row only).
type DeductionRowJSON struct {
	Ceiling     int64  `json:"ceiling"`
	Fixed       int64  `json:"fixed,omitempty"`
	Rate        string `json:"rate,omitempty"`
	Subtraction int64  `json:"subtraction,omitempty"`
}

// TaxBracketJSON is one progressive income-tax band.
type TaxBracketJSON struct {
	Ceiling     int64  `json:"ceiling"`
	Rate        string `json:"rate"`
	Subtraction int64  `json:"subtraction,omitempty"`
}

// LimitsJSON holds the validator bounds.
type LimitsJSON struct {
	SalaryWarnBelow      *int64 `json:"salary_warn_below,omitempty"`
	SalaryMax            *int64 `json:"salary_max,omitempty"`
	DueDateHorizonMonths *int   `json:"due_date_horizon_months,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseSchedule decodes a JSON schedule, overlays it on the defaults, and
// validates the combined result.
func ParseSchedule(data []byte) (benefit.Schedule, error) {
	schedule := benefit.DefaultSchedule()

	var raw ScheduleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return benefit.Schedule{}, fmt.Errorf("parse schedule: %w", err)
	}

	if raw.RemunerationTable != nil {
		schedule.RemunerationTable = raw.RemunerationTable
	}
	if err := overlayRate(&schedule.BenefitRate, raw.BenefitRate, "benefit_rate"); err != nil {
		return benefit.Schedule{}, err
	}
	if raw.PrenatalDaysSingle != nil {
		schedule.PrenatalDaysSingle = *raw.PrenatalDaysSingle
	}
	if raw.PrenatalDaysMultiple != nil {
		schedule.PrenatalDaysMultiple = *raw.PrenatalDaysMultiple
	}
	if raw.PostnatalDays != nil {
		schedule.PostnatalDays = *raw.PostnatalDays
	}
	if err := overlayRate(&schedule.DaysPerMonth, raw.DaysPerMonth, "days_per_month"); err != nil {
		return benefit.Schedule{}, err
	}

	if raw.InsuranceRates != nil {
		ins := raw.InsuranceRates
		if err := overlayRate(&schedule.Insurance.Health, ins.Health, "insurance_rates.health"); err != nil {
			return benefit.Schedule{}, err
		}
		if err := overlayRate(&schedule.Insurance.Pension, ins.Pension, "insurance_rates.pension"); err != nil {
			return benefit.Schedule{}, err
		}
		if err := overlayRate(&schedule.Insurance.Employment, ins.Employment, "insurance_rates.employment"); err != nil {
			return benefit.Schedule{}, err
		}
	}

	if raw.Tax != nil {
		if err := overlayTax(&schedule.Tax, raw.Tax); err != nil {
			return benefit.Schedule{}, err
		}
	}

	if raw.Limits != nil {
		if raw.Limits.SalaryWarnBelow != nil {
			schedule.Limits.SalaryWarnBelow = *raw.Limits.SalaryWarnBelow
		}
		if raw.Limits.SalaryMax != nil {
			schedule.Limits.SalaryMax = *raw.Limits.SalaryMax
		}
		if raw.Limits.DueDateHorizonMonths != nil {
			schedule.Limits.DueDateHorizonMonths = *raw.Limits.DueDateHorizonMonths
		}
	}

	if err := schedule.Validate(); err != nil {
		return benefit.Schedule{}, err
	}
	return schedule, nil
}

func overlayTax(target *benefit.TaxSchedule, raw *TaxJSON) error {
	if raw.BasicDeduction != nil {
		target.BasicDeduction = *raw.BasicDeduction
	}
	if raw.ResidentBasicDeduction != nil {
		target.ResidentBasicDeduction = *raw.ResidentBasicDeduction
	}
	if raw.ResidentPerCapitaLevy != nil {
		target.ResidentPerCapitaLevy = *raw.ResidentPerCapitaLevy
	}
	if err := overlayRate(&target.ResidentIncomeRate, raw.ResidentIncomeRate, "tax.resident_income_rate"); err != nil {
		return err
	}
	if err := overlayRate(&target.SurtaxRate, raw.SurtaxRate, "tax.surtax_rate"); err != nil {
		return err
	}

	if raw.SalaryDeductionRows != nil {
		rows := make([]benefit.DeductionRow, len(raw.SalaryDeductionRows))
		for i, r := range raw.SalaryDeductionRows {
			row := benefit.DeductionRow{
				Ceiling:     r.Ceiling,
				Fixed:       r.Fixed,
				Subtraction: r.Subtraction,
			}
			if r.Rate != "" {
				rate, err := parseRate(r.Rate)
				if err != nil {
					return fmt.Errorf("tax.salary_deduction_rows[%d].rate: %w", i, err)
				}
				row.Rate = rate
			}
			rows[i] = row
		}
		target.SalaryDeductionRows = rows
	}

	if raw.IncomeTaxBrackets != nil {
		brackets := make([]benefit.TaxBracket, len(raw.IncomeTaxBrackets))
		for i, b := range raw.IncomeTaxBrackets {
			rate, err := parseRate(b.Rate)
			if err != nil {
				return fmt.Errorf("tax.income_tax_brackets[%d].rate: %w", i, err)
			}
			brackets[i] = benefit.TaxBracket{
				Ceiling:     b.Ceiling,
				Rate:        rate,
				Subtraction: b.Subtraction,
			}
		}
		target.IncomeTaxBrackets = brackets
	}
	return nil
}

// overlayRate replaces the target only when a value was provided.
func overlayRate(target *decimal.Decimal, raw, field string) error {
	if raw == "" {
		return nil
	}
	rate, err := parseRate(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*target = rate
	return nil
}

// parseRate parses "0.0998" style decimal strings and "2/3" style fractions.
func parseRate(s string) (decimal.Decimal, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := decimal.NewFromString(strings.TrimSpace(num))
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid rate %q: %w", s, err)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(den))
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid rate %q: %w", s, err)
		}
		if d.IsZero() {
			return decimal.Zero, fmt.Errorf("invalid rate %q: zero denominator", s)
		}
		return n.Div(d), nil
	}

	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return rate, nil
}

// =============================================================================
// EXPORT
// =============================================================================

// ExportSchedule converts a schedule back to its JSON representation, with
// every rate rendered as a decimal string. Used by the API to expose the
// active schedule.
func ExportSchedule(s benefit.Schedule) ScheduleJSON {
	rows := make([]DeductionRowJSON, len(s.Tax.SalaryDeductionRows))
	for i, r := range s.Tax.SalaryDeductionRows {
		row := DeductionRowJSON{
			Ceiling:     r.Ceiling,
			Fixed:       r.Fixed,
			Subtraction: r.Subtraction,
		}
		if !r.Rate.IsZero() {
			row.Rate = r.Rate.String()
		}
		rows[i] = row
	}

	brackets := make([]TaxBracketJSON, len(s.Tax.IncomeTaxBrackets))
	for i, b := range s.Tax.IncomeTaxBrackets {
		brackets[i] = TaxBracketJSON{
			Ceiling:     b.Ceiling,
			Rate:        b.Rate.String(),
			Subtraction: b.Subtraction,
		}
	}

	return ScheduleJSON{
		RemunerationTable:    s.RemunerationTable,
		BenefitRate:          s.BenefitRate.String(),
		PrenatalDaysSingle:   &s.PrenatalDaysSingle,
		PrenatalDaysMultiple: &s.PrenatalDaysMultiple,
		PostnatalDays:        &s.PostnatalDays,
		DaysPerMonth:         s.DaysPerMonth.String(),
		InsuranceRates: &InsuranceRatesJSON{
			Health:     s.Insurance.Health.String(),
			Pension:    s.Insurance.Pension.String(),
			Employment: s.Insurance.Employment.String(),
		},
		Tax: &TaxJSON{
			BasicDeduction:         &s.Tax.BasicDeduction,
			ResidentBasicDeduction: &s.Tax.ResidentBasicDeduction,
			ResidentPerCapitaLevy:  &s.Tax.ResidentPerCapitaLevy,
			ResidentIncomeRate:     s.Tax.ResidentIncomeRate.String(),
			SurtaxRate:             s.Tax.SurtaxRate.String(),
			SalaryDeductionRows:    rows,
			IncomeTaxBrackets:      brackets,
		},
		Limits: &LimitsJSON{
			SalaryWarnBelow:      &s.Limits.SalaryWarnBelow,
			SalaryMax:            &s.Limits.SalaryMax,
			DueDateHorizonMonths: &s.Limits.DueDateHorizonMonths,
		},
	}
}
