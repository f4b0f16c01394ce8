/*
defaults.go - Built-in FY2024 rate schedule

PURPOSE:
  The statutory figures the engine ships with. A deployment can override any
  of them with a JSON schedule file (see factory/rates.go); this file is the
  single in-code source of the domain data.

SOURCES (fiscal year 2024 figures):
  - Standard monthly remuneration brackets: health insurance grade table,
    grades covering 58,000 through 500,000 yen.
  - Health premium 9.98% (Kyokai Kenpo, Tokyo), pension premium 18.30%,
    both shared evenly with the employer. Employment premium 0.6%
    (employee share, general business).
  - Long-term care premium is omitted: the model assumes the under-40
    age bracket, which is exempt.
  - Salary-income deduction and progressive income-tax tables as published,
    basic deduction 480,000, resident basic deduction 430,000, resident
    per-capita levy 5,000/year, resident income levy 10%, reconstruction
    surtax 2.1%.

SEE ALSO:
  - schedule.go: type definitions and conventions
*/
package benefit

import "github.com/shopspring/decimal"

// DefaultSchedule returns the built-in FY2024 schedule. The returned value
// is freshly constructed on every call; callers may keep it for the process
// lifetime and share it freely across goroutines.
func DefaultSchedule() Schedule {
	return Schedule{
		RemunerationTable: []int64{
			58000, 68000, 78000, 88000, 98000,
			104000, 110000, 118000, 126000, 134000,
			142000, 150000, 160000, 170000, 180000,
			190000, 200000, 220000, 240000, 260000,
			280000, 300000, 320000, 340000, 360000,
			380000, 410000, 440000, 470000, 500000,
		},

		BenefitRate:          decimal.NewFromInt(2).Div(decimal.NewFromInt(3)),
		PrenatalDaysSingle:   42,
		PrenatalDaysMultiple: 98,
		PostnatalDays:        56,
		DaysPerMonth:         decimal.NewFromInt(30),

		Insurance: InsuranceRates{
			Health:     decimal.RequireFromString("0.0998"),
			Pension:    decimal.RequireFromString("0.183"),
			Employment: decimal.RequireFromString("0.006"),
		},

		Tax: TaxSchedule{
			BasicDeduction:         480000,
			ResidentBasicDeduction: 430000,
			ResidentPerCapitaLevy:  5000,
			ResidentIncomeRate:     decimal.RequireFromString("0.10"),
			SurtaxRate:             decimal.RequireFromString("1.021"),
			SalaryDeductionRows: []DeductionRow{
				{Ceiling: 1625000, Fixed: 550000},
				{Ceiling: 1800000, Rate: decimal.RequireFromString("0.40"), Subtraction: 100000},
				{Ceiling: 3600000, Rate: decimal.RequireFromString("0.30"), Subtraction: -80000},
				{Ceiling: 6600000, Rate: decimal.RequireFromString("0.20"), Subtraction: -440000},
				{Ceiling: 8500000, Rate: decimal.RequireFromString("0.10"), Subtraction: -1100000},
				{Ceiling: 0, Fixed: 1950000},
			},
			IncomeTaxBrackets: []TaxBracket{
				{Ceiling: 1950000, Rate: decimal.RequireFromString("0.05"), Subtraction: 0},
				{Ceiling: 3300000, Rate: decimal.RequireFromString("0.10"), Subtraction: 97500},
				{Ceiling: 6950000, Rate: decimal.RequireFromString("0.20"), Subtraction: 427500},
				{Ceiling: 9000000, Rate: decimal.RequireFromString("0.23"), Subtraction: 636000},
				{Ceiling: 18000000, Rate: decimal.RequireFromString("0.33"), Subtraction: 1536000},
				{Ceiling: 40000000, Rate: decimal.RequireFromString("0.40"), Subtraction: 2796000},
				{Ceiling: 0, Rate: decimal.RequireFromString("0.45"), Subtraction: 4796000},
			},
		},

		Limits: Limits{
			SalaryWarnBelow:      50000,
			SalaryMax:            1500000,
			DueDateHorizonMonths: 12,
		},
	}
}
