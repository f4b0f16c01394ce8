/*
income.go - Current take-home pay estimation

PURPOSE:
  Estimates what the user currently nets per month, so the benefit can be
  shown as a percentage of normal take-home pay. The model is deliberately
  simplified: employee-borne premium shares, the under-40 exemption from
  long-term care premiums, and a single-filer tax position with only the
  basic and social-insurance deductions.

CALCULATION:
  Social insurance (monthly, all floored):
    health     = floor(standard remuneration x health rate / 2)
    care       = 0 (under-40 assumption)
    pension    = floor(standard remuneration x pension rate / 2)
    employment = floor(raw salary x employment rate)

  The employment premium is computed on the RAW salary while health and
  pension use the bracketed remuneration. That asymmetry is how the premiums
  are actually assessed; do not "fix" it.

  Tax (annualized, then divided back to monthly):
    1. salary-income deduction from the progressive allowance table
    2. salary income = max(0, annual salary - deduction)
    3. national taxable = max(0, salary income - basic deduction - annual SI)
    4. income tax = bracket formula, then x surtax, floored at each step
    5. resident taxable uses the resident basic deduction instead
    6. resident tax = per-capita levy + floor(taxable x resident rate)

  Net income = salary - premiums - taxes, never clamped at zero.

SEE ALSO:
  - schedule.go: the tables and rates used here
  - defaults.go: FY2024 values
*/
package benefit

import "github.com/shopspring/decimal"

// =============================================================================
// SOCIAL INSURANCE
// =============================================================================

var two = decimal.NewFromInt(2)

// halfMulFloor applies the employee half of a shared premium rate.
func halfMulFloor(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Div(two).Floor().IntPart()
}

func (e *Engine) socialInsurance(salary int64) SocialInsurance {
	s := &e.schedule
	remuneration := e.StandardRemuneration(salary)

	health := halfMulFloor(remuneration, s.Insurance.Health)
	care := int64(0) // under-40 age bracket assumed, exempt
	pension := halfMulFloor(remuneration, s.Insurance.Pension)
	employment := mulFloor(salary, s.Insurance.Employment)

	return SocialInsurance{
		HealthInsurance:     health,
		CareInsurance:       care,
		PensionInsurance:    pension,
		EmploymentInsurance: employment,
		Total:               health + care + pension + employment,
	}
}

// =============================================================================
// TAX
// =============================================================================

// salaryIncomeDeduction looks up the progressive allowance for an annual
// salary: the first row whose ceiling covers it applies, and the last row
// applies unbounded.
func (e *Engine) salaryIncomeDeduction(annualSalary int64) int64 {
	rows := e.schedule.Tax.SalaryDeductionRows
	row := rows[len(rows)-1]
	for _, r := range rows {
		if r.Ceiling != 0 && annualSalary <= r.Ceiling {
			row = r
			break
		}
	}

	if row.Rate.IsZero() {
		return row.Fixed
	}
	return decimal.NewFromInt(annualSalary).
		Mul(row.Rate).
		Sub(decimal.NewFromInt(row.Subtraction)).
		Floor().
		IntPart()
}

// incomeTaxOn computes the annual national income tax, surtax included,
// from taxable income.
func (e *Engine) incomeTaxOn(taxable int64) int64 {
	if taxable <= 0 {
		return 0
	}

	brackets := e.schedule.Tax.IncomeTaxBrackets
	bracket := brackets[len(brackets)-1]
	for _, b := range brackets {
		if b.Ceiling != 0 && taxable <= b.Ceiling {
			bracket = b
			break
		}
	}

	base := decimal.NewFromInt(taxable).
		Mul(bracket.Rate).
		Sub(decimal.NewFromInt(bracket.Subtraction)).
		Floor().
		IntPart()

	return mulFloor(base, e.schedule.Tax.SurtaxRate)
}

func (e *Engine) tax(salary int64, insurance SocialInsurance) Tax {
	t := &e.schedule.Tax

	annualSalary := salary * 12
	annualInsurance := insurance.Total * 12

	deduction := e.salaryIncomeDeduction(annualSalary)
	salaryIncome := max64(0, annualSalary-deduction)

	taxableNational := max64(0, salaryIncome-(t.BasicDeduction+annualInsurance))
	annualIncomeTax := e.incomeTaxOn(taxableNational)

	taxableResident := max64(0, salaryIncome-(t.ResidentBasicDeduction+annualInsurance))
	annualResidentTax := t.ResidentPerCapitaLevy + mulFloor(taxableResident, t.ResidentIncomeRate)

	monthlyIncome := annualIncomeTax / 12
	monthlyResident := annualResidentTax / 12

	return Tax{
		IncomeTax:   monthlyIncome,
		ResidentTax: monthlyResident,
		Total:       monthlyIncome + monthlyResident,
	}
}

// =============================================================================
// CURRENT INCOME
// =============================================================================

// EstimateCurrentIncome estimates the monthly take-home pay for a gross
// monthly salary. Net income is salary minus premiums minus taxes and is
// never clamped; pathological schedules can legitimately drive it to zero
// or below.
func (e *Engine) EstimateCurrentIncome(salary int64) CurrentIncome {
	insurance := e.socialInsurance(salary)
	tax := e.tax(salary, insurance)

	return CurrentIncome{
		GrossSalary:     salary,
		SocialInsurance: insurance,
		Tax:             tax,
		NetIncome:       salary - insurance.Total - tax.Total,
	}
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
