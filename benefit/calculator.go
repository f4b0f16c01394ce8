package benefit

import "github.com/shopspring/decimal"

// =============================================================================
// BENEFIT DERIVATION
// =============================================================================

// mulFloor multiplies an integer yen amount by a decimal rate and floors.
// All fractional arithmetic in the engine funnels through decimal so the
// floor semantics are exact, never float truncation.
func mulFloor(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Floor().IntPart()
}

// Benefit derives the maternity allowance figures from a salary and
// pregnancy type. The pregnancy type must be valid; Calculate enforces
// that precondition before delegating here.
//
// Chain:
//
//	standard remuneration -> daily wage (floor /30)
//	                      -> daily benefit (floor x 2/3)
//	                      -> total (x days, exact) and monthly equivalent
func (e *Engine) Benefit(salary int64, pregnancyType PregnancyType) BenefitFigures {
	s := &e.schedule

	remuneration := e.StandardRemuneration(salary)

	// The daily wage divisor is fixed by statute at 30; only the
	// monthly-equivalent divisor is schedule data.
	dailyWage := remuneration / 30
	dailyBenefit := mulFloor(dailyWage, s.BenefitRate)

	totalDays := e.TotalDays(pregnancyType)

	return BenefitFigures{
		StandardRemuneration: remuneration,
		StandardDailyWage:    dailyWage,
		BenefitDailyAmount:   dailyBenefit,
		TotalDays:            totalDays,
		TotalBenefit:         dailyBenefit * int64(totalDays),
		MonthlyEquivalent:    mulFloor(dailyBenefit, s.DaysPerMonth),
	}
}
