package benefit

import "github.com/warp/maternity-engine/calendar"

// =============================================================================
// INPUT VALIDATION
// =============================================================================
//
// Validate is a total function over raw form values: it never panics and
// never stops at the first finding. Each finding is field-scoped, so the
// calling UI can attach messages to the right control. Warning-severity
// findings are informational and never block a calculation.

// Validate checks raw input against the schedule's limits, using today as
// the reference date for the due-date window.
func (e *Engine) Validate(salary int64, dueDate calendar.Date, pregnancyType string) []ValidationError {
	return e.ValidateAt(salary, dueDate, pregnancyType, calendar.Today())
}

// ValidateAt is Validate with an explicit reference date. The due date must
// fall within [today, today + horizon months], both ends inclusive.
func (e *Engine) ValidateAt(salary int64, dueDate calendar.Date, pregnancyType string, today calendar.Date) []ValidationError {
	limits := e.schedule.Limits
	var errs []ValidationError

	switch {
	case salary <= 0:
		errs = append(errs, ValidationError{
			Field:    FieldSalary,
			Message:  "月額総支給額を入力してください",
			Severity: SeverityError,
		})
	case salary < limits.SalaryWarnBelow:
		errs = append(errs, ValidationError{
			Field:    FieldSalary,
			Message:  "金額が低すぎます。出産手当金の受給要件を満たさない可能性があります",
			Severity: SeverityWarning,
		})
	case salary > limits.SalaryMax:
		errs = append(errs, ValidationError{
			Field:    FieldSalary,
			Message:  "金額が高すぎます。入力内容をご確認ください",
			Severity: SeverityError,
		})
	}

	if dueDate.IsZero() {
		errs = append(errs, ValidationError{
			Field:    FieldDueDate,
			Message:  "出産予定日を選択してください",
			Severity: SeverityError,
		})
	} else {
		horizon := today.AddMonths(limits.DueDateHorizonMonths)
		if dueDate.Before(today) || dueDate.After(horizon) {
			errs = append(errs, ValidationError{
				Field:    FieldDueDate,
				Message:  "出産予定日は今日以降1年以内の日付を選択してください",
				Severity: SeverityError,
			})
		}
	}

	if !PregnancyType(pregnancyType).Valid() {
		errs = append(errs, ValidationError{
			Field:    FieldPregnancyType,
			Message:  "妊娠タイプを選択してください",
			Severity: SeverityError,
		})
	}

	return errs
}
