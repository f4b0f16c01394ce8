package benefit

import "github.com/warp/maternity-engine/calendar"

// =============================================================================
// LEAVE WINDOW CALCULATION
// =============================================================================
//
// Boundary convention: the due date is the LAST day of the prenatal window,
// and the postnatal window starts the day after it. Both windows are
// inclusive spans built with ordinary calendar arithmetic, so leap years and
// month lengths fall out of time.AddDate.

// PrenatalPeriod returns the prenatal leave window ending on the due date.
// The window spans exactly PrenatalDays(pregnancyType) calendar days.
func (e *Engine) PrenatalPeriod(dueDate calendar.Date, pregnancyType PregnancyType) calendar.Period {
	length := e.schedule.PrenatalDays(pregnancyType)
	return calendar.Period{
		Start: dueDate.AddDays(-(length - 1)),
		End:   dueDate,
		Days:  length,
	}
}

// PostnatalPeriod returns the postnatal leave window: a fixed-length span
// starting the day after the due date.
func (e *Engine) PostnatalPeriod(dueDate calendar.Date) calendar.Period {
	length := e.schedule.PostnatalDays
	return calendar.Period{
		Start: dueDate.AddDays(1),
		End:   dueDate.AddDays(length),
		Days:  length,
	}
}

// TotalDays returns the combined prenatal and postnatal benefit days for
// the pregnancy type.
func (e *Engine) TotalDays(pregnancyType PregnancyType) int {
	return e.schedule.PrenatalDays(pregnancyType) + e.schedule.PostnatalDays
}
