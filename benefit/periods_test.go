package benefit

import (
	"testing"
	"time"

	"github.com/warp/maternity-engine/calendar"
)

func date(year int, month time.Month, day int) calendar.Date {
	return calendar.NewDate(year, month, day)
}

// =============================================================================
// LEAVE WINDOW TESTS
// =============================================================================

func TestPrenatalPeriod_DueDateIsLastDay(t *testing.T) {
	// GIVEN: a single pregnancy due 2026-09-10
	// WHEN: computing the prenatal window
	// THEN: the window ends ON the due date and spans exactly 42 days
	e := NewDefaultEngine()
	due := date(2026, time.September, 10)

	p := e.PrenatalPeriod(due, PregnancySingle)

	if !p.End.Equal(due) {
		t.Errorf("prenatal end: expected %s, got %s", due, p.End)
	}
	if !p.Start.Equal(due.AddDays(-41)) {
		t.Errorf("prenatal start: expected %s, got %s", due.AddDays(-41), p.Start)
	}
	if p.Days != 42 {
		t.Errorf("prenatal days: expected 42, got %d", p.Days)
	}
	if !p.Valid() {
		t.Error("prenatal period should be internally consistent")
	}
}

func TestPrenatalPeriod_MultipleIsLonger(t *testing.T) {
	e := NewDefaultEngine()
	due := date(2026, time.September, 10)

	p := e.PrenatalPeriod(due, PregnancyMultiple)

	if p.Days != 98 {
		t.Errorf("expected 98 days, got %d", p.Days)
	}
	if !p.End.Equal(due) {
		t.Errorf("prenatal end must stay on the due date, got %s", p.End)
	}
	if !p.Valid() {
		t.Error("prenatal period should be internally consistent")
	}
}

func TestPostnatalPeriod_StartsDayAfterDueDate(t *testing.T) {
	e := NewDefaultEngine()
	due := date(2026, time.September, 10)

	p := e.PostnatalPeriod(due)

	if !p.Start.Equal(due.AddDays(1)) {
		t.Errorf("postnatal start: expected %s, got %s", due.AddDays(1), p.Start)
	}
	if !p.End.Equal(due.AddDays(56)) {
		t.Errorf("postnatal end: expected %s, got %s", due.AddDays(56), p.End)
	}
	if got := calendar.DaysBetween(p.Start, p.End); got != 55 {
		t.Errorf("boundary distance: expected 55 (56-day inclusive span), got %d", got)
	}
	if p.Days != 56 {
		t.Errorf("postnatal days: expected 56, got %d", p.Days)
	}
}

func TestPrenatalPeriod_LeapYear(t *testing.T) {
	// GIVEN: a due date just after Feb 29 in a leap year
	// WHEN: counting 42 days back
	// THEN: the leap day is a real day, so the window starts 2028-01-20
	e := NewDefaultEngine()
	due := date(2028, time.March, 1)

	p := e.PrenatalPeriod(due, PregnancySingle)

	if got := p.Start.String(); got != "2028-01-20" {
		t.Errorf("expected start 2028-01-20, got %s", got)
	}
	if p.Days != 42 || !p.Valid() {
		t.Errorf("expected a consistent 42-day window, got %d days", p.Days)
	}
}

func TestPeriods_AreContiguous(t *testing.T) {
	// The postnatal window begins the day after the prenatal window ends,
	// with no gap and no overlap.
	e := NewDefaultEngine()
	due := date(2026, time.April, 30)

	pre := e.PrenatalPeriod(due, PregnancySingle)
	post := e.PostnatalPeriod(due)

	if !post.Start.Equal(pre.End.AddDays(1)) {
		t.Errorf("windows not contiguous: prenatal ends %s, postnatal starts %s",
			pre.End, post.Start)
	}
	if pre.Days+post.Days != e.TotalDays(PregnancySingle) {
		t.Errorf("window lengths (%d+%d) disagree with TotalDays (%d)",
			pre.Days, post.Days, e.TotalDays(PregnancySingle))
	}
}
