package calendar

import (
	"encoding/json"
	"testing"
	"time"
)

// =============================================================================
// DATE ARITHMETIC TESTS
// =============================================================================

func TestAddDays_CrossesLeapDay(t *testing.T) {
	// GIVEN: a date just before Feb 29 in a leap year
	// WHEN: adding days across the boundary
	// THEN: the leap day is counted like any other calendar day
	d := NewDate(2028, time.February, 28)

	if got := d.AddDays(1).String(); got != "2028-02-29" {
		t.Errorf("expected 2028-02-29, got %s", got)
	}
	if got := d.AddDays(2).String(); got != "2028-03-01" {
		t.Errorf("expected 2028-03-01, got %s", got)
	}
}

func TestAddMonths_UsesCalendarMonths(t *testing.T) {
	d := NewDate(2025, time.March, 15)
	if got := d.AddMonths(12).String(); got != "2026-03-15" {
		t.Errorf("expected 2026-03-15, got %s", got)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to Date
		want     int
	}{
		{NewDate(2025, time.June, 1), NewDate(2025, time.June, 1), 0},
		{NewDate(2025, time.June, 1), NewDate(2025, time.June, 2), 1},
		{NewDate(2025, time.June, 2), NewDate(2025, time.June, 1), -1},
		{NewDate(2028, time.February, 1), NewDate(2028, time.March, 1), 29}, // leap year
		{NewDate(2025, time.February, 1), NewDate(2025, time.March, 1), 28},
	}

	for _, c := range cases {
		if got := DaysBetween(c.from, c.to); got != c.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", c.from, c.to, got, c.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.December || d.Day() != 31 {
		t.Errorf("parsed wrong date: %s", d)
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected error for garbage input")
	}
}

// =============================================================================
// JSON TESTS
// =============================================================================

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.January, 5)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-01-05"` {
		t.Errorf("unexpected encoding: %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip mismatch: %s != %s", back, d)
	}
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Error("null should decode to the zero date")
	}
}

// =============================================================================
// PERIOD TESTS
// =============================================================================

func TestNewPeriod_InclusiveDayCount(t *testing.T) {
	p := NewPeriod(NewDate(2025, time.June, 1), NewDate(2025, time.June, 1))
	if p.Days != 1 {
		t.Errorf("one-day period should have Days=1, got %d", p.Days)
	}

	p = NewPeriod(NewDate(2025, time.June, 1), NewDate(2025, time.June, 30))
	if p.Days != 30 {
		t.Errorf("expected 30 days, got %d", p.Days)
	}
	if !p.Valid() {
		t.Error("period should be valid")
	}
}

func TestPeriodContains(t *testing.T) {
	p := NewPeriod(NewDate(2025, time.June, 10), NewDate(2025, time.June, 20))

	if !p.Contains(NewDate(2025, time.June, 10)) || !p.Contains(NewDate(2025, time.June, 20)) {
		t.Error("boundaries must be inclusive")
	}
	if p.Contains(NewDate(2025, time.June, 9)) || p.Contains(NewDate(2025, time.June, 21)) {
		t.Error("dates outside the span must not be contained")
	}
}

func TestPeriodValid_RejectsMalformed(t *testing.T) {
	bad := Period{Start: NewDate(2025, time.June, 20), End: NewDate(2025, time.June, 10), Days: 11}
	if bad.Valid() {
		t.Error("end before start must be invalid")
	}

	wrongCount := Period{Start: NewDate(2025, time.June, 1), End: NewDate(2025, time.June, 10), Days: 9}
	if wrongCount.Valid() {
		t.Error("inconsistent day count must be invalid")
	}
}
