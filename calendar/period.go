package calendar

// =============================================================================
// PERIOD - Inclusive span of calendar days
// =============================================================================

// Period is an inclusive span of calendar days. Days always equals the
// inclusive day count between Start and End (a one-day period has Days == 1).
type Period struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
	Days  int  `json:"days"`
}

// NewPeriod builds a period from its boundaries, computing the inclusive
// day count.
func NewPeriod(start, end Date) Period {
	return Period{
		Start: start,
		End:   end,
		Days:  DaysBetween(start, end) + 1,
	}
}

// Contains returns true if the date falls within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Valid reports whether the period is well-formed: boundaries set, end not
// before start, and Days consistent with the boundaries.
func (p Period) Valid() bool {
	if p.Start.IsZero() || p.End.IsZero() || p.End.Before(p.Start) {
		return false
	}
	return p.Days == DaysBetween(p.Start, p.End)+1
}

// String returns "[start, end]".
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
