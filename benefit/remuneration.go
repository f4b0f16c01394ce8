package benefit

// =============================================================================
// STANDARD MONTHLY REMUNERATION LOOKUP
// =============================================================================

// StandardRemuneration maps a monthly salary to the nearest standard monthly
// remuneration bracket. Total function: every non-negative salary maps to
// exactly one table entry.
//
// Rule: salaries below the first bracket clamp to it, salaries at or above
// the last bracket clamp to it, and in between the midpoint of each adjacent
// pair is the boundary. The comparison is strict (<), so a salary exactly on
// a midpoint belongs to the upper bracket (63,000 maps to 68,000; 62,999
// maps to 58,000).
func (e *Engine) StandardRemuneration(salary int64) int64 {
	table := e.schedule.RemunerationTable

	if salary < table[0] {
		return table[0]
	}

	max := table[len(table)-1]
	if salary >= max {
		return max
	}

	for i := 0; i < len(table)-1; i++ {
		current := table[i]
		next := table[i+1]

		// Midpoint may be fractional for odd sums; comparing twice the
		// salary against the sum keeps the boundary exact in integers.
		if 2*salary < current+next {
			return current
		}
	}

	return max
}
