package benefit

import "testing"

// =============================================================================
// STANDARD REMUNERATION LOOKUP TESTS
// =============================================================================

func TestStandardRemuneration_ClampsBelowFirstBracket(t *testing.T) {
	e := NewDefaultEngine()

	for _, salary := range []int64{0, 1, 30000, 57999} {
		if got := e.StandardRemuneration(salary); got != 58000 {
			t.Errorf("salary %d: expected 58000, got %d", salary, got)
		}
	}
}

func TestStandardRemuneration_ClampsAtLastBracket(t *testing.T) {
	e := NewDefaultEngine()

	for _, salary := range []int64{500000, 500001, 1500000, 10000000} {
		if got := e.StandardRemuneration(salary); got != 500000 {
			t.Errorf("salary %d: expected 500000, got %d", salary, got)
		}
	}
}

func TestStandardRemuneration_MidpointBoundary(t *testing.T) {
	// GIVEN: adjacent brackets 58000 and 68000 with midpoint 63000
	// WHEN: looking up salaries on either side of the midpoint
	// THEN: the midpoint itself belongs to the upper bracket (strict <)
	e := NewDefaultEngine()

	cases := []struct {
		salary int64
		want   int64
	}{
		{62999, 58000},
		{63000, 68000},
		{63001, 68000},
		{209999, 200000}, // midpoint of 200000/220000 is 210000
		{210000, 220000},
		{484999, 470000}, // midpoint of 470000/500000 is 485000
		{485000, 500000},
	}

	for _, c := range cases {
		if got := e.StandardRemuneration(c.salary); got != c.want {
			t.Errorf("salary %d: expected %d, got %d", c.salary, c.want, got)
		}
	}
}

func TestStandardRemuneration_AlwaysReturnsTableValue(t *testing.T) {
	// Total function: every salary maps to some table entry.
	e := NewDefaultEngine()
	table := e.Schedule().RemunerationTable

	inTable := func(v int64) bool {
		for _, entry := range table {
			if entry == v {
				return true
			}
		}
		return false
	}

	for salary := int64(0); salary <= 600000; salary += 1357 {
		if got := e.StandardRemuneration(salary); !inTable(got) {
			t.Fatalf("salary %d mapped to %d, which is not in the table", salary, got)
		}
	}
}
