package t2048

import "testing"

// fixedRand replays fixed values. Exhausted queues return 0 for Intn and
// 0.99 for Float64, i.e. the first empty cell and a 2.
type fixedRand struct {
	ints   []int
	floats []float64
}

func (r *fixedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *fixedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func mustGrid(t *testing.T, rows [][]int) Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	if err != nil {
		t.Fatalf("GridFromRows(%v) failed: %v", rows, err)
	}
	return g
}

// sessionWith builds a session and replaces its grid with rows.
func sessionWith(t *testing.T, v Variant, rows [][]int, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(len(rows), v, append([]Option{WithRand(&fixedRand{})}, opts...)...)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.grid = mustGrid(t, rows)
	s.terminal = IsTerminal(s.grid, v)
	return s
}
