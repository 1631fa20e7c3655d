package lr

import (
	"fmt"

	"github.com/npillmayer/lr0/lr/sparse"
)

// transitionTable is the transition function of a CFSM, i.e. a matrix
// with rows for states and columns for grammar symbols.
type transitionTable struct {
	matrix *sparse.IntMatrix
}

// newTransitionTable builds the transition function from the edges of c.
// Every (state, symbol) pair must lead to at most one state; otherwise
// ErrNonFunctionalTransition is returned.
func newTransitionTable(c *CFSM) (*transitionTable, error) {
	m := sparse.NewIntMatrix(c.StateCount(), c.g.SymbolCount(), sparse.DefaultNullValue)
	t := &transitionTable{matrix: m}
	for _, e := range c.Transitions() {
		if e.Label == nil || int(e.From) >= m.M() || int(e.To) >= m.M() {
			return nil, fmt.Errorf("%w: dangling edge %v", ErrNonFunctionalTransition, e)
		}
		m.Add(int(e.From), e.Label.ID, int32(e.To))
		if _, second := m.Values(int(e.From), e.Label.ID); second != m.NullValue() {
			return nil, fmt.Errorf("%w: state %d has more than one transition on %v",
				ErrNonFunctionalTransition, e.From, e.Label)
		}
	}
	tracer().Debugf("transition table of size %d x %d with %d entries",
		m.M(), m.N(), m.ValueCount())
	return t, nil
}

func (t *transitionTable) lookup(from uint, A *Symbol) (uint, bool) {
	if int(from) >= t.matrix.M() || A.ID < 0 || A.ID >= t.matrix.N() {
		return 0, false
	}
	v := t.matrix.Value(int(from), A.ID)
	if v == t.matrix.NullValue() {
		return 0, false
	}
	return uint(v), true
}
