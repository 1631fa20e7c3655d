package lr0

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	e := s.Extend(Span{1, 4})
	if e.From() != 1 || e.To() != 5 {
		t.Errorf("expected extended span to be (1…5), is %v", e)
	}
	if e.Len() != 4 {
		t.Errorf("expected length of %v to be 4, is %d", e, e.Len())
	}
	if !(Span{}).IsNull() {
		t.Errorf("expected zero span to be null")
	}
	if e.String() != "(1…5)" {
		t.Errorf("unexpected string for span: %s", e.String())
	}
}
