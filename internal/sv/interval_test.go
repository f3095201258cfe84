package sv

import "testing"

func TestInterval_IsPoint(t *testing.T) {
	point := &Interval{Chrom: "1", Start: 100, End: 100, Type: Ins}
	if !point.IsPoint() {
		t.Error("Expected an insertion interval to be a point")
	}

	span := &Interval{Chrom: "1", Start: 100, End: 250, Type: Del}
	if span.IsPoint() {
		t.Error("Expected a deletion interval not to be a point")
	}
	if span.Span() != 150 {
		t.Errorf("Expected span 150, got %d", span.Span())
	}
}
