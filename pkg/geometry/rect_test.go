package geometry

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("edges failed: got left=%v right=%v top=%v bottom=%v",
			r.Left(), r.Right(), r.Top(), r.Bottom())
	}

	center := r.Center()
	if center != NewVector2(25, 40) {
		t.Errorf("Center failed: expected (25, 40), got %v", center)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 50, 50)
	b := NewRect(25, 25, 50, 50)

	if !a.Overlaps(b) {
		t.Error("Overlaps failed: expected overlap")
	}
	if !b.Overlaps(a) {
		t.Error("Overlaps failed: expected symmetric overlap")
	}
}

func TestRectOverlapsTouchingEdges(t *testing.T) {
	a := NewRect(0, 0, 50, 50)
	b := NewRect(50, 0, 50, 50) // shares the right edge of a
	c := NewRect(0, 50, 50, 50) // shares the bottom edge of a

	if a.Overlaps(b) {
		t.Error("Overlaps failed: touching vertical edges must not overlap")
	}
	if a.Overlaps(c) {
		t.Error("Overlaps failed: touching horizontal edges must not overlap")
	}
}

func TestRectOverlapsDisjoint(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(100, 100, 10, 10)

	if a.Overlaps(b) {
		t.Error("Overlaps failed: disjoint rectangles must not overlap")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 100, 100)

	if !r.Contains(NewVector2(50, 50)) {
		t.Error("Contains failed: interior point")
	}
	if !r.Contains(NewVector2(0, 0)) {
		t.Error("Contains failed: boundary point")
	}
	if r.Contains(NewVector2(101, 50)) {
		t.Error("Contains failed: exterior point")
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	inner := NewRect(10, 10, 50, 50)
	flush := NewRect(0, 0, 100, 100)
	outside := NewRect(60, 60, 50, 50)

	if !outer.ContainsRect(inner) {
		t.Error("ContainsRect failed: inner rect")
	}
	if !outer.ContainsRect(flush) {
		t.Error("ContainsRect failed: identical rect")
	}
	if outer.ContainsRect(outside) {
		t.Error("ContainsRect failed: protruding rect")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 30, 10, 10)

	union := a.Union(b)
	expected := NewRect(0, 0, 30, 40)
	if union != expected {
		t.Errorf("Union failed: expected %v, got %v", expected, union)
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 10, 20, 20).Expand(5)
	expected := NewRect(5, 5, 30, 30)
	if r != expected {
		t.Errorf("Expand failed: expected %v, got %v", expected, r)
	}
}

func TestRectFromCenter(t *testing.T) {
	r := NewRectFromCenter(NewVector2(50, 50), 20, 10)
	expected := NewRect(40, 45, 20, 10)
	if r != expected {
		t.Errorf("NewRectFromCenter failed: expected %v, got %v", expected, r)
	}
}

func TestOverlapSpan(t *testing.T) {
	if span := OverlapSpan(0, 10, 5, 20); math.Abs(span-5) > 1e-10 {
		t.Errorf("OverlapSpan failed: expected 5, got %v", span)
	}
	if span := OverlapSpan(0, 10, 10, 20); span != 0 {
		t.Errorf("OverlapSpan failed: touching intervals, expected 0, got %v", span)
	}
	if span := OverlapSpan(0, 10, 15, 20); span != 0 {
		t.Errorf("OverlapSpan failed: disjoint intervals, expected 0, got %v", span)
	}
}
