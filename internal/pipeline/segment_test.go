package pipeline

import "testing"

func TestSegment(t *testing.T) {
	text := "Speed Breaker - 10\nRoad Signage: 15; Guard Rail - 5. Rumble Strip - 2 • Speed Hump - 1"
	lines := Segment(text)
	if len(lines) != 5 {
		t.Fatalf("len=%d lines=%q", len(lines), lines)
	}
	if lines[0] != "Speed Breaker - 10" {
		t.Fatalf("first=%q", lines[0])
	}
	if lines[4] != "Speed Hump - 1" {
		t.Fatalf("last=%q", lines[4])
	}
}

func TestSegmentEmpty(t *testing.T) {
	if got := Segment(""); len(got) != 0 {
		t.Fatalf("empty input: len=%d", len(got))
	}
	if got := Segment("  \n\n  "); len(got) != 0 {
		t.Fatalf("blank input: len=%d", len(got))
	}
}

func TestSegmentDropsEmptyFragments(t *testing.T) {
	lines := Segment("...;;\nGuard Rail - 5..")
	if len(lines) != 1 {
		t.Fatalf("len=%d lines=%q", len(lines), lines)
	}
}
