package services

import "testing"

func TestLetterGradeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89.999, "B"},
		{80, "B"},
		{79.5, "C"},
		{70, "C"},
		{69.999, "D"},
		{60, "D"},
		{59.999, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		if got := LetterGrade(tc.score); got != tc.want {
			t.Errorf("LetterGrade(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestGradePoints(t *testing.T) {
	cases := []struct {
		letter string
		want   float64
	}{
		{"A", 4.0},
		{"B", 3.0},
		{"C", 2.0},
		{"D", 1.0},
		{"F", 0.0},
		{"", 0.0},
		{"X", 0.0},
	}
	for _, tc := range cases {
		if got := GradePoint(tc.letter); got != tc.want {
			t.Errorf("GradePoint(%q) = %v, want %v", tc.letter, got, tc.want)
		}
	}
}
