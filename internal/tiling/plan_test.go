package tiling

import (
	"reflect"
	"testing"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		total     int
		pref      Preference
		wantCols  int
		wantCount []int
	}{
		{-3, Vertical, 0, []int{}},
		{0, Vertical, 0, []int{}},
		{0, Horizontal, 0, []int{}},
		{1, Vertical, 1, []int{1}},
		{1, Horizontal, 1, []int{1}},
		{2, Vertical, 1, []int{2}},
		{2, Horizontal, 2, []int{1, 1}},
		{3, Vertical, 2, []int{2, 1}},
		{4, Vertical, 2, []int{2, 2}},
		{5, Vertical, 2, []int{3, 2}},
		{6, Vertical, 2, []int{3, 3}},
		{7, Vertical, 3, []int{3, 2, 2}},
		{8, Vertical, 3, []int{3, 3, 2}},
		{9, Vertical, 3, []int{3, 3, 3}},
		{10, Vertical, 4, []int{3, 3, 2, 2}},
		{13, Vertical, 4, []int{4, 3, 3, 3}},
		{3, Horizontal, 2, []int{2, 1}},
		{4, Horizontal, 2, []int{2, 2}},
		{5, Horizontal, 3, []int{2, 2, 1}},
		{10, Horizontal, 4, []int{3, 3, 2, 2}},
		{17, Horizontal, 5, []int{4, 4, 3, 3, 3}},
	}

	for _, tt := range tests {
		got := Plan(tt.total, tt.pref)
		if got.Columns != tt.wantCols || !reflect.DeepEqual(got.PerColumn, tt.wantCount) {
			t.Errorf("Plan(%d, %s) = {%d %v}, want {%d %v}",
				tt.total, tt.pref, got.Columns, got.PerColumn, tt.wantCols, tt.wantCount)
		}
	}
}

func TestPlan_Invariants(t *testing.T) {
	for _, pref := range []Preference{Vertical, Horizontal} {
		for total := 0; total <= 60; total++ {
			plan := Plan(total, pref)

			if len(plan.PerColumn) != plan.Columns {
				t.Fatalf("Plan(%d, %s): %d columns but %d counts", total, pref, plan.Columns, len(plan.PerColumn))
			}
			if plan.Total() != total {
				t.Fatalf("Plan(%d, %s): counts sum to %d", total, pref, plan.Total())
			}
			if (plan.Columns == 0) != (total == 0) {
				t.Fatalf("Plan(%d, %s): columns=%d", total, pref, plan.Columns)
			}
			if pref == Vertical && plan.Columns > maxVerticalColumns {
				t.Fatalf("Plan(%d, vertical): %d columns exceeds cap", total, plan.Columns)
			}
			for i, n := range plan.PerColumn {
				if n < 0 {
					t.Fatalf("Plan(%d, %s): negative count at column %d", total, pref, i)
				}
				if i > 0 && n > plan.PerColumn[i-1] {
					t.Fatalf("Plan(%d, %s): remainder not front-loaded: %v", total, pref, plan.PerColumn)
				}
			}
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	for _, pref := range []Preference{Vertical, Horizontal} {
		for total := 0; total <= 30; total++ {
			a, b := Plan(total, pref), Plan(total, pref)
			if !reflect.DeepEqual(a, b) {
				t.Fatalf("Plan(%d, %s) not deterministic: %v vs %v", total, pref, a, b)
			}
		}
	}
}

func TestCeilSqrt(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 4: 2, 5: 3, 9: 3, 10: 4, 16: 4, 17: 5}
	for n, want := range cases {
		if got := ceilSqrt(n); got != want {
			t.Errorf("ceilSqrt(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestParsePreference(t *testing.T) {
	tests := []struct {
		in      string
		want    Preference
		wantErr bool
	}{
		{"vertical", Vertical, false},
		{"", Vertical, false},
		{" Horizontal ", Horizontal, false},
		{"diagonal", Vertical, true},
	}
	for _, tt := range tests {
		got, err := ParsePreference(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePreference(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParsePreference(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
