package tiling

import (
	"errors"
	"testing"

	"github.com/1broseidon/termgrid/internal/platform"
)

var fullHD = platform.ScreenSize{Width: 1920, Height: 1080}

func TestAssign_SixWindowsVertical(t *testing.T) {
	plan := Plan(6, Vertical)
	rects, err := Assign(plan, fullHD, 5, Vertical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rects) != 6 {
		t.Fatalf("expected 6 rects, got %d", len(rects))
	}

	// width = (1920-15)/2 = 952, height = (1080-20)/3 = 353
	want := []platform.Rect{
		{X: 5, Y: 5, Width: 952, Height: 353},
		{X: 5, Y: 363, Width: 952, Height: 353},
		{X: 5, Y: 721, Width: 952, Height: 353},
		{X: 962, Y: 5, Width: 952, Height: 353},
		{X: 962, Y: 363, Width: 952, Height: 353},
		{X: 962, Y: 721, Width: 952, Height: 353},
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d: expected %v, got %v", i, want[i], rects[i])
		}
	}
}

func TestAssign_VerticalHeightPerColumn(t *testing.T) {
	// [3,2]: the second column splits the same height over two rows.
	rects, err := Assign(Plan(5, Vertical), fullHD, 5, Vertical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rects[0].Height != 353 {
		t.Fatalf("expected first column height 353, got %d", rects[0].Height)
	}
	// (1080-20)/2 = 530
	if rects[3].Height != 530 || rects[4].Y != 5+530+5 {
		t.Fatalf("expected second column height 530, got %v / %v", rects[3], rects[4])
	}
}

func TestAssign_VerticalClampsHeight(t *testing.T) {
	rects, err := Assign(Plan(1, Vertical), fullHD, 5, Vertical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rects[0].Height != MaxWindowHeight {
		t.Fatalf("expected height clamped to %d, got %d", MaxWindowHeight, rects[0].Height)
	}
	if rects[0].Width != 1910 {
		t.Fatalf("expected width 1910, got %d", rects[0].Width)
	}

	small := platform.ScreenSize{Width: 800, Height: 600}
	rects, err = Assign(Plan(9, Vertical), small, 5, Vertical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range rects {
		if r.Height != MinWindowHeight {
			t.Fatalf("rect %d: expected height clamped to %d, got %d", i, MinWindowHeight, r.Height)
		}
	}

	// A gap that eats all vertical space still yields the minimum height.
	// [2,1]: width = (1920-1200)/2 = 360.
	rects, err = Assign(Plan(3, Vertical), fullHD, 400, Vertical)
	if err != nil {
		t.Fatalf("unexpected error for large gap: %v", err)
	}
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	for i, r := range rects {
		if r.Width != 360 || r.Height != MinWindowHeight {
			t.Fatalf("rect %d: expected 360x%d, got %v", i, MinWindowHeight, r)
		}
	}
}

func TestAssign_HorizontalRowMajor(t *testing.T) {
	plan := Plan(5, Horizontal) // [2,2,1]
	rects, err := Assign(plan, fullHD, 5, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// width = (1920-20)/3 = 633, height = (1080-15)/2 = 532
	want := []platform.Rect{
		{X: 5, Y: 5, Width: 633, Height: 532},
		{X: 643, Y: 5, Width: 633, Height: 532},
		{X: 1281, Y: 5, Width: 633, Height: 532},
		{X: 5, Y: 542, Width: 633, Height: 532},
		{X: 643, Y: 542, Width: 633, Height: 532},
	}
	if len(rects) != len(want) {
		t.Fatalf("expected %d rects, got %d", len(want), len(rects))
	}
	for i := range want {
		if rects[i] != want[i] {
			t.Fatalf("rect %d: expected %v, got %v", i, want[i], rects[i])
		}
	}
}

func TestAssign_HorizontalClampsWidth(t *testing.T) {
	rects, err := Assign(Plan(2, Horizontal), fullHD, 5, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range rects {
		if r.Width != MaxWindowWidth {
			t.Fatalf("rect %d: expected width %d, got %d", i, MaxWindowWidth, r.Width)
		}
	}
	if rects[1].X != 5+MaxWindowWidth+5 {
		t.Fatalf("expected second column at x=%d, got %d", 5+MaxWindowWidth+5, rects[1].X)
	}

	narrow := platform.ScreenSize{Width: 1024, Height: 768}
	rects, err = Assign(Plan(16, Horizontal), narrow, 5, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range rects {
		if r.Width != MinWindowWidth {
			t.Fatalf("rect %d: expected width %d, got %d", i, MinWindowWidth, r.Width)
		}
	}

	// A gap wider than the screen still yields the minimum width.
	// [2,2]: height = (1080-600)/2 = 240.
	rects, err = Assign(Plan(4, Horizontal), platform.ScreenSize{Width: 500, Height: 1080}, 200, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error for large gap: %v", err)
	}
	if len(rects) != 4 {
		t.Fatalf("expected 4 rects, got %d", len(rects))
	}
	for i, r := range rects {
		if r.Width != MinWindowWidth || r.Height != 240 {
			t.Fatalf("rect %d: expected %dx240, got %v", i, MinWindowWidth, r)
		}
	}
}

func TestAssign_EmptyPlan(t *testing.T) {
	for _, pref := range []Preference{Vertical, Horizontal} {
		rects, err := Assign(Plan(0, pref), fullHD, 5, pref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rects) != 0 {
			t.Fatalf("expected no rects, got %d", len(rects))
		}
	}

	rects, err := Assign(GridPlan{Columns: 2, PerColumn: []int{0, 0}}, fullHD, 5, Vertical)
	if err != nil || len(rects) != 0 {
		t.Fatalf("expected empty result for zero rows, got %v, %v", rects, err)
	}
}

func TestAssign_InsufficientSpace(t *testing.T) {
	tiny := platform.ScreenSize{Width: 100, Height: 100}
	for _, pref := range []Preference{Vertical, Horizontal} {
		_, err := Assign(Plan(4, pref), tiny, 60, pref)
		if !errors.Is(err, ErrInsufficientSpace) {
			t.Fatalf("%s: expected ErrInsufficientSpace, got %v", pref, err)
		}
	}
}

func TestAssign_MismatchedPlan(t *testing.T) {
	_, err := Assign(GridPlan{Columns: 3, PerColumn: []int{1, 1}}, fullHD, 5, Vertical)
	if err == nil {
		t.Fatalf("expected error for inconsistent plan")
	}
}

func TestAssign_Properties(t *testing.T) {
	screens := []platform.ScreenSize{
		{Width: 800, Height: 600},
		{Width: 1280, Height: 720},
		{Width: 1920, Height: 1080},
		{Width: 3840, Height: 2160},
	}

	for _, pref := range []Preference{Vertical, Horizontal} {
		for _, screen := range screens {
			for _, gap := range []int{0, 5, 20} {
				for total := 0; total <= 40; total++ {
					rects, err := Assign(Plan(total, pref), screen, gap, pref)
					if err != nil {
						t.Fatalf("%s %dx%d gap=%d total=%d: %v", pref, screen.Width, screen.Height, gap, total, err)
					}
					if len(rects) != total {
						t.Fatalf("%s total=%d: got %d rects", pref, total, len(rects))
					}
					for i, r := range rects {
						if r.Width <= 0 || r.Height <= 0 {
							t.Fatalf("%s total=%d: rect %d has non-positive size %v", pref, total, i, r)
						}
						if pref == Vertical && (r.Height < MinWindowHeight || r.Height > MaxWindowHeight) {
							t.Fatalf("vertical total=%d: height %d outside clamp", total, r.Height)
						}
						if pref == Horizontal && (r.Width < MinWindowWidth || r.Width > MaxWindowWidth) {
							t.Fatalf("horizontal total=%d: width %d outside clamp", total, r.Width)
						}
						for j := i + 1; j < len(rects); j++ {
							if r.Overlaps(rects[j]) {
								t.Fatalf("%s %dx%d gap=%d total=%d: rect %d %v overlaps rect %d %v",
									pref, screen.Width, screen.Height, gap, total, i, r, j, rects[j])
							}
						}
					}
				}
			}
		}
	}
}
