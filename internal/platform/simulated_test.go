package platform

import (
	"errors"
	"testing"
)

func TestSimulated_EnumerateKeepsInsertionOrder(t *testing.T) {
	s := NewSimulated(DefaultScreenSize,
		Window{ID: 3, Title: "c", Class: "kitty"},
		Window{ID: 1, Title: "a", Class: "kitty"},
		Window{ID: 2, Title: "b", Class: "kitty"},
	)

	windows, err := s.EnumerateVisibleWindows()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []WindowID{3, 1, 2}
	if len(windows) != len(want) {
		t.Fatalf("expected %d windows, got %d", len(want), len(windows))
	}
	for i, id := range want {
		if windows[i].ID != id {
			t.Fatalf("window %d: expected id %d, got %d", i, id, windows[i].ID)
		}
	}
}

func TestSimulated_EnumerateErrorReturnsPartialList(t *testing.T) {
	s := NewSimulated(DefaultScreenSize, Window{ID: 1, Title: "a", Class: "kitty"})
	boom := errors.New("enumeration interrupted")
	s.SetEnumerateError(boom)

	windows, err := s.EnumerateVisibleWindows()
	if !errors.Is(err, boom) {
		t.Fatalf("expected enumeration error, got %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected partial list of 1 window, got %d", len(windows))
	}
}

func TestSimulated_MutationsUpdateStateAndRecordCalls(t *testing.T) {
	s := NewSimulated(DefaultScreenSize, Window{ID: 7, Title: "a", Class: "kitty"})

	if err := s.Minimize(7); err != nil {
		t.Fatalf("minimize: %v", err)
	}
	if st, _ := s.State(7); !st.Minimized {
		t.Fatalf("expected window to be minimized")
	}
	if err := s.Restore(7); err != nil {
		t.Fatalf("restore: %v", err)
	}
	bounds := Rect{X: 5, Y: 5, Width: 300, Height: 200}
	if err := s.SetBounds(7, bounds); err != nil {
		t.Fatalf("set bounds: %v", err)
	}

	st, ok := s.State(7)
	if !ok {
		t.Fatalf("expected window state")
	}
	if st.Minimized {
		t.Fatalf("expected window to be restored")
	}
	if st.Bounds != bounds {
		t.Fatalf("expected bounds %v, got %v", bounds, st.Bounds)
	}

	calls := s.Calls()
	ops := []string{"minimize", "restore", "set_bounds"}
	if len(calls) != len(ops) {
		t.Fatalf("expected %d calls, got %d", len(ops), len(calls))
	}
	for i, op := range ops {
		if calls[i].Op != op {
			t.Fatalf("call %d: expected %s, got %s", i, op, calls[i].Op)
		}
	}
}

func TestSimulated_FailOnAndUnknownWindow(t *testing.T) {
	s := NewSimulated(DefaultScreenSize, Window{ID: 1, Title: "a", Class: "kitty"})
	denied := errors.New("denied")
	s.FailOn(1, "set_bounds", denied)

	if err := s.SetBounds(1, Rect{Width: 1, Height: 1}); !errors.Is(err, denied) {
		t.Fatalf("expected injected failure, got %v", err)
	}
	if err := s.Restore(1); err != nil {
		t.Fatalf("restore should not be affected: %v", err)
	}
	if err := s.Minimize(99); err == nil {
		t.Fatalf("expected error for unknown window")
	}
}

func TestRect_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"disjoint horizontally", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"disjoint vertically", Rect{0, 0, 10, 10}, Rect{0, 15, 10, 10}, false},
		{"shared corner area", Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
