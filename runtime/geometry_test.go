package runtime

import "testing"

func TestRect_Empty(t *testing.T) {
	cases := []struct {
		rect Rect
		want bool
	}{
		{Rect{0, 0, 10, 5}, false},
		{Rect{3, 3, 0, 5}, true},
		{Rect{3, 3, 5, 0}, true},
		{Rect{}, true},
		{Rect{0, 0, -1, 5}, true},
	}
	for _, c := range cases {
		if got := c.rect.Empty(); got != c.want {
			t.Fatalf("%+v.Empty() = %v, want %v", c.rect, got, c.want)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{2, 3, 4, 2}
	if !r.Contains(2, 3) {
		t.Fatalf("expected top-left corner inside")
	}
	if !r.Contains(5, 4) {
		t.Fatalf("expected bottom-right cell inside")
	}
	if r.Contains(6, 3) {
		t.Fatalf("expected right edge outside")
	}
	if r.Contains(2, 5) {
		t.Fatalf("expected bottom edge outside")
	}
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 10, 10}
	got := a.Intersect(b)
	want := Rect{5, 5, 5, 5}
	if got != want {
		t.Fatalf("intersect = %+v, want %+v", got, want)
	}

	if got := a.Intersect(Rect{20, 20, 5, 5}); !got.Empty() {
		t.Fatalf("expected empty intersection, got %+v", got)
	}
	if got := a.Intersect(Rect{}); !got.Empty() {
		t.Fatalf("expected empty intersection with zero rect, got %+v", got)
	}
}

func TestRect_Inset(t *testing.T) {
	got := Rect{1, 1, 10, 6}.Inset(2)
	want := Rect{3, 3, 6, 2}
	if got != want {
		t.Fatalf("inset = %+v, want %+v", got, want)
	}

	if got := (Rect{0, 0, 3, 3}).Inset(2); !got.Empty() {
		t.Fatalf("expected over-inset rect to be empty, got %+v", got)
	}
}
