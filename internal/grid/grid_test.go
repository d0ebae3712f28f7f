package grid

import "testing"

func TestRotateClosed(t *testing.T) {
	for _, d := range Directions {
		for n := -17; n <= 17; n++ {
			r := d.Rotate(n)
			if r < North || r > Northwest {
				t.Fatalf("%v.Rotate(%d) = %d, outside the direction set", d, n, int(r))
			}
		}
		if d.Rotate(8) != d {
			t.Errorf("%v.Rotate(8) = %v, want %v", d, d.Rotate(8), d)
		}
		if d.Rotate(0) != d {
			t.Errorf("%v.Rotate(0) = %v, want %v", d, d.Rotate(0), d)
		}
	}
}

func TestRotateComposition(t *testing.T) {
	for _, d := range Directions {
		for a := -8; a <= 8; a++ {
			for b := -8; b <= 8; b++ {
				if d.Rotate(a).Rotate(b) != d.Rotate(a+b) {
					t.Fatalf("%v: Rotate(%d).Rotate(%d) != Rotate(%d)", d, a, b, a+b)
				}
			}
		}
	}
}

func TestVectorsAreUnitMoves(t *testing.T) {
	seen := make(map[Pos]bool)
	for _, d := range Directions {
		v := d.Vector()
		if v == (Pos{0, 0}) {
			t.Errorf("%v has zero vector", d)
		}
		if abs(v.X) > 1 || abs(v.Y) > 1 {
			t.Errorf("%v vector %+v is not a unit move", d, v)
		}
		if seen[v] {
			t.Errorf("duplicate vector %+v", v)
		}
		seen[v] = true
	}
}

func TestRotateHalfTurnNegatesVector(t *testing.T) {
	for _, d := range Directions {
		v := d.Vector()
		o := d.Rotate(4).Vector()
		if o.X != -v.X || o.Y != -v.Y {
			t.Errorf("%v.Rotate(4) vector = %+v, want %+v negated", d, o, v)
		}
	}
}

func TestChiralityRotate(t *testing.T) {
	if Clockwise.Rotate(North, 1) != Northeast {
		t.Errorf("Clockwise.Rotate(N, 1) = %v, want NE", Clockwise.Rotate(North, 1))
	}
	if Counterclockwise.Rotate(North, 1) != Northwest {
		t.Errorf("Counterclockwise.Rotate(N, 1) = %v, want NW", Counterclockwise.Rotate(North, 1))
	}
	// The two senses are mirror images of each other.
	for _, d := range Directions {
		for n := -8; n <= 8; n++ {
			if Clockwise.Rotate(d, n) != Counterclockwise.Rotate(d, -n) {
				t.Fatalf("senses are not mirrored at %v, n=%d", d, n)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{Pos{0, 0}, Pos{0, 0}, 0},
		{Pos{0, 0}, Pos{3, 0}, 3},
		{Pos{0, 0}, Pos{0, -4}, 4},
		{Pos{0, 0}, Pos{3, 3}, 3},
		{Pos{2, 1}, Pos{-3, 4}, 5},
		{Pos{-1, -1}, Pos{2, -7}, 6},
	}
	for _, tc := range cases {
		if got := tc.a.Distance(tc.b); got != tc.want {
			t.Errorf("Distance(%+v, %+v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := tc.b.Distance(tc.a); got != tc.want {
			t.Errorf("Distance(%+v, %+v) = %d, want %d (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestShift(t *testing.T) {
	p := Pos{3, 5}
	if got := p.Shift(East, 4); got != (Pos{7, 5}) {
		t.Errorf("Shift(E, 4) = %+v, want {7 5}", got)
	}
	if got := p.Shift(Northwest, 2); got != (Pos{1, 3}) {
		t.Errorf("Shift(NW, 2) = %+v, want {1 3}", got)
	}
	if got := p.Shift(South, 0); got != p {
		t.Errorf("Shift(S, 0) = %+v, want %+v", got, p)
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	// Every stem paired with its 45-degree neighbors, all run lengths
	// up to a few steps: rebuilding from the decomposition must give
	// back the original displacement.
	for _, stem := range Directions {
		for _, turn := range []int{1, -1} {
			leaf := stem.Rotate(turn)
			for a := 0; a <= 4; a++ {
				for b := 0; b <= 4; b++ {
					delta := Pos{}.Shift(stem, a).Add(Pos{}.Shift(leaf, b))
					gotA, gotB := Decompose(delta, stem, leaf)
					if gotA != a || gotB != b {
						t.Fatalf("Decompose(%+v, %v, %v) = (%d, %d), want (%d, %d)",
							delta, stem, leaf, gotA, gotB, a, b)
					}
				}
			}
		}
	}
}
