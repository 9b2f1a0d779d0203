package pot

import "testing"

func TestWrapZoom(t *testing.T) {
	tests := []struct {
		z, want int
	}{
		{1, 1}, {3, 3}, {5, 5},
		{6, 1}, {0, 5}, {-1, 4}, {11, 1},
	}
	for _, tt := range tests {
		if got := wrapZoom(tt.z, MinZoom, MaxZoom); got != tt.want {
			t.Errorf("wrapZoom(%d) = %d, want %d", tt.z, got, tt.want)
		}
	}
}

func TestZoomCyclesThroughDomain(t *testing.T) {
	g := NewGrid(DefaultOptions())

	g.ZoomOut()
	if g.Zoom() != 5 {
		t.Errorf("zoom out from 1 should wrap to 5, got %d", g.Zoom())
	}
	g.ZoomIn()
	if g.Zoom() != 1 {
		t.Errorf("zoom in from 5 should wrap to 1, got %d", g.Zoom())
	}
	g.ZoomIn()
	if m := g.Metrics(); m.CellWidth != 18 || m.CellHeight != 16 {
		t.Errorf("metrics at zoom 2 = %+v, want 18x16", m)
	}
}

// within 检查两个格子的位置和尺寸都在 ±1 以内
func within(a, b Cell) bool {
	return abs(a.X-b.X) <= 1 && abs(a.Y-b.Y) <= 1 && abs(a.W-b.W) <= 1 && abs(a.H-b.H) <= 1
}

func TestZoomRoundTrip(t *testing.T) {
	for start := MinZoom; start <= MaxZoom; start++ {
		s := NewSession(DefaultOptions())
		place(t, s, [2]int{243, 368}, [2]int{252, 368}, [2]int{261, 368}, [2]int{243, 360}, [2]int{261, 360})
		if err := s.Recompute(); err != nil {
			t.Fatalf("Recompute() error: %v", err)
		}
		for s.Grid().Zoom() != start {
			s.ZoomIn()
		}

		before := s.Snapshot()
		s.ZoomIn()
		s.ZoomOut()
		after := s.Snapshot()

		if after.Zoom != before.Zoom {
			t.Fatalf("zoom index = %d, want %d", after.Zoom, before.Zoom)
		}
		sets := []struct {
			name          string
			before, after []Cell
		}{
			{"build area", before.BuildArea, after.BuildArea},
			{"pot", before.Pot, after.Pot},
			{"soil", before.Soil, after.Soil},
		}
		for _, set := range sets {
			if len(set.before) != len(set.after) {
				t.Fatalf("zoom %d %s: size changed %d -> %d", start, set.name, len(set.before), len(set.after))
			}
			for i := range set.before {
				if !within(set.before[i], set.after[i]) {
					t.Errorf("zoom %d %s[%d]: %v -> %v", start, set.name, i, set.before[i], set.after[i])
				}
			}
		}
	}
}

func TestZoomPreservesDetection(t *testing.T) {
	s := NewSession(DefaultOptions())
	place(t, s, [2]int{243, 368}, [2]int{252, 368}, [2]int{261, 368}, [2]int{243, 360}, [2]int{261, 360})

	s.ZoomIn()
	if err := s.Recompute(); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}
	soil := s.Snapshot().Soil
	if len(soil) != 1 {
		t.Fatalf("expected 1 soil cell at zoom 2, got %d", len(soil))
	}
	if soil[0].W != 18 || soil[0].H != 16 {
		t.Errorf("soil size = %dx%d, want 18x16", soil[0].W, soil[0].H)
	}
}

func TestPanTranslatesEverything(t *testing.T) {
	s := NewSession(testOptions())
	place(t, s, concreteExample()...)
	if err := s.Recompute(); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	s.Pan(2, -1)
	snap := s.Snapshot()
	if snap.Pot[0].X != 18 || snap.Pot[0].Y != -8 {
		t.Errorf("first pot cell = (%d, %d), want (18, -8)", snap.Pot[0].X, snap.Pot[0].Y)
	}
	if snap.Soil[0].X != 27 || snap.Soil[0].Y != -8 {
		t.Errorf("soil cell = (%d, %d), want (27, -8)", snap.Soil[0].X, snap.Soil[0].Y)
	}

	if err := s.Recompute(); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}
	if got := s.Snapshot().Soil; len(got) != 1 || got[0].X != 27 {
		t.Errorf("soil after pan recompute = %v", got)
	}
}
