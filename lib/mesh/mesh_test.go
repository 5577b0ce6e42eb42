package mesh

import "testing"

func TestFlatten(t *testing.T) {
	got := Triangle.Flatten()
	want := []float32{-0.5, -0.5, 0.5, -0.5, 0.0, 0.5}
	if len(got) != len(want) {
		t.Fatalf("Flatten() has %d floats, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Flatten()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCount(t *testing.T) {
	if !Quad.Indexed() || Quad.Count() != 6 {
		t.Errorf("quad: indexed=%v count=%d, want indexed with 6", Quad.Indexed(), Quad.Count())
	}
	if Triangle.Indexed() || Triangle.Count() != 3 {
		t.Errorf("triangle: indexed=%v count=%d, want 3 vertices", Triangle.Indexed(), Triangle.Count())
	}
}

func TestIndicesInRange(t *testing.T) {
	for _, m := range []Mesh{Quad, Triangle} {
		if len(m.Indices)%3 != 0 {
			t.Errorf("%s: %d indices is not a whole number of triangles", m.Name, len(m.Indices))
		}
		for _, idx := range m.Indices {
			if int(idx) >= len(m.Positions) {
				t.Errorf("%s: index %d out of range for %d vertices", m.Name, idx, len(m.Positions))
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"quad", "triangle"} {
		m, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if m.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, m.Name)
		}
	}
	if _, err := ByName("cube"); err == nil {
		t.Error("ByName(\"cube\") should fail")
	}
}
