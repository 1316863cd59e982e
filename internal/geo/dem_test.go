package geo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSyntheticSampler(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     float64
	}{
		{42.0, -8.0, 104},
		{42.88, -8.54, 104.34},
		{-5, 1, 106},
		{0, 0, 100},
	}
	var s SyntheticSampler
	for _, tc := range tests {
		got, err := s.Elevation(tc.lat, tc.lon)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("Elevation(%v, %v) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}
}

const testGrid = `ncols        3
nrows        2
xllcorner    -9.0
yllcorner    42.0
cellsize     0.5
NODATA_value -9999
10 11 12
20 -9999 22
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGrid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dem.asc", testGrid)
	g, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	if g.NCols != 3 || g.NRows != 2 || g.CellSize != 0.5 {
		t.Fatalf("header = %+v", g)
	}

	tests := []struct {
		lat, lon float64
		want     float64
	}{
		{42.9, -8.9, 10}, // north row
		{42.9, -7.6, 12},
		{42.1, -8.9, 20}, // south row
		{42.1, -7.9, 22},
	}
	for _, tc := range tests {
		got, err := g.Elevation(tc.lat, tc.lon)
		if err != nil {
			t.Errorf("Elevation(%v, %v): %v", tc.lat, tc.lon, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Elevation(%v, %v) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}

	if _, err := g.Elevation(42.1, -8.4); err == nil {
		t.Error("expected error for nodata cell")
	}
	if _, err := g.Elevation(45, -8.5); err == nil {
		t.Error("expected error outside extent")
	}
}

func TestLoadGridCenterOrigin(t *testing.T) {
	src := "ncols 2\nnrows 1\nxllcenter 0.5\nyllcenter 0.5\ncellsize 1\n1 2\n"
	g, err := LoadGrid(writeFile(t, t.TempDir(), "c.asc", src))
	if err != nil {
		t.Fatal(err)
	}
	if g.XLL != 0 || g.YLL != 0 {
		t.Errorf("corner = (%v, %v), want (0, 0)", g.XLL, g.YLL)
	}
	if v, _ := g.Elevation(0.5, 1.5); v != 2 {
		t.Errorf("Elevation = %v, want 2", v)
	}
}

func TestLoadGridErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"short.asc":   "ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2 3\n",
		"badkey.asc":  "ncols 2\nrows 2\n",
		"badcell.asc": "ncols 2\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 0\n1 2\n",
	}
	for name, src := range tests {
		if _, err := LoadGrid(writeFile(t, dir, name, src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNewSampler(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dem.asc", testGrid)

	s, err := NewSampler(SourceGrid, path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != path {
		t.Errorf("Name() = %q", s.Name())
	}

	if _, err := NewSampler(SourceGrid, filepath.Join(dir, "missing.asc")); err == nil {
		t.Error("missing grid should be an error, not a synthetic fallback")
	}
	if _, err := NewSampler("srtm", ""); err == nil {
		t.Error("expected error for unknown source")
	}
	if s, err := NewSampler(SourceSynthetic, ""); err != nil || s.Name() != "synthetic terrain" {
		t.Errorf("synthetic: %v, %v", s, err)
	}
}
