package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDrawASCIICrossSection(t *testing.T) {
	out := DrawASCIICrossSection(CrossSectionData{
		BasinName:   "Ona",
		BottomWidth: 10,
		SideSlope:   2,
		Depth:       2,
		Threshold:   2.5,
	})
	for _, want := range []string{"CHANNEL CROSS-SECTION: Ona", "WL d = 2.00 m", "threshold 2.50 m", "b = 10.00 m", "≈"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestDrawASCIICrossSectionRectangular(t *testing.T) {
	out := DrawASCIICrossSection(CrossSectionData{BasinName: "Canal", BottomWidth: 4, Depth: 1})
	if !strings.Contains(out, "│") {
		t.Errorf("vertical walls missing:\n%s", out)
	}
	if strings.Contains(out, "threshold") {
		t.Errorf("threshold drawn without one configured")
	}
}

func TestDrawHistogram(t *testing.T) {
	samples := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 10}
	out := DrawHistogram(samples, 3)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	var bars int
	for _, l := range lines {
		if strings.Contains(l, "│") {
			bars++
		}
	}
	if bars != 3 {
		t.Errorf("got %d bars, want 3:\n%s", bars, out)
	}
	if got := DrawHistogram([]float64{7, 7, 7}, 5); !strings.Contains(got, " 3\n") {
		t.Errorf("constant samples:\n%s", got)
	}
	if DrawHistogram(nil, 5) != "" {
		t.Error("expected empty output for no samples")
	}
}

func TestDrawRatingCurve(t *testing.T) {
	out := DrawRatingCurve([]float64{1, 2, 3}, []float64{5, 15, 30})
	if !strings.Contains(out, "depth 1.00 – 3.00 m") {
		t.Errorf("caption missing:\n%s", out)
	}
	if DrawRatingCurve(nil, nil) != "" {
		t.Error("expected empty output")
	}
}

func TestDrawSummaryBoxAligned(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"Q = 32.85 m³/s", "Regime: Subcritical"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n != width {
			t.Errorf("line %q has width %d, want %d", l, n, width)
		}
	}
}

func TestExportImages(t *testing.T) {
	dir := t.TempDir()

	section := filepath.Join(dir, "plots", "section.png")
	err := ExportCrossSection(CrossSectionData{BasinName: "Ona", BottomWidth: 10, SideSlope: 2, Depth: 3, Threshold: 4.5}, section)
	if err != nil {
		t.Fatalf("ExportCrossSection: %v", err)
	}

	hist := filepath.Join(dir, "hist.svg")
	err = ExportHistogram(HistogramData{Samples: []float64{10, 12, 12.5, 13, 15, 18}, Bins: 4, Mean: 13.4, P95: 17.3}, hist)
	if err != nil {
		t.Fatalf("ExportHistogram: %v", err)
	}

	noExt := filepath.Join(dir, "section")
	if err := ExportCrossSection(CrossSectionData{BasinName: "Ona", BottomWidth: 10, Depth: 1}, noExt); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{section, hist, noExt + ".png"} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", path, err)
		}
	}

	if err := ExportHistogram(HistogramData{}, filepath.Join(dir, "empty.png")); err == nil {
		t.Error("expected error for empty samples")
	}
}
