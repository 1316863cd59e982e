package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CrossSectionData holds data for drawing a trapezoidal channel section
type CrossSectionData struct {
	BasinName string

	// Channel geometry
	BottomWidth float64 // b (m)
	SideSlope   float64 // z (H:V)

	// Levels (m above bed)
	Depth      float64 // water depth
	BankHeight float64 // drawn bank height, 1.5 × depth when zero
	Threshold  float64 // bank-full threshold, 0 if none
}

func (d CrossSectionData) bankHeight() float64 {
	if d.BankHeight > 0 {
		return d.BankHeight
	}
	return d.Depth * 1.5
}

// DrawASCIICrossSection creates an ASCII representation of the channel with
// the water level and threshold marked
func DrawASCIICrossSection(data CrossSectionData) string {
	var sb strings.Builder

	widthChars := 50
	heightChars := 12

	h := data.bankHeight()
	topWidth := data.BottomWidth + 2*data.SideSlope*h
	scale := float64(widthChars) / topWidth
	center := float64(widthChars) / 2

	columns := func(y float64) (int, int) {
		half := data.BottomWidth/2 + data.SideSlope*y
		left := int(math.Round(center - half*scale))
		right := int(math.Round(center + half*scale))
		return max(left, 0), min(right, widthChars)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CHANNEL CROSS-SECTION: %s\n", data.BasinName))
	sb.WriteString("  ──────────────────────\n")

	surfaceDrawn := false
	thresholdDrawn := data.Threshold <= 0 || data.Threshold > h
	for i := 0; i < heightChars; i++ {
		y := h * float64(heightChars-i) / float64(heightChars)
		left, right := columns(y)

		line := []rune(strings.Repeat(" ", widthChars+1))
		water := y <= data.Depth+1e-9
		fill := ' '
		if water {
			fill = '≈'
			if !surfaceDrawn {
				fill = '~'
			}
		}
		for c := left + 1; c < right; c++ {
			line[c] = fill
		}
		if data.SideSlope == 0 {
			line[left], line[right] = '│', '│'
		} else {
			line[left], line[right] = '\\', '/'
		}
		sb.WriteString("  " + strings.TrimRight(string(line), " "))

		switch {
		case water && !surfaceDrawn:
			sb.WriteString(fmt.Sprintf("  ◄─ WL d = %.2f m", data.Depth))
			surfaceDrawn = true
		case !thresholdDrawn && y <= data.Threshold+1e-9:
			sb.WriteString(fmt.Sprintf("  ◄─ threshold %.2f m", data.Threshold))
			thresholdDrawn = true
		}
		sb.WriteString("\n")
	}

	left, right := columns(0)
	sb.WriteString("  " + strings.Repeat(" ", left) + "└" + strings.Repeat("─", max(right-left-1, 0)) + "┘")
	sb.WriteString(fmt.Sprintf("  b = %.2f m\n", data.BottomWidth))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ~~~ = Water surface\n")
	sb.WriteString("  ≈≈≈ = Flow area\n")
	sb.WriteString(fmt.Sprintf("  Side slope z = %.2f (H:V), top width at WL = %.2f m\n",
		data.SideSlope, data.BottomWidth+2*data.SideSlope*data.Depth))

	return sb.String()
}

// DrawRatingCurve plots discharge against depth step using asciigraph.
// depths and discharges must have the same length
func DrawRatingCurve(depths, discharges []float64) string {
	if len(discharges) == 0 {
		return ""
	}
	caption := fmt.Sprintf("Q (m³/s) for depth %.2f – %.2f m", depths[0], depths[len(depths)-1])
	graph := asciigraph.Plot(discharges,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
	return "\n" + graph + "\n"
}

// DrawHistogram creates an ASCII histogram of samples
func DrawHistogram(samples []float64, bins int) string {
	var sb strings.Builder
	if len(samples) == 0 || bins < 1 {
		return ""
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]

	var counts []float64
	var dividers []float64
	if lo == hi {
		counts = []float64{float64(len(sorted))}
		dividers = []float64{lo, hi}
	} else {
		dividers = floats.Span(make([]float64, bins+1), lo, math.Nextafter(hi, math.Inf(1)))
		counts = stat.Histogram(nil, dividers, sorted, nil)
	}

	barWidth := 40
	peak := floats.Max(counts)

	sb.WriteString("\n")
	sb.WriteString("  DISCHARGE DISTRIBUTION\n")
	sb.WriteString("  ──────────────────────\n\n")
	for i, c := range counts {
		barLen := int(c / peak * float64(barWidth))
		sb.WriteString(fmt.Sprintf("  %8.2f – %-8.2f │%s %d\n", dividers[i], dividers[i+1], strings.Repeat("█", barLen), int(c)))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
