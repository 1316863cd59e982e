// Package hazard classifies station water levels against a bank threshold
// and produces engineering recommendations.
package hazard

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
)

// Reading is one station water level observation.
type Reading struct {
	Station string
	Level   float64 // m
}

// Status is the hazard class of a reading.
type Status string

const (
	StatusSafe     Status = "SAFE"
	StatusWarning  Status = "WARNING"
	StatusHighRisk Status = "HIGH RISK"
)

// WarningFraction of the threshold at which a reading becomes a warning.
const WarningFraction = 0.7

// Classify rates a level against threshold.
func Classify(level, threshold float64) Status {
	switch {
	case level >= threshold:
		return StatusHighRisk
	case level >= threshold*WarningFraction:
		return StatusWarning
	default:
		return StatusSafe
	}
}

// Row is a classified reading.
type Row struct {
	Reading
	Status Status
	Excess float64 // level - threshold, negative when below
	Advice Advice
}

// Report is the classified set of readings for one threshold.
type Report struct {
	Threshold float64
	Rows      []Row
}

// Breaches returns the rows whose level is strictly above the threshold.
func (r *Report) Breaches() []Row {
	var out []Row
	for _, row := range r.Rows {
		if row.Excess > 0 {
			out = append(out, row)
		}
	}
	return out
}

// Count returns how many rows have the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, row := range r.Rows {
		if row.Status == s {
			n++
		}
	}
	return n
}

// BuildReport classifies readings against threshold.
func BuildReport(readings []Reading, threshold float64) (*Report, error) {
	if !(threshold > 0) {
		return nil, &hydraulics.InvalidParameterError{Param: "threshold", Value: threshold, Reason: "must be positive"}
	}
	rep := &Report{Threshold: threshold}
	for _, rd := range readings {
		rep.Rows = append(rep.Rows, Row{
			Reading: rd,
			Status:  Classify(rd.Level, threshold),
			Excess:  rd.Level - threshold,
			Advice:  Advise(rd.Station, rd.Level, threshold),
		})
	}
	return rep, nil
}

// LoadReadings reads a CSV file with a header row containing "station" and
// "level" columns. Other columns are ignored.
func LoadReadings(path string) ([]Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open readings: %w", err)
	}
	defer f.Close()
	return ParseReadings(f)
}

// ParseReadings reads station readings from CSV.
func ParseReadings(r io.Reader) ([]Reading, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	stationCol, levelCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "station":
			stationCol = i
		case "level":
			levelCol = i
		}
	}
	if stationCol < 0 {
		return nil, &hydraulics.ConfigurationError{Field: "station", Reason: "column missing from header"}
	}
	if levelCol < 0 {
		return nil, &hydraulics.ConfigurationError{Field: "level", Reason: "column missing from header"}
	}

	var readings []Reading
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) <= stationCol || len(rec) <= levelCol {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, max(stationCol, levelCol)+1, len(rec))
		}
		level, err := strconv.ParseFloat(strings.TrimSpace(rec[levelCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: level %q: %w", line, rec[levelCol], err)
		}
		readings = append(readings, Reading{Station: strings.TrimSpace(rec[stationCol]), Level: level})
	}
	return readings, nil
}
