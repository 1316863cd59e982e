package hazard

import "fmt"

// Severity of a threshold breach.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMinor
	SeverityMajor
	SeverityCatastrophic
)

func (s Severity) String() string {
	switch s {
	case SeverityMinor:
		return "Minor Breach"
	case SeverityMajor:
		return "Major Breach"
	case SeverityCatastrophic:
		return "CATASTROPHIC FAILURE"
	default:
		return "No Breach"
	}
}

// Excess limits (m above threshold) separating the severities.
const (
	MinorBreachLimit = 1.0
	MajorBreachLimit = 2.5
)

// Advice is an engineering recommendation for one station.
type Advice struct {
	Severity       Severity
	Excess         float64
	Recommendation string
}

// Advise recommends an intervention for a station level.
func Advise(station string, level, threshold float64) Advice {
	excess := level - threshold
	a := Advice{Excess: excess}

	switch {
	case excess <= 0:
		a.Recommendation = "No intervention needed."
	case excess < MinorBreachLimit:
		a.Severity = SeverityMinor
		a.Recommendation = fmt.Sprintf("Recommend temporary sandbagging along the %s banks.", station)
	case excess < MajorBreachLimit:
		a.Severity = SeverityMajor
		a.Recommendation = "Evacuate low-lying areas. Deploy mobile flood barriers immediately."
	default:
		a.Severity = SeverityCatastrophic
		a.Recommendation = "Dam failure imminent? Immediate aerial evacuation required. Trigger National Emergency Protocol."
	}
	return a
}

// String formats the advice as a single line.
func (a Advice) String() string {
	if a.Severity == SeverityNone {
		return a.Recommendation
	}
	return fmt.Sprintf("%s (%.2fm): %s", a.Severity, a.Excess, a.Recommendation)
}
