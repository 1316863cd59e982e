package hydraulics

import "math"

// Gravity is the gravitational acceleration (m/s²).
const Gravity = 9.81

// FlowRegime classifies flow by its Froude number.
type FlowRegime string

const (
	Subcritical   FlowRegime = "Subcritical"
	Critical      FlowRegime = "Critical"
	Supercritical FlowRegime = "Supercritical"
)

// DischargeResult holds the uniform-flow state at a given depth.
type DischargeResult struct {
	Discharge float64 // Q (m³/s)
	Velocity  float64 // V (m/s)
	Area      float64 // A (m²)
	Perimeter float64 // P (m)
	Froude    float64 // V / √(g·A/T)
}

// Regime reports the flow regime. Froude numbers within 1% of unity are
// treated as critical.
func (r DischargeResult) Regime() FlowRegime {
	switch {
	case r.Froude < 0.99:
		return Subcritical
	case r.Froude > 1.01:
		return Supercritical
	default:
		return Critical
	}
}

// Rounded returns the result rounded to two decimals for display.
func (r DischargeResult) Rounded() DischargeResult {
	return DischargeResult{
		Discharge: Round(r.Discharge, 2),
		Velocity:  Round(r.Velocity, 2),
		Area:      Round(r.Area, 2),
		Perimeter: Round(r.Perimeter, 2),
		Froude:    Round(r.Froude, 2),
	}
}

// manning returns the Manning's equation discharge through section g.
func manning(n, s float64, g Geometry) float64 {
	return (1 / n) * g.Area * math.Pow(g.Radius, 2.0/3.0) * math.Sqrt(s)
}

// Discharge computes the normal-flow discharge at depth using the
// profile's own roughness.
func (p Profile) Discharge(depth float64) (DischargeResult, error) {
	return p.DischargeWithRoughness(depth, p.ManningN)
}

// DischargeWithRoughness computes the normal-flow discharge at depth with
// roughness n in place of the profile's Manning n. The profile is left
// untouched, so concurrent callers may share it.
func (p Profile) DischargeWithRoughness(depth, n float64) (DischargeResult, error) {
	q := p.WithRoughness(n)
	if err := q.Validate(); err != nil {
		return DischargeResult{}, err
	}
	if err := mustBePositive("depth", depth); err != nil {
		return DischargeResult{}, err
	}
	return q.discharge(depth), nil
}

// discharge assumes a validated profile and a positive depth.
func (p Profile) discharge(depth float64) DischargeResult {
	g := trapezoid(p.ChannelWidth, p.SideSlope, depth)
	r := DischargeResult{
		Discharge: manning(p.ManningN, p.Slope, g),
		Area:      g.Area,
		Perimeter: g.Perimeter,
	}
	if g.Area > 0 {
		r.Velocity = r.Discharge / g.Area
	}
	if g.TopWidth > 0 && g.Area > 0 {
		r.Froude = r.Velocity / math.Sqrt(Gravity*g.Area/g.TopWidth)
	}
	return r
}

// RatingPoint is one entry of a stage-discharge table.
type RatingPoint struct {
	Depth     float64
	Discharge float64
	Velocity  float64
}

// RatingCurve tabulates discharge over (0, maxDepth] in equal depth steps.
func (p Profile) RatingCurve(maxDepth float64, steps int) ([]RatingPoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := mustBePositive("max_depth", maxDepth); err != nil {
		return nil, err
	}
	if steps < 1 {
		return nil, &InvalidParameterError{Param: "steps", Value: float64(steps), Reason: "must be at least 1"}
	}

	points := make([]RatingPoint, steps)
	dd := maxDepth / float64(steps)
	for i := range points {
		d := dd * float64(i+1)
		r := p.discharge(d)
		points[i] = RatingPoint{Depth: d, Discharge: r.Discharge, Velocity: r.Velocity}
	}
	return points, nil
}
