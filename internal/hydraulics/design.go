package hydraulics

import (
	"math"

	"github.com/alexiusacademia/hydroflow/internal/optimize"
)

// Search range and penalty constants for the inverse design problem.
const (
	MinDesignWidth = 0.5   // m
	MaxDesignWidth = 100.0 // m

	// PenaltyBase is returned (plus the capacity gap) for widths that cannot
	// carry the target discharge. It dominates any realistic excavation area.
	PenaltyBase = 999999.0

	// Objective values at or above this threshold mean no feasible width
	// was found.
	FeasibilityThreshold = 900000.0

	DesignTolerance = 1e-5
)

// DesignStatus reports whether the optimizer found a feasible width.
type DesignStatus string

const (
	StatusOptimized        DesignStatus = "Optimized"
	StatusFailedToConverge DesignStatus = "Failed to Converge"
)

// DesignResult is the outcome of the inverse design problem.
// An infeasible target is an expected outcome and is reported through
// Status, not as an error.
type DesignResult struct {
	Status DesignStatus

	OptimalWidth   float64 // b* (m)
	ExcavationArea float64 // flow area at b* and max depth (m² per unit length)
	Capacity       float64 // discharge carried at b* (m³/s)

	TargetDischarge float64 // m³/s
	MaxDepth        float64 // m

	Evaluations int // cost function evaluations used
}

// Optimized reports whether a feasible width was found.
func (r DesignResult) Optimized() bool {
	return r.Status == StatusOptimized
}

// Rounded returns the result with width, area and capacity rounded to two
// decimals for display.
func (r DesignResult) Rounded() DesignResult {
	r.OptimalWidth = Round(r.OptimalWidth, 2)
	r.ExcavationArea = Round(r.ExcavationArea, 2)
	r.Capacity = Round(r.Capacity, 2)
	return r
}

// DesignChannel finds the smallest bottom width in [MinDesignWidth,
// MaxDesignWidth] whose capacity at maxDepth meets targetDischarge, keeping
// the profile's roughness, slope and side slope. The profile's own channel
// width is ignored.
func (p Profile) DesignChannel(targetDischarge, maxDepth float64) (DesignResult, error) {
	if err := p.validateHydraulics(); err != nil {
		return DesignResult{}, err
	}
	if !(targetDischarge > 0) || math.IsInf(targetDischarge, 0) {
		return DesignResult{}, &InvalidParameterError{Param: "target_discharge", Value: targetDischarge, Reason: "must be a positive finite flow"}
	}
	if err := mustBePositive("max_depth", maxDepth); err != nil {
		return DesignResult{}, err
	}

	cost := func(width float64) float64 {
		return p.designCost(width, targetDischarge, maxDepth)
	}
	opt, err := optimize.Bounded(cost, MinDesignWidth, MaxDesignWidth, optimize.Settings{XTol: DesignTolerance})
	if err != nil {
		return DesignResult{}, err
	}

	result := DesignResult{
		Status:          StatusFailedToConverge,
		TargetDischarge: targetDischarge,
		MaxDepth:        maxDepth,
		Evaluations:     opt.Evaluations,
	}
	if opt.Converged && opt.F < FeasibilityThreshold {
		g := trapezoid(opt.X, p.SideSlope, maxDepth)
		result.Status = StatusOptimized
		result.OptimalWidth = opt.X
		result.ExcavationArea = opt.F
		result.Capacity = manning(p.ManningN, p.Slope, g)
	}
	return result, nil
}

// designCost is the penalty-augmented objective: the flow area when the
// width carries the target, otherwise PenaltyBase plus the capacity gap.
func (p Profile) designCost(width, target, depth float64) float64 {
	if width <= 0 {
		return PenaltyBase
	}
	g := trapezoid(width, p.SideSlope, depth)
	if g.Perimeter <= 0 {
		return PenaltyBase
	}
	capacity := manning(p.ManningN, p.Slope, g)
	if capacity < target {
		return PenaltyBase + (target - capacity)
	}
	return g.Area
}
