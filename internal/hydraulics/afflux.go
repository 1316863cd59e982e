package hydraulics

import "math"

// BridgeLossCoefficient is the head loss coefficient applied to the
// velocity head through the constriction.
const BridgeLossCoefficient = 0.5

// AffluxResult holds the backwater estimate at a bridge constriction.
type AffluxResult struct {
	Afflux           float64 // rise in water level (m)
	NewWaterLevel    float64 // upstream depth plus afflux (m)
	BridgeVelocity   float64 // v2 through the opening (m/s)
	ApproachVelocity float64 // v1 at normal depth (m/s)
	HeadLoss         float64 // hL (m)
}

// Rounded returns levels rounded to three decimals and velocities to two.
func (r AffluxResult) Rounded() AffluxResult {
	return AffluxResult{
		Afflux:           Round(r.Afflux, 3),
		NewWaterLevel:    Round(r.NewWaterLevel, 3),
		BridgeVelocity:   Round(r.BridgeVelocity, 2),
		ApproachVelocity: Round(r.ApproachVelocity, 2),
		HeadLoss:         Round(r.HeadLoss, 3),
	}
}

// BridgeAfflux estimates the water level rise upstream of a bridge whose
// opening leaves contractionRatio of the channel width unobstructed
// (0.7 means 30% blocked by piers and abutments).
//
// The energy equation between the approach and the opening gives
//
//	afflux = (v2² - v1²)/2g + k·v2²/2g,  v2 = v1/ratio
//
// A ratio of exactly 1 is an unobstructed opening and gives zero afflux.
func (p Profile) BridgeAfflux(upstreamDepth, contractionRatio float64) (AffluxResult, error) {
	if !(contractionRatio > 0) || contractionRatio > 1 {
		return AffluxResult{}, &InvalidParameterError{
			Param:  "contraction_ratio",
			Value:  contractionRatio,
			Reason: "must be in (0, 1]",
		}
	}
	normal, err := p.Discharge(upstreamDepth)
	if err != nil {
		return AffluxResult{}, err
	}

	v1 := normal.Velocity
	if contractionRatio == 1 {
		return AffluxResult{
			NewWaterLevel:    upstreamDepth,
			BridgeVelocity:   v1,
			ApproachVelocity: v1,
		}, nil
	}

	v2 := v1 / contractionRatio
	headLoss := BridgeLossCoefficient * (v2 * v2) / (2 * Gravity)
	afflux := (v2*v2-v1*v1)/(2*Gravity) + headLoss
	if math.IsNaN(afflux) || math.IsInf(afflux, 0) {
		return AffluxResult{}, &InvalidParameterError{Param: "contraction_ratio", Value: contractionRatio, Reason: "produces a non-finite afflux"}
	}

	return AffluxResult{
		Afflux:           afflux,
		NewWaterLevel:    upstreamDepth + afflux,
		BridgeVelocity:   v2,
		ApproachVelocity: v1,
		HeadLoss:         headLoss,
	}, nil
}
