package hydraulics

import "math"

// Profile describes the trapezoidal main channel of a basin.
// Lengths are in metres and the bed slope is a fraction (m/m).
//
// A Profile is a value: every calculation takes it by value and overrides
// (width, roughness) are expressed through copies, never by mutation.
type Profile struct {
	BasinName string `json:"basin_name" yaml:"basin_name"`

	ChannelWidth float64 `json:"channel_width" yaml:"channel_width"` // b, bottom width (m)
	SideSlope    float64 `json:"side_slope" yaml:"side_slope"`       // z, horizontal per unit vertical
	ManningN     float64 `json:"manning_n" yaml:"manning_n"`         // n, roughness
	Slope        float64 `json:"slope" yaml:"slope"`                 // s, bed slope

	// Bank-full depth (m). Depths above it count as a failure in the
	// risk simulation. Zero means not configured.
	ThresholdHigh float64 `json:"threshold_high,omitempty" yaml:"threshold_high,omitempty"`
}

// Validate checks that the profile describes a physical channel.
func (p Profile) Validate() error {
	if err := mustBePositive("channel_width", p.ChannelWidth); err != nil {
		return err
	}
	return p.validateHydraulics()
}

// validateHydraulics checks everything except the bottom width, which the
// design optimizer supplies itself.
func (p Profile) validateHydraulics() error {
	if err := mustBePositive("manning_n", p.ManningN); err != nil {
		return err
	}
	if err := mustBePositive("slope", p.Slope); err != nil {
		return err
	}
	if !(p.SideSlope >= 0) || math.IsInf(p.SideSlope, 0) {
		return &InvalidGeometryError{Field: "side_slope", Value: p.SideSlope, Reason: "must be zero or positive"}
	}
	if !(p.ThresholdHigh >= 0) {
		return &InvalidGeometryError{Field: "threshold_high", Value: p.ThresholdHigh, Reason: "must be zero or positive"}
	}
	return nil
}

// WithWidth returns a copy of the profile with a different bottom width.
func (p Profile) WithWidth(b float64) Profile {
	p.ChannelWidth = b
	return p
}

// WithRoughness returns a copy of the profile with a different Manning n.
func (p Profile) WithRoughness(n float64) Profile {
	p.ManningN = n
	return p
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
