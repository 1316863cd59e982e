package hydraulics

import "math"

// Geometry holds the wetted properties of a trapezoidal section at a depth.
type Geometry struct {
	Depth     float64 // m
	Area      float64 // m²
	Perimeter float64 // m
	Radius    float64 // hydraulic radius (m)
	TopWidth  float64 // water surface width (m)
}

// trapezoid computes the section properties for bottom width b, side slope z
// and depth d. A degenerate perimeter yields a zero radius instead of NaN.
func trapezoid(b, z, d float64) Geometry {
	g := Geometry{
		Depth:     d,
		Area:      (b + z*d) * d,
		Perimeter: b + 2*d*math.Sqrt(1+z*z),
		TopWidth:  b + 2*z*d,
	}
	if g.Perimeter > 0 {
		g.Radius = g.Area / g.Perimeter
	}
	return g
}

// Geometry returns the section properties of the channel at depth.
func (p Profile) Geometry(depth float64) (Geometry, error) {
	if err := p.Validate(); err != nil {
		return Geometry{}, err
	}
	if err := mustBePositive("depth", depth); err != nil {
		return Geometry{}, err
	}
	return trapezoid(p.ChannelWidth, p.SideSlope, depth), nil
}
