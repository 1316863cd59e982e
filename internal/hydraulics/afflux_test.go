package hydraulics

import (
	"errors"
	"math"
	"testing"
)

func TestBridgeAfflux(t *testing.T) {
	p := referenceProfile()
	normal, _ := p.Discharge(3.5)
	v1 := normal.Velocity

	res, err := p.BridgeAfflux(3.5, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	v2 := v1 / 0.7
	want := (v2*v2-v1*v1)/(2*Gravity) + 0.5*v2*v2/(2*Gravity)
	if math.Abs(res.Afflux-want) > 1e-12 {
		t.Errorf("afflux = %v, want %v", res.Afflux, want)
	}
	if res.NewWaterLevel != 3.5+res.Afflux {
		t.Errorf("new level = %v, want %v", res.NewWaterLevel, 3.5+res.Afflux)
	}
	if math.Abs(res.BridgeVelocity-v2) > 1e-12 {
		t.Errorf("bridge velocity = %v, want %v", res.BridgeVelocity, v2)
	}
}

func TestBridgeAffluxNoConstriction(t *testing.T) {
	res, err := referenceProfile().BridgeAfflux(3.5, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Afflux) > 1e-12 {
		t.Errorf("afflux = %v, want 0", res.Afflux)
	}
	if res.NewWaterLevel != 3.5 {
		t.Errorf("new level = %v, want 3.5", res.NewWaterLevel)
	}
}

func TestBridgeAffluxGrowsWithBlockage(t *testing.T) {
	p := referenceProfile()
	prev := 0.0
	for _, ratio := range []float64{0.95, 0.8, 0.6, 0.4} {
		res, err := p.BridgeAfflux(3, ratio)
		if err != nil {
			t.Fatal(err)
		}
		if res.Afflux <= prev {
			t.Errorf("ratio %v: afflux %v not above %v", ratio, res.Afflux, prev)
		}
		prev = res.Afflux
	}
}

func TestBridgeAffluxInvalidRatio(t *testing.T) {
	for _, ratio := range []float64{0, -0.5, 1.2, math.NaN()} {
		_, err := referenceProfile().BridgeAfflux(3.5, ratio)
		var perr *InvalidParameterError
		if !errors.As(err, &perr) {
			t.Errorf("ratio %v: err = %v, want InvalidParameterError", ratio, err)
			continue
		}
		if perr.Param != "contraction_ratio" {
			t.Errorf("param = %q", perr.Param)
		}
	}
}

func TestAffluxRounded(t *testing.T) {
	r := AffluxResult{Afflux: 0.123456, NewWaterLevel: 3.623456, BridgeVelocity: 1.6789}.Rounded()
	if r.Afflux != 0.123 || r.NewWaterLevel != 3.623 || r.BridgeVelocity != 1.68 {
		t.Errorf("Rounded() = %+v", r)
	}
}
