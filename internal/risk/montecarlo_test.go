package risk

import (
	"errors"
	"reflect"
	"testing"

	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
)

func testProfile() hydraulics.Profile {
	return hydraulics.Profile{
		BasinName:     "Test River",
		ChannelWidth:  10,
		SideSlope:     2,
		ManningN:      0.035,
		Slope:         0.001,
		ThresholdHigh: 4.5,
	}
}

func TestRunReproducible(t *testing.T) {
	for _, workers := range []int{1, 4} {
		opts := Options{Iterations: 500, Seed: 42, Workers: workers}
		a, err := Run(testProfile(), 3.5, opts)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Run(testProfile(), 3.5, opts)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("workers=%d: two runs with the same seed differ", workers)
		}
	}
}

func TestRunParallelIndependentOfWorkerCount(t *testing.T) {
	base, err := Run(testProfile(), 3.5, Options{Iterations: 999, Seed: 7, Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{3, 8, 2000} {
		got, err := Run(testProfile(), 3.5, Options{Iterations: 999, Seed: 7, Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(base, got) {
			t.Errorf("workers=%d: result differs from workers=2", workers)
		}
	}
}

func TestRunProbabilityMonotoneInDepth(t *testing.T) {
	prev := -1.0
	for _, d := range []float64{2.0, 3.0, 3.5, 4.0, 4.5, 5.0, 6.0} {
		res, err := Run(testProfile(), d, Options{Iterations: 1000, Seed: 1})
		if err != nil {
			t.Fatal(err)
		}
		if res.Probability < prev {
			t.Errorf("depth %v: probability %v dropped below %v", d, res.Probability, prev)
		}
		prev = res.Probability
	}
}

func TestRunProbabilityBounds(t *testing.T) {
	tests := []struct {
		depth float64
		want  float64
		level Level
	}{
		{1.0, 0, LevelLow},     // at most 1.3 m
		{10.0, 100, LevelHigh}, // at least 8 m
	}
	for _, tc := range tests {
		res, err := Run(testProfile(), tc.depth, Options{Iterations: 200, Seed: 3})
		if err != nil {
			t.Fatal(err)
		}
		if res.Probability != tc.want {
			t.Errorf("depth %v: probability = %v, want %v", tc.depth, res.Probability, tc.want)
		}
		if res.Level() != tc.level {
			t.Errorf("depth %v: level = %s, want %s", tc.depth, res.Level(), tc.level)
		}
	}
}

func TestRunStatistics(t *testing.T) {
	res, err := Run(testProfile(), 3.5, Options{Iterations: DefaultIterations, Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Samples) != DefaultIterations || res.Iterations != DefaultIterations {
		t.Fatalf("samples = %d, iterations = %d", len(res.Samples), res.Iterations)
	}
	if res.MinDischarge > res.MeanDischarge || res.MeanDischarge > res.MaxDischarge {
		t.Errorf("mean %v outside [%v, %v]", res.MeanDischarge, res.MinDischarge, res.MaxDischarge)
	}
	if res.P95Discharge < res.MinDischarge || res.P95Discharge > res.MaxDischarge {
		t.Errorf("p95 %v outside [%v, %v]", res.P95Discharge, res.MinDischarge, res.MaxDischarge)
	}
	if res.StdDischarge <= 0 {
		t.Errorf("std = %v, want > 0", res.StdDischarge)
	}

	// Every sample lies inside the envelope of the perturbation ranges.
	p := testProfile()
	lo, _ := p.WithRoughness(p.ManningN * RoughnessHigh).Discharge(3.5 * DepthLow)
	hi, _ := p.WithRoughness(p.ManningN * RoughnessLow).Discharge(3.5 * DepthHigh)
	if res.MinDischarge < lo.Discharge || res.MaxDischarge > hi.Discharge {
		t.Errorf("samples [%v, %v] outside envelope [%v, %v]", res.MinDischarge, res.MaxDischarge, lo.Discharge, hi.Discharge)
	}
}

func TestRunSingleIteration(t *testing.T) {
	res, err := Run(testProfile(), 3.5, Options{Iterations: 1, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	if res.MeanDischarge != res.Samples[0] || res.P95Discharge != res.Samples[0] {
		t.Errorf("single sample stats: %+v", res)
	}
}

func TestRunErrors(t *testing.T) {
	var perr *hydraulics.InvalidParameterError
	if _, err := Run(testProfile(), 3.5, Options{Iterations: 0}); !errors.As(err, &perr) {
		t.Errorf("iterations 0: err = %v, want InvalidParameterError", err)
	}

	noThreshold := testProfile()
	noThreshold.ThresholdHigh = 0
	var cerr *hydraulics.ConfigurationError
	if _, err := Run(noThreshold, 3.5, Options{Iterations: 10}); !errors.As(err, &cerr) {
		t.Errorf("no threshold: err = %v, want ConfigurationError", err)
	}

	var gerr *hydraulics.InvalidGeometryError
	if _, err := Run(testProfile(), 0, Options{Iterations: 10}); !errors.As(err, &gerr) {
		t.Errorf("depth 0: err = %v, want InvalidGeometryError", err)
	}
	if _, err := Run(testProfile().WithWidth(-1), 3.5, Options{Iterations: 10}); !errors.As(err, &gerr) {
		t.Errorf("width -1: err = %v, want InvalidGeometryError", err)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		p    float64
		want Level
	}{
		{0, LevelLow},
		{20, LevelLow},
		{20.1, LevelElevated},
		{50, LevelElevated},
		{50.1, LevelHigh},
	}
	for _, tc := range tests {
		if got := (Result{Probability: tc.p}).Level(); got != tc.want {
			t.Errorf("Level(%v) = %s, want %s", tc.p, got, tc.want)
		}
	}
}
