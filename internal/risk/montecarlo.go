// Package risk estimates flood-risk probability with a Monte Carlo
// simulation over channel roughness and flow depth.
package risk

import (
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/alexiusacademia/hydroflow/internal/hydraulics"
)

// DefaultIterations is the trial count used when none is configured.
const DefaultIterations = 1000

// Perturbation multipliers, each drawn uniformly per trial.
const (
	RoughnessLow  = 0.9 // vegetation growth and clearing, ±10%
	RoughnessHigh = 1.1
	DepthLow      = 0.8 // flash flood surge, -20% / +30%
	DepthHigh     = 1.3
)

// Options configures a simulation run.
type Options struct {
	Iterations int
	Seed       uint64

	// Workers > 1 fans trials out over that many goroutines. Each trial then
	// draws from its own stream derived from (Seed, trial index), so results
	// do not depend on the worker count but differ from the sequential run.
	Workers int
}

// Result summarizes the discharge distribution and the failure rate.
type Result struct {
	Probability   float64 // % of trials with depth above threshold_high
	P95Discharge  float64 // m³/s
	MeanDischarge float64 // m³/s
	StdDischarge  float64
	MinDischarge  float64
	MaxDischarge  float64

	Iterations int
	Failures   int

	// Samples holds the per-trial discharge in trial order.
	Samples []float64
}

// Level buckets the failure probability.
type Level string

const (
	LevelLow      Level = "Low"
	LevelElevated Level = "Elevated"
	LevelHigh     Level = "High"
)

func (r Result) Level() Level {
	switch {
	case r.Probability > 50:
		return LevelHigh
	case r.Probability > 20:
		return LevelElevated
	default:
		return LevelLow
	}
}

type trial struct {
	roughness float64
	depth     float64
}

func draw(rng *rand.Rand, baseN, baseDepth float64) trial {
	// Order matters for reproducibility: roughness first, then depth.
	n := baseN * uniform(rng, RoughnessLow, RoughnessHigh)
	d := baseDepth * uniform(rng, DepthLow, DepthHigh)
	return trial{roughness: n, depth: d}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Run perturbs roughness and depth around the profile and baseDepth for
// opts.Iterations trials. A trial fails when its depth exceeds the
// profile's threshold_high.
func Run(p hydraulics.Profile, baseDepth float64, opts Options) (Result, error) {
	if opts.Iterations <= 0 {
		return Result{}, &hydraulics.InvalidParameterError{
			Param:  "iterations",
			Value:  float64(opts.Iterations),
			Reason: "must be at least 1",
		}
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if p.ThresholdHigh <= 0 {
		return Result{}, &hydraulics.ConfigurationError{Field: "threshold_high", Reason: "required for risk simulation"}
	}
	if !(baseDepth > 0) {
		return Result{}, &hydraulics.InvalidGeometryError{Field: "base_depth", Value: baseDepth, Reason: "must be positive"}
	}

	samples := make([]float64, opts.Iterations)
	var failures int
	var err error
	if opts.Workers > 1 {
		failures, err = runParallel(p, baseDepth, opts, samples)
	} else {
		failures, err = runSequential(p, baseDepth, opts, samples)
	}
	if err != nil {
		return Result{}, err
	}

	return summarize(samples, failures), nil
}

func runSequential(p hydraulics.Profile, baseDepth float64, opts Options, samples []float64) (int, error) {
	rng := rand.New(rand.NewPCG(opts.Seed, 0))
	failures := 0
	for i := range samples {
		t := draw(rng, p.ManningN, baseDepth)
		q, err := p.DischargeWithRoughness(t.depth, t.roughness)
		if err != nil {
			return 0, err
		}
		samples[i] = q.Discharge
		if t.depth > p.ThresholdHigh {
			failures++
		}
	}
	return failures, nil
}

func runParallel(p hydraulics.Profile, baseDepth float64, opts Options, samples []float64) (int, error) {
	n := len(samples)
	workers := min(opts.Workers, n)
	chunk := (n + workers - 1) / workers
	failed := make([]int, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				rng := rand.New(rand.NewPCG(opts.Seed, uint64(i)+1))
				t := draw(rng, p.ManningN, baseDepth)
				q, err := p.DischargeWithRoughness(t.depth, t.roughness)
				if err != nil {
					return err
				}
				samples[i] = q.Discharge
				if t.depth > p.ThresholdHigh {
					failed[w]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, f := range failed {
		total += f
	}
	return total, nil
}

func summarize(samples []float64, failures int) Result {
	n := len(samples)
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	r := Result{
		Probability:  100 * float64(failures) / float64(n),
		P95Discharge: stat.Quantile(0.95, stat.LinInterp, sorted, nil),
		MinDischarge: floats.Min(samples),
		MaxDischarge: floats.Max(samples),
		Iterations:   n,
		Failures:     failures,
		Samples:      samples,
	}
	if n > 1 {
		r.MeanDischarge, r.StdDischarge = stat.MeanStdDev(samples, nil)
	} else {
		r.MeanDischarge = stat.Mean(samples, nil)
	}
	return r
}
