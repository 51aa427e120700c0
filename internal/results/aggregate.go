package results

import (
	"math"
	"slices"
)

// Aggregate holds one metric's statistics across a scenario's runs.
type Aggregate struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// AggregateRuns reduces a scenario's samples to per-metric statistics. The
// first sample's metric keys drive the result. Spread uses the sample (n-1)
// standard deviation and collapses to 0 when only one run exists. An empty
// slice yields an empty map.
func AggregateRuns(samples []Sample) map[string]Aggregate {
	if len(samples) == 0 {
		return map[string]Aggregate{}
	}

	aggregates := make(map[string]Aggregate, len(samples[0].Metrics))
	for key := range samples[0].Metrics {
		values := make([]float64, 0, len(samples))
		for _, sample := range samples {
			values = append(values, sample.Metrics[key])
		}
		mean, stddev := meanStd(values)
		aggregates[key] = Aggregate{
			Mean:   mean,
			StdDev: stddev,
			Min:    slices.Min(values),
			Max:    slices.Max(values),
		}
	}
	return aggregates
}

// meanStd computes the arithmetic mean and the sample standard deviation of
// values. Fewer than two values carry no spread information, so the standard
// deviation is reported as 0.
func meanStd(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / float64(len(values))

	if len(values) < 2 {
		return mean, 0
	}
	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	stddev = math.Sqrt(varianceSum / float64(len(values)-1))
	return mean, stddev
}
