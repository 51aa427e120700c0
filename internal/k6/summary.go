// Package k6 decodes the JSON documents k6 writes with --summary-export and
// flattens them into the metric values the report pipeline tracks.
package k6

import (
	"encoding/json"
	"fmt"
	"os"
)

// Values holds the numeric fields k6 emits for a single metric. Fields a
// metric does not produce decode to zero.
type Values struct {
	Rate  float64 `json:"rate"`
	Count float64 `json:"count"`
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Med   float64 `json:"med"`
	Max   float64 `json:"max"`
	P90   float64 `json:"p(90)"`
	P95   float64 `json:"p(95)"`
	P99   float64 `json:"p(99)"`
}

// Metric is one named entry in a summary's metrics mapping.
type Metric struct {
	Values Values `json:"values"`
}

// Summary models the subset of a k6 summary-export document the report
// pipeline reads. Metrics beyond the tracked ones decode and are ignored.
type Summary struct {
	Metrics map[string]Metric `json:"metrics"`
}

// LoadSummary reads and decodes one summary-export file.
func LoadSummary(path string) (Summary, error) {
	var summary Summary
	data, err := os.ReadFile(path)
	if err != nil {
		return summary, fmt.Errorf("could not read summary file: %w", err)
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return summary, fmt.Errorf("could not parse summary JSON: %w", err)
	}
	return summary, nil
}

// ExtractMetrics flattens a summary into the ten tracked metric values.
// Metrics the summary does not carry contribute zeros, since k6 omits
// entries a run never produced.
func (s Summary) ExtractMetrics() map[string]float64 {
	reqs := s.Metrics["http_reqs"].Values
	duration := s.Metrics["http_req_duration"].Values
	checks := s.Metrics["checks"].Values

	return map[string]float64{
		"rps":          reqs.Rate,
		"total_reqs":   reqs.Count,
		"avg":          duration.Avg,
		"p50":          duration.Med,
		"p90":          duration.P90,
		"p95":          duration.P95,
		"p99":          duration.P99,
		"min":          duration.Min,
		"max":          duration.Max,
		"success_rate": checks.Rate * 100,
	}
}
