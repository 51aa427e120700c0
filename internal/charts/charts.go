// Package charts renders PNG comparison charts from aggregated benchmark
// results using gonum/plot.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/RayFungHK/benchreport/internal/report"
	"github.com/RayFungHK/benchreport/internal/results"
)

var (
	razyColor    = color.RGBA{R: 54, G: 162, B: 235, A: 255} // blue
	laravelColor = color.RGBA{R: 255, G: 99, B: 132, A: 255} // pinkish-red
)

// latencyKeys are the percentile metrics charted per scenario, in x order.
var latencyKeys = []string{"p50", "p90", "p95", "p99"}

// ErrNoSharedScenarios is returned when no scenario has results on both
// sides, leaving nothing to compare visually.
var ErrNoSharedScenarios = errors.New("no scenario has results for both targets")

// Render writes the comparison charts into dir: one RPS chart across all
// shared scenarios plus one latency chart per shared scenario. It returns
// the paths written. Scenarios with data on only one side are skipped, since
// a one-bar comparison chart misleads more than it informs.
func Render(razy, laravel results.TargetResults, dir string) ([]string, error) {
	shared := sharedScenarios(razy, laravel)
	if len(shared) == 0 {
		return nil, ErrNoSharedScenarios
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create charts directory: %w", err)
	}

	var written []string

	path, err := renderRPS(shared, razy, laravel, dir)
	if err != nil {
		return written, err
	}
	written = append(written, path)

	for _, id := range shared {
		path, err := renderLatency(id, razy, laravel, dir)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func sharedScenarios(razy, laravel results.TargetResults) []string {
	shared := lo.Intersect(lo.Keys(razy), lo.Keys(laravel))
	slices.Sort(shared)
	return shared
}

// renderRPS charts mean requests per second for every shared scenario as
// grouped bars.
func renderRPS(ids []string, razy, laravel results.TargetResults, dir string) (string, error) {
	razyValues := make(plotter.Values, len(ids))
	laravelValues := make(plotter.Values, len(ids))
	for i, id := range ids {
		razyValues[i] = results.AggregateRuns(razy[id])["rps"].Mean
		laravelValues[i] = results.AggregateRuns(laravel[id])["rps"].Mean
	}

	p := plot.New()
	p.Title.Text = "Requests per Second by Scenario"
	p.Y.Label.Text = "RPS (mean)"

	if err := addGroupedBars(p, razyValues, laravelValues); err != nil {
		return "", err
	}
	p.NominalX(ids...)

	out := filepath.Join(dir, "rps_comparison.png")
	if err := p.Save(10*vg.Inch, 4*vg.Inch, out); err != nil {
		return "", fmt.Errorf("could not save chart: %w", err)
	}
	return out, nil
}

// renderLatency charts one scenario's mean latency percentiles as grouped
// bars.
func renderLatency(id string, razy, laravel results.TargetResults, dir string) (string, error) {
	razyAgg := results.AggregateRuns(razy[id])
	laravelAgg := results.AggregateRuns(laravel[id])

	razyValues := make(plotter.Values, len(latencyKeys))
	laravelValues := make(plotter.Values, len(latencyKeys))
	for i, key := range latencyKeys {
		razyValues[i] = razyAgg[key].Mean
		laravelValues[i] = laravelAgg[key].Mean
	}

	p := plot.New()
	p.Title.Text = report.ScenarioLabel(id) + " Latency"
	p.Y.Label.Text = "Latency (ms, mean)"

	if err := addGroupedBars(p, razyValues, laravelValues); err != nil {
		return "", err
	}
	p.NominalX(latencyKeys...)

	out := filepath.Join(dir, id+"_latency.png")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return "", fmt.Errorf("could not save chart: %w", err)
	}
	return out, nil
}

// addGroupedBars places the two targets' bars side by side around each
// nominal x position and wires up the legend.
func addGroupedBars(p *plot.Plot, razyValues, laravelValues plotter.Values) error {
	width := vg.Points(20)

	razyBars, err := plotter.NewBarChart(razyValues, width)
	if err != nil {
		return err
	}
	razyBars.LineStyle.Width = vg.Length(0)
	razyBars.Color = razyColor
	razyBars.Offset = -width / 2

	laravelBars, err := plotter.NewBarChart(laravelValues, width)
	if err != nil {
		return err
	}
	laravelBars.LineStyle.Width = vg.Length(0)
	laravelBars.Color = laravelColor
	laravelBars.Offset = width / 2

	p.Add(razyBars, laravelBars)
	p.Legend.Add(report.RazyName, razyBars)
	p.Legend.Add(report.LaravelName, laravelBars)
	p.Legend.Top = true
	return nil
}
