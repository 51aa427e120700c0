package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/RayFungHK/benchreport/internal/results"
)

// now is swapped out by tests that pin the generation timestamp.
var now = time.Now

// Generate renders the full Markdown comparison document for the two
// targets' collected results.
func Generate(razy, laravel results.TargetResults) string {
	var b strings.Builder

	b.WriteString("# Performance Benchmark Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", now().Format("2006-01-02 15:04:05"))
	b.WriteString("**Comparison:** Razy (FrankenPHP Worker) vs Laravel (Octane/Swoole)\n\n")

	writeSummary(&b, razy, laravel)
	writeDetails(&b, razy, laravel)
	b.WriteString(analysisGuidelines)
	b.WriteString(reproduction)

	return b.String()
}

// writeSummary emits the headline comparison table: one block of rows per
// scenario, a blank spacer row between blocks. Sides without data show N/A
// and produce no delta.
func writeSummary(b *strings.Builder, razy, laravel results.TargetResults) {
	b.WriteString("## Summary Comparison\n\n")
	b.WriteString("| Scenario | Metric | Razy (FrankenPHP) | Laravel (Octane) | Delta |\n")
	b.WriteString("|----------|--------|------------------:|-----------------:|------:|\n")

	for _, id := range results.ScenarioUnion(razy, laravel) {
		razyAgg := results.AggregateRuns(razy[id])
		laravelAgg := results.AggregateRuns(laravel[id])

		for i, spec := range summaryMetrics {
			scenarioCell := ""
			if i == 0 {
				scenarioCell = fmt.Sprintf("**%s**", ScenarioLabel(id))
			}

			razyCell, laravelCell, deltaCell := "N/A", "N/A", ""
			razyMetric, razyOK := razyAgg[spec.Key]
			laravelMetric, laravelOK := laravelAgg[spec.Key]
			if razyOK {
				razyCell = FormatMetric(razyMetric.Mean, spec.Unit)
			}
			if laravelOK {
				laravelCell = FormatMetric(laravelMetric.Mean, spec.Unit)
			}
			if razyOK && laravelOK {
				deltaCell = Delta(spec, razyMetric.Mean, laravelMetric.Mean)
			}

			fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
				scenarioCell, spec.Label, razyCell, laravelCell, deltaCell)
		}
		b.WriteString("| | | | | |\n")
	}
	b.WriteString("\n")
}

func writeDetails(b *strings.Builder, razy, laravel results.TargetResults) {
	b.WriteString("## Detailed Results\n\n")
	for _, id := range results.ScenarioUnion(razy, laravel) {
		b.WriteString(ScenarioDetail(id, razy, laravel))
	}
}

// ScenarioDetail renders one scenario's heading and per-target statistics
// tables, the same block the detail section of the full report carries.
func ScenarioDetail(id string, razy, laravel results.TargetResults) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", ScenarioLabel(id))
	writeTargetDetail(&b, RazyName, razy[id])
	writeTargetDetail(&b, LaravelName, laravel[id])
	return b.String()
}

func writeTargetDetail(b *strings.Builder, name string, runs []results.Sample) {
	if len(runs) == 0 {
		fmt.Fprintf(b, "**%s:** No data collected\n\n", name)
		return
	}

	aggregates := results.AggregateRuns(runs)
	fmt.Fprintf(b, "**%s** (%d runs):\n\n", name, len(runs))
	b.WriteString("| Metric | Mean | Std Dev | Min | Max |\n")
	b.WriteString("|--------|-----:|--------:|----:|----:|\n")
	for _, spec := range detailMetrics {
		agg, ok := aggregates[spec.Key]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "| %s | %s | ±%s | %s | %s |\n",
			spec.Label,
			FormatMetric(agg.Mean, spec.Unit),
			FormatMetric(agg.StdDev, spec.Unit),
			FormatMetric(agg.Min, spec.Unit),
			FormatMetric(agg.Max, spec.Unit))
	}
	b.WriteString("\n")
}

const analysisGuidelines = "## Analysis Guidelines\n\n" +
	"- **Static route delta** reveals pure framework dispatch overhead.\n" +
	"- **p95/p99 ratio** shows tail-latency stability under load.\n" +
	"- If RPS is high but memory spikes, the throughput is not sustainable.\n" +
	"- Compare memory/CPU from `metrics/` logs alongside these numbers.\n" +
	"- Heavy CPU scenario: check if fast requests degrade when heavy runs concurrently.\n\n"

const reproduction = "## Reproduction\n\n" +
	"```bash\n" +
	"cd benchmark\n" +
	"docker compose up -d\n" +
	"./scripts/run-all.sh razy localhost:8081 3\n" +
	"./scripts/run-all.sh laravel localhost:8082 3\n" +
	"benchreport generate --output REPORT.md\n" +
	"```\n"
