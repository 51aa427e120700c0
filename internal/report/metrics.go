// Package report renders collected benchmark results as Markdown documents
// and console listings comparing the razy and laravel targets.
package report

// Display names for the two compared targets.
const (
	RazyName    = "Razy"
	LaravelName = "Laravel"
)

// Direction states which way a metric improves. Deltas are sign-adjusted per
// metric so that a positive delta always reads as "razy is better".
type Direction int

const (
	// HigherIsBetter marks throughput-style metrics.
	HigherIsBetter Direction = iota
	// LowerIsBetter marks latency-style metrics.
	LowerIsBetter
)

// MetricSpec describes how one tracked metric is labeled, formatted, and
// compared. Adding a metric to a table means deciding its direction here.
type MetricSpec struct {
	Key    string
	Label  string
	Unit   string
	Better Direction

	// DeltaPoints reports the delta as an absolute difference in percentage
	// points instead of a relative percentage. Used for metrics that are
	// already percentages, where a relative delta would mislead.
	DeltaPoints bool
}

// summaryMetrics is the subset shown in the summary comparison table, in row
// order.
var summaryMetrics = []MetricSpec{
	{Key: "rps", Label: "RPS", Better: HigherIsBetter},
	{Key: "p50", Label: "p50", Unit: "ms", Better: LowerIsBetter},
	{Key: "p95", Label: "p95", Unit: "ms", Better: LowerIsBetter},
	{Key: "p99", Label: "p99", Unit: "ms", Better: LowerIsBetter},
	{Key: "success_rate", Label: "Success", Unit: "%", Better: HigherIsBetter, DeltaPoints: true},
}

// detailMetrics lists every tracked metric in detail-table row order.
var detailMetrics = []MetricSpec{
	{Key: "rps", Label: "RPS"},
	{Key: "total_reqs", Label: "Total Requests"},
	{Key: "avg", Label: "Avg Latency", Unit: "ms"},
	{Key: "p50", Label: "p50 Latency", Unit: "ms"},
	{Key: "p90", Label: "p90 Latency", Unit: "ms"},
	{Key: "p95", Label: "p95 Latency", Unit: "ms"},
	{Key: "p99", Label: "p99 Latency", Unit: "ms"},
	{Key: "min", Label: "Min Latency", Unit: "ms"},
	{Key: "max", Label: "Max Latency", Unit: "ms"},
	{Key: "success_rate", Label: "Success Rate", Unit: "%"},
}

// scenarioLabels maps the scenario ids produced by the benchmark scripts to
// their report headings. Unknown ids fall back to the raw id.
var scenarioLabels = map[string]string{
	"01_static_route":    "1. Static Route (Baseline)",
	"02_template_render": "2. Template Render (10 vars)",
	"03_db_read":         "3. DB Read (Single SELECT)",
	"04_db_write":        "4. DB Write (Single INSERT)",
	"05_composite":       "5. Composite (DB + Template)",
	"06_heavy_cpu":       "6. Heavy CPU / Blocked I/O",
}

// ScenarioLabel resolves the display heading for a scenario id.
func ScenarioLabel(id string) string {
	if label, ok := scenarioLabels[id]; ok {
		return label
	}
	return id
}
