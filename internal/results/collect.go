package results

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/RayFungHK/benchreport/internal/k6"
)

// runFilePattern matches result files such as 01_static_route_run2.json,
// capturing the scenario id and the run number.
var runFilePattern = regexp.MustCompile(`^(\d{2}_[a-z_]+)_run(\d+)\.json$`)

// CollectTarget gathers every parseable run file directly beneath dir,
// grouped by scenario id. A missing directory yields an empty set: a target
// whose benchmarks were never run is a valid state, not an error. Files that
// fail to parse are logged and skipped so one bad run cannot sink the whole
// report.
func CollectTarget(dir string, logger *slog.Logger) TargetResults {
	scenarios := TargetResults{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("cannot read results directory", "dir", dir, "err", err)
		}
		return scenarios
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := runFilePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		summary, err := k6.LoadSummary(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Warn("skipping unparseable result file", "file", entry.Name(), "err", err)
			continue
		}
		run, _ := strconv.Atoi(match[2])
		scenarios[match[1]] = append(scenarios[match[1]], Sample{
			Run:     run,
			Metrics: summary.ExtractMetrics(),
		})
	}

	return scenarios
}
