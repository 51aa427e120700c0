// Package results collects k6 summary files from a target's results
// directory and reduces them to per-scenario statistics.
package results

import (
	"slices"

	"github.com/samber/lo"
)

// Sample holds the flattened metrics extracted from one benchmark run file.
type Sample struct {
	Run     int
	Metrics map[string]float64
}

// TargetResults groups one target's parsed samples by scenario id.
type TargetResults map[string][]Sample

// Scenarios returns the scenario ids present in the set, sorted ascending.
func (t TargetResults) Scenarios() []string {
	ids := lo.Keys(t)
	slices.Sort(ids)
	return ids
}

// ScenarioUnion returns the ascending union of scenario ids across both
// targets, so report sections cover every scenario either side ran.
func ScenarioUnion(razy, laravel TargetResults) []string {
	ids := lo.Uniq(lo.Keys(razy, laravel))
	slices.Sort(ids)
	return ids
}
