// cmd/benchreport/targets.go
package benchreport

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/RayFungHK/benchreport/internal/results"
)

// Subdirectory names for the two compared targets under the results root.
const (
	razyDir    = "razy"
	laravelDir = "laravel"
)

// ErrNoResults is returned when neither target produced a parseable result
// file. The message doubles as the operator's next step.
var ErrNoResults = errors.New(`no results found. Run benchmarks first:
  ./benchmark/scripts/run-all.sh razy localhost:8081 3
  ./benchmark/scripts/run-all.sh laravel localhost:8082 3`)

// newLogger builds the diagnostic logger used for collection warnings. They
// go to stderr so they never interleave with report or listing output.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// loadTargets collects both targets' results beneath the configured results
// root.
func loadTargets(logger *slog.Logger) (razy, laravel results.TargetResults) {
	root := viper.GetString("results-dir")
	razy = results.CollectTarget(filepath.Join(root, razyDir), logger)
	laravel = results.CollectTarget(filepath.Join(root, laravelDir), logger)
	return razy, laravel
}
