// cmd/benchreport/root.go
package benchreport

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base Cobra command for the benchreport application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "benchreport",
	Short: "Aggregate k6 benchmark results into comparison reports",
	Long: `benchreport reads the k6 summary-export files collected for the razy and
laravel benchmark targets and turns them into comparison output: a Markdown
report, console listings, PNG charts, and an interactive result browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error to stderr and exits the process with a
// non-zero status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("results-dir", "r", "benchmark/results", "root directory holding per-target result files")
	viper.BindPFlag("results-dir", rootCmd.PersistentFlags().Lookup("results-dir"))
}
