// cmd/benchreport/generate.go
package benchreport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RayFungHK/benchreport/internal/report"
)

// generateCmd implements 'generate', which aggregates the collected k6
// result files and writes the Markdown comparison report.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Markdown comparison report",
	Long: `The 'generate' command aggregates every parseable k6 result file under the
results directory and writes a Markdown report comparing the razy and
laravel targets scenario by scenario.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		root := viper.GetString("results-dir")
		fmt.Fprintf(out, "Collecting results from %s ...\n", root)

		razy, laravel := loadTargets(newLogger())
		if len(razy) == 0 && len(laravel) == 0 {
			return ErrNoResults
		}
		fmt.Fprintf(out, "  Razy scenarios:    %s\n", strings.Join(razy.Scenarios(), ", "))
		fmt.Fprintf(out, "  Laravel scenarios: %s\n", strings.Join(laravel.Scenarios(), ", "))

		path := viper.GetString("output")
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("could not create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, []byte(report.Generate(razy, laravel)), 0o644); err != nil {
			return fmt.Errorf("could not write report: %w", err)
		}
		fmt.Fprintf(out, "Report written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "benchmark/REPORT.md", "path of the Markdown report to write")
	viper.BindPFlag("output", generateCmd.Flags().Lookup("output"))
}
