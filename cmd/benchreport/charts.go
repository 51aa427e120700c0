// cmd/benchreport/charts.go
package benchreport

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RayFungHK/benchreport/internal/charts"
)

// chartsCmd implements 'charts', which renders PNG comparison charts from
// the aggregated results.
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render PNG comparison charts",
	Long: `The 'charts' command renders PNG charts from the aggregated results: one
RPS chart across all scenarios both targets ran, plus a latency percentile
chart per shared scenario.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		razy, laravel := loadTargets(newLogger())
		if len(razy) == 0 && len(laravel) == 0 {
			return ErrNoResults
		}

		written, err := charts.Render(razy, laravel, viper.GetString("charts-dir"))
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().String("charts-dir", "benchmark/charts", "directory to write chart PNGs into")
	viper.BindPFlag("charts-dir", chartsCmd.Flags().Lookup("charts-dir"))
}
