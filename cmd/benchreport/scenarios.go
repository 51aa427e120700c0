// cmd/benchreport/scenarios.go
package benchreport

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RayFungHK/benchreport/internal/report"
)

// scenariosCmd implements 'scenarios', which lists the discovered scenario
// ids and run counts per target.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List discovered scenarios and run counts per target",
	Long: `The 'scenarios' command scans the results directory and prints, per target,
the scenario ids found and how many runs each one has. Use it to verify a
benchmark session produced the files you expect before generating a report.`,
	Run: func(cmd *cobra.Command, args []string) {
		razy, laravel := loadTargets(newLogger())
		fmt.Fprint(cmd.OutOrStdout(), report.Listing(razy, laravel))
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
