// cmd/benchreport/inspect.go
package benchreport

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/RayFungHK/benchreport/internal/report"
)

// inspectCmd implements 'inspect', which pretty-prints the parsed samples
// so aggregation inputs can be checked by eye.
var inspectCmd = &cobra.Command{
	Use:   "inspect [scenario]",
	Short: "Dump the parsed samples for debugging",
	Long: `The 'inspect' command pretty-prints the samples parsed from the result
files, either for every scenario or for the single scenario id given as an
argument. It shows exactly what the aggregation step will consume.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		razy, laravel := loadTargets(newLogger())

		if len(args) == 1 {
			id := args[0]
			razyRuns, razyOK := razy[id]
			laravelRuns, laravelOK := laravel[id]
			if !razyOK && !laravelOK {
				return fmt.Errorf("no results for scenario %q", id)
			}
			pp.Println(report.RazyName, razyRuns)
			pp.Println(report.LaravelName, laravelRuns)
			return nil
		}

		pp.Println(report.RazyName, razy)
		pp.Println(report.LaravelName, laravel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
