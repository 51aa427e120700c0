// cmd/benchreport/browse.go
package benchreport

import (
	"github.com/spf13/cobra"

	"github.com/RayFungHK/benchreport/internal/tui"
)

// browseCmd implements 'browse', which opens the interactive result browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse aggregated results in an interactive TUI",
	Long: `The 'browse' command opens a terminal UI listing every scenario with data
on either target. Selecting a scenario shows the same per-target statistics
tables the Markdown report's detail section carries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		razy, laravel := loadTargets(newLogger())
		if len(razy) == 0 && len(laravel) == 0 {
			return ErrNoResults
		}
		return tui.Browse(razy, laravel)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
