package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RayFungHK/benchreport/internal/results"
)

var (
	targetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	scenarioStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	emptyStyle    = lipgloss.NewStyle().Faint(true)
)

// Listing renders a console overview of the scenarios discovered per target,
// with run counts.
func Listing(razy, laravel results.TargetResults) string {
	var b strings.Builder
	writeTargetListing(&b, RazyName, razy)
	writeTargetListing(&b, LaravelName, laravel)
	return b.String()
}

func writeTargetListing(b *strings.Builder, name string, set results.TargetResults) {
	fmt.Fprintln(b, targetStyle.Render(name+":"))
	if len(set) == 0 {
		fmt.Fprintln(b, emptyStyle.Render("  no results collected"))
		fmt.Fprintln(b)
		return
	}
	for _, id := range set.Scenarios() {
		runs := len(set[id])
		noun := "runs"
		if runs == 1 {
			noun = "run"
		}
		fmt.Fprintln(b, scenarioStyle.Render(fmt.Sprintf("  - %s (%d %s)", id, runs, noun)))
	}
	fmt.Fprintln(b)
}
