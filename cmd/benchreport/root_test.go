// cmd/benchreport/root_test.go
package benchreport

import (
	"testing"
)

// TestRootHasExpectedSubcommands verifies that every reporting subcommand is
// registered on the root command.
func TestRootHasExpectedSubcommands(t *testing.T) {
	expected := []string{"generate", "scenarios", "inspect", "browse", "charts"}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}

// TestCommandsHaveDocumentation verifies that each registered command carries
// both a short and a long description for help output.
func TestCommandsHaveDocumentation(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Short == "" {
			t.Errorf("command %q has no short description", c.Name())
		}
		if c.Long == "" {
			t.Errorf("command %q has no long description", c.Name())
		}
	}
}

// TestFlagDefaults verifies the documented default paths on the CLI flags.
func TestFlagDefaults(t *testing.T) {
	resultsDir := rootCmd.PersistentFlags().Lookup("results-dir")
	if resultsDir == nil {
		t.Fatal("results-dir flag not registered")
	}
	if resultsDir.DefValue != "benchmark/results" {
		t.Errorf("unexpected results-dir default: %q", resultsDir.DefValue)
	}

	output := generateCmd.Flags().Lookup("output")
	if output == nil {
		t.Fatal("output flag not registered")
	}
	if output.DefValue != "benchmark/REPORT.md" {
		t.Errorf("unexpected output default: %q", output.DefValue)
	}

	chartsDir := chartsCmd.Flags().Lookup("charts-dir")
	if chartsDir == nil {
		t.Fatal("charts-dir flag not registered")
	}
	if chartsDir.DefValue != "benchmark/charts" {
		t.Errorf("unexpected charts-dir default: %q", chartsDir.DefValue)
	}
}
