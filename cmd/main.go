// cmd/main.go
package main

import cmd "github.com/RayFungHK/benchreport/cmd/benchreport"

// main starts the benchreport CLI application by delegating to the
// cobra root command defined in the benchreport package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
