package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "sqlquest", displayVersion(version))
	},
}

// displayVersion normalizes a release tag ("1.2" or "v1.2.0") to canonical
// semver and reports anything else as a development build.
func displayVersion(v string) string {
	if !semver.IsValid(v) {
		if semver.IsValid("v" + v) {
			v = "v" + v
		} else {
			return "(devel)"
		}
	}
	return semver.Canonical(v)
}
