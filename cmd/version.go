package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Stamped via -ldflags on release builds; goreleaser fills all three.
var (
	version = "(devel)"
	commit  = ""
	date    = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("socra", resolveVersion())
		if commit != "" {
			fmt.Println("commit:", commit)
		}
		if date != "" {
			fmt.Println("built:", date)
		}
	},
}

// resolveVersion prefers the release stamp, then the module version a
// plain go install embeds.
func resolveVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}
