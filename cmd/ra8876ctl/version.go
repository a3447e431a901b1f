package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set by -ldflags "-X main.version=..." in release builds.
var (
	version = "dev"
	commit  = "none"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Go      string `json:"go"`
}

func buildVersion() versionInfo {
	v := versionInfo{Version: version, Commit: commit, Go: runtime.Version()}
	if v.Version != "dev" {
		return v
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		v.Version = bi.Main.Version
	}
	return v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := buildVersion()
		if jsonOut {
			return printJSON(v)
		}
		printInfo("ra8876ctl %s (commit %s, %s)\n", v.Version, v.Commit, v.Go)
		return nil
	},
}

func init() {
	rootCmd.Version = buildVersion().Version
	rootCmd.SetVersionTemplate("ra8876ctl {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
}
