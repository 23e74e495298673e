package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the modfind CLI version.",
	Args:  cobra.NoArgs,
	RunE:  Version,
}

// Version is the cobra handler for `modfind version`.
func Version(cmd *cobra.Command, _ []string) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Errorf("could not read build info")
	}
	version, err := deriveVersion(info)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}

func deriveVersion(info *debug.BuildInfo) (string, error) {
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}
	return derivePseudoVersionFromVCS(info)
}

// derivePseudoVersionFromVCS produces a pseudo version from the VCS
// settings stamped into the binary, in the spirit of
// https://go.dev/ref/mod#pseudo-versions
func derivePseudoVersionFromVCS(info *debug.BuildInfo) (string, error) {
	settings := map[string]string{}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	revision, at := settings["vcs.revision"], settings["vcs.time"]
	if revision == "" && at == "" {
		return "", fmt.Errorf("version information is not available")
	}

	var buf strings.Builder
	buf.WriteString("0.0.0")
	if revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		buf.WriteString("-" + revision)
	}
	// vcs.time is RFC 3339, e.g. 2023-01-25T19:57:54Z
	if p, err := time.Parse(time.RFC3339, at); err == nil {
		buf.WriteString("-" + p.UTC().Format("20060102150405"))
	}
	if settings["vcs.modified"] == "true" {
		buf.WriteString("+dirty")
	}
	return buf.String(), nil
}
