package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/spf13/cobra"
)

// view is what the --format template can reference.
func view(name, file string) map[string]string {
	return map[string]string{
		"name": name,
		"path": file,
		"dir":  path.Dir(file),
		"file": path.Base(file),
	}
}

// render applies the mustache format to a module file.
func render(format, name, file string) (string, error) {
	tmpl, err := mustache.ParseString(format)
	if err != nil {
		return "", fmt.Errorf("invalid format %q: %w", format, err)
	}
	return tmpl.Render(view(name, file))
}

func printResult(cmd *cobra.Command, name, file string) error {
	out, err := render(formatFlag, name, file)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return nil
}
