package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/vybdev/modfind/logging"
	"github.com/vybdev/modfind/workspace/finder"
	"github.com/vybdev/modfind/workspace/lister"
	"github.com/vybdev/modfind/workspace/project"
	"github.com/vybdev/modfind/workspace/solver"
)

var findCmd = &cobra.Command{
	Use:   "find [module]",
	Short: "Prints the module file of the named module. Prompts for the module when none is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Find,
}

var fromCmd = &cobra.Command{
	Use:   "from <file>",
	Short: "Prints the module file closest to the given file, searching parent directories.",
	Args:  cobra.ExactArgs(1),
	RunE:  From,
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Lists the root module and every nested module of the project.",
	Args:  cobra.NoArgs,
	RunE:  Modules,
}

// projectFinder returns a Finder that reads directories relative to the
// project root.
func projectFinder() *finder.Finder {
	return finder.New(
		lister.NewFSLister(os.DirFS(current.root)),
		solver.New(current.cfg.Layout()),
		finder.WithConvention(current.cfg.Convention()),
	)
}

// Find is the cobra handler for `modfind find`.
func Find(cmd *cobra.Command, args []string) error {
	f := projectFinder()

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		modules, err := f.Modules(cmd.Context())
		if err != nil {
			return err
		}
		prompt := &survey.Select{
			Message: "Module:",
			Options: modules,
		}
		if err := survey.AskOne(prompt, &name); err != nil {
			return err
		}
	}

	logging.ForCommand(cmd.Name()).WithField("module", name).Debug("resolving module file")
	file, err := f.Find(cmd.Context(), name)
	if finder.IsNotFound(err) {
		return fmt.Errorf("unable to find module %q, expected a file such as %s: %w", name, current.cfg.Convention().FileName(name), err)
	}
	if err != nil {
		return fmt.Errorf("unable to find module %q: %w", name, err)
	}
	return printResult(cmd, name, file)
}

// From is the cobra handler for `modfind from`.
func From(cmd *cobra.Command, args []string) error {
	origin, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}

	// The upward search may leave the project, so it reads the host
	// filesystem with absolute paths.
	f := finder.New(lister.OSLister{}, solver.New(current.cfg.Layout()), finder.WithConvention(current.cfg.Convention()))

	logging.ForCommand(cmd.Name()).WithField("origin", origin).Debug("searching upwards")
	file, err := f.FindFrom(cmd.Context(), filepath.ToSlash(origin))
	if err != nil {
		return fmt.Errorf("unable to find a module file for %s: %w", args[0], err)
	}
	name := current.cfg.Convention().Stem(path.Base(file))
	return printResult(cmd, name, project.Rel(current.root, filepath.FromSlash(file)))
}

// Modules is the cobra handler for `modfind modules`.
func Modules(cmd *cobra.Command, _ []string) error {
	modules, err := projectFinder().Modules(cmd.Context())
	if err != nil {
		return err
	}
	for _, m := range modules {
		fmt.Fprintln(cmd.OutOrStdout(), m)
	}
	return nil
}
