package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vybdev/modfind/config"
	"github.com/vybdev/modfind/logging"
	"github.com/vybdev/modfind/workspace/project"
)

var logLevel string
var rootFlag string
var formatFlag string

// session holds what every subcommand needs once the root command has run
// its pre-run hook.
type session struct {
	root string
	cfg  *config.Config
}

var current session

var rootCmd = &cobra.Command{
	Use:           "modfind",
	Short:         "modfind locates the module file generated artifacts should be registered in",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}

		if logLevel == "" {
			logLevel = cfg.Logging.Level
		}
		if err := logging.Init(logLevel); err != nil {
			return err
		}

		if formatFlag == "" {
			formatFlag = cfg.Output.Format
		}

		current = session{root: root, cfg: cfg}
		logging.ForCommand(cmd.Name()).WithField("root", root).Debug("project root resolved")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print usage.
		fmt.Println(cmd.UsageString())
	},
}

// projectRoot returns the --root flag when given, otherwise the closest
// ancestor of the working directory holding a .modfind directory, otherwise
// the working directory itself.
func projectRoot() (string, error) {
	if rootFlag != "" {
		return filepath.Abs(rootFlag)
	}
	root, err := project.FindRoot(".")
	if err == nil {
		return root, nil
	}
	var nip project.NotInProjectError
	if !errors.As(err, &nip) {
		return "", err
	}
	return filepath.Abs(".")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (e.g. debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "project root (defaults to the closest directory holding "+config.Dir+")")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "mustache template for each result, with {{name}}, {{path}}, {{dir}} and {{file}}")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(fromCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(versionCmd)
}
