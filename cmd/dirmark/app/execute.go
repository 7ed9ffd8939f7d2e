package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/dirmark/internal/tools/index"
	"github.com/agentstation/dirmark/pkg/constants"
	"github.com/agentstation/dirmark/pkg/errors"
)

// Execute runs the dirmark CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command. The root command
// itself generates the index; there is no subcommand to remember.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dirmark",
		Short:   "Markdown directory index generator",
		Version: a.version,
		Long: `Dirmark lists the subdirectories of a directory and emits one Markdown
block per subdirectory: a level-2 heading linking to /examples/<name>,
with the display title derived by title-casing the hyphen-separated
words of the directory name.

Run it inside an examples directory and paste the output into the README.`,
		Example: `  dirmark
  dirmark -C ./examples
  dirmark -C ./examples -o index.md`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              a.runGenerate,
	}

	// Add global flags. Flags with a config-file or env fallback are
	// registered unbound so an unset flag doesn't clobber the loaded
	// value; setupCommand applies them only when non-empty.
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.dirmark.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Index flags
	rootCmd.PersistentFlags().StringP("dir", "C", "", "directory to index (default is the current directory)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "write the index to a file instead of stdout")

	// Customize version output
	rootCmd.SetVersionTemplate("dirmark {{.Version}}\n")

	return rootCmd
}

// setupCommand is called before the command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags. These flags are defined in
	// createRootCommand, so lookup errors indicate programming errors.
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	logLevel := mustGetString(cmd, "log-level")
	dir := mustGetString(cmd, "dir")
	output := mustGetString(cmd, "output")

	a.config.UpdateFromFlags(verbose, quiet, dir, output, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// runGenerate renders the directory index to stdout or, when --output
// is set, to a file.
func (a *App) runGenerate(cmd *cobra.Command, _ []string) error {
	var writer io.Writer = os.Stdout

	if a.config.OutputFile != "" {
		file, err := os.OpenFile(a.config.OutputFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
		if err != nil {
			return errors.WrapIO("create", a.config.OutputFile, err)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				a.logger.Error().Err(closeErr).Str("file", a.config.OutputFile).Msg("Failed to close output file")
			}
		}()
		writer = file
	}

	generator := index.New(
		index.WithDir(a.config.Dir),
		index.WithWriter(writer),
	)

	return generator.Generate(cmd.Context())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
