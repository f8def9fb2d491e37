// Package commands implements the CLI commands for the purge tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/purge/internal/app"
	"go.trai.ch/purge/internal/build"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of the environment variables that set flags, e.g. PURGE_NO_CLEAN.
const EnvPrefix = "PURGE"

const (
	flagRecurse         = "recurse"
	flagNoClean         = "no-clean"
	flagIDEFiles        = "vs"
	flagParallel        = "parallel"
	flagVerbose         = "verbose"
	flagSkipUpdateCheck = "skip-update-check"
)

// CLI represents the command line interface for purge.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	viper   *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "purge [target]",
		Short: "Remove the build output of .NET projects",
		Long: `purge cleans every configuration and target framework of the projects under
target and deletes their bin and obj directories. target is a directory, a project
file or a solution file and defaults to the current directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Registered before the default version flag so that -v stays with --verbose.
	flags := rootCmd.Flags()
	flags.BoolP(flagRecurse, "r", false, "Search subdirectories for projects and solutions")
	flags.BoolP(flagNoClean, "n", false, "Skip dotnet clean and only delete output directories")
	flags.Bool(flagIDEFiles, false, "Also remove the .vs directory and .user files")
	flags.Int(flagParallel, 0, "Number of projects purged concurrently (default from .purge.yaml, else 1)")
	flags.BoolP(flagVerbose, "v", false, "Print debug output")
	flags.Bool(flagSkipUpdateCheck, false, "Do not check for a newer release")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		viper:   v,
	}
	rootCmd.RunE = c.run

	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	parallel := c.viper.GetInt(flagParallel)
	if parallel < 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidParallelism, "invalid --parallel"), "parallel", parallel)
	}

	var target string
	if len(args) == 1 {
		target = args[0]
	}

	return c.app.Run(cmd.Context(), app.RunOptions{
		Target:          target,
		Recurse:         c.viper.GetBool(flagRecurse),
		NoClean:         c.viper.GetBool(flagNoClean),
		IDEFiles:        c.viper.GetBool(flagIDEFiles),
		Parallel:        parallel,
		Verbose:         c.viper.GetBool(flagVerbose),
		SkipUpdateCheck: c.viper.GetBool(flagSkipUpdateCheck),
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
