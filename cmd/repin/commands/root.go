// Package commands implements the CLI commands for repin.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/repin/internal/app"
	"go.trai.ch/repin/internal/build"
	"go.trai.ch/repin/internal/core/domain"
)

// CLI represents the command line interface for repin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Sync(ctx context.Context, snapshotPath string, files []string, opts app.SyncOptions) error
	SetLogFormat(format string) error
}

type rootFlags struct {
	config      string
	exempt      []string
	reportLimit int
	dryRun      bool
	backup      bool
	watch       bool
	logFormat   string
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "repin [flags] <snapshot-file> <declaration-file> [declaration-file...]",
		Short: "Pin requirement files to the versions of an installed environment",
		Long: `repin rewrites Python requirement files so that every package is pinned to
the exact version listed in a snapshot of an installed environment, such as
the output of "pip freeze".

Comments, blank lines and VCS references are kept as they are. Packages
missing from the snapshot are left untouched and reported.`,
		Example: `  pip freeze > installed.txt
  repin installed.txt requirements/common.txt requirements/dev.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSync(cmd, args, flags)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	f := rootCmd.Flags()
	f.StringVarP(&flags.config, "config", "c", "",
		"Path to a YAML config file (default: "+domain.ConfigFileName+" or [tool.repin] in "+domain.PyProjectFileName+")")
	f.StringSliceVarP(&flags.exempt, "exempt", "e", nil, "Package names never reported as not found")
	f.IntVar(&flags.reportLimit, "report-limit", domain.DefaultReportLimit, "Number of missing packages listed per file")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Report what would change without writing files")
	f.BoolVarP(&flags.backup, "backup", "b", false, "Save the original content of each file before rewriting it")
	f.BoolVarP(&flags.watch, "watch", "w", false, "Keep running and sync again whenever the snapshot file changes")
	f.StringVar(&flags.logFormat, "log-format", app.LogFormatPretty, "Log format: pretty or json")

	rootCmd.AddCommand(c.newVersionCmd())
	c.rootCmd = rootCmd

	return c
}

func (c *CLI) runSync(cmd *cobra.Command, args []string, flags *rootFlags) error {
	if err := c.app.SetLogFormat(flags.logFormat); err != nil {
		return err
	}

	if len(args) < 2 {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return domain.ErrMissingArguments
	}

	opts := app.SyncOptions{
		ConfigPath:  flags.config,
		Exempt:      flags.exempt,
		ReportLimit: -1,
		DryRun:      flags.dryRun,
		Backup:      flags.backup,
		Watch:       flags.watch,
	}
	if cmd.Flags().Changed("report-limit") {
		opts.ReportLimit = flags.reportLimit
		if opts.ReportLimit < 0 {
			return domain.ErrInvalidReportLimit
		}
	}

	return c.app.Sync(cmd.Context(), args[0], args[1:], opts)
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
