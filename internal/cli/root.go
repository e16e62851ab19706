package cli

import (
	"errors"
	"log/slog"

	"github.com/createproject-labs/createproject/internal/branding"
	"github.com/createproject-labs/createproject/internal/config"
	"github.com/createproject-labs/createproject/internal/logging"
	"github.com/createproject-labs/createproject/internal/wizard"
	"github.com/spf13/cobra"
)

// Exit codes returned by ExitCode.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCollision = 2
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel string
	logger   = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` asks a few questions about your new Python project
(name, main package, author, description, templates) and writes a ready-to-edit
package skeleton. Running it without a subcommand is the same as "new".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		settings := config.Current()

		level := settings.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		l, err := logging.New(logging.Config{Level: level, File: settings.LogFile})
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
	RunE: runNew,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	addNewFlags(rootCmd)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit code. Name
// collisions that cannot be recovered get their own code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, wizard.ErrRepeatedCollision), errors.Is(err, wizard.ErrProjectExists):
		return ExitCollision
	default:
		return ExitError
	}
}
