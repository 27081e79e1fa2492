// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"

	"fjacquet/household-tracker/internal/config"
	"fjacquet/household-tracker/internal/container"
	"fjacquet/household-tracker/internal/logging"
	"fjacquet/household-tracker/internal/trackererror"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	StorePath string
	Backend   string
	LogLevel  string
	LogFormat string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "household-tracker",
		Short: "A CLI tool to record household purchases and summarize spending.",
		Long: `household-tracker records household purchases (groceries, pharmacy, bills
and more), groups them into shopping trips and summarizes spending by day,
week, month or year. Data can be exported as JSON, text, CSV or YAML and
restored from a JSON backup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return Shutdown()
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.StorePath, "store", "s", "", "Path of the data file or database")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Storage backend (json or sqlite)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text or json)")
}

// GetContainer returns the container built for the running command, or nil
// before the root pre-run hook has executed.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer installs a prepared container. The pre-run hook keeps an
// installed container instead of building one from the configuration.
func SetContainer(c *container.Container) {
	appContainer = c
}

func setup(cmd *cobra.Command) error {
	if appContainer != nil {
		return nil
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(config.Overrides{
		LogLevel:    SharedFlags.LogLevel,
		LogFormat:   SharedFlags.LogFormat,
		Backend:     SharedFlags.Backend,
		StoragePath: SharedFlags.StorePath,
	}); err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	if err := c.Load(cmd.Context()); err != nil {
		_ = c.Close()
		return err
	}

	c.GetLogger().Debug("Loaded records",
		logging.F(logging.FieldBackend, cfg.Storage.Backend),
		logging.F(logging.FieldFile, cfg.StoragePath()),
		logging.F(logging.FieldCount, c.GetRecords().Len()))

	appContainer = c
	return nil
}

// Shutdown closes the running container. It is safe to call more than once,
// and covers commands whose RunE failed before the post-run hook.
func Shutdown() error {
	if appContainer == nil {
		return nil
	}
	err := appContainer.Close()
	appContainer = nil
	return err
}

// ErrorMessage turns a command error into the line shown to the user.
func ErrorMessage(err error) string {
	var ie *trackererror.ImportError
	switch {
	case trackererror.IsValidation(err):
		return fmt.Sprintf("Purchase rejected: %v", err)
	case errors.As(err, &ie):
		return fmt.Sprintf("Import rejected, existing data kept: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
