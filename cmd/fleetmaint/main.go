// Fleetmaint lists the vehicles of a fleet API and records who will take
// each one in for maintenance, and when.
//
// Usage:
//
//	fleetmaint [command] [flags]
//
// Running without arguments launches the interactive card view.
// See 'fleetmaint --help' for available commands.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/config"
	"github.com/muurk/fleetmaint/internal/gateway"
	"github.com/muurk/fleetmaint/internal/logging"
	"github.com/muurk/fleetmaint/internal/tui"
	"github.com/muurk/fleetmaint/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	apiURL     string
	configPath string
	logLevel   string
	logFile    string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "fleetmaint",
	Short: "Fleet maintenance planner",
	Long: `Browse the vehicles of a fleet API and mark who will take each one in
for maintenance, and on which date.

The API base URL comes from --api-url, FLEETMAINT_API_URL, a .env file in
the working directory, or api_url in the config file, in that order.

If no command is specified, the interactive card view launches.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Vehicles API base URL (overrides "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the OS config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (TUI default: fleetmaint.log in the config dir)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-request timeout, e.g. 10s (0 = none)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fleetmaint %s (commit: %s)\n", version.Version, version.Commit)
	},
}

// loadSettings resolves configuration with the command-line flags on top
func loadSettings() (*config.Settings, error) {
	return config.Resolve(config.Options{
		ConfigPath: configPath,
		Overrides: config.Overrides{
			APIURL:   apiURL,
			LogLevel: logLevel,
			LogFile:  logFile,
			Timeout:  timeout,
		},
	})
}

// setupLogging starts the logger. The TUI owns the terminal, so it always
// logs to a file; other commands default to stderr.
func setupLogging(settings *config.Settings, interactive bool) error {
	if settings.LogLevel == "" {
		return logging.Initialize("")
	}

	path := settings.LogFile
	if path == "" {
		if !interactive {
			return logging.Initialize(settings.LogLevel, "stderr")
		}
		defaultPath, err := config.DefaultLogPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	return logging.Initialize(settings.LogLevel, path)
}

func newClient(settings *config.Settings) *gateway.Client {
	client := gateway.NewClient(settings.APIURL)
	if settings.Timeout > 0 {
		client.SetTimeout(settings.Timeout)
	}
	return client
}

func runTUI(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := setupLogging(settings, true); err != nil {
		return err
	}
	defer logging.Sync()

	logging.Info("Starting TUI", zap.String("api_url", settings.APIURL))

	program := tea.NewProgram(tui.NewAppModel(newClient(settings)), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
