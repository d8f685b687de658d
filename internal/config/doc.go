// Package config resolves fleetmaint's runtime settings.
//
// Settings come from several places. Highest precedence first:
//   - command-line flags (Overrides)
//   - the process environment (FLEETMAINT_API_URL, FLEETMAINT_LOG_LEVEL,
//     FLEETMAINT_LOG_FILE, FLEETMAINT_TIMEOUT)
//   - a .env file in the working directory
//   - the YAML config file
//   - built-in defaults
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/fleetmaint/config.yaml or $HOME/.config/fleetmaint/config.yaml
//   - macOS: $HOME/.config/fleetmaint/config.yaml
//   - Windows: %LOCALAPPDATA%\fleetmaint\config.yaml
//
// # Usage Example
//
//	settings, err := config.Resolve(config.Options{
//	    Overrides: config.Overrides{APIURL: flagURL},
//	})
//	if errors.Is(err, config.ErrNoAPIURL) {
//	    // tell the user to set FLEETMAINT_API_URL
//	}
//
// The API URL is read once at startup; nothing here watches for changes.
package config
