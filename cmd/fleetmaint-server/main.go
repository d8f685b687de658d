// Fleetmaint-server serves an in-memory vehicles API for local use of the
// fleetmaint client.
//
// It exposes the same list and update endpoints as the production fleet
// API, seeded from a JSON or YAML file or from a small built-in fleet.
//
// Usage:
//
//	fleetmaint-server serve [flags]
//
// See 'fleetmaint-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fleetmaint/internal/server"
	"github.com/muurk/fleetmaint/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fleetmaint-server",
	Short: "Fleet vehicles API server",
	Long: `A standalone vehicles API for developing against the fleetmaint client.

Vehicles are kept in memory. Updates made through PATCH are lost when the
server stops.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	host     string
	port     int
	seedPath string
	logLevel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the vehicles API",
	Long: `Start the vehicles API.

Endpoints:
  GET   /health          liveness probe
  GET   /vehicles        list all vehicles
  PATCH /vehicles/{id}   set person and estimatedDate (YYYY/DD/MM)`,
	Example: `  # Serve the built-in fleet on port 8080
  fleetmaint-server serve

  # Serve a custom fleet with request logging
  fleetmaint-server serve --seed fleet.yaml --log-level debug

  # Point the client at it
  fleetmaint --api-url http://localhost:8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Server hostname (empty = listen on all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", 8080, "Server port")
	serveCmd.Flags().StringVar(&seedPath, "seed", "", "JSON or YAML file with the initial vehicles (default is a built-in fleet)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if seedPath != "" {
		if _, err := os.Stat(seedPath); os.IsNotExist(err) {
			return fmt.Errorf("seed file not found: %s", seedPath)
		}
	}

	srv, err := server.New(&server.Config{
		Host:     host,
		Port:     port,
		SeedPath: seedPath,
		LogLevel: logLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fleetmaint-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
