// Package logging provides structured logging for fleetmaint.
//
// This package wraps a package-global zap logger with a few convenience
// functions. The logger is silent until Initialize is called with a level,
// because the terminal UI owns stdout: diagnostic output has to be sent to a
// file instead.
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/fleetmaint.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// An empty level falls back to FLEETMAINT_LOG_LEVEL; if that is empty too, a
// no-op logger is installed.
//
// # Structured Logging
//
//	logging.Error("Vehicle update failed",
//	    zap.String("vehicle_id", id),
//	    zap.Error(err),
//	)
//
// Failed vehicle updates are reported only through this channel; the UI keeps
// the edit dialog open and shows nothing else.
package logging
