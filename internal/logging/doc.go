// Package logging provides structured logging for mandelsaver.
//
// This package wraps a zap logger with package-level convenience functions.
// The glyph stream goes to standard error, so logging is silent unless
// explicitly enabled and writes to standard output when it is.
//
// # Log Levels
//
//   - Debug: Resize detection, generator rebuilds
//   - Info: Viewpoint changes, startup and shutdown
//   - Warn: Recoverable output problems
//   - Error: Fatal problems before exit
//
// # Configuration
//
// Logging is controlled by the MANDELSAVER_LOG_LEVEL environment variable:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// When the variable is unset or empty a no-op logger is installed.
//
// # Domain Helpers
//
//	logging.LogViewpoint(index, centerX, centerY, distance, maxColor, width)
//	logging.LogResize(oldWidth, newWidth)
package logging
