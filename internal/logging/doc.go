// Package logger provides leveled logging for codsync CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed and colorized with fatih/color.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows debug details
//
// Warnings and errors are always shown, on stderr.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Processing %d files", count)
//
// Commands typically create a logger in their PersistentPreRun and use it
// throughout their RunE function.
package logger
