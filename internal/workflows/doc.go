// Package workflows provides high-level orchestration for codsync commands.
//
// Workflows coordinate multiple operations across packages (gamepath,
// settings, configs, audit) to implement complete user-facing features.
// Each workflow handles a single command's business logic, independent of
// CLI concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Resolving the documents root and category list
//   - Discovering profile config files
//   - Performing the core operation
//   - Recording operation log entries
//
// # Available Workflows
//
// Each command has a corresponding workflow:
//
//   - Export: Writes the filtered settings of every profile to a JSON document
//   - Import: Merges a settings document back into the live config files
//   - Backup: Copies every config file to a timestamped sibling
//   - Log: Reads the operation log for display
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Export(ctx, opts)
//	if errors.Is(err, cserrors.ErrNoConfigFiles) {
//	    // Show user-friendly message
//	}
//
// Batch operations are best-effort: a failure on one profile's file is
// recorded in the result and never aborts the remaining files. Only a
// malformed import document is fatal, since a document that fails to
// decode cannot be partially trusted.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Operations are synchronous and run to completion on the calling
// goroutine; each invocation opens, reads, and closes its own files with
// no shared state between invocations.
package workflows
