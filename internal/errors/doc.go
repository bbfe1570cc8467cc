// Package errors provides typed error values for the codsync application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Discovery errors: Game files could not be located (ErrInstallNotFound,
//     ErrDocumentsNotFound, ErrNoConfigFiles)
//   - Document errors: Exported settings document issues (ErrMalformedDocument)
//   - Config errors: Tool configuration issues (ErrInvalidConfig)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(files) == 0 {
//	    return nil, errors.ErrNoConfigFiles
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Export(ctx, opts)
//	if errors.Is(err, cserrors.ErrNoConfigFiles) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
package errors
