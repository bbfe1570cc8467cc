package errors

import "errors"

// Discovery errors indicate the game installation or its files could not be located.
var (
	// ErrInstallNotFound indicates no game installation marker was found.
	ErrInstallNotFound = errors.New("game installation not found")

	// ErrDocumentsNotFound indicates the documents directory could not be resolved.
	ErrDocumentsNotFound = errors.New("documents directory not found")

	// ErrNoConfigFiles indicates no profile config files matched the expected pattern.
	ErrNoConfigFiles = errors.New("no profile config files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")
)

// Document errors indicate issues with an exported settings document.
var (
	// ErrMalformedDocument indicates the settings document could not be decoded.
	ErrMalformedDocument = errors.New("settings document is malformed")
)

// Config errors indicate issues with the tool's own configuration.
var (
	// ErrInvalidInstallRoot indicates a chosen directory is missing the game executable.
	ErrInvalidInstallRoot = errors.New("directory does not contain the game executable")

	// ErrInvalidConfig indicates the tool configuration is malformed or corrupt.
	ErrInvalidConfig = errors.New("configuration is invalid")
)
