// Package audit provides operation logging for codsync.
//
// Every batch operation (export, import, backup) is recorded in a log
// next to the tool config. The log answers "when did I last export, and
// what did it touch" without re-running anything.
//
// # Log Format
//
// The log is stored as JSON Lines (one JSON object per line) at:
//
//	<user config dir>/codsync/operations.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Machine id from the tool config
//   - Operation name
//   - Operation-specific counts and paths
//
// # Usage
//
// Create an entry with the machine id pre-populated:
//
//	entry := audit.LogWithMachine("export")
//	entry.FilesCount = result.FilesExported
//	audit.Log(entry)
//
// # Failure Handling
//
// Operation logging is best-effort. If logging fails (permissions, disk
// full, etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ParseEntries() to parse the log for display. Malformed entries are
// silently skipped to handle partial writes.
package audit
