// Package gamepath locates the game installation and its per-profile
// config files on disk.
//
// # Install Root
//
// The install root is validated by the presence of the game executable
// (cod.exe) as a regular file. LocateInstallRoot probes a configured
// override first and the default Steam directory second; ValidateInstallRoot
// applies the same marker check to a user-chosen directory before it is
// accepted and persisted.
//
// # Profile Config Files
//
// Per-profile settings live under the documents root:
//
//	<documents>/Call of Duty/players/<profile>/g.<name>.txt0
//	<documents>/Call of Duty/players/<profile>/g.<name>.txt1
//
// Discovery is read-only and rebuilt on every invocation; nothing is
// cached between calls.
package gamepath
