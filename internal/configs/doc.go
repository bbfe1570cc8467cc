// Package configs manages the persisted configuration for codsync.
//
// Configuration is stored in TOML format at:
//
//	<user config dir>/codsync/config.toml
//
// (~/.config/codsync/config.toml on Linux, %AppData%\codsync on Windows.)
//
// # Contents
//
// The config stores:
//   - Game install path override (set via `codsync locate --set`)
//   - Documents root override (where per-profile config files live)
//   - Category list override for export filtering
//   - Machine id (auto-generated on first save, used by the operation log)
//
// Every field is an optional override; a missing config file or an empty
// field means the platform default is used. There is no process-global
// "selected path" state: callers load the config and pass the resolved
// values into each operation.
package configs
