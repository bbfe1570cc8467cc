// Package settings parses, filters, and merges flat "key = value" game
// config files.
//
// # Parsing
//
// Config files are line-oriented. Parse splits each line on the first
// "=", trims both sides, and skips lines without an assignment. Parsing
// is read-only; the original file keeps its comments, blank lines, and
// ordering because nothing is ever written back from a parse.
//
// # Filtering
//
// Filter selects the exportable subset of a parsed mapping by
// case-insensitive substring match against a category list ("fov",
// "mouse", ...). DefaultCategories holds the built-in list; the tool
// config can override it.
//
// # Merging
//
// MergeLines applies exported values back onto a file's raw lines,
// replacing matched assignment lines with the canonical "key = value"
// form and appending missing keys, while leaving every unrelated line
// byte-identical. Merging the same values twice is a no-op the second
// time.
package settings
