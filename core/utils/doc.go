// Package utils provides small helpers shared by the CLI and the HTTP handlers:
// tolerant boolean parsing for query parameters and flags, and rendering of
// sequence numbers as marker lists.
package utils
