// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure and the derived values used when building the Fiber app,
// such as the request body limit applied to document uploads.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the upload size limit.
package server
