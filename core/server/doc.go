// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// settings it needs: listen port, API key, request body limit and how long the
// catalog feature keeps a loaded catalog in memory.
package server
