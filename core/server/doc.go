// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber app from this configuration: listen port,
// request body limit and the admin API key that guards operational endpoints.
package server
