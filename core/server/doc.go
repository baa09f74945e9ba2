// Package server holds the configuration of the optional status server.
//
// The status server is a small Fiber app that runs next to the launched backend
// and reports on it. It is off by default and must listen on a different port
// than the backend.
package server
