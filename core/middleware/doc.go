// Package middleware contains HTTP middleware for the status server.
//
// # Components
//
//   - auth: API key validation for every endpoint when a key is configured.
//   - rayid: a unique request ID (RayID) per request, stored in locals and echoed
//     in the response header so logs can be correlated.
package middleware
