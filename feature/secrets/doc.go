// Package secrets manages named secret bundles kept in object storage.
//
// A bundle is a dotenv document stored as "<prefix><name>.env" in the configured
// bucket. Before the server is launched, the bundle attached to the function is
// fetched and applied to the process environment, so the child inherits it.
//
// # HTTP Endpoints
//
//   - GET /secrets : Lists bundle names.
//   - GET /secrets/:name : Lists the keys of a bundle. Values are never returned.
package secrets
