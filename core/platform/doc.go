// Package platform declares platform-managed functions and runs their entry points.
//
// A function is described by a plain FunctionSpec: the container image to build,
// the secret bundles to attach, the minimum number of warm containers, and the web
// server port and label the platform routes traffic to. Specs are registered on an
// App together with a Handler, the entry point executed once per container start.
//
// # Invocation
//
// Invoke runs the handler and, when the function exposes a web server, waits until
// the port accepts TCP connections. Either failure is a failed container start.
//
// # Manifest
//
// Manifest renders every registered function as YAML for deployment tooling.
package platform
