// Package status reports on the launched backend server.
//
// # HTTP Endpoints
//
//   - GET /status : The function declaration and the launched child (launch id, pid, running).
//   - GET /status/ready : 200 when the backend web port accepts connections, 503 otherwise.
package status
