// Package common contains shared constants and sentinel errors used across
// the console packages.
package common

// RequestIDHeaderName is the HTTP header carrying the per-call correlation id
// on outbound requests.
const RequestIDHeaderName = "X-Request-ID"

// DefaultEndpoint is where the user collection lives when nothing is configured.
const DefaultEndpoint = "http://localhost:3000/api/user"
