// Package http implements the inbound HTTP surface of the autofill agent.
// The external autofill runtime calls it on the local loopback interface to
// raise decrypt-request events; authentication, tracing and request logging
// are handled here before events reach the service layer.
package http
