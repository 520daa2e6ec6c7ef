// Package server owns the lifecycle of the agent's inbound transport. It
// starts the HTTP server the autofill runtime calls and shuts it down
// gracefully on termination signals.
package server
