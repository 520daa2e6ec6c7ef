package server

// Server is the lifecycle contract of the agent's inbound listener.
//
// [RunServer] blocks until a stop signal arrives; [Shutdown] drains open
// event connections and releases the listener.
type Server interface {
	// RunServer starts serving inbound events and blocks until the server
	// stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
