package server

// Server is the lifecycle of the decryption service listener.
//
// [RunServer] blocks until a termination signal arrives and in-flight uploads
// have been drained; [Shutdown] stops accepting uploads without waiting for a
// signal.
type Server interface {
	RunServer()

	// Shutdown waits at most shutdownTimeout for running requests.
	Shutdown()
}
