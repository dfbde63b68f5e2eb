// Package workers runs the daemon's background workers behind a single
// aggregate. It defines the Worker interface and the Workers collection
// that starts every registered worker in order.
package workers

// Worker is the interface implemented by every background worker.
//
// Implementations either block for the duration of their work or spawn
// goroutines internally and return immediately.
type Worker interface {
	Run()
}
