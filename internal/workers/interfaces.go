// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn their goroutines internally and
// return promptly; the supplied context bounds the worker's lifetime.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // start background processing tied to ctx
//	}
type Worker interface {
	Run(ctx context.Context)
}
