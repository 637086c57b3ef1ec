package result

// Stream is push-style consumer of paged result with pause/resume demand.
//
// Rows are delivered to handler one at a time on the execution context of stream.
// Registering non-nil handler starts emission, so end and exception handlers
// must be registered before. Exactly one terminal event (end or exception) is
// emitted, nothing is emitted after it.
type Stream interface {
	Handler(handler func(Row)) Stream
	EndHandler(handler func()) Stream
	ExceptionHandler(handler func(err error)) Stream

	// Pause stops emission. Idempotent, may be called from any goroutine.
	Pause() Stream
	// Resume continues emission. Idempotent, may be called from any goroutine.
	Resume() Stream

	// Done is closed after terminal event
	Done() <-chan struct{}
	// Err returns terminal error, valid after Done is closed
	Err() error
}
