package trace

import (
	"context"
)

type (
	// Stream specified trace of demand stream activity.
	Stream struct {
		OnStart  func(StreamStartInfo)
		OnPause  func(StreamPauseInfo)
		OnResume func(StreamResumeInfo)
		OnEnd    func(StreamEndInfo)
		OnFail   func(StreamFailInfo)
	}

	StreamStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		ID      string
	}
	StreamPauseInfo struct {
		Context *context.Context
		Call    call
		ID      string
		Emitted int
	}
	StreamResumeInfo struct {
		Context *context.Context
		Call    call
		ID      string
		Emitted int
	}
	StreamEndInfo struct {
		Context *context.Context
		Call    call
		ID      string
		Emitted int
	}
	StreamFailInfo struct {
		Context *context.Context
		Call    call
		ID      string
		Emitted int
		Error   error
	}
)
