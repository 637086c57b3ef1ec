
package trace

import (
	"context"
)

// streamComposeOptions is a holder of options
type streamComposeOptions struct {
	panicCallback func(e interface{})
}

// StreamComposeOption specified Stream compose option
type StreamComposeOption func(o *streamComposeOptions)

// WithStreamPanicCallback specified behavior on panic
func WithStreamPanicCallback(cb func(e interface{})) StreamComposeOption {
	return func(o *streamComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new Stream which has functional fields composed both from t and x.
func (t *Stream) Compose(x *Stream, opts ...StreamComposeOption) *Stream {
	var ret Stream
	options := streamComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	{
		h1 := t.OnStart
		h2 := x.OnStart
		ret.OnStart = func(info StreamStartInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnPause
		h2 := x.OnPause
		ret.OnPause = func(info StreamPauseInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnResume
		h2 := x.OnResume
		ret.OnResume = func(info StreamResumeInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnEnd
		h2 := x.OnEnd
		ret.OnEnd = func(info StreamEndInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}
	{
		h1 := t.OnFail
		h2 := x.OnFail
		ret.OnFail = func(info StreamFailInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			if h1 != nil {
				h1(info)
			}
			if h2 != nil {
				h2(info)
			}
		}
	}

	return &ret
}

func (t *Stream) onStart(info StreamStartInfo) {
	fn := t.OnStart
	if fn == nil {
		return
	}
	fn(info)
}

func (t *Stream) onPause(info StreamPauseInfo) {
	fn := t.OnPause
	if fn == nil {
		return
	}
	fn(info)
}

func (t *Stream) onResume(info StreamResumeInfo) {
	fn := t.OnResume
	if fn == nil {
		return
	}
	fn(info)
}

func (t *Stream) onEnd(info StreamEndInfo) {
	fn := t.OnEnd
	if fn == nil {
		return
	}
	fn(info)
}

func (t *Stream) onFail(info StreamFailInfo) {
	fn := t.OnFail
	if fn == nil {
		return
	}
	fn(info)
}

func StreamOnStart(t *Stream, c *context.Context, call call, iD string) {
	var p StreamStartInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	t.onStart(p)
}

func StreamOnPause(t *Stream, c *context.Context, call call, iD string, emitted int) {
	var p StreamPauseInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	p.Emitted = emitted
	t.onPause(p)
}

func StreamOnResume(t *Stream, c *context.Context, call call, iD string, emitted int) {
	var p StreamResumeInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	p.Emitted = emitted
	t.onResume(p)
}

func StreamOnEnd(t *Stream, c *context.Context, call call, iD string, emitted int) {
	var p StreamEndInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	p.Emitted = emitted
	t.onEnd(p)
}

func StreamOnFail(t *Stream, c *context.Context, call call, iD string, emitted int, e error) {
	var p StreamFailInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	p.Emitted = emitted
	p.Error = e
	t.onFail(p)
}
