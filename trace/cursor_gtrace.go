
package trace

import (
	"context"
)

// cursorComposeOptions is a holder of options
type cursorComposeOptions struct {
	panicCallback func(e interface{})
}

// CursorComposeOption specified Cursor compose option
type CursorComposeOption func(o *cursorComposeOptions)

// WithCursorPanicCallback specified behavior on panic
func WithCursorPanicCallback(cb func(e interface{})) CursorComposeOption {
	return func(o *cursorComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new Cursor which has functional fields composed both from t and x.
func (t *Cursor) Compose(x *Cursor, opts ...CursorComposeOption) *Cursor {
	var ret Cursor
	options := cursorComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	{
		h1 := t.OnNew
		h2 := x.OnNew
		ret.OnNew = func(s CursorNewStartInfo) func(CursorNewDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(CursorNewDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d CursorNewDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnFetch
		h2 := x.OnFetch
		ret.OnFetch = func(s CursorFetchStartInfo) func(CursorFetchDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(CursorFetchDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d CursorFetchDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnOne
		h2 := x.OnOne
		ret.OnOne = func(s CursorOneStartInfo) func(CursorOneDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(CursorOneDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d CursorOneDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnSeveral
		h2 := x.OnSeveral
		ret.OnSeveral = func(s CursorSeveralStartInfo) func(CursorSeveralDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(CursorSeveralDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d CursorSeveralDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnAll
		h2 := x.OnAll
		ret.OnAll = func(s CursorAllStartInfo) func(CursorAllDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(CursorAllDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d CursorAllDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnCollect
		h2 := x.OnCollect
		ret.OnCollect = func(s CursorCollectStartInfo) func(CursorCollectDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(CursorCollectDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d CursorCollectDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnMisusage
		h2 := x.OnMisusage
		ret.OnMisusage = func(info CursorMisusageInfo) {
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

func (t *Cursor) onNew(s CursorNewStartInfo) func(CursorNewDoneInfo) {
	fn := t.OnNew
	if fn == nil {
		return func(CursorNewDoneInfo) {
			return
		}
	}
	res := fn(s)
	if res == nil {
		return func(CursorNewDoneInfo) {
			return
		}
	}

	return res
}

func (t *Cursor) onFetch(s CursorFetchStartInfo) func(CursorFetchDoneInfo) {
	fn := t.OnFetch
	if fn == nil {
		return func(CursorFetchDoneInfo) {
			return
		}
	}
	res := fn(s)
	if res == nil {
		return func(CursorFetchDoneInfo) {
			return
		}
	}

	return res
}

func (t *Cursor) onOne(s CursorOneStartInfo) func(CursorOneDoneInfo) {
	fn := t.OnOne
	if fn == nil {
		return func(CursorOneDoneInfo) {
			return
		}
	}
	res := fn(s)
	if res == nil {
		return func(CursorOneDoneInfo) {
			return
		}
	}

	return res
}

func (t *Cursor) onSeveral(s CursorSeveralStartInfo) func(CursorSeveralDoneInfo) {
	fn := t.OnSeveral
	if fn == nil {
		return func(CursorSeveralDoneInfo) {
			return
		}
	}
	res := fn(s)
	if res == nil {
		return func(CursorSeveralDoneInfo) {
			return
		}
	}

	return res
}

func (t *Cursor) onAll(s CursorAllStartInfo) func(CursorAllDoneInfo) {
	fn := t.OnAll
	if fn == nil {
		return func(CursorAllDoneInfo) {
			return
		}
	}
	res := fn(s)
	if res == nil {
		return func(CursorAllDoneInfo) {
			return
		}
	}

	return res
}

func (t *Cursor) onCollect(s CursorCollectStartInfo) func(CursorCollectDoneInfo) {
	fn := t.OnCollect
	if fn == nil {
		return func(CursorCollectDoneInfo) {
			return
		}
	}
	res := fn(s)
	if res == nil {
		return func(CursorCollectDoneInfo) {
			return
		}
	}

	return res
}

func (t *Cursor) onMisusage(info CursorMisusageInfo) {
	fn := t.OnMisusage
	if fn == nil {
		return
	}
	fn(info)
}

func CursorOnNew(t *Cursor, c *context.Context, call call) func(iD string, available int, fullyFetched bool) {
	var p CursorNewStartInfo
	p.Context = c
	p.Call = call
	res := t.onNew(p)

	return func(iD string, available int, fullyFetched bool) {
		var p CursorNewDoneInfo
		p.ID = iD
		p.Available = available
		p.FullyFetched = fullyFetched
		res(p)
	}
}

func CursorOnFetch(t *Cursor, c *context.Context, call call, iD string) func(available int, fullyFetched bool, e error) {
	var p CursorFetchStartInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	res := t.onFetch(p)

	return func(available int, fullyFetched bool, e error) {
		var p CursorFetchDoneInfo
		p.Available = available
		p.FullyFetched = fullyFetched
		p.Error = e
		res(p)
	}
}

func CursorOnOne(t *Cursor, c *context.Context, call call, iD string) func(found bool, e error) {
	var p CursorOneStartInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	res := t.onOne(p)

	return func(found bool, e error) {
		var p CursorOneDoneInfo
		p.Found = found
		p.Error = e
		res(p)
	}
}

func CursorOnSeveral(t *Cursor, c *context.Context, call call, iD string, amount int) func(rows int, e error) {
	var p CursorSeveralStartInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	p.Amount = amount
	res := t.onSeveral(p)

	return func(rows int, e error) {
		var p CursorSeveralDoneInfo
		p.Rows = rows
		p.Error = e
		res(p)
	}
}

func CursorOnAll(t *Cursor, c *context.Context, call call, iD string) func(rows int, e error) {
	var p CursorAllStartInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	res := t.onAll(p)

	return func(rows int, e error) {
		var p CursorAllDoneInfo
		p.Rows = rows
		p.Error = e
		res(p)
	}
}

func CursorOnCollect(t *Cursor, c *context.Context, call call, iD string) func(rows int, e error) {
	var p CursorCollectStartInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	res := t.onCollect(p)

	return func(rows int, e error) {
		var p CursorCollectDoneInfo
		p.Rows = rows
		p.Error = e
		res(p)
	}
}

func CursorOnMisusage(t *Cursor, c *context.Context, call call, iD string) {
	var p CursorMisusageInfo
	p.Context = c
	p.Call = call
	p.ID = iD
	t.onMisusage(p)
}
