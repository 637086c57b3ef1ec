package trace

import (
	"context"
)

type (
	// Cursor specified trace of page cursor activity.
	Cursor struct {
		OnNew      func(CursorNewStartInfo) func(CursorNewDoneInfo)
		OnFetch    func(CursorFetchStartInfo) func(CursorFetchDoneInfo)
		OnOne      func(CursorOneStartInfo) func(CursorOneDoneInfo)
		OnSeveral  func(CursorSeveralStartInfo) func(CursorSeveralDoneInfo)
		OnAll      func(CursorAllStartInfo) func(CursorAllDoneInfo)
		OnCollect  func(CursorCollectStartInfo) func(CursorCollectDoneInfo)
		OnMisusage func(CursorMisusageInfo)
	}

	CursorNewStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
	}
	CursorNewDoneInfo struct {
		ID           string
		Available    int
		FullyFetched bool
	}
	CursorFetchStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context *context.Context
		Call    call
		ID      string
	}
	CursorFetchDoneInfo struct {
		Available    int
		FullyFetched bool
		Error        error
	}
	CursorOneStartInfo struct {
		Context *context.Context
		Call    call
		ID      string
	}
	CursorOneDoneInfo struct {
		Found bool
		Error error
	}
	CursorSeveralStartInfo struct {
		Context *context.Context
		Call    call
		ID      string
		Amount  int
	}
	CursorSeveralDoneInfo struct {
		Rows  int
		Error error
	}
	CursorAllStartInfo struct {
		Context *context.Context
		Call    call
		ID      string
	}
	CursorAllDoneInfo struct {
		Rows  int
		Error error
	}
	CursorCollectStartInfo struct {
		Context *context.Context
		Call    call
		ID      string
	}
	CursorCollectDoneInfo struct {
		Rows  int
		Error error
	}
	// CursorMisusageInfo reports consumption call rejected by in-flight guard
	CursorMisusageInfo struct {
		Context *context.Context
		Call    call
		ID      string
	}
)
