package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}

// Buffer returns pooled bytes buffer. Caller must call Free after use.
func Buffer() *buffer {
	val, ok := buffersPool.Get().(*buffer)
	if !ok {
		val = &buffer{}
	}

	return val
}
