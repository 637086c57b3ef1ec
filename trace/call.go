package trace

import "github.com/cqlpager/cqlpager/internal/stack"

type call interface {
	FunctionID() string
}

var _ call = stack.FunctionID("")
