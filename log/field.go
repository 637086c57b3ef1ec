package log

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/cqlpager/cqlpager/internal/kv"
)

type (
	Field = kv.KeyValue
)

const (
	IntType      = kv.IntType
	Int64Type    = kv.Int64Type
	StringType   = kv.StringType
	BoolType     = kv.BoolType
	DurationType = kv.DurationType
	ErrorType    = kv.ErrorType
	AnyType      = kv.AnyType
	StringerType = kv.StringerType
)

func String(key, value string) Field {
	return kv.String(key, value)
}

func Int(key string, value int) Field {
	return kv.Int(key, value)
}

func Int64(key string, value int64) Field {
	return kv.Int64(key, value)
}

func Bool(key string, value bool) Field {
	return kv.Bool(key, value)
}

func Duration(key string, value time.Duration) Field {
	return kv.Duration(key, value)
}

func NamedError(key string, value error) Field {
	return kv.NamedError(key, value)
}

func Error(value error) Field {
	return kv.Error(value)
}

func Any(key string, value interface{}) Field {
	return kv.Any(key, value)
}

func Stringer(key string, value fmt.Stringer) Field {
	return kv.Stringer(key, value)
}

func latencyField(clock clockwork.Clock, start time.Time) Field {
	return Duration("latency", clock.Since(start))
}

func appendFieldByCondition(condition bool, ifTrueField Field, fields ...Field) []Field {
	if condition {
		fields = append(fields, ifTrueField)
	}

	return fields
}
