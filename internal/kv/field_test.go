package kv

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stringerTest string

func (s stringerTest) String() string {
	return string(s)
}

func TestField_String(t *testing.T) {
	for _, tt := range []struct {
		f     KeyValue
		want  string
		panic bool
	}{
		{f: Int("int", 1), want: "1"},
		{f: Int64("int64", 9223372036854775807), want: "9223372036854775807"},
		{f: String("string", "test"), want: "test"},
		{f: Bool("bool", true), want: "true"},
		{f: Duration("duration", time.Hour), want: time.Hour.String()},
		{f: NamedError("named_error", errors.New("named error")), want: "named error"},
		{f: Error(errors.New("error")), want: "error"},
		{f: Error(nil), want: "<nil>"},
		{f: Any("any_int", 1), want: "1"},
		{f: Any("any_string", "any string"), want: "any string"},
		{f: Any("any_nil", nil), want: "<nil>"},
		{f: Stringer("stringer", stringerTest("stringerTest")), want: "stringerTest"},
		{f: Stringer("nil_stringer", nil), want: "<nil>"},
		{f: KeyValue{ftype: InvalidType, key: "invalid"}, panic: true},
	} {
		t.Run(tt.f.key, func(t *testing.T) {
			if tt.panic {
				require.Panics(t, func() { _ = tt.f.String() })

				return
			}
			require.Equal(t, tt.want, tt.f.String())
		})
	}
}

func TestField_Getters(t *testing.T) {
	require.Equal(t, 7, Int("rows", 7).IntValue())
	require.Equal(t, "id", String("cursor", "id").StringValue())
	require.True(t, Bool("applied", true).BoolValue())
	require.Equal(t, time.Second, Duration("latency", time.Second).DurationValue())
	require.Equal(t, AnyType, Stringer("nil", nil).Type())
	require.Panics(t, func() { _ = Int("rows", 7).StringValue() })
}

func TestFieldType_String(t *testing.T) {
	require.Equal(t, "stringer", StringerType.String())
	require.Equal(t, "unknown", FieldType(100).String())
}
