package stack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testStruct struct{}

// record is small enough to be inlined into its callers
func (s testStruct) record(opts ...recordOption) string {
	return Record(0, opts...)
}

func (s testStruct) lambda(opts ...recordOption) string {
	return func() string {
		return Record(0, opts...)
	}()
}

func TestRecord(t *testing.T) {
	for _, tt := range []struct {
		name string
		act  string
		exp  string
	}{
		{
			name: "Default",
			act:  testStruct{}.record(FileName(false)),
			exp:  "github.com/cqlpager/cqlpager/internal/stack.testStruct.record",
		},
		{
			name: "WithoutPackagePath",
			act:  testStruct{}.record(PackagePath(false), FileName(false)),
			exp:  "stack.testStruct.record",
		},
		{
			name: "FileOnly",
			act:  testStruct{}.record(PackagePath(false), FunctionName(false), Line(false)),
			exp:  "record_test.go",
		},
		{
			name: "FunctionAndFile",
			act:  testStruct{}.record(PackagePath(false), Line(false)),
			exp:  "stack.testStruct.record(record_test.go)",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.exp, tt.act)
		})
	}
}

func TestRecordLambda(t *testing.T) {
	withLambdas := testStruct{}.lambda(PackagePath(false), FileName(false))
	require.Contains(t, withLambdas, "testStruct.lambda.func")

	withoutLambdas := testStruct{}.lambda(PackagePath(false), FileName(false), Lambda(false))
	require.True(t, strings.HasSuffix(withoutLambdas, "testStruct.lambda"), withoutLambdas)
}

func TestFunctionID(t *testing.T) {
	require.Equal(t, "static", FunctionID("static").FunctionID())
	require.Equal(t,
		"github.com/cqlpager/cqlpager/internal/stack.TestFunctionID",
		FunctionID("").FunctionID(),
	)
}

func BenchmarkRecord(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Record(0)
	}
}
