package stack

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/cqlpager/cqlpager/internal/xstring"
)

type recordOptions struct {
	packagePath  bool
	functionName bool
	fileName     bool
	line         bool
	lambdas      bool
}

type recordOption func(opts *recordOptions)

func PackagePath(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packagePath = b
	}
}

func FunctionName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.functionName = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

func Lambda(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.lambdas = b
	}
}

var _ Caller = call{}

type call struct {
	function string
	file     string
	line     int
}

// Call captures caller frame at depth (0 means caller of Call).
// Frames are resolved with runtime.CallersFrames so inlined callers keep their own names.
func Call(depth int) (c call) {
	var pcs [1]uintptr
	if runtime.Callers(depth+2, pcs[:]) == 0 {
		return c
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	c.function, c.file, c.line = frame.Function, frame.File, frame.Line

	return c
}

func (c call) Record(opts ...recordOption) string {
	options := recordOptions{
		packagePath:  true,
		functionName: true,
		fileName:     true,
		line:         true,
		lambdas:      true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	name := strings.ReplaceAll(c.function, "[...]", "")
	file := c.file
	if i := strings.LastIndex(file, "/"); i > -1 {
		file = file[i+1:]
	}

	var pkgPath string
	if i := strings.LastIndex(name, "/"); i > -1 {
		pkgPath, name = name[:i], name[i+1:]
	}
	if !options.lambdas {
		name = trimLambdas(name)
	}

	b := xstring.Buffer()
	defer b.Free()
	if options.packagePath && pkgPath != "" {
		b.WriteString(pkgPath)
		b.WriteByte('/')
	}
	if options.functionName {
		b.WriteString(name)
	}
	if options.fileName {
		closeBrace := b.Len() > 0
		if closeBrace {
			b.WriteByte('(')
		}
		b.WriteString(file)
		if options.line {
			fmt.Fprintf(b, ":%d", c.line)
		}
		if closeBrace {
			b.WriteByte(')')
		}
	}

	return b.String()
}

func (c call) FunctionID() string {
	return c.Record(Lambda(false), FileName(false))
}

func trimLambdas(name string) string {
	split := strings.Split(name, ".")
	for len(split) > 1 && strings.HasPrefix(split[len(split)-1], "func") {
		split = split[:len(split)-1]
	}

	return strings.Join(split, ".")
}

// Record returns file:line identification of caller at depth
func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
