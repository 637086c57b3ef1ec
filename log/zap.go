package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = zapLogger{}

type zapLogger struct {
	l *zap.Logger
}

// Zap makes Logger over zap logger. Names from context become zap logger name.
func Zap(l *zap.Logger) Logger {
	return zapLogger{l: l}
}

func (z zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl, ok := zapLevel(LevelFromContext(ctx))
	if !ok {
		return
	}
	l := z.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}
	if ce := l.Check(lvl, msg); ce != nil {
		ce.Write(zapFields(fields)...)
	}
}

func zapLevel(lvl Level) (zapcore.Level, bool) {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel, true
	case INFO:
		return zapcore.InfoLevel, true
	case WARN:
		return zapcore.WarnLevel, true
	case ERROR:
		return zapcore.ErrorLevel, true
	case FATAL:
		return zapcore.DPanicLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func zapFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case IntType:
			zf = append(zf, zap.Int(f.Key(), f.IntValue()))
		case Int64Type:
			zf = append(zf, zap.Int64(f.Key(), f.Int64Value()))
		case StringType:
			zf = append(zf, zap.String(f.Key(), f.StringValue()))
		case BoolType:
			zf = append(zf, zap.Bool(f.Key(), f.BoolValue()))
		case DurationType:
			zf = append(zf, zap.Duration(f.Key(), f.DurationValue()))
		case ErrorType:
			zf = append(zf, zap.NamedError(f.Key(), f.ErrorValue()))
		case StringerType:
			zf = append(zf, zap.Stringer(f.Key(), f.StringerValue()))
		case AnyType:
			zf = append(zf, zap.Any(f.Key(), f.AnyValue()))
		default:
			zf = append(zf, zap.Skip())
		}
	}

	return zf
}
