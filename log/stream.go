package log

import (
	"github.com/cqlpager/cqlpager/trace"
)

// Stream makes trace.Stream with logging events from details
func Stream(l Logger, d trace.Detailer, opts ...Option) (t trace.Stream) {
	return internalStream(wrapLogger(l, opts...), d)
}

func internalStream(l *wrapper, d trace.Detailer) (t trace.Stream) {
	t.OnStart = func(info trace.StreamStartInfo) {
		if d.Details()&trace.StreamLifeCycleEvents == 0 {
			return
		}
		ctx := with(*info.Context, DEBUG, "cqlpager", "stream", "start")
		l.Log(ctx, "started",
			String("id", info.ID),
		)
	}
	t.OnPause = func(info trace.StreamPauseInfo) {
		if d.Details()&trace.StreamDemandEvents == 0 {
			return
		}
		ctx := with(*info.Context, TRACE, "cqlpager", "stream", "pause")
		l.Log(ctx, "paused",
			String("id", info.ID),
			Int("emitted", info.Emitted),
		)
	}
	t.OnResume = func(info trace.StreamResumeInfo) {
		if d.Details()&trace.StreamDemandEvents == 0 {
			return
		}
		ctx := with(*info.Context, TRACE, "cqlpager", "stream", "resume")
		l.Log(ctx, "resumed",
			String("id", info.ID),
			Int("emitted", info.Emitted),
		)
	}
	t.OnEnd = func(info trace.StreamEndInfo) {
		if d.Details()&trace.StreamLifeCycleEvents == 0 {
			return
		}
		ctx := with(*info.Context, DEBUG, "cqlpager", "stream", "end")
		l.Log(ctx, "ended",
			String("id", info.ID),
			Int("emitted", info.Emitted),
		)
	}
	t.OnFail = func(info trace.StreamFailInfo) {
		if d.Details()&trace.StreamLifeCycleEvents == 0 {
			return
		}
		ctx := with(*info.Context, ERROR, "cqlpager", "stream", "fail")
		l.Log(ctx, "failed",
			String("id", info.ID),
			Int("emitted", info.Emitted),
			Error(info.Error),
		)
	}

	return t
}
