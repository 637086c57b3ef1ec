package metrics

import (
	"github.com/cqlpager/cqlpager/trace"
)

// Stream makes trace.Stream which counts demand changes and terminal events
func Stream(config Config) (t trace.Stream) {
	streamConfig := config.WithSystem("stream")
	active := streamConfig.GaugeVec("active")
	emitted := streamConfig.HistogramVec("emitted", []float64{0, 1, 10, 100, 1000, 10000, 100000}, "status")
	demand := streamConfig.CounterVec("demand", "event")
	t.OnStart = func(info trace.StreamStartInfo) {
		if streamConfig.Details()&trace.StreamLifeCycleEvents != 0 {
			active.With(nil).Add(1)
		}
	}
	t.OnPause = func(info trace.StreamPauseInfo) {
		if streamConfig.Details()&trace.StreamDemandEvents != 0 {
			demand.With(map[string]string{"event": "pause"}).Inc()
		}
	}
	t.OnResume = func(info trace.StreamResumeInfo) {
		if streamConfig.Details()&trace.StreamDemandEvents != 0 {
			demand.With(map[string]string{"event": "resume"}).Inc()
		}
	}
	t.OnEnd = func(info trace.StreamEndInfo) {
		if streamConfig.Details()&trace.StreamLifeCycleEvents != 0 {
			active.With(nil).Add(-1)
			emitted.With(map[string]string{"status": errorBrief(nil)}).Record(float64(info.Emitted))
		}
	}
	t.OnFail = func(info trace.StreamFailInfo) {
		if streamConfig.Details()&trace.StreamLifeCycleEvents != 0 {
			active.With(nil).Add(-1)
			emitted.With(map[string]string{"status": errorBrief(info.Error)}).Record(float64(info.Emitted))
		}
	}

	return t
}
