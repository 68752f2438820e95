package llm

import "log"

// CallEvent records metadata about a single model invocation.
type CallEvent struct {
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives one event per model call.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes a line per call to a standard logger.
type LogObserver struct {
	l *log.Logger
}

func NewLogObserver(l *log.Logger) *LogObserver {
	if l == nil {
		l = log.Default()
	}
	return &LogObserver{l: l}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	o.l.Printf("llm_call task=%s provider=%s model=%s latency_ms=%d status=%s",
		event.Task, event.Provider, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
