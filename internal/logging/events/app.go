package events

import "github.com/appswitch/appswitch/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Enumerated(kind string, count int) {
	logging.Trace("app.enumerated", map[string]interface{}{"kind": kind, "count": count})
}

func (AppTracer) Outcome(kind, target string) {
	logging.Trace("app.outcome", map[string]interface{}{"kind": kind, "target": target})
}
