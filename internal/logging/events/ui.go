package events

import "github.com/appswitch/appswitch/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) Cursor(mode string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"mode": mode, "cursor": cursor})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) Confirm(id, label string) {
	logging.Trace("ui.confirm", map[string]interface{}{"id": id, "label": label})
}

func (UITracer) Cancel(mode string) {
	logging.Trace("ui.cancel", map[string]interface{}{"mode": mode})
}

func (FilterTracer) Append(query string) {
	logging.Trace("filter.append", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) WordBackspace(query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"query": query})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (ActionTracer) Requested(kind, id string) {
	logging.Trace("action.request", map[string]interface{}{"kind": kind, "id": id})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
