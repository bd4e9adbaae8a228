package events

import "github.com/glazier-ui/glazier/internal/logging"

type WidgetTracer struct{}

type InputTracer struct{}

type AppTracer struct{}

var (
	Widget = WidgetTracer{}
	Input  = InputTracer{}
	App    = AppTracer{}
)

func (WidgetTracer) Open(dir string, height int) {
	logging.Trace("dropdown.open", map[string]interface{}{"dir": dir, "height": height})
}

func (WidgetTracer) Close() {
	logging.Trace("dropdown.close", nil)
}

func (WidgetTracer) Commit(index int) {
	logging.Trace("dropdown.commit", map[string]interface{}{"index": index})
}

func (WidgetTracer) Cancel(index int) {
	logging.Trace("dropdown.cancel", map[string]interface{}{"index": index})
}

func (WidgetTracer) OptionsChanged(count int) {
	logging.Trace("dropdown.options", map[string]interface{}{"count": count})
}

func (InputTracer) Key(key string) {
	logging.Trace("input.key", map[string]interface{}{"key": key})
}

func (InputTracer) Pointer(x, y int, action string) {
	logging.Trace("input.pointer", map[string]interface{}{"x": x, "y": y, "action": action})
}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}
