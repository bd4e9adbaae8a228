package core

// DrawMode splits a widget's drawing into the passes the compositor runs.
type DrawMode int

const (
	// DrawModeCoverCheck only asks whether the widget fully covers the clip.
	DrawModeCoverCheck DrawMode = iota
	// DrawModeMain draws the widget itself, before its children.
	DrawModeMain
	// DrawModePost draws after every child has been drawn.
	DrawModePost
)

// Renderer is the low-level drawing surface. Both primitives clip to the
// supplied area.
type Renderer interface {
	DrawRect(area, clip Area, style *Style)
	DrawLabel(area, clip Area, style *Style, text string)
}

// Widget is the polymorphic surface of every widget variant: a draw
// callback per pass and a signal handler. HandleSignal returning
// ResultInvalid means the widget was destroyed during dispatch.
type Widget interface {
	Draw(r Renderer, clip Area, mode DrawMode)
	HandleSignal(sig Signal, payload any) Result
}

// Screen is the host the widget tree lives on: it knows the viewport, the
// input device driving the current dispatch, and collects invalidated
// regions for the next compositor pass.
type Screen interface {
	ViewportHeight() Coord
	ActiveDevice() Device
	Invalidate(area Area)
}
