package dropdown

import (
	"github.com/glazier-ui/glazier/internal/core"
	"github.com/glazier-ui/glazier/internal/logging/events"
)

// HandleSignal implements core.Widget for the closed button.
func (d *Dropdown) HandleSignal(sig core.Signal, payload any) core.Result {
	switch sig {
	case core.SignalGetType:
		if name, ok := payload.(*string); ok {
			*name = "dropdown"
		}

	case core.SignalGetStyle:
		if q, ok := payload.(*core.StyleQuery); ok {
			q.Style = d.styles.Style(q.Part, q.State)
		}

	case core.SignalCleanup:
		d.Close()
		d.opts.clear()

	case core.SignalFocus:
		// Encoders open in edit mode and close in navigate mode. Other
		// devices leave the widget as it is.
		dev := d.obj.Screen().ActiveDevice()
		if dev != nil && dev.Kind() == core.DeviceEncoder && d.group != nil {
			if d.group.Editing() {
				d.Open()
			} else {
				d.Close()
			}
		}

	case core.SignalDefocus, core.SignalLeave:
		// Losing focus cancels: the uncommitted highlight is dropped.
		d.selOptID = d.selOptIDOrig
		d.Close()

	case core.SignalReleased:
		return d.buttonReleased()

	case core.SignalCoordChanged:
		if d.list != nil {
			d.selOptID = d.selOptIDOrig
			d.Close()
		}

	case core.SignalStyleChanged:
		d.refreshHeight()

	case core.SignalControl:
		key, ok := payload.(core.Key)
		if !ok {
			return core.ResultOK
		}
		return d.controlKey(key)

	case core.SignalGetEditable:
		if editable, ok := payload.(*bool); ok {
			*editable = true
		}
	}
	return core.ResultOK
}

// buttonReleased toggles the popup on a tap. A release that ends a scroll
// gesture instead reverts the in-progress highlight and keeps the popup
// open: scrolling never commits.
func (d *Dropdown) buttonReleased() core.Result {
	dev := d.obj.Screen().ActiveDevice()
	if dev != nil && dev.ScrollTarget() != nil {
		d.selOptID = d.selOptIDOrig
		d.obj.Invalidate()
		return core.ResultOK
	}

	if d.list == nil {
		d.Open()
		return core.ResultOK
	}

	d.Close()
	if d.selOptIDOrig != d.selOptID {
		d.selOptIDOrig = d.selOptID
		if res := d.sendValueChanged(); res != core.ResultOK {
			return res
		}
		d.obj.Invalidate()
	}
	if dev != nil && dev.Kind() == core.DeviceEncoder && d.group != nil {
		d.group.SetEditing(false)
	}
	return core.ResultOK
}

// controlKey drives the widget from a focus group. Down and right open the
// popup or step the highlight forward; up and left mirror that; escape
// abandons the in-progress highlight and closes.
func (d *Dropdown) controlKey(key core.Key) core.Result {
	switch key {
	case core.KeyRight, core.KeyDown:
		if d.list == nil {
			d.Open()
		} else if d.selOptID+1 < d.opts.count {
			d.selOptID++
			d.positionToSelected()
		}
		events.Input.Key("down")

	case core.KeyLeft, core.KeyUp:
		if d.list == nil {
			d.Open()
		} else if d.selOptID > 0 {
			d.selOptID--
			d.positionToSelected()
		}
		events.Input.Key("up")

	case core.KeyEsc:
		events.Widget.Cancel(d.selOptID)
		d.selOptID = d.selOptIDOrig
		d.Close()
	}
	return core.ResultOK
}

// HandleSignal implements core.Widget for the popup list.
func (l *List) HandleSignal(sig core.Signal, payload any) core.Result {
	switch sig {
	case core.SignalGetType:
		if name, ok := payload.(*string); ok {
			*name = "dropdown-list"
		}

	case core.SignalReleased:
		dev := l.obj.Screen().ActiveDevice()
		if dev == nil || dev.ScrollTarget() == nil {
			return l.released()
		}
		// Release ended a drag: revert the highlight, stay open.
		if l.owner != nil {
			l.owner.selOptID = l.owner.selOptIDOrig
			l.obj.Invalidate()
		}

	case core.SignalPressed:
		l.pressed()

	case core.SignalCleanup:
		if l.owner != nil {
			l.owner.list = nil
			l.owner = nil
		}

	case core.SignalScrollBegin:
		// A drag that starts on a row is a scroll, not a press.
		if l.owner != nil {
			l.owner.prOptID = prNone
		}
		l.obj.Invalidate()
	}
	return core.ResultOK
}

// released commits the row under the pointer, or the keypad-navigated
// highlight, then closes. Returns ResultInvalid: the list is destroyed by
// the close and the caller must not touch it again.
func (l *List) released() core.Result {
	d := l.owner
	if d == nil {
		return core.ResultInvalid
	}
	dev := l.obj.Screen().ActiveDevice()
	prev := d.selOptIDOrig

	if dev != nil && dev.Kind() == core.DeviceEncoder && d.group != nil {
		d.selOptIDOrig = d.selOptID
		if d.group.Editing() {
			d.group.SetEditing(false)
		}
	}

	if dev != nil && (dev.Kind() == core.DevicePointer || dev.Kind() == core.DeviceButton) {
		d.selOptID = d.idOnPoint(dev.Point().Y)
		d.selOptIDOrig = d.selOptID
	}

	d.Close()

	if d.text == "" {
		d.obj.Invalidate()
	}

	if d.selOptIDOrig != prev {
		if res := d.sendValueChanged(); res != core.ResultOK {
			return res
		}
	}
	return core.ResultInvalid
}

// pressed highlights the row under a pointer or button press.
func (l *List) pressed() {
	d := l.owner
	if d == nil {
		return
	}
	dev := l.obj.Screen().ActiveDevice()
	if dev == nil {
		return
	}
	if dev.Kind() == core.DevicePointer || dev.Kind() == core.DeviceButton {
		d.prOptID = d.idOnPoint(dev.Point().Y)
		events.Input.Pointer(dev.Point().X, dev.Point().Y, "press")
		l.obj.Invalidate()
	}
}
