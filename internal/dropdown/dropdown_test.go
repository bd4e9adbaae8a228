package dropdown

import (
	"testing"

	"github.com/glazier-ui/glazier/internal/core"
)

func TestOpenCloseIdempotent(t *testing.T) {
	d, _, _ := newTestDropdown()
	if d.IsOpen() {
		t.Fatalf("expected closed after construction")
	}

	d.Open()
	if !d.IsOpen() {
		t.Fatalf("expected open")
	}
	first := d.Popup()
	d.Open()
	if d.Popup() != first {
		t.Fatalf("second open replaced the popup")
	}

	d.Close()
	if d.IsOpen() {
		t.Fatalf("expected closed")
	}
	d.Close()
	if d.IsOpen() {
		t.Fatalf("expected close to stay idempotent")
	}
}

func TestOpenPlacesPopupBelow(t *testing.T) {
	d, _, _ := newTestDropdown()
	d.Open()

	c := d.Popup().Coords()
	if c.Y1 != 24 {
		t.Fatalf("expected popup flush below button, got Y1=%d", c.Y1)
	}
	// 3 default options: label 34 high plus 4+4 list padding.
	if c.Height() != 42 {
		t.Fatalf("expected height 42, got %d", c.Height())
	}
	if c.X1 != 10 {
		t.Fatalf("expected left edges aligned, got X1=%d", c.X1)
	}

	label := d.Popup().Label().Coords()
	if label.X1 != 12 || label.Y1 != 28 {
		t.Fatalf("expected label at (12,28), got (%d,%d)", label.X1, label.Y1)
	}
}

func TestOpenFlipsUpNearViewportBottom(t *testing.T) {
	d, _, _ := newTestDropdown()
	d.Object().SetCoords(core.Area{X1: 10, Y1: 290, X2: 49, Y2: 303})
	d.Open()

	c := d.Popup().Coords()
	if c.Y2 != 289 {
		t.Fatalf("expected popup flush above button, got Y2=%d", c.Y2)
	}
	if c.Height() != 42 {
		t.Fatalf("expected natural height 42, got %d", c.Height())
	}
}

func TestOpenWidensPopupToButtonWidth(t *testing.T) {
	d, _, _ := newTestDropdown()
	d.SetOptions("A\nB")
	d.Open()

	if got := d.Popup().Coords().Width(); got != 40 {
		t.Fatalf("expected popup widened to button width 40, got %d", got)
	}
}

func TestPointerCommitEmitsOnceOnChange(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DevicePointer}

	var emitted []uint32
	d.SetOnValueChanged(func(index uint32) core.Result {
		emitted = append(emitted, index)
		return core.ResultOK
	})

	d.Open()
	popup := d.Popup()
	screen.device.point = core.Point{X: 20, Y: 40}

	popup.HandleSignal(core.SignalPressed, nil)
	if d.prOptID != 1 {
		t.Fatalf("expected press highlight on row 1, got %d", d.prOptID)
	}
	popup.HandleSignal(core.SignalReleased, nil)

	if d.IsOpen() {
		t.Fatalf("expected popup closed after commit")
	}
	if len(emitted) != 1 || emitted[0] != 1 {
		t.Fatalf("expected one event for index 1, got %v", emitted)
	}
	if d.Selected() != 1 {
		t.Fatalf("expected committed selection 1, got %d", d.Selected())
	}
}

func TestPointerCommitSameRowEmitsNothing(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DevicePointer}

	emitted := 0
	d.SetOnValueChanged(func(uint32) core.Result {
		emitted++
		return core.ResultOK
	})

	d.Open()
	popup := d.Popup()
	screen.device.point = core.Point{X: 20, Y: 30}
	popup.HandleSignal(core.SignalReleased, nil)

	if d.IsOpen() {
		t.Fatalf("expected popup closed")
	}
	if emitted != 0 {
		t.Fatalf("expected no event for unchanged selection, got %d", emitted)
	}
}

func TestButtonReleaseTogglesPopup(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DevicePointer}

	d.HandleSignal(core.SignalReleased, nil)
	if !d.IsOpen() {
		t.Fatalf("expected release to open")
	}
	d.HandleSignal(core.SignalReleased, nil)
	if d.IsOpen() {
		t.Fatalf("expected release to close")
	}
}

func TestReleaseDuringScrollRevertsWithoutClosing(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DeviceKeypad}

	emitted := 0
	d.SetOnValueChanged(func(uint32) core.Result {
		emitted++
		return core.ResultOK
	})

	d.Open()
	d.HandleSignal(core.SignalControl, core.KeyDown)
	if d.Selected() != 1 {
		t.Fatalf("expected highlight moved to 1, got %d", d.Selected())
	}

	screen.device.scroll = d.Popup().Object()
	d.HandleSignal(core.SignalReleased, nil)

	if !d.IsOpen() {
		t.Fatalf("expected popup to stay open after drag release")
	}
	if d.Selected() != 0 {
		t.Fatalf("expected highlight reverted, got %d", d.Selected())
	}
	if emitted != 0 {
		t.Fatalf("expected no event, got %d", emitted)
	}
}

func TestScrollBeginClearsPressHighlight(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DevicePointer, point: core.Point{X: 20, Y: 40}}

	d.Open()
	popup := d.Popup()
	popup.HandleSignal(core.SignalPressed, nil)
	if d.prOptID == prNone {
		t.Fatalf("expected press highlight")
	}

	popup.HandleSignal(core.SignalScrollBegin, nil)
	if d.prOptID != prNone {
		t.Fatalf("expected press highlight cleared, got %d", d.prOptID)
	}
}

func TestControlKeysClampAtEnds(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DeviceKeypad}

	d.HandleSignal(core.SignalControl, core.KeyDown)
	if !d.IsOpen() {
		t.Fatalf("expected first key press to open")
	}

	for i := 0; i < 5; i++ {
		d.HandleSignal(core.SignalControl, core.KeyDown)
	}
	if d.Selected() != 2 {
		t.Fatalf("expected highlight clamped at last option, got %d", d.Selected())
	}

	for i := 0; i < 5; i++ {
		d.HandleSignal(core.SignalControl, core.KeyUp)
	}
	if d.Selected() != 0 {
		t.Fatalf("expected highlight clamped at first option, got %d", d.Selected())
	}
}

func TestEscapeRevertsWithoutEmit(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DeviceKeypad}

	emitted := 0
	d.SetOnValueChanged(func(uint32) core.Result {
		emitted++
		return core.ResultOK
	})

	d.Open()
	d.HandleSignal(core.SignalControl, core.KeyDown)
	d.HandleSignal(core.SignalControl, core.KeyEsc)

	if d.IsOpen() {
		t.Fatalf("expected escape to close")
	}
	if d.Selected() != 0 {
		t.Fatalf("expected highlight reverted, got %d", d.Selected())
	}
	if emitted != 0 {
		t.Fatalf("expected no event, got %d", emitted)
	}
}

func TestDefocusAndCoordChangeClose(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DeviceKeypad}

	d.Open()
	d.HandleSignal(core.SignalControl, core.KeyDown)
	d.HandleSignal(core.SignalDefocus, nil)
	if d.IsOpen() {
		t.Fatalf("expected defocus to close")
	}
	if d.Selected() != 0 {
		t.Fatalf("expected defocus to revert the highlight, got %d", d.Selected())
	}

	d.Open()
	d.HandleSignal(core.SignalCoordChanged, nil)
	if d.IsOpen() {
		t.Fatalf("expected move to close")
	}
}

func TestEncoderFocusFollowsEditMode(t *testing.T) {
	d, screen, group := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DeviceEncoder}

	group.editing = true
	d.HandleSignal(core.SignalFocus, nil)
	if !d.IsOpen() {
		t.Fatalf("expected focus in edit mode to open")
	}

	group.editing = false
	d.HandleSignal(core.SignalFocus, nil)
	if d.IsOpen() {
		t.Fatalf("expected focus in navigate mode to close")
	}
}

func TestEncoderCommitLeavesEditMode(t *testing.T) {
	d, screen, group := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DeviceEncoder}
	group.editing = true

	var emitted []uint32
	d.SetOnValueChanged(func(index uint32) core.Result {
		emitted = append(emitted, index)
		return core.ResultOK
	})

	d.Open()
	d.HandleSignal(core.SignalControl, core.KeyDown)
	d.Popup().HandleSignal(core.SignalReleased, nil)

	if d.IsOpen() {
		t.Fatalf("expected popup closed")
	}
	if group.editing {
		t.Fatalf("expected edit mode left on commit")
	}
	if len(emitted) != 1 || emitted[0] != 1 {
		t.Fatalf("expected one event for index 1, got %v", emitted)
	}
}

func TestListenerDestructionShortCircuits(t *testing.T) {
	d, screen, _ := newTestDropdown()
	screen.device = &fakeDevice{kind: core.DeviceKeypad}

	d.SetOnValueChanged(func(uint32) core.Result {
		return core.ResultInvalid
	})

	d.Open()
	d.HandleSignal(core.SignalControl, core.KeyDown)
	if res := d.HandleSignal(core.SignalReleased, nil); res != core.ResultInvalid {
		t.Fatalf("expected dispatch to report destruction, got %v", res)
	}
}

func TestGetTypeAndEditable(t *testing.T) {
	d, _, _ := newTestDropdown()

	var name string
	d.HandleSignal(core.SignalGetType, &name)
	if name != "dropdown" {
		t.Fatalf("expected type dropdown, got %q", name)
	}

	var editable bool
	d.HandleSignal(core.SignalGetEditable, &editable)
	if !editable {
		t.Fatalf("expected dropdown to report editable")
	}

	q := core.StyleQuery{Part: core.PartList}
	d.HandleSignal(core.SignalGetStyle, &q)
	if q.Style == nil || q.Style.PadTop != 4 {
		t.Fatalf("expected list style resolved, got %+v", q.Style)
	}
}

func TestCleanupClosesAndClearsOptions(t *testing.T) {
	d, _, _ := newTestDropdown()
	d.Open()
	d.HandleSignal(core.SignalCleanup, nil)
	if d.IsOpen() {
		t.Fatalf("expected cleanup to close")
	}
	if d.OptionCount() != 0 {
		t.Fatalf("expected options released, got %d", d.OptionCount())
	}
}

func TestOpenScrollsHighlightIntoView(t *testing.T) {
	d, _, _ := newTestDropdown()
	d.SetOptions(manyOptions(40))
	d.SetSelected(10)
	d.Open()

	// 40 rows of 478 units only show through a 232-unit inner window.
	if got := d.Popup().Object().ScrollY(); got != 120 {
		t.Fatalf("expected scroll offset 120, got %d", got)
	}
	if got := d.Popup().Coords().Height(); got != 240 {
		t.Fatalf("expected height capped at 240, got %d", got)
	}
}

func TestStyleChangedRefreshesHeight(t *testing.T) {
	d, _, _ := newTestDropdown()
	d.Object().SetCoords(core.Area{X1: 10, Y1: 10, X2: 49, Y2: 100})
	d.HandleSignal(core.SignalStyleChanged, nil)

	// pad 2+2 around one 10-unit line.
	if got := d.Object().Height(); got != 14 {
		t.Fatalf("expected recomputed height 14, got %d", got)
	}
}
