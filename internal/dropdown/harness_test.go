package dropdown

import (
	"strings"

	"github.com/glazier-ui/glazier/internal/core"
	"github.com/glazier-ui/glazier/internal/theme"
)

// fakeFont uses pixel-like metrics: 10 units per line, 8 per rune.
type fakeFont struct{}

func (fakeFont) LineHeight() core.Coord { return 10 }

func (fakeFont) TextWidth(s string) core.Coord {
	return core.Coord(len([]rune(s))) * 8
}

type fakeDevice struct {
	kind   core.DeviceKind
	point  core.Point
	scroll *core.Object
}

func (d *fakeDevice) Kind() core.DeviceKind      { return d.kind }
func (d *fakeDevice) Point() core.Point          { return d.point }
func (d *fakeDevice) ScrollTarget() *core.Object { return d.scroll }

type fakeScreen struct {
	viewport    core.Coord
	device      *fakeDevice
	invalidated []core.Area
}

func (s *fakeScreen) ViewportHeight() core.Coord { return s.viewport }

func (s *fakeScreen) ActiveDevice() core.Device {
	if s.device == nil {
		return nil
	}
	return s.device
}

func (s *fakeScreen) Invalidate(area core.Area) {
	s.invalidated = append(s.invalidated, area)
}

type fakeGroup struct {
	editing  bool
	setCalls []bool
}

func (g *fakeGroup) Editing() bool { return g.editing }

func (g *fakeGroup) SetEditing(editing bool) {
	g.editing = editing
	g.setCalls = append(g.setCalls, editing)
}

func testStyles() *theme.Styles {
	font := fakeFont{}
	return &theme.Styles{
		Main: &core.Style{
			PadTop: 2, PadBottom: 2, PadLeft: 2, PadRight: 2,
			Font: font,
		},
		List: &core.Style{
			PadTop: 4, PadBottom: 4, PadLeft: 2, PadRight: 2,
			LineSpace: 2,
			Font:      font,
		},
		Selected:        &core.Style{Font: font},
		SelectedPressed: &core.Style{Font: font},
	}
}

// newTestDropdown builds a dropdown on a 320-unit viewport with the button
// placed at (10,10), 40 wide and 14 tall.
func newTestDropdown() (*Dropdown, *fakeScreen, *fakeGroup) {
	screen := &fakeScreen{viewport: 320}
	group := &fakeGroup{}
	d := New(screen, testStyles(), group)
	d.Object().SetCoords(core.Area{X1: 10, Y1: 10, X2: 49, Y2: 23})
	return d, screen, group
}

func manyOptions(n int) string {
	opts := make([]string, n)
	for i := range opts {
		opts[i] = "Option"
	}
	return strings.Join(opts, "\n")
}
