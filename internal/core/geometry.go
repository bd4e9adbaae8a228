package core

// Coord is a display coordinate. The core is unit agnostic: the terminal
// host measures in cells, tests are free to use pixel-like values.
type Coord = int

// Point is a position on the display.
type Point struct {
	X Coord
	Y Coord
}

// Area is an inclusive rectangle: X2 and Y2 address the last column and row
// that still belong to the area.
type Area struct {
	X1 Coord
	Y1 Coord
	X2 Coord
	Y2 Coord
}

func (a Area) Width() Coord { return a.X2 - a.X1 + 1 }

func (a Area) Height() Coord { return a.Y2 - a.Y1 + 1 }

// Contains reports whether p lies inside the area.
func (a Area) Contains(p Point) bool {
	return p.X >= a.X1 && p.X <= a.X2 && p.Y >= a.Y1 && p.Y <= a.Y2
}

// Intersect returns the overlap of two areas and whether any overlap exists.
func Intersect(a, b Area) (Area, bool) {
	r := Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	if r.X1 > r.X2 || r.Y1 > r.Y2 {
		return Area{}, false
	}
	return r, true
}

// Direction is the preferred expansion direction of a popup relative to its
// anchor widget.
type Direction int

const (
	DirBottom Direction = iota
	DirTop
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirBottom:
		return "bottom"
	case DirTop:
		return "top"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Align names the anchor edge a widget is placed flush against.
type Align int

const (
	AlignOutBottomLeft Align = iota
	AlignOutTopLeft
	AlignOutLeftTop
	AlignOutRightTop
)
