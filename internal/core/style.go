package core

import "github.com/charmbracelet/lipgloss"

// Part selects which piece of a widget a style lookup refers to.
type Part int

const (
	// PartMain is the closed button surface.
	PartMain Part = iota
	// PartList is the popup list background and its text.
	PartList
	// PartSelected is the highlight drawn over the selected or pressed row.
	PartSelected
)

// State distinguishes the default look of a part from its pressed look.
type State int

const (
	StateDefault State = iota
	StatePressed
)

// Font exposes the two text metrics the core needs. Shaping internals stay
// behind this interface.
type Font interface {
	LineHeight() Coord
	TextWidth(s string) Coord
}

// Style bundles the properties a widget resolves per part: box paddings,
// text metrics, and the lipgloss styles the renderer paints with.
type Style struct {
	PadTop    Coord
	PadBottom Coord
	PadLeft   Coord
	PadRight  Coord
	LineSpace Coord
	Font      Font
	Text      lipgloss.Style
	Body      lipgloss.Style
}

// StyleSet resolves a widget's style by (part, state).
type StyleSet interface {
	Style(part Part, state State) *Style
}

// StyleQuery is the payload of SignalGetStyle: the widget fills Style with
// its resolved style for (Part, State).
type StyleQuery struct {
	Part  Part
	State State
	Style *Style
}
