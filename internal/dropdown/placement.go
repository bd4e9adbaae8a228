package dropdown

import "github.com/glazier-ui/glazier/internal/core"

// placementInput captures everything the popup geometry depends on. The
// computation is pure: identical inputs always yield identical placement.
type placementInput struct {
	Anchor         core.Area
	Preferred      core.Direction
	LabelHeight    core.Coord
	PadTop         core.Coord
	PadBottom      core.Coord
	MaxHeight      core.Coord
	ViewportHeight core.Coord
}

type placement struct {
	Dir    core.Direction
	Height core.Coord
}

// computePlacement sizes the popup and picks its final direction. The
// preferred direction flips to the opposite side when it lacks viewport
// space and the other side has more room; otherwise the height is clamped
// to the space that is there. The final height never exceeds the natural
// (content) height or MaxHeight.
func computePlacement(in placementInput) placement {
	fitH := in.LabelHeight + in.PadTop + in.PadBottom
	h := fitH
	if h > in.MaxHeight {
		h = in.MaxHeight
	}

	dir := in.Preferred
	switch in.Preferred {
	case core.DirBottom:
		if in.Anchor.Y2+h > in.ViewportHeight {
			if in.Anchor.Y1 > in.ViewportHeight-in.Anchor.Y2 {
				dir = core.DirTop
				h = in.Anchor.Y1
			} else {
				h = in.ViewportHeight - in.Anchor.Y2
			}
		}
	case core.DirTop:
		if in.Anchor.Y1-h < 0 {
			if in.Anchor.Y1 < in.ViewportHeight-in.Anchor.Y2 {
				dir = core.DirBottom
				h = in.ViewportHeight - in.Anchor.Y2
			} else {
				h = in.Anchor.Y1
			}
		}
	}

	if h > fitH {
		h = fitH
	}
	if h > in.MaxHeight {
		h = in.MaxHeight
	}
	return placement{Dir: dir, Height: h}
}

func alignForDir(dir core.Direction) core.Align {
	switch dir {
	case core.DirTop:
		return core.AlignOutTopLeft
	case core.DirLeft:
		return core.AlignOutLeftTop
	case core.DirRight:
		return core.AlignOutRightTop
	}
	return core.AlignOutBottomLeft
}

// scrollOffsetForSelected returns the content scroll offset that puts the
// selected row at the top of the popup's inner area, biased so the content
// end is never scrolled past the visible bottom edge.
func scrollOffsetForSelected(selID int, lineHeight, lineSpace, labelHeight, innerHeight core.Coord) core.Coord {
	target := core.Coord(selID) * (lineHeight + lineSpace)
	maxScroll := labelHeight - innerHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if target > maxScroll {
		target = maxScroll
	}
	if target < 0 {
		target = 0
	}
	return target
}
