package dropdown

import "github.com/glazier-ui/glazier/internal/core"

// Draw implements core.Widget for the closed button: background, the
// display text (override or committed option), and the symbol glyph.
func (d *Dropdown) Draw(r core.Renderer, clip core.Area, mode core.DrawMode) {
	if mode != core.DrawModeMain {
		return
	}
	st := d.styles.Style(core.PartMain, core.StateDefault)
	c := d.obj.Coords()
	r.DrawRect(c, clip, st)

	text := d.text
	if text == "" {
		text = d.SelectedText()
	}

	fontH := st.Font.LineHeight()
	rowY1 := c.Y1 + st.PadTop
	rowY2 := rowY1 + fontH - 1
	innerX1 := c.X1 + st.PadLeft
	innerX2 := c.X2 - st.PadRight

	if d.symbol == "" {
		// No symbol: center the display text.
		tw := st.Font.TextWidth(text)
		x := c.X1 + (c.Width()-tw)/2
		r.DrawLabel(core.Area{X1: x, Y1: rowY1, X2: x + tw - 1, Y2: rowY2}, clip, st, text)
		return
	}

	symW := st.Font.TextWidth(d.symbol)
	tw := st.Font.TextWidth(text)

	// The symbol sits on the expansion side: right normally, left when the
	// popup opens leftward or the base direction is RTL.
	symbolLeft := d.dir == core.DirLeft || d.obj.BaseDir() == core.BaseDirRTL
	var textArea, symArea core.Area
	if symbolLeft {
		symArea = core.Area{X1: innerX1, Y1: rowY1, X2: innerX1 + symW - 1, Y2: rowY2}
		textArea = core.Area{X1: innerX2 - tw + 1, Y1: rowY1, X2: innerX2, Y2: rowY2}
	} else {
		textArea = core.Area{X1: innerX1, Y1: rowY1, X2: innerX1 + tw - 1, Y2: rowY2}
		symArea = core.Area{X1: innerX2 - symW + 1, Y1: rowY1, X2: innerX2, Y2: rowY2}
	}
	r.DrawLabel(textArea, clip, st, text)
	r.DrawLabel(symArea, clip, st, d.symbol)
}

// Draw implements core.Widget for the popup list. The main pass paints the
// background and the highlight boxes under the label; the post pass repaints
// the covered label lines in the highlight's text style.
func (l *List) Draw(r core.Renderer, clip core.Area, mode core.DrawMode) {
	d := l.owner
	if d == nil {
		return
	}
	clipCore, ok := core.Intersect(clip, l.obj.Coords())

	switch mode {
	case core.DrawModeMain:
		st := d.styles.Style(core.PartList, core.StateDefault)
		r.DrawRect(l.obj.Coords(), clip, st)
		if !ok {
			return
		}
		if d.prOptID != prNone {
			l.drawBox(r, clipCore, d.prOptID, core.StatePressed)
		}
		l.drawBox(r, clipCore, d.selOptID, core.StateDefault)

	case core.DrawModePost:
		if !ok {
			return
		}
		if d.prOptID != prNone {
			l.drawBoxLabel(r, clipCore, d.prOptID, core.StatePressed)
		}
		l.drawBoxLabel(r, clipCore, d.selOptID, core.StateDefault)
	}
}

// rowArea is the highlight rectangle of one option row, spanning the list
// horizontally and extending half a line space above and below the glyphs.
func (l *List) rowArea(id int) core.Area {
	listSt := l.owner.styles.Style(core.PartList, core.StateDefault)
	fontH := listSt.Font.LineHeight()
	c := l.obj.Coords()
	y1 := l.label.Coords().Y1 + core.Coord(id)*(fontH+listSt.LineSpace) - listSt.LineSpace/2
	return core.Area{
		X1: c.X1,
		Y1: y1,
		X2: c.X2,
		Y2: y1 + fontH + listSt.LineSpace - 1,
	}
}

func (l *List) drawBox(r core.Renderer, clip core.Area, id int, state core.State) {
	row := l.rowArea(id)
	m, ok := core.Intersect(row, clip)
	if !ok {
		return
	}
	r.DrawRect(row, m, l.owner.styles.Style(core.PartSelected, state))
}

// drawBoxLabel repaints the label text clipped to one row so the covered
// line picks up the highlight's text style. The list's line spacing is kept
// so the repaint lands exactly over the original glyphs.
func (l *List) drawBoxLabel(r core.Renderer, clip core.Area, id int, state core.State) {
	row := l.rowArea(id)
	m, ok := core.Intersect(row, clip)
	if !ok {
		return
	}
	listSt := l.owner.styles.Style(core.PartList, core.StateDefault)
	st := *l.owner.styles.Style(core.PartSelected, state)
	st.LineSpace = listSt.LineSpace
	r.DrawLabel(l.label.Coords(), m, &st, l.label.Text())
}
