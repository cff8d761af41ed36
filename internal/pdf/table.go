package pdf

// Align selects the horizontal anchor of a cell's text.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. Frac is a relative width share;
// the table normalizes all fractions against their sum, so they need
// not add up to 1.
type Column struct {
	Title string
	Frac  float64
	Align Align
	Pad   float64
}

// Table lays out rows over fixed column bounds computed once from the
// pager's content width.
type Table struct {
	cols  []Column
	left  []float64
	right []float64

	bodyStyle   Style
	headerStyle Style
	rowH        float64
	headerH     float64
}

func NewTable(p *Pager, cols []Column) *Table {
	t := &Table{
		cols:        cols,
		left:        make([]float64, len(cols)),
		right:       make([]float64, len(cols)),
		bodyStyle:   Style{Size: 9},
		headerStyle: Style{Bold: true, Size: 9},
		rowH:        16,
		headerH:     20,
	}

	var total float64
	for _, col := range cols {
		if col.Frac > 0 {
			total += col.Frac
		}
	}
	if total <= 0 {
		total = float64(len(cols))
	}

	x := p.Left()
	for i, col := range cols {
		frac := col.Frac
		if frac <= 0 {
			frac = 1
		}
		w := p.ContentWidth() * frac / total
		t.left[i] = x
		t.right[i] = x + w
		x += w
	}
	return t
}

func (t *Table) RowHeight() float64 {
	return t.rowH
}

func (t *Table) HeaderHeight() float64 {
	return t.headerH
}

// DrawHeader draws the column titles between a top and bottom divider
// rule, vertically centered, and advances the cursor past the block.
func (t *Table) DrawHeader(p *Pager) {
	p.Rule()
	baseline := p.Y() + t.headerH/2 + t.headerStyle.Size*0.35
	for i, col := range t.cols {
		t.drawCell(p, i, baseline, col.Title, t.headerStyle, false)
	}
	p.Advance(t.headerH)
	p.Rule()
}

// DrawRow draws one row of cells without truncation.
func (t *Table) DrawRow(p *Pager, cells []string) {
	t.drawCells(p, cells, false)
}

// DrawEllipsizedRow draws one row, truncating any overflowing cell
// with a trailing ellipsis so text never bleeds into the next column.
func (t *Table) DrawEllipsizedRow(p *Pager, cells []string) {
	t.drawCells(p, cells, true)
}

func (t *Table) drawCells(p *Pager, cells []string, ellipsize bool) {
	baseline := p.Y() + t.rowH/2 + t.bodyStyle.Size*0.35
	for i := range t.cols {
		if i >= len(cells) {
			break
		}
		t.drawCell(p, i, baseline, cells[i], t.bodyStyle, ellipsize)
	}
	p.Advance(t.rowH)
}

func (t *Table) drawCell(p *Pager, i int, baseline float64, text string, st Style, ellipsize bool) {
	col := t.cols[i]
	avail := t.right[i] - t.left[i] - 2*col.Pad
	if avail < 0 {
		avail = 0
	}
	if ellipsize {
		text = Ellipsize(p.Canvas(), text, st, avail)
	}

	x := t.left[i] + col.Pad
	if col.Align == AlignRight {
		x = t.right[i] - col.Pad - p.Canvas().TextWidth(text, st)
	}
	p.TextAt(x, baseline, text, st)
}
