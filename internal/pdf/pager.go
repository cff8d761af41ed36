package pdf

import "io"

// Pager owns the current page and the vertical cursor. Sections draw
// through it and call Ensure before any block that must not straddle a
// page boundary.
type Pager struct {
	canvas Canvas
	geom   Geometry
	y      float64
	pages  int
}

func NewPager(canvas Canvas, geom Geometry) *Pager {
	return &Pager{canvas: canvas, geom: geom}
}

// StartPage allocates a fresh page and resets the cursor to the top
// margin.
func (p *Pager) StartPage() {
	p.canvas.StartPage()
	p.pages++
	p.y = p.geom.Margin
}

// Ensure breaks the page when a block of the given height would cross
// the bottom margin, then invokes onNewPage (if set) so repeating
// content can be redrawn on the continuation page. A block taller than
// an empty page is left where the cursor is: breaking again from the
// top margin would never make it fit and must not loop.
func (p *Pager) Ensure(blockHeight float64, onNewPage func(*Pager)) {
	if p.y+blockHeight <= p.geom.PageHeight-p.geom.Margin {
		return
	}
	if p.y <= p.geom.Margin {
		return
	}
	p.StartPage()
	if onNewPage != nil {
		onNewPage(p)
	}
}

// Advance moves the cursor down.
func (p *Pager) Advance(dy float64) {
	p.y += dy
}

// Rule draws a horizontal divider across the content width at the
// cursor.
func (p *Pager) Rule() {
	p.canvas.Line(p.Left(), p.y, p.Right(), p.y)
}

// TextLeft draws a line of text flush with the left content edge. The
// cursor marks the top of the line; the baseline sits one font size
// below it. The cursor is not advanced.
func (p *Pager) TextLeft(s string, st Style) {
	p.canvas.Text(p.Left(), p.y+st.Size, s, st)
}

// TextRight draws a line of text flush with the right content edge.
func (p *Pager) TextRight(s string, st Style) {
	x := p.Right() - p.canvas.TextWidth(s, st)
	p.canvas.Text(x, p.y+st.Size, s, st)
}

// TextAt draws text with its baseline at the given coordinates.
func (p *Pager) TextAt(x, baseline float64, s string, st Style) {
	p.canvas.Text(x, baseline, s, st)
}

func (p *Pager) Image(png []byte, x, y, w, h float64) {
	p.canvas.Image(png, x, y, w, h)
}

func (p *Pager) Y() float64 {
	return p.y
}

func (p *Pager) PageCount() int {
	return p.pages
}

func (p *Pager) Left() float64 {
	return p.geom.Margin
}

func (p *Pager) Right() float64 {
	return p.geom.PageWidth - p.geom.Margin
}

func (p *Pager) ContentWidth() float64 {
	return p.geom.PageWidth - 2*p.geom.Margin
}

func (p *Pager) Canvas() Canvas {
	return p.canvas
}

// Finish serializes every page drawn so far into w.
func (p *Pager) Finish(w io.Writer) error {
	if p.pages == 0 {
		p.StartPage()
	}
	return p.canvas.Output(w)
}
