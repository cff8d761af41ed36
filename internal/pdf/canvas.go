// Package pdf renders priced invoices onto fixed-size pages and
// serializes them as a single PDF byte buffer. The layout algorithm
// (pagination, table columns, ellipsis, wrapping) is owned here; the
// PDF encoding itself is delegated to go-pdf/fpdf behind the Canvas
// abstraction so layout logic stays testable with a fake measurer.
package pdf

import (
	"bytes"
	"io"

	"github.com/go-pdf/fpdf"
)

// Style selects the font variant used for drawing and measuring.
type Style struct {
	Bold   bool
	Italic bool
	Size   float64
}

// Measurer reports the rendered width of a string in a given style.
type Measurer interface {
	TextWidth(s string, st Style) float64
}

// Canvas is the drawing surface the pager and sections write to.
// Coordinates are points, origin top-left, y grows downward. Text is
// positioned by its baseline.
type Canvas interface {
	Measurer
	StartPage()
	Text(x, y float64, s string, st Style)
	Line(x1, y1, x2, y2 float64)
	Image(png []byte, x, y, w, h float64)
	Output(w io.Writer) error
}

// Geometry describes the fixed page size and its symmetric margins.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
}

// A4 is the invoice page geometry: A4 in points with 36pt margins.
func A4() Geometry {
	return Geometry{PageWidth: 595.28, PageHeight: 841.89, Margin: 36}
}

type fpdfCanvas struct {
	doc      *fpdf.Fpdf
	tr       func(string) string
	logoSeen bool
}

func newFpdfCanvas(geom Geometry) *fpdfCanvas {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(geom.Margin, geom.Margin, geom.Margin)
	// The pager decides page breaks; fpdf must never insert its own.
	doc.SetAutoPageBreak(false, 0)
	return &fpdfCanvas{
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) setFont(st Style) {
	variant := ""
	if st.Bold {
		variant += "B"
	}
	if st.Italic {
		variant += "I"
	}
	c.doc.SetFont("Helvetica", variant, st.Size)
}

func (c *fpdfCanvas) StartPage() {
	c.doc.AddPage()
}

func (c *fpdfCanvas) Text(x, y float64, s string, st Style) {
	c.setFont(st)
	c.doc.Text(x, y, c.tr(s))
}

func (c *fpdfCanvas) TextWidth(s string, st Style) float64 {
	c.setFont(st)
	return c.doc.GetStringWidth(c.tr(s))
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2 float64) {
	c.doc.SetLineWidth(0.6)
	c.doc.Line(x1, y1, x2, y2)
}

func (c *fpdfCanvas) Image(png []byte, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	if !c.logoSeen {
		c.doc.RegisterImageOptionsReader("logo", opts, bytes.NewReader(png))
		c.logoSeen = true
	}
	c.doc.ImageOptions("logo", x, y, w, h, false, opts, 0, "")
}

func (c *fpdfCanvas) Output(w io.Writer) error {
	if c.doc.Err() {
		return c.doc.Error()
	}
	return c.doc.Output(w)
}
