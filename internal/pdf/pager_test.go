package pdf

import "testing"

func testGeometry() Geometry {
	return Geometry{PageWidth: 200, PageHeight: 100, Margin: 10}
}

func TestPagerStartPageResetsCursor(t *testing.T) {
	p := NewPager(newFakeCanvas(), testGeometry())
	p.StartPage()
	p.Advance(30)
	p.StartPage()
	if p.Y() != 10 {
		t.Fatalf("expected cursor at top margin, got %.1f", p.Y())
	}
	if p.PageCount() != 2 {
		t.Fatalf("expected 2 pages, got %d", p.PageCount())
	}
}

func TestEnsureBreaksPageAndInvokesCallback(t *testing.T) {
	p := NewPager(newFakeCanvas(), testGeometry())
	p.StartPage()
	p.Advance(70) // cursor at 80, bottom margin at 90

	called := false
	p.Ensure(15, func(p *Pager) {
		called = true
		if p.Y() != 10 {
			t.Fatalf("callback should run at the top of the new page, cursor %.1f", p.Y())
		}
	})

	if p.PageCount() != 2 {
		t.Fatalf("expected a page break, pages=%d", p.PageCount())
	}
	if !called {
		t.Fatalf("expected the new-page callback to run")
	}
}

func TestEnsureKeepsFittingBlockOnPage(t *testing.T) {
	p := NewPager(newFakeCanvas(), testGeometry())
	p.StartPage()
	p.Advance(40)

	p.Ensure(40, func(*Pager) { t.Fatalf("no break expected") })
	if p.PageCount() != 1 {
		t.Fatalf("expected no page break, pages=%d", p.PageCount())
	}
}

func TestEnsureDoesNotLoopOnOversizedBlock(t *testing.T) {
	p := NewPager(newFakeCanvas(), testGeometry())
	p.StartPage()

	// Taller than the whole content height: must stay on the fresh
	// page instead of breaking forever.
	p.Ensure(500, func(*Pager) { t.Fatalf("no break expected at top of page") })
	if p.PageCount() != 1 {
		t.Fatalf("expected oversized block to stay put, pages=%d", p.PageCount())
	}
}

func TestRuleSpansContentWidth(t *testing.T) {
	canvas := newFakeCanvas()
	p := NewPager(canvas, testGeometry())
	p.StartPage()
	p.Rule()
	if canvas.page().lines != 1 {
		t.Fatalf("expected one rule, got %d", canvas.page().lines)
	}
}

func TestFinishSerializesAtLeastOnePage(t *testing.T) {
	canvas := newFakeCanvas()
	p := NewPager(canvas, testGeometry())

	var got []byte
	buf := &sliceWriter{out: &got}
	if err := p.Finish(buf); err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if p.PageCount() != 1 {
		t.Fatalf("expected an implicit first page, got %d", p.PageCount())
	}
	if len(got) == 0 {
		t.Fatalf("expected serialized output")
	}
}

type sliceWriter struct {
	out *[]byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	*w.out = append(*w.out, p...)
	return len(p), nil
}
