package pdf

import (
	"strings"
	"testing"
)

func TestEllipsizeFitsAndMarks(t *testing.T) {
	m := newFakeCanvas()
	st := Style{Size: 9}
	long := "a very long product description that cannot fit"

	for _, maxWidth := range []float64{30, 60, 120, 200} {
		got := Ellipsize(m, long, st, maxWidth)
		if w := m.TextWidth(got, st); w > maxWidth {
			t.Fatalf("maxWidth %.0f: ellipsized width %.0f exceeds limit", maxWidth, w)
		}
		if !strings.HasSuffix(got, Ellipsis) {
			t.Fatalf("maxWidth %.0f: expected trailing ellipsis, got %q", maxWidth, got)
		}
	}
}

func TestEllipsizeLeavesFittingTextAlone(t *testing.T) {
	m := newFakeCanvas()
	st := Style{Size: 9}
	if got := Ellipsize(m, "short", st, 1000); got != "short" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}

func TestEllipsizeTerminatesOnUnsatisfiableWidth(t *testing.T) {
	m := newFakeCanvas()
	st := Style{Size: 9}

	// Narrower than the ellipsis marker itself: the widest bare prefix
	// (here: nothing) is returned rather than looping.
	got := Ellipsize(m, "anything", st, m.runeW/2)
	if w := m.TextWidth(got, st); w > m.runeW/2 {
		t.Fatalf("width %.1f exceeds limit", w)
	}
}

func TestWrapAccumulatesWholeWords(t *testing.T) {
	m := newFakeCanvas()
	st := Style{Size: 9}

	// 10 rune-widths per line at 6pt per rune.
	lines := Wrap(m, "satu dua tiga empat", st, 10*m.runeW)
	want := []string{"satu dua", "tiga empat"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	for _, line := range lines {
		if m.TextWidth(line, st) > 10*m.runeW {
			t.Fatalf("line %q too wide", line)
		}
	}
}

func TestWrapHardSplitsOversizedWord(t *testing.T) {
	m := newFakeCanvas()
	st := Style{Size: 9}

	lines := Wrap(m, "supercalifragilistic", st, 6*m.runeW)
	if len(lines) < 3 {
		t.Fatalf("expected the word split over several lines, got %v", lines)
	}
	var rebuilt string
	for _, line := range lines {
		if m.TextWidth(line, st) > 6*m.runeW {
			t.Fatalf("line %q too wide", line)
		}
		rebuilt += line
	}
	if rebuilt != "supercalifragilistic" {
		t.Fatalf("hard split lost characters: %q", rebuilt)
	}
}

func TestWrapMakesProgressWhenOneRuneIsTooWide(t *testing.T) {
	m := newFakeCanvas()
	st := Style{Size: 9}

	lines := Wrap(m, "abc", st, m.runeW/2)
	if len(lines) != 3 {
		t.Fatalf("expected one rune per line, got %v", lines)
	}
}
