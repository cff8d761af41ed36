package pdf

import "strings"

// Ellipsis is the truncation marker appended to overflowing cells.
const Ellipsis = "…"

// Ellipsize returns s unchanged when it fits maxWidth, otherwise the
// widest prefix that, with the ellipsis marker appended, still fits.
// When not even the marker alone fits, the widest bare prefix is
// returned so rendering terminates instead of looping on an
// unsatisfiable width.
func Ellipsize(m Measurer, s string, st Style, maxWidth float64) string {
	if m.TextWidth(s, st) <= maxWidth {
		return s
	}
	if m.TextWidth(Ellipsis, st) > maxWidth {
		return fitPrefix(m, s, st, maxWidth, "")
	}
	return fitPrefix(m, s, st, maxWidth, Ellipsis) + Ellipsis
}

// Wrap breaks s into lines no wider than maxWidth, accumulating whole
// words greedily. A single word wider than maxWidth is hard-split
// character by character using the same prefix fitting as Ellipsize.
func Wrap(m Measurer, s string, st Style, maxWidth float64) []string {
	var lines []string
	var current string

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.TextWidth(candidate, st) <= maxWidth {
			current = candidate
			continue
		}
		flush()

		// The word alone may still exceed the line width.
		for m.TextWidth(word, st) > maxWidth {
			prefix := fitPrefix(m, word, st, maxWidth, "")
			if prefix == "" {
				// Even one rune is too wide; emit it anyway to make
				// progress.
				runes := []rune(word)
				prefix = string(runes[:1])
			}
			lines = append(lines, prefix)
			word = strings.TrimPrefix(word, prefix)
		}
		current = word
	}
	flush()
	return lines
}

// fitPrefix returns the longest rune prefix of s such that the prefix
// plus suffix measures at most maxWidth, found by binary search over
// the prefix length. Rendered width is monotonic in prefix length,
// which makes the search valid.
func fitPrefix(m Measurer, s string, st Style, maxWidth float64, suffix string) string {
	runes := []rune(s)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.TextWidth(string(runes[:mid])+suffix, st) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo])
}
