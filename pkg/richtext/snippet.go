package richtext

// Snippet is a formatting template the authoring flow can insert
type Snippet int

const (
	SnippetBold Snippet = iota
	SnippetBullet
)

// Text returns the literal inserted for the snippet
func (s Snippet) Text() string {
	if s == SnippetBullet {
		return "\n- "
	}
	return "**texto**"
}

// InsertSnippet replaces the rune range [start, end) of text with the
// snippet. Out-of-range or inverted positions are clamped.
func InsertSnippet(text string, start, end int, kind Snippet) string {
	r := []rune(text)
	start = clamp(start, 0, len(r))
	end = clamp(end, start, len(r))
	return string(r[:start]) + kind.Text() + string(r[end:])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
