// Package richtext parses the instructions mini-format: "- " bullets, blank
// line breaks and **bold** spans.
package richtext

import (
	"html"
	"regexp"
	"strings"
)

// BlockKind classifies a rendered line
type BlockKind int

const (
	Paragraph BlockKind = iota
	Bullet
	Break
)

// String returns a human-readable block kind
func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Bullet:
		return "bullet"
	case Break:
		return "break"
	default:
		return "unknown"
	}
}

// Span is a run of text with uniform emphasis
type Span struct {
	Text string
	Bold bool
}

// Block is one input line after parsing
type Block struct {
	Kind  BlockKind
	Spans []Span
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Parse splits text into blocks, one per line
func Parse(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			blocks = append(blocks, Block{Kind: Break})
		case strings.HasPrefix(trimmed, "-"):
			// Only the first character of the raw line is dropped.
			_, rest := firstRune(line)
			blocks = append(blocks, Block{Kind: Bullet, Spans: Inline(rest)})
		default:
			blocks = append(blocks, Block{Kind: Paragraph, Spans: Inline(line)})
		}
	}
	return blocks
}

// Inline splits a line into plain and bold spans. Markers without a partner
// stay in the text.
func Inline(line string) []Span {
	var spans []Span
	pos := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > pos {
			spans = append(spans, Span{Text: line[pos:m[0]]})
		}
		if m[3] > m[2] {
			spans = append(spans, Span{Text: line[m[2]:m[3]], Bold: true})
		}
		pos = m[1]
	}
	if pos < len(line) {
		spans = append(spans, Span{Text: line[pos:]})
	}
	return spans
}

// HTML renders text for Telegram's HTML parse mode
func HTML(text string) string {
	return render(Parse(text), func(s Span) string {
		escaped := html.EscapeString(s.Text)
		if s.Bold {
			return "<b>" + escaped + "</b>"
		}
		return escaped
	})
}

func render(blocks []Block, span func(Span) string) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var sb strings.Builder
		if b.Kind == Bullet {
			sb.WriteString("• ")
		}
		for i, s := range b.Spans {
			// The marker carries its own space
			if i == 0 && b.Kind == Bullet {
				s.Text = strings.TrimPrefix(s.Text, " ")
			}
			sb.WriteString(span(s))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func firstRune(s string) (string, string) {
	for i := range s {
		if i > 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
