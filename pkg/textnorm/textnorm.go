// Package textnorm canonicalizes ingredient and recipe text so comparisons
// ignore case and accents.
package textnorm

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block, U+0300–U+036F.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// A transform.Transformer carries state, so each caller borrows its own chain.
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	},
}

// Normalize lower-cases s, decomposes it, drops combining diacritical marks
// and trims surrounding whitespace. "Café " and "cafe" normalize identically.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)
	if isASCII(s) {
		return strings.TrimSpace(s)
	}

	t := chainPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		chainPool.Put(t)
	}()

	out, _, err := transform.String(t, s)
	if err != nil {
		// Invalid UTF-8 is passed through undecomposed.
		out = s
	}
	return strings.TrimSpace(out)
}

// Equal reports whether a and b are the same after normalization
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Contains reports whether the normalized haystack contains the normalized needle
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
