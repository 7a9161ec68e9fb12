package symspell

// GraphemeCursor walks a string by grapheme, where a grapheme is approximated
// as one leading UTF-8 code unit run (1-4 bytes), not a true Unicode
// grapheme cluster. This matches the source engine's definition exactly:
// combining marks and ZWJ sequences are split, which is intentional (see
// DESIGN.md) and load-bearing for the delete-index hash keys.
//
// A GraphemeCursor lazily builds a cache of grapheme-index -> byte-offset so
// repeated slicing of the same string (as happens throughout a single
// lookup) does not re-walk the string from byte 0 each time.
type GraphemeCursor struct {
	s           string
	byteOffsets []int
	scanned     int
	full        bool
}

// NewGraphemeCursor constructs a cursor over s. The byte-offset cache starts
// with just the 0 offset and grows on demand.
func NewGraphemeCursor(s string) *GraphemeCursor {
	return &GraphemeCursor{s: s, byteOffsets: []int{0}}
}

func graphemeByteLen(lead byte) int {
	switch {
	case lead&0x80 == 0:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// growTo extends the byte-offset cache until it has at least n+1 entries (or
// the string is exhausted), memoizing the total count and offsets found so
// far.
func (c *GraphemeCursor) growTo(n int) {
	if c.full {
		return
	}
	for len(c.byteOffsets)-1 < n {
		last := c.byteOffsets[len(c.byteOffsets)-1]
		if last >= len(c.s) {
			c.full = true
			return
		}
		last += graphemeByteLen(c.s[last])
		c.byteOffsets = append(c.byteOffsets, last)
	}
}

// Len returns the grapheme count of the underlying string.
func (c *GraphemeCursor) Len() int {
	idx := len(c.byteOffsets) - 1
	for {
		c.growTo(idx + 1)
		if c.full {
			return len(c.byteOffsets) - 1
		}
		idx++
	}
}

// ByteRangeFor returns the byte offsets [start,end) covering graphemes
// [a,b). Indices beyond the string length clamp to the string's own length.
func (c *GraphemeCursor) ByteRangeFor(a, b int) (int, int) {
	if b < a {
		b = a
	}
	c.growTo(b)
	startIdx := min(a, len(c.byteOffsets)-1)
	endIdx := min(b, len(c.byteOffsets)-1)
	return c.byteOffsets[startIdx], c.byteOffsets[endIdx]
}

// Slice returns the substring spanning graphemes [a,b).
func (c *GraphemeCursor) Slice(a, b int) string {
	start, end := c.ByteRangeFor(a, b)
	return c.s[start:end]
}

// At returns the i-th grapheme, or "" if i is out of range.
func (c *GraphemeCursor) At(i int) string {
	if i < 0 {
		return ""
	}
	return c.Slice(i, i+1)
}

// graphemeLen returns the grapheme count of s without allocating a cursor,
// for call sites that only need a length once.
func graphemeLen(s string) int {
	n := 0
	for i := 0; i < len(s); {
		i += graphemeByteLen(s[i])
		n++
	}
	return n
}

// graphemeSlice returns the substring of s spanning graphemes [a,b) without
// retaining a cursor, for one-off slicing of short strings (e.g. a
// dictionary word at insert time).
func graphemeSlice(s string, a, b int) string {
	return NewGraphemeCursor(s).Slice(a, b)
}

// graphemePrefix returns the first n graphemes of s, or s itself if it has
// fewer than n.
func graphemePrefix(s string, n int) string {
	return graphemeSlice(s, 0, n)
}
