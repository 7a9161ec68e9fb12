package symspell

import "testing"

func Test_GraphemeLenCountsLeadingByteRuns(t *testing.T) {
	equal(t, graphemeLen("hello"), 5)
	equal(t, graphemeLen("🚀rocket"), 7)
	equal(t, graphemeLen(""), 0)
}

func Test_GraphemeSliceMatchesByteRangeForASCII(t *testing.T) {
	gc := NewGraphemeCursor("hello world")
	equal(t, gc.Slice(0, 5), "hello")
	equal(t, gc.Slice(6, 11), "world")
}

func Test_GraphemeSliceHandlesMultiByteLeadingRuns(t *testing.T) {
	s := "🚀this is a test string🚀"
	gc := NewGraphemeCursor(s)
	equal(t, gc.Len(), 23)
	equal(t, gc.Slice(1, 5), "this")
}

func Test_GraphemeAtReturnsSingleUnit(t *testing.T) {
	gc := NewGraphemeCursor("🚀rocket ")
	equal(t, gc.At(0), "🚀")
	equal(t, gc.At(1), "r")
}

func Test_GraphemeCursorCachesAcrossRepeatedSlicing(t *testing.T) {
	gc := NewGraphemeCursor("abcdefgh")
	equal(t, gc.Slice(2, 4), "cd")
	equal(t, gc.Slice(0, 2), "ab")
	equal(t, gc.Slice(4, 8), "efgh")
}

func Test_GraphemePrefixTruncatesToLength(t *testing.T) {
	equal(t, graphemePrefix("hello", 3), "hel")
	equal(t, graphemePrefix("hi", 7), "hi")
}
