package symspell

import "testing"

func Test_WordSegmentationSplitsConcatenatedDictionaryWords(t *testing.T) {
	e := newTestEngine(t, map[string]int64{
		"the": 23135851162, "quick": 4190446, "brown": 3130920, "fox": 4253498,
	}, nil)
	seg, err := e.WordSegmentation("thequickbrownfox", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, seg.Corrected, "the quick brown fox")
}

// Round-trip/idempotence: a string already correctly spaced into
// in-dictionary words segments with DistanceSum == 0.
func Test_WordSegmentationIdempotentOnAlreadySpacedDictionaryPhrase(t *testing.T) {
	e := newTestEngine(t, map[string]int64{
		"the": 23135851162, "quick": 4190446, "brown": 3130920, "fox": 4253498,
	}, nil)
	seg, err := e.WordSegmentation("the quick brown fox", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, seg.Corrected, "the quick brown fox")
	equal(t, seg.DistanceSum, 0)
}

func Test_WordSegmentationCorrectsTyposWithinSegments(t *testing.T) {
	e := newTestEngine(t, map[string]int64{
		"the": 23135851162, "quick": 4190446, "brown": 3130920, "fox": 4253498,
	}, nil)
	seg, err := e.WordSegmentation("thequickbrovvnfox", 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, seg.Corrected, "the quick brown fox")
}

func Test_WordSegmentationEmptyInputReturnsZeroValue(t *testing.T) {
	e := newTestEngine(t, map[string]int64{"the": 1}, nil)
	seg, err := e.WordSegmentation("", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, seg.Corrected, "")
	equal(t, seg.DistanceSum, 0)
}
