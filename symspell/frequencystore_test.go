package symspell

import "testing"

func Test_ObserveUnigramStagesBelowThreshold(t *testing.T) {
	fs := NewFrequencyStore(5)
	promoted := fs.ObserveUnigram("rare", 2)
	if promoted {
		t.Fatal("expected no promotion below threshold")
	}
	if _, ok := fs.Count("rare"); ok {
		t.Fatal("word should not be in the live index yet")
	}
}

func Test_ObserveUnigramPromotesOnceThresholdReached(t *testing.T) {
	fs := NewFrequencyStore(5)
	fs.ObserveUnigram("rare", 2)
	promoted := fs.ObserveUnigram("rare", 3)
	if !promoted {
		t.Fatal("expected promotion once cumulative count reaches threshold")
	}
	count, ok := fs.Count("rare")
	if !ok {
		t.Fatal("expected word to be indexed")
	}
	equal(t, count, int64(5))
}

// Ingesting a dictionary line twice with counts a and b must equal ingesting
// once with a+b.
func Test_IngestingTwiceEqualsIngestingSum(t *testing.T) {
	fsTwice := NewFrequencyStore(1)
	fsTwice.ObserveUnigram("the", 3)
	fsTwice.ObserveUnigram("the", 4)

	fsOnce := NewFrequencyStore(1)
	fsOnce.ObserveUnigram("the", 7)

	a, _ := fsTwice.Count("the")
	b, _ := fsOnce.Count("the")
	equal(t, a, b)
}

func Test_FrequencyOnlyUpdateDoesNotRepromoteIndexedWord(t *testing.T) {
	fs := NewFrequencyStore(5)
	fs.ObserveUnigram("the", 10)
	promotedAgain := fs.ObserveUnigram("the", 1)
	if promotedAgain {
		t.Fatal("a word already indexed must not report a second promotion")
	}
}

func Test_IngestUnigramLineParsesWordAndCount(t *testing.T) {
	fs := NewFrequencyStore(1)
	word, promoted, ok := fs.IngestUnigramLine("hello 42", " ")
	if !ok || !promoted {
		t.Fatalf("expected successful ingest and promotion, got ok=%v promoted=%v", ok, promoted)
	}
	equal(t, word, "hello")
	count, _ := fs.Count("hello")
	equal(t, count, int64(42))
}

func Test_IngestUnigramLineIgnoresMalformedLine(t *testing.T) {
	fs := NewFrequencyStore(1)
	_, _, ok := fs.IngestUnigramLine("onlyoneword", " ")
	if ok {
		t.Fatal("expected malformed line to be ignored")
	}
}

func Test_IngestBigramLineStoresJoinedKey(t *testing.T) {
	fs := NewFrequencyStore(1)
	phrase, ok := fs.IngestBigramLine("of the 1000", " ")
	if !ok {
		t.Fatal("expected successful bigram ingest")
	}
	equal(t, phrase, "of the")
	equal(t, fs.bigrams["of the"], int64(1000))
}

func Test_SaturatingAddDoesNotOverflow(t *testing.T) {
	equal(t, saturatingAddInt64(maxInt64Value-1, 10), maxInt64Value)
}
