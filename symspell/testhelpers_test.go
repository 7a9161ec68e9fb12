package symspell

import "testing"

func equal[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// newTestEngine builds a small engine for the given words and counts,
// followed by an optional set of bigrams, with the classic
// maxEditDistance=2, prefixLength=7 parameters used throughout the
// spec's scenarios.
func newTestEngine(t *testing.T, words map[string]int64, bigrams map[string]int64) *Engine {
	t.Helper()
	e, err := NewEngine(2, 7, 1, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	for w, c := range words {
		e.CreateDictionaryEntry(w, c, nil)
	}
	for phrase, c := range bigrams {
		e.frequency.ObserveBigram(phrase, c)
	}
	return e
}
