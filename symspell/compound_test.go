package symspell

import "testing"

func Test_TokenizeSplitsOnNonWordGraphemesAndLowercases(t *testing.T) {
	terms := tokenize("Hello, World! It's 2026.")
	want := []string{"hello", "world", "it", "s", "2026"}
	if len(terms) != len(want) {
		t.Fatalf("got %v, want %v", terms, want)
	}
	for i := range want {
		equal(t, terms[i], want[i])
	}
}

func Test_LookupCompoundReturnsSingleAggregateSuggestion(t *testing.T) {
	e := newTestEngine(t, map[string]int64{
		"this": 100, "is": 100, "a": 100, "test": 100,
	}, nil)
	sugg, err := e.LookupCompound("this is a test", 2)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, len(sugg), 1)
}

func Test_LookupCompoundFixesTyposAcrossTokens(t *testing.T) {
	e := newTestEngine(t, map[string]int64{
		"this": 100, "is": 100, "a": 100, "test": 100,
	}, nil)
	sugg, err := e.LookupCompound("thes is a tast", 2)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, len(sugg), 1)
	equal(t, sugg[0].Term, "this is a test")
}

func Test_LookupCompoundMergesSplitWordsUsingBigrams(t *testing.T) {
	e := newTestEngine(t,
		map[string]int64{"ice": 50, "cream": 50, "the": 200},
		map[string]int64{"ice cream": 500},
	)
	sugg, err := e.LookupCompound("the icecream", 2)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, len(sugg), 1)
	equal(t, sugg[0].Term, "the ice cream")
}
