package symspell

import "testing"

func Test_DeleteIndexPrefixAndWordItselfAreKeys(t *testing.T) {
	idx := NewDeleteIndex(7, 2)
	idx.Add("hello")

	h := idx.HashString("hello")
	candidates := idx.CandidatesFor(h)
	if len(candidates) != 1 || candidates[0] != "hello" {
		t.Fatalf("expected [hello], got %v", candidates)
	}
}

func Test_DeleteIndexGeneratesSingleDeletionVariants(t *testing.T) {
	idx := NewDeleteIndex(7, 2)
	idx.Add("cat")

	for _, variant := range []string{"at", "ct", "ca"} {
		candidates := idx.CandidatesFor(idx.HashString(variant))
		found := false
		for _, c := range candidates {
			if c == "cat" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %q to map to cat, got %v", variant, candidates)
		}
	}
}

func Test_DeleteIndexEmptyStringIncludedForShortWords(t *testing.T) {
	idx := NewDeleteIndex(7, 2)
	idx.Add("at")

	candidates := idx.CandidatesFor(idx.HashString(""))
	if len(candidates) != 1 || candidates[0] != "at" {
		t.Fatalf("expected [at] at empty-string bucket, got %v", candidates)
	}
}

func Test_DeleteIndexSharedPrefixWordsCoexistInSameBucket(t *testing.T) {
	idx := NewDeleteIndex(7, 2)
	idx.Add("pear")
	idx.Add("peer")

	candidates := idx.CandidatesFor(idx.HashString("per"))
	seen := map[string]bool{}
	for _, c := range candidates {
		seen[c] = true
	}
	if !seen["pear"] || !seen["peer"] {
		t.Fatalf("expected both pear and peer in bucket, got %v", candidates)
	}
}

func Test_DeleteIndexStagingCommitMatchesDirectAdd(t *testing.T) {
	direct := NewDeleteIndex(7, 2)
	direct.Add("hello")

	staged := NewDeleteIndex(7, 2)
	stage := NewSuggestionStage(16)
	staged.StageInto("hello", stage)
	staged.CommitStaged(stage)

	h := direct.HashString("hel")
	equal(t, len(direct.CandidatesFor(h)), len(staged.CandidatesFor(h)))
}
