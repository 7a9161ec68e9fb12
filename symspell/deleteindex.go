package symspell

import "github.com/zeebo/xxh3"

// DeleteIndex owns the hash -> candidate-words multimap built from
// delete-variants of every vocabulary entry truncated to prefixLength. The
// hash family is xxh3 rather than the classic FNV-1a packed-length-tag hash;
// per the collision-tolerance design, any stable 64-bit hash is
// interchangeable here since downstream length/prefix/distance filters
// reject spurious bucket hits regardless of hash family.
type DeleteIndex struct {
	prefixLength    int
	maxEditDistance int
	buckets         map[uint64][]string
}

// NewDeleteIndex returns an empty index for the given prefix length and
// delete-generation depth.
func NewDeleteIndex(prefixLength, maxEditDistance int) *DeleteIndex {
	return &DeleteIndex{
		prefixLength:    prefixLength,
		maxEditDistance: maxEditDistance,
		buckets:         make(map[uint64][]string),
	}
}

// HashString computes the 64-bit bucket key for a delete-variant string.
func (idx *DeleteIndex) HashString(s string) uint64 {
	return xxh3.HashString(s)
}

// CandidatesFor returns the (possibly empty) list of original words stored
// at the given hash bucket.
func (idx *DeleteIndex) CandidatesFor(hash uint64) []string {
	return idx.buckets[hash]
}

// Add indexes word directly into the live bucket map (no staging).
func (idx *DeleteIndex) Add(word string) {
	for del := range idx.editsPrefix(word) {
		h := idx.HashString(del)
		idx.buckets[h] = append(idx.buckets[h], word)
	}
}

// StageInto generates word's delete-variants and records them against the
// given staging area instead of the live index, for use during bulk loads.
func (idx *DeleteIndex) StageInto(word string, staging *SuggestionStage) {
	for del := range idx.editsPrefix(word) {
		staging.Add(idx.HashString(del), word)
	}
}

// CommitStaged merges a staging area's accumulated deletes into the live
// index.
func (idx *DeleteIndex) CommitStaged(staging *SuggestionStage) {
	staging.CommitTo(idx.buckets)
}

// editsPrefix computes the full delete-variant set for word: the empty
// string (if word is short enough), the prefix-truncated word itself, and
// every string reachable by deleting up to maxEditDistance graphemes from
// that prefix.
func (idx *DeleteIndex) editsPrefix(word string) map[string]struct{} {
	out := make(map[string]struct{})
	if graphemeLen(word) <= idx.maxEditDistance {
		out[""] = struct{}{}
	}
	prefix := graphemePrefix(word, idx.prefixLength)
	out[prefix] = struct{}{}
	idx.edits(prefix, 0, out)
	return out
}

// edits recursively deletes one grapheme at a time from word, up to
// maxEditDistance levels, deduplicating against deleteWords.
func (idx *DeleteIndex) edits(word string, editDistance int, deleteWords map[string]struct{}) {
	editDistance++
	g := splitGraphemes(word)
	if len(g) <= 1 {
		return
	}
	for i := range g {
		var b []byte
		for j, grapheme := range g {
			if j == i {
				continue
			}
			b = append(b, grapheme...)
		}
		deleted := string(b)
		if _, exists := deleteWords[deleted]; !exists {
			deleteWords[deleted] = struct{}{}
			if editDistance < idx.maxEditDistance {
				idx.edits(deleted, editDistance, deleteWords)
			}
		}
	}
}

// deleteInSuggestionPrefix reports whether every grapheme of del appears, in
// order, within suggestion's own prefix-truncated form. This is the
// necessary condition (not sufficient; verified edit distance still runs)
// that a bucket hit truly descends from del rather than being a hash
// collision.
func deleteInSuggestionPrefix(del string, delLen int, suggestion string, suggestionLen, prefixLength int) bool {
	if delLen == 0 {
		return true
	}
	if prefixLength < suggestionLen {
		suggestionLen = prefixLength
	}
	delGraphemes := splitGraphemes(del)
	suggGraphemes := splitGraphemes(suggestion)
	j := 0
	for i := 0; i < delLen && i < len(delGraphemes); i++ {
		delChar := delGraphemes[i]
		for j < suggestionLen && j < len(suggGraphemes) && delChar != suggGraphemes[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
	}
	return true
}
