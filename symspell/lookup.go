package symspell

import "sort"

// Lookup returns correction candidates for a single query term under the
// given verbosity policy. maxEditDistance must not exceed the engine's own
// maxEditDistance. If includeUnknown is true and no suggestion survives, a
// synthetic (q, maxEditDistance+1, 0) suggestion is appended. If includeSelf
// is true, q itself is not skipped when it appears as a delete-bucket
// candidate (it is still always returned directly as the exact-match case).
func (e *Engine) Lookup(q string, verbosity Verbosity, maxEditDistance int, includeUnknown, includeSelf bool) (Suggestions, error) {
	if maxEditDistance > e.maxEditDistance {
		return nil, ErrMaxEditDistanceExceeded
	}

	var suggestions Suggestions
	qLen := graphemeLen(q)

	if qLen-maxEditDistance > e.frequency.maxWordLength {
		return e.finishLookup(q, suggestions, maxEditDistance, includeUnknown), nil
	}

	if count, ok := e.frequency.Count(q); ok {
		suggestions = append(suggestions, Suggestion{Term: q, Distance: 0, Count: count})
		if verbosity != All {
			return e.finishLookup(q, suggestions, maxEditDistance, includeUnknown), nil
		}
	}

	if maxEditDistance == 0 {
		return e.finishLookup(q, suggestions, maxEditDistance, includeUnknown), nil
	}

	consideredSuggestions := map[string]struct{}{}
	if !includeSelf {
		consideredSuggestions[q] = struct{}{}
	}
	consideredDeletes := map[string]struct{}{}

	maxEditDistance2 := maxEditDistance
	qPrefix := graphemePrefix(q, e.prefixLength)
	qPrefixLen := graphemeLen(qPrefix)

	candidates := []string{qPrefix}
	candidatePointer := 0

	for candidatePointer < len(candidates) {
		cand := candidates[candidatePointer]
		candidatePointer++
		candLen := graphemeLen(cand)
		lengthDiff := qPrefixLen - candLen

		if lengthDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		bucket := e.deletes.CandidatesFor(e.deletes.HashString(cand))
		for _, sug := range bucket {
			sugLen := graphemeLen(sug)
			if abs(sugLen-qLen) > maxEditDistance2 ||
				sugLen < candLen ||
				(sugLen == candLen && sug != cand) {
				continue
			}
			sugPrefixLen := min(sugLen, e.prefixLength)
			if sugPrefixLen > qPrefixLen && (sugPrefixLen-candLen) > maxEditDistance2 {
				continue
			}

			var distance int
			switch {
			case candLen == 0:
				distance = max(qLen, sugLen)
				if distance > maxEditDistance2 || !addToSet(consideredSuggestions, sug) {
					continue
				}
			case sugLen == 1:
				if containsGrapheme(q, sug) {
					distance = qLen - 1
				} else {
					distance = qLen
				}
				if distance > maxEditDistance2 || !addToSet(consideredSuggestions, sug) {
					continue
				}
			default:
				if (verbosity != All && !deleteInSuggestionPrefix(cand, candLen, sug, sugLen, e.prefixLength)) ||
					!addToSet(consideredSuggestions, sug) {
					continue
				}
				d, exceeded := e.distance.DistanceBounded(q, sug, maxEditDistance2)
				if exceeded {
					continue
				}
				distance = d
			}

			if distance <= maxEditDistance2 {
				count, _ := e.frequency.Count(sug)
				si := Suggestion{Term: sug, Distance: distance, Count: count}
				if len(suggestions) > 0 {
					switch verbosity {
					case Closest:
						if distance < maxEditDistance2 {
							suggestions = suggestions[:0]
						}
					case Top:
						if distance < maxEditDistance2 || count > suggestions[0].Count {
							maxEditDistance2 = distance
							suggestions[0] = si
						}
						continue
					}
				}
				if verbosity != All {
					maxEditDistance2 = distance
				}
				suggestions = append(suggestions, si)
			}
		}

		if lengthDiff < maxEditDistance && candLen <= e.prefixLength {
			if verbosity != All && lengthDiff >= maxEditDistance2 {
				continue
			}
			for _, del := range singleGraphemeDeletions(cand) {
				if addToSet(consideredDeletes, del) {
					candidates = append(candidates, del)
				}
			}
		}
	}

	if len(suggestions) > 1 {
		sort.Sort(suggestions)
		unique := make(Suggestions, 0, len(suggestions))
		seen := make(map[string]struct{}, len(suggestions))
		for _, s := range suggestions {
			if _, dup := seen[s.Term]; dup {
				continue
			}
			unique = append(unique, s)
			seen[s.Term] = struct{}{}
		}
		suggestions = unique
	}

	return e.finishLookup(q, suggestions, maxEditDistance, includeUnknown), nil
}

func (e *Engine) finishLookup(q string, suggestions Suggestions, maxEditDistance int, includeUnknown bool) Suggestions {
	if includeUnknown && len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{Term: q, Distance: maxEditDistance + 1, Count: 0})
	}
	return suggestions
}

func containsGrapheme(s, grapheme string) bool {
	for _, g := range splitGraphemes(s) {
		if g == grapheme {
			return true
		}
	}
	return false
}

// singleGraphemeDeletions returns every string obtainable by deleting
// exactly one grapheme from s.
func singleGraphemeDeletions(s string) []string {
	g := splitGraphemes(s)
	out := make([]string, 0, len(g))
	for i := range g {
		var b []byte
		for j, grapheme := range g {
			if j == i {
				continue
			}
			b = append(b, grapheme...)
		}
		out = append(out, string(b))
	}
	return out
}
