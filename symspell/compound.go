package symspell

import (
	"math"
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var compoundCaser = cases.Lower(language.Und)

// tokenize splits phrase into maximal runs of letters, digits, and
// underscore, case-folding each survivor. uax29 first splits phrase on
// Unicode word boundaries (so combining marks and multi-byte scripts stay
// together); its segments are then split again on any remaining
// non-alphanumeric grapheme, including the apostrophe in contractions like
// "it's", since uax29's WB6/WB7 rules keep those joined but a term boundary
// here is drawn at letters/digits/underscore only.
func tokenize(phrase string) []string {
	folded := compoundCaser.String(phrase)
	var terms []string
	seg := words.FromString(folded)
	for seg.Next() {
		terms = append(terms, splitAlnumRuns(seg.Value())...)
	}
	return terms
}

func splitAlnumRuns(s string) []string {
	var terms []string
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			terms = append(terms, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		terms = append(terms, b.String())
	}
	return terms
}

// LookupCompound corrects a multi-word phrase, merging or splitting adjacent
// tokens as scored against the unigram and bigram frequency tables. It
// always returns exactly one aggregate suggestion.
func (e *Engine) LookupCompound(phrase string, maxEditDistance int) (Suggestions, error) {
	terms := tokenize(phrase)

	var suggestions Suggestions
	suggestionParts := make(Suggestions, 0, len(terms))

	lastCombi := false
	for i, term := range terms {
		var err error
		suggestions, err = e.Lookup(term, Top, maxEditDistance, false, false)
		if err != nil {
			return nil, err
		}

		if i > 0 && !lastCombi {
			combined := terms[i-1] + term
			suggestionsCombi, err := e.Lookup(combined, Top, maxEditDistance, false, false)
			if err != nil {
				return nil, err
			}
			if len(suggestionsCombi) > 0 {
				best1 := suggestionParts[len(suggestionParts)-1]
				var best2 Suggestion
				if len(suggestions) > 0 {
					best2 = suggestions[0]
				} else {
					best2 = Suggestion{
						Term:     term,
						Distance: maxEditDistance + 1,
						Count:    int64(10 / math.Pow(10, float64(graphemeLen(term)))),
					}
				}

				distance1 := best1.Distance + best2.Distance
				if distance1 >= 0 &&
					(suggestionsCombi[0].Distance+1 < distance1 ||
						(suggestionsCombi[0].Distance+1 == distance1 &&
							float64(suggestionsCombi[0].Count) > float64(best1.Count)/e.frequency.n*float64(best2.Count))) {
					suggestionsCombi[0].Distance++
					suggestionParts[len(suggestionParts)-1] = suggestionsCombi[0]
					lastCombi = true
					continue
				}
			}
		}
		lastCombi = false

		if len(suggestions) > 0 && (suggestions[0].Distance == 0 || graphemeLen(term) == 1) {
			suggestionParts = append(suggestionParts, suggestions[0])
			continue
		}

		part, err := e.bestSplit(term, suggestions, maxEditDistance)
		if err != nil {
			return nil, err
		}
		suggestionParts = append(suggestionParts, part)
	}

	var sb strings.Builder
	count := e.frequency.n
	for _, part := range suggestionParts {
		sb.WriteString(part.Term)
		sb.WriteString(" ")
		count *= float64(part.Count) / e.frequency.n
	}
	term := strings.TrimSpace(sb.String())
	distance := e.distance.Distance(phrase, term)

	return Suggestions{{Term: term, Distance: distance, Count: int64(count)}}, nil
}

// bestSplit tries every split point of term and returns the best-scoring
// two-part correction. If no split beats the unsplit suggestion, that
// suggestion is returned; if there is neither an unsplit suggestion nor a
// usable split, term itself is returned as an unknown word.
func (e *Engine) bestSplit(term string, suggestions Suggestions, maxEditDistance int) (Suggestion, error) {
	var best *Suggestion
	if len(suggestions) > 0 {
		tmp := suggestions[0]
		best = &tmp
	}

	termLen := graphemeLen(term)
	if termLen <= 1 {
		return fallbackSuggestion(term, best, maxEditDistance), nil
	}

	for j := 1; j < termLen; j++ {
		part1 := graphemePrefix(term, j)
		part2 := graphemeSlice(term, j, termLen)

		sugg1, err := e.Lookup(part1, Top, maxEditDistance, false, false)
		if err != nil {
			return Suggestion{}, err
		}
		if len(sugg1) == 0 {
			continue
		}
		sugg2, err := e.Lookup(part2, Top, maxEditDistance, false, false)
		if err != nil {
			return Suggestion{}, err
		}
		if len(sugg2) == 0 {
			continue
		}

		candidateTerm := sugg1[0].Term + " " + sugg2[0].Term
		d, exceeded := e.distance.DistanceBounded(term, candidateTerm, maxEditDistance)
		distance := d
		if exceeded {
			distance = maxEditDistance + 1
		}

		if best != nil {
			if distance > best.Distance {
				continue
			}
			if distance < best.Distance {
				best = nil
			}
		}

		candidate := Suggestion{Term: candidateTerm, Distance: distance}
		if bigramCount, found := e.frequency.bigrams[candidateTerm]; found {
			candidate.Count = bigramCount
			if len(suggestions) > 0 {
				if sugg1[0].Term+sugg2[0].Term == term {
					candidate.Count = maxInt64(candidate.Count, suggestions[0].Count+2)
				} else if sugg1[0].Term == suggestions[0].Term || sugg2[0].Term == suggestions[0].Term {
					candidate.Count = maxInt64(candidate.Count, suggestions[0].Count+1)
				}
			} else if sugg1[0].Term+sugg2[0].Term == term {
				candidate.Count = maxInt64(candidate.Count, maxInt64(sugg1[0].Count, sugg2[0].Count)+2)
			}
		} else {
			candidate.Count = minInt64(e.frequency.bigramCountMin, int64(float64(sugg1[0].Count)/e.frequency.n*float64(sugg2[0].Count)))
		}

		if best == nil || candidate.Count > best.Count {
			tmp := candidate
			best = &tmp
		}
	}

	return fallbackSuggestion(term, best, maxEditDistance), nil
}

func fallbackSuggestion(term string, best *Suggestion, maxEditDistance int) Suggestion {
	if best != nil {
		return *best
	}
	return Suggestion{
		Term:     term,
		Count:    int64(10 / math.Pow(10, float64(graphemeLen(term)))),
		Distance: maxEditDistance + 1,
	}
}
