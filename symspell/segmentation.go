package symspell

import (
	"math"
	"strings"
)

// Segmentation is the result of WordSegmentation: the input split into
// words as they literally appear, the same split after spell-correcting
// each word, the total edit-distance paid (including inserted separators),
// and the cumulative log-probability of the chosen segmentation.
type Segmentation struct {
	RawSegmented      string
	Corrected         string
	DistanceSum       int
	LogProbabilitySum float64
}

type composition struct {
	raw               string
	corrected         string
	distanceSum       int
	logProbabilitySum float64
}

// WordSegmentation finds the most probable split of text into a sequence of
// dictionary words, tolerating typos up to maxEditDistance in each word and
// charging a one-edit penalty for every space it has to insert that wasn't
// already present in text. maxSegmentationWordLength limits how long a
// single candidate word may be; 0 defaults to the engine's own
// MaxWordLength.
//
// The boundary check deciding whether a space was "already present" tests
// text at the current split position, and the grapheme just before it,
// rather than always testing text's first character (a transcription bug in
// the reference this was ported from). A separator-only part adds no word to
// the output. Together these give the round-trip property that an
// already-correctly-spaced dictionary phrase segments to itself with
// DistanceSum == 0.
func (e *Engine) WordSegmentation(text string, maxEditDistance, maxSegmentationWordLength int) (Segmentation, error) {
	if maxSegmentationWordLength <= 0 {
		maxSegmentationWordLength = e.frequency.maxWordLength
	}
	gc := NewGraphemeCursor(text)
	textLen := gc.Len()
	if textLen == 0 {
		return Segmentation{}, nil
	}

	capacity := min(maxSegmentationWordLength, textLen)
	if capacity < 1 {
		capacity = 1
	}
	compositions := make([]composition, capacity)

	join := func(left, right string) string {
		if left == "" {
			return right
		}
		if right == "" {
			return left
		}
		return left + " " + right
	}

	circularIndex := -1
	for j := 0; j < textLen; j++ {
		rowMax := min(maxSegmentationWordLength, textLen-j)
		for i := 1; i <= rowMax; i++ {
			startContent := j
			separatorLen := 0
			if isSeparatorGrapheme(gc.At(j)) {
				startContent = j + 1
			} else if j == 0 || !isSeparatorGrapheme(gc.At(j-1)) {
				separatorLen = 1
			}

			raw := ""
			if startContent < j+i {
				raw = gc.Slice(startContent, j+i)
			}
			rawLen := graphemeLen(raw)
			part := strings.ReplaceAll(raw, " ", "")
			partLen := graphemeLen(part)
			topEditDistance := rawLen - partLen

			var topResult string
			var topProbabilityLog float64
			sugg, err := e.Lookup(part, Top, maxEditDistance, false, false)
			if err != nil {
				return Segmentation{}, err
			}
			if len(sugg) > 0 {
				topResult = sugg[0].Term
				topEditDistance += sugg[0].Distance
				topProbabilityLog = math.Log10(float64(sugg[0].Count) / e.frequency.n)
			} else {
				topResult = part
				topProbabilityLog = math.Log10(10.0 / (e.frequency.n * math.Pow(10, float64(partLen))))
			}

			destinationIndex := (i + circularIndex) % capacity

			if j == 0 {
				compositions[destinationIndex] = composition{
					raw:               part,
					corrected:         topResult,
					distanceSum:       topEditDistance,
					logProbabilitySum: topProbabilityLog,
				}
			}

			if circularIndex == -1 {
				continue
			}

			d := compositions[destinationIndex]
			c := compositions[circularIndex]

			extend := i == maxSegmentationWordLength ||
				((c.distanceSum+topEditDistance == d.distanceSum || c.distanceSum+separatorLen+topEditDistance == d.distanceSum) &&
					c.logProbabilitySum > d.logProbabilitySum) ||
				c.distanceSum+separatorLen+topEditDistance < d.distanceSum

			if extend {
				compositions[destinationIndex] = composition{
					raw:               join(c.raw, part),
					corrected:         join(c.corrected, topResult),
					distanceSum:       c.distanceSum + separatorLen + topEditDistance,
					logProbabilitySum: c.logProbabilitySum + topProbabilityLog,
				}
			}
		}
		circularIndex++
		if circularIndex == capacity {
			circularIndex = 0
		}
	}

	final := compositions[circularIndex]
	return Segmentation{
		RawSegmented:      final.raw,
		Corrected:         final.corrected,
		DistanceSum:       final.distanceSum,
		LogProbabilitySum: final.logProbabilitySum,
	}, nil
}

func isSeparatorGrapheme(g string) bool {
	return g == " " || g == "\n" || g == "\r" || g == "\t"
}
