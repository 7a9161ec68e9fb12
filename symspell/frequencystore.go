package symspell

import (
	"strconv"
	"strings"
)

// corpusN is the reference English corpus token count, used as the prior
// denominator in Naive-Bayes probability estimates throughout compound
// lookup and word segmentation.
const corpusN = 1024908267229.0

// FrequencyStore owns the unigram and bigram frequency tables, the
// below-threshold staging set, and the corpus-size constant used for
// probability estimation.
type FrequencyStore struct {
	countThreshold int64
	maxWordLength  int

	words               map[string]int64
	belowThresholdWords map[string]int64

	bigrams        map[string]int64
	bigramCountMin int64

	n float64
}

// NewFrequencyStore returns an empty store with the given promotion
// threshold.
func NewFrequencyStore(countThreshold int64) *FrequencyStore {
	return &FrequencyStore{
		countThreshold:      countThreshold,
		words:               make(map[string]int64),
		belowThresholdWords: make(map[string]int64),
		bigrams:             make(map[string]int64),
		bigramCountMin:      maxInt64Value,
		n:                   corpusN,
	}
}

// ObserveUnigram adds addCount to word's cumulative frequency, promoting it
// from below-threshold staging to the live index once the cumulative count
// reaches countThreshold. It returns true exactly when this call caused word
// to newly appear in the live index — the signal DeleteIndex uses to decide
// whether to (re)generate delete-variants. A word already in the live index
// never triggers a second promotion, matching the invariant that
// frequency-only updates to an already-indexed word must not regenerate
// deletes.
func (fs *FrequencyStore) ObserveUnigram(word string, addCount int64) bool {
	if addCount <= 0 {
		if fs.countThreshold > 0 {
			return false
		}
		addCount = 0
	}

	if fs.countThreshold <= 1 {
		if prev, found := fs.words[word]; found {
			fs.words[word] = saturatingAddInt64(prev, addCount)
			return false
		}
		if addCount < fs.countThreshold {
			fs.belowThresholdWords[word] = addCount
			return false
		}
		fs.words[word] = addCount
		fs.updateMaxWordLength(word)
		return true
	}

	if prev, found := fs.belowThresholdWords[word]; found {
		total := saturatingAddInt64(prev, addCount)
		if total >= fs.countThreshold {
			delete(fs.belowThresholdWords, word)
			fs.words[word] = total
			fs.updateMaxWordLength(word)
			return true
		}
		fs.belowThresholdWords[word] = total
		return false
	}
	if prev, found := fs.words[word]; found {
		fs.words[word] = saturatingAddInt64(prev, addCount)
		return false
	}
	if addCount < fs.countThreshold {
		fs.belowThresholdWords[word] = addCount
		return false
	}
	fs.words[word] = addCount
	fs.updateMaxWordLength(word)
	return true
}

func (fs *FrequencyStore) updateMaxWordLength(word string) {
	if l := graphemeLen(word); l > fs.maxWordLength {
		fs.maxWordLength = l
	}
}

// ObserveBigram sets the frequency for a "w1 w2" phrase and updates the
// smoothing floor.
func (fs *FrequencyStore) ObserveBigram(phrase string, count int64) {
	fs.bigrams[phrase] = count
	fs.bigramCountMin = minInt64(fs.bigramCountMin, count)
}

// Count returns word's current frequency and whether it is indexed (as
// opposed to staged below threshold or entirely unseen).
func (fs *FrequencyStore) Count(word string) (int64, bool) {
	c, ok := fs.words[word]
	return c, ok
}

// IngestUnigramLine parses a "<word><sep><count>" line and applies it via
// ObserveUnigram. A line with fewer than two separated fields contributes
// nothing and reports ok == false. A count that does not parse as a decimal
// integer is taken as 0 (matching §6/§7's malformed-line handling) and the
// word is still observed with that count.
func (fs *FrequencyStore) IngestUnigramLine(line, sep string) (word string, promoted bool, ok bool) {
	fields := splitLine(line, sep)
	if len(fields) < 2 {
		return "", false, false
	}
	count, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		count = 0
	}
	word = fields[0]
	return word, fs.ObserveUnigram(word, count), true
}

// IngestBigramLine parses a "<w1><sep><w2><sep><count>" line and applies it
// via ObserveBigram.
func (fs *FrequencyStore) IngestBigramLine(line, sep string) (phrase string, ok bool) {
	fields := splitLine(line, sep)
	if len(fields) < 3 {
		return "", false
	}
	count, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		count = 0
	}
	phrase = fields[0] + " " + fields[1]
	fs.ObserveBigram(phrase, count)
	return phrase, true
}

func splitLine(line, sep string) []string {
	if sep == "" {
		return strings.Fields(line)
	}
	return strings.Split(line, sep)
}
