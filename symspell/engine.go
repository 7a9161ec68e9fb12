package symspell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Verbosity controls how many suggestions Lookup keeps and when it tightens
// its distance bound.
type Verbosity int

const (
	// Top keeps the single best suggestion (highest count among the
	// smallest distance found), tightening the bound as better candidates
	// appear.
	Top Verbosity = iota
	// Closest keeps every suggestion sharing the smallest distance found,
	// tightening the bound as a strictly smaller distance appears.
	Closest
	// All keeps every survivor within the original maxEditDistance; the
	// bound is never tightened.
	All
)

const (
	defaultPrefixLength   = 7
	defaultCountThreshold = 1
)

// Engine is the built, queryable SymSpell index: a FrequencyStore plus a
// DeleteIndex sharing the same (maxEditDistance, prefixLength) parameters.
// It is mutable only during a build phase; query methods treat it as
// read-only (see spec §5).
type Engine struct {
	maxEditDistance int
	prefixLength    int

	frequency *FrequencyStore
	deletes   *DeleteIndex
	distance  *EditDistance

	log     *zap.Logger
	BuildID uuid.UUID
}

// NewEngine constructs an empty engine. maxEditDistance bounds both the
// delete-index construction depth and any query's own maxEditDistance.
// prefixLength must exceed maxEditDistance. log may be nil, in which case a
// no-op logger is used.
func NewEngine(maxEditDistance, prefixLength int, countThreshold int64, log *zap.Logger) (*Engine, error) {
	if maxEditDistance < 0 {
		return nil, fmt.Errorf("%w: maxEditDistance must be >= 0", ErrInvalidConfig)
	}
	if prefixLength < 1 || prefixLength <= maxEditDistance {
		return nil, fmt.Errorf("%w: prefixLength must be > 0 and > maxEditDistance", ErrInvalidConfig)
	}
	if countThreshold < 0 {
		return nil, fmt.Errorf("%w: countThreshold must be >= 0", ErrInvalidConfig)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		maxEditDistance: maxEditDistance,
		prefixLength:    prefixLength,
		frequency:       NewFrequencyStore(countThreshold),
		deletes:         NewDeleteIndex(prefixLength, maxEditDistance),
		distance:        NewEditDistance(),
		log:             log,
		BuildID:         uuid.New(),
	}, nil
}

// MaxEditDistance returns the edit-distance depth the delete index was built
// with.
func (e *Engine) MaxEditDistance() int { return e.maxEditDistance }

// PrefixLength returns the prefix length words are truncated to before
// delete-variants are generated.
func (e *Engine) PrefixLength() int { return e.prefixLength }

// MaxWordLength returns the longest indexed word length in graphemes.
func (e *Engine) MaxWordLength() int { return e.frequency.maxWordLength }

// CreateDictionaryEntry adds or updates a dictionary entry. If staging is
// non-nil the generated delete-variants are recorded there instead of being
// merged into the live index immediately, for use during bulk loads
// followed by CommitStaged. It returns true iff the entry was newly
// promoted into the live word index by this call.
func (e *Engine) CreateDictionaryEntry(word string, count int64, staging *SuggestionStage) bool {
	promoted := e.frequency.ObserveUnigram(word, count)
	if !promoted {
		return false
	}
	if staging != nil {
		e.deletes.StageInto(word, staging)
	} else {
		e.deletes.Add(word)
	}
	return true
}

// CommitStaged merges a staging area populated by bulk CreateDictionaryEntry
// calls into the live delete index.
func (e *Engine) CommitStaged(staging *SuggestionStage) {
	e.deletes.CommitStaged(staging)
}

// LoadDictionary reads a unigram dictionary file and ingests every line.
func (e *Engine) LoadDictionary(path string, termIndex, countIndex int, sep string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("symspell: opening dictionary %q: %w", path, err)
	}
	defer f.Close()
	return e.LoadDictionaryFromReader(f, termIndex, countIndex, sep)
}

// LoadDictionaryFromReader ingests unigram lines from r, staging
// delete-variant generation and committing it once at the end so a large
// bulk load touches the live index only once.
func (e *Engine) LoadDictionaryFromReader(r io.Reader, termIndex, countIndex int, sep string) error {
	buildID := uuid.New()
	e.BuildID = buildID
	staging := NewSuggestionStage(16384)
	scanner := bufio.NewScanner(r)
	var lines, ingested int
	for scanner.Scan() {
		lines++
		fields := splitLine(scanner.Text(), sep)
		if len(fields) < 2 {
			continue
		}
		if termIndex >= len(fields) || countIndex >= len(fields) {
			continue
		}
		word := fields[termIndex]
		count, err := parseCount(fields[countIndex])
		if err != nil {
			continue
		}
		if e.CreateDictionaryEntry(word, count, staging) {
			ingested++
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("symspell: scanning dictionary: %w", err)
	}
	e.CommitStaged(staging)
	e.log.Debug("dictionary load complete",
		zap.String("build_id", buildID.String()),
		zap.Int("lines", lines),
		zap.Int("entries_promoted", ingested),
		zap.Int("staged_delete_hashes", staging.DeleteCount()),
	)
	return nil
}

// LoadBigramsFromReader ingests bigram lines from r.
func (e *Engine) LoadBigramsFromReader(r io.Reader, sep string) error {
	scanner := bufio.NewScanner(r)
	var lines int
	for scanner.Scan() {
		lines++
		e.frequency.IngestBigramLine(scanner.Text(), sep)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("symspell: scanning bigrams: %w", err)
	}
	e.log.Debug("bigram load complete",
		zap.String("build_id", e.BuildID.String()),
		zap.Int("lines", lines),
	)
	return nil
}

func parseCount(s string) (int64, error) {
	var n int64
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}
