// Package dictionary is the thin, out-of-core-scope line reader described
// in the engine's purpose and scope: its only job is feeding lines into an
// Engine's ingestion methods. It carries no third-party dependency because
// nothing in the example corpus offers a better fit for a two-column text
// scanner than bufio.Scanner — see DESIGN.md.
package dictionary

import (
	"fmt"
	"os"

	"github.com/gospellx/symspell/symspell"
)

// LoadUnigrams opens path and ingests it into engine as unigram lines.
func LoadUnigrams(engine *symspell.Engine, path, separator string) error {
	if err := engine.LoadDictionary(path, 0, 1, separator); err != nil {
		return fmt.Errorf("dictionary: loading unigrams from %q: %w", path, err)
	}
	return nil
}

// LoadBigrams opens path and ingests it into engine as bigram lines.
func LoadBigrams(engine *symspell.Engine, path, separator string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dictionary: opening bigrams %q: %w", path, err)
	}
	defer f.Close()
	if err := engine.LoadBigramsFromReader(f, separator); err != nil {
		return fmt.Errorf("dictionary: loading bigrams from %q: %w", path, err)
	}
	return nil
}
