// Package symspellcfg loads typed engine configuration from YAML, the way
// the rest of this module's ambient stack prefers over ad-hoc flag parsing.
package symspellcfg

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of engine construction parameters plus the
// logging and segmentation defaults an embedding host would otherwise wire
// by hand.
type Config struct {
	MaxEditDistance int   `yaml:"max_edit_distance"`
	PrefixLength    int   `yaml:"prefix_length"`
	CountThreshold  int64 `yaml:"count_threshold"`

	Segmentation struct {
		MaxWordLength int `yaml:"max_word_length"`
	} `yaml:"segmentation"`

	Logging struct {
		Level    string `yaml:"level"`
		FilePath string `yaml:"file_path"`
	} `yaml:"logging"`

	Dictionary struct {
		UnigramPath string `yaml:"unigram_path"`
		BigramPath  string `yaml:"bigram_path"`
		Separator   string `yaml:"separator"`
	} `yaml:"dictionary"`
}

// Default returns the classic SymSpell parameterization used throughout the
// engine's own test scenarios.
func Default() Config {
	c := Config{
		MaxEditDistance: 2,
		PrefixLength:    7,
		CountThreshold:  1,
	}
	c.Dictionary.Separator = " "
	c.Logging.Level = "info"
	return c
}

// Load reads and parses a YAML config file at path, filling any unset field
// from Default().
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("symspellcfg: opening %q: %w", path, err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader parses YAML config from r.
func LoadFromReader(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("symspellcfg: decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg's parameters satisfy the engine's
// construction invariants.
func (c Config) Validate() error {
	if c.MaxEditDistance < 0 {
		return fmt.Errorf("symspellcfg: max_edit_distance must be >= 0")
	}
	if c.PrefixLength <= c.MaxEditDistance {
		return fmt.Errorf("symspellcfg: prefix_length must be > max_edit_distance")
	}
	if c.CountThreshold < 0 {
		return fmt.Errorf("symspellcfg: count_threshold must be >= 0")
	}
	return nil
}
