package symspellcfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromReaderAppliesDefaultsForOmittedFields(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(`max_edit_distance: 3`))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxEditDistance)
	require.Equal(t, 7, cfg.PrefixLength)
}

func TestLoadFromReaderRejectsInvalidPrefixLength(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("max_edit_distance: 5\nprefix_length: 3\n"))
	require.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
