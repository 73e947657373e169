package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProviderMetaDefensive(t *testing.T) {
	// garbage and missing payloads never error, they just yield zero values
	for _, raw := range []string{"", "not json at all", "[]", `"just a string"`, "{}"} {
		meta := ParseProviderMeta([]byte(raw))
		assert.Equal(t, 0.0, meta.DurationSec, "payload %q", raw)
		assert.Empty(t, meta.Words, "payload %q", raw)
	}
}

func TestParseProviderMetaDuration(t *testing.T) {
	assert.Equal(t, 42.5, ParseProviderMeta([]byte(`{"duration_sec": 42.5}`)).DurationSec)
	assert.Equal(t, 42.5, ParseProviderMeta([]byte(`{"duration": 42.5}`)).DurationSec)
	assert.Equal(t, 42.5, ParseProviderMeta([]byte(`{"metadata": {"duration": 42.5}}`)).DurationSec)

	// wrong type is ignored, not an error
	assert.Equal(t, 0.0, ParseProviderMeta([]byte(`{"duration": "fast"}`)).DurationSec)
}

func TestParseProviderMetaWords(t *testing.T) {
	raw := []byte(`{
		"duration_sec": 3.2,
		"words": [
			{"word": "hello", "start": 0.1, "end": 0.4},
			{"word": "world", "start": 0.5, "end": 0.9},
			{"start": 1.0, "end": 1.2},
			"not an object"
		]
	}`)
	meta := ParseProviderMeta(raw)

	require.Len(t, meta.Words, 2, "entries without a word string are skipped")
	assert.Equal(t, "hello", meta.Words[0].Word)
	assert.Equal(t, 0.1, meta.Words[0].Start)
	assert.Equal(t, 0.9, meta.Words[1].End)
}
