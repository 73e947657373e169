package transcription

import (
	"encoding/json"

	"call-insights-go/internal/types"
)

// ParseProviderMeta reads duration and per-word timings out of the opaque
// provider payload. Every lookup is defensive: a missing, extra, or
// malformed field yields zero values, never an error.
func ParseProviderMeta(raw json.RawMessage) types.ProviderMeta {
	var meta types.ProviderMeta
	if len(raw) == 0 {
		return meta
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return meta
	}

	meta.DurationSec = asFloat(obj["duration_sec"])
	if meta.DurationSec == 0 {
		meta.DurationSec = asFloat(obj["duration"])
	}
	if meta.DurationSec == 0 {
		if md, ok := obj["metadata"].(map[string]any); ok {
			meta.DurationSec = asFloat(md["duration"])
		}
	}

	if words, ok := obj["words"].([]any); ok {
		for _, w := range words {
			wo, ok := w.(map[string]any)
			if !ok {
				continue
			}
			word, _ := wo["word"].(string)
			if word == "" {
				continue
			}
			meta.Words = append(meta.Words, types.WordTiming{
				Word:  word,
				Start: asFloat(wo["start"]),
				End:   asFloat(wo["end"]),
			})
		}
	}

	return meta
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}
