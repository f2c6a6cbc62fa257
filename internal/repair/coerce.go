package repair

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/resume-critic/internal/patterns"
	"github.com/jonathan/resume-critic/internal/types"
)

// asObject converts a candidate of any shape into a generic JSON object.
// Structs and maps round-trip through encoding/json so one coercion path
// handles every producer; strings are parsed as JSON documents. Anything
// that does not decode to an object yields nil.
func asObject(candidate any) map[string]any {
	switch v := candidate.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil
		}
		return m
	case []byte:
		var m map[string]any
		if err := json.Unmarshal(v, &m); err != nil {
			return nil
		}
		return m
	default:
		data, err := json.Marshal(candidate)
		if err != nil {
			return nil
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return nil
		}
		return m
	}
}

// lookup returns the first present key from obj, or nil.
func lookup(obj map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := obj[key]; ok {
			return v
		}
	}
	return nil
}

// coerceScore coerces a value to a number clamped to [0,100], falling back
// to def when the value is absent or not numeric.
func coerceScore(raw any, def float64) float64 {
	var score float64
	switch v := raw.(type) {
	case float64:
		score = v
	case int:
		score = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return def
		}
		score = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		score = f
	default:
		return def
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// coerceString returns a trimmed string, or empty for anything that is not
// a string.
func coerceString(raw any) string {
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// coerceStringList keeps the string elements of a candidate list, trimmed,
// with empties dropped.
func coerceStringList(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		// A lone string becomes a single-element list rather than vanishing.
		if s := coerceString(raw); s != "" {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// neutralizeJobPhrases rewrites job-specific phrasing to a neutral phrase.
// Used when no job text was supplied but the candidate text references one;
// rewriting keeps the sentence whole where deletion would leave a fragment.
func neutralizeJobPhrases(text string) string {
	for _, re := range patterns.Default().JobPhrases {
		text = re.ReplaceAllString(text, neutralPhrase)
	}
	return text
}

// statusOrDefault is kept close to the coercers for the same reason they
// exist: external producers routinely invent status strings.
func statusOrDefault(s string) string {
	if types.ValidStatus(s) {
		return s
	}
	return types.StatusWarning
}
