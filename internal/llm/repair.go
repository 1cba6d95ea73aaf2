package llm

import (
	"bytes"
	"encoding/json"
	"regexp"
)

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJSON recovers a JSON object from free-form model output.
//
// Two stages: a strict parse of the full text first; on failure, the
// substring between the first '{' and the last '}' is taken, trailing
// commas before '}' or ']' are stripped, and the parse is retried.
// Returns (nil, false) when no JSON object can be recovered.
func ExtractJSON(raw []byte) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed), true
	}

	start := bytes.IndexByte(trimmed, '{')
	end := bytes.LastIndexByte(trimmed, '}')
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}

	candidate := trailingCommaRe.ReplaceAll(trimmed[start:end+1], []byte("$1"))
	if !json.Valid(candidate) {
		return nil, false
	}
	return json.RawMessage(candidate), true
}

// extractStructured runs ExtractJSON and wraps failures as
// ErrInvalidResponse for the provider paths.
func extractStructured(raw []byte) (json.RawMessage, error) {
	content, ok := ExtractJSON(raw)
	if !ok {
		return nil, &ErrInvalidResponse{
			Content: json.RawMessage(raw),
			Err:     errNoJSONObject,
		}
	}
	return content, nil
}

var errNoJSONObject = &noJSONError{}

type noJSONError struct{}

func (*noJSONError) Error() string { return "no JSON object found in output" }
