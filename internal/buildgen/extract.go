package buildgen

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

var fencedJSON = regexp.MustCompile("(?s)```json[ \t]*\r?\n(.*?)\r?\n?```")

// ParseError reports model output that could not be decoded. Raw holds the
// complete text for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractJSON decodes the JSON object embedded in free-form model output into
// target. Candidates are tried in order: a fenced json block, the span from
// the first '{' to the last '}', then the whole text. The first candidate that
// decodes wins.
func ExtractJSON(text string, target any) error {
	var lastErr error
	for _, candidate := range jsonCandidates(text) {
		if !json.Valid([]byte(candidate)) {
			lastErr = errors.New("not valid JSON")
			continue
		}
		err := json.Unmarshal([]byte(candidate), target)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("empty response")
	}
	return &ParseError{Raw: text, Err: lastErr}
}

func jsonCandidates(text string) []string {
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		for _, seen := range out {
			if seen == s {
				return
			}
		}
		out = append(out, s)
	}

	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		add(m[1])
	}
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			add(text[start : end+1])
		}
	}
	add(text)
	return out
}
