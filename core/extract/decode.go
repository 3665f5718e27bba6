package extract

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/baobaozi233/lifekline/internal/utils"
)

// Sentinel markers the prompt asks the model to wrap its JSON payload in.
// The prompt builder embeds the same literals, so extraction and prompting
// can never drift apart.
const (
	MarkerStart = "###JSON_START###"
	MarkerEnd   = "###JSON_END###"
)

// RawPreviewLimit bounds how much of the original completion text is carried
// inside diagnostics. Enough to reproduce prompt drift, small enough to log.
const RawPreviewLimit = 2000

// FailureKind classifies why Decode gave up.
type FailureKind string

const (
	// FailureExtraction means no candidate JSON-like span was found by any
	// strategy: the completion contains no brackets and no markers.
	FailureExtraction FailureKind = "extraction"

	// FailureSyntax means at least one candidate span was found but none
	// survived strict parsing even after all applicable repairs.
	FailureSyntax FailureKind = "syntax"
)

// ParseError is returned by Decode when every strategy has been exhausted.
// RawPreview holds the first RawPreviewLimit characters of the completion so
// the failure can be diagnosed without re-querying the model.
type ParseError struct {
	Kind       FailureKind
	RawPreview string
	Err        error // last strict-parse or repair error seen
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s failure: no strategy produced valid JSON: %v (raw: %s)", e.Kind, e.Err, e.RawPreview)
}

func (e *ParseError) Unwrap() error { return e.Err }

// strictParse parses s under the standard JSON grammar with no leniency.
// Trailing non-whitespace after the value is an error.
func strictParse(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Decode recovers a single JSON value from raw completion text. Strategies
// are tried in order of decreasing strictness, short-circuiting on the first
// successful strict parse:
//
//  1. the full text, unmodified
//  2. the span between MarkerStart/MarkerEnd, with trailing commas stripped
//  3. the first balanced {...}/[...] block, commas stripped, then
//     additionally with single quotes normalized
//  4. the greedy first-{ to last-} span, same repair ladder
//  5. the greedy first-[ to last-] span, same repair ladder
//  6. last resort: jsonrepair over the best span found
//
// Attempts are independent; a failed attempt never affects a later one. On
// exhaustion Decode returns a *ParseError whose Kind distinguishes "nothing
// JSON-like found" from "found but unparseable".
func Decode(raw string) (any, error) {
	if v, err := strictParse(raw); err == nil {
		return v, nil
	}

	candidates := 0
	var lastErr error

	attempt := func(span string, withQuoteRepair bool) (any, bool) {
		candidates++
		repaired := StripTrailingCommas(span)
		v, err := strictParse(repaired)
		if err == nil {
			return v, true
		}
		lastErr = err
		if withQuoteRepair {
			v, err = strictParse(NormalizeQuotes(repaired))
			if err == nil {
				return v, true
			}
			lastErr = err
		}
		return nil, false
	}

	if span, ok := BetweenMarkers(raw, MarkerStart, MarkerEnd); ok {
		if v, ok := attempt(span, false); ok {
			return v, nil
		}
	}

	// Remember the best structural span for the jsonrepair fallback below.
	var bestSpan string
	haveSpan := false

	if span, ok := BalancedBlock(raw); ok {
		bestSpan, haveSpan = span, true
		if v, ok := attempt(span, true); ok {
			return v, nil
		}
	}

	if span, ok := greedySpan(raw, '{', '}'); ok {
		if !haveSpan {
			bestSpan, haveSpan = span, true
		}
		if v, ok := attempt(span, true); ok {
			return v, nil
		}
	}

	if span, ok := greedySpan(raw, '[', ']'); ok {
		if !haveSpan {
			bestSpan, haveSpan = span, true
		}
		if v, ok := attempt(span, true); ok {
			return v, nil
		}
	}

	// Heavyweight repair runs strictly last and only on a structural span,
	// never on bare prose: jsonrepair would happily turn arbitrary text
	// into a JSON string, masking a genuine extraction failure.
	if haveSpan {
		repaired, err := jsonrepair.JSONRepair(bestSpan)
		if err == nil {
			if v, parseErr := strictParse(repaired); parseErr == nil {
				return v, nil
			} else {
				lastErr = parseErr
			}
		} else {
			lastErr = err
		}
	}

	kind := FailureSyntax
	if candidates == 0 {
		kind = FailureExtraction
		if lastErr == nil {
			lastErr = fmt.Errorf("no JSON-like span in completion text")
		}
	}
	return nil, &ParseError{
		Kind:       kind,
		RawPreview: utils.TruncateString(raw, RawPreviewLimit),
		Err:        lastErr,
	}
}
