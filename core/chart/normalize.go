package chart

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/baobaozi233/lifekline/core/extract"
)

// chartAliases are the field names models have been observed to use for the
// chart series, in resolution priority order. Probed at the top level first,
// then one level down under "result".
var chartAliases = []string{"chartData", "chartPoints", "chart", "points", "kline", "chart_data", "chart_points"}

// chartWrapAliases is the reduced alias set used by the last-resort probe,
// which also accepts a bare mapping and wraps it as a one-element series.
var chartWrapAliases = []string{"chart", "points", "kline"}

// Normalize maps a parsed value onto the canonical result shape: it resolves
// chart field aliases, recovers string-encoded sub-documents, coerces scalar
// types and splits string-encoded pillar labels. Absent or unconvertible
// data is replaced by documented fallbacks or left unset; Normalize itself
// never fails. Non-mapping input is returned unchanged, deferring the
// rejection to Validate.
//
// The input is not mutated: pipeline attempts stay independent.
func Normalize(v any) any {
	root, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := cloneMap(root)

	chartVal, found := probeAliases(out, chartAliases)

	// Some models double-encode: the chart arrives as a JSON string inside
	// the outer object. Run the extraction ladder over the string; if that
	// fails too, the chart is simply treated as absent.
	if s, isText := chartVal.(string); found && isText {
		if recovered, err := extract.Decode(s); err == nil {
			chartVal = recovered
		} else {
			chartVal, found = nil, false
		}
	}

	var points []any
	if seq, isSeq := chartVal.([]any); found && isSeq {
		points = normalizePoints(seq)
	}

	if points == nil {
		if alt, ok := probeAliases(out, chartWrapAliases); ok {
			switch t := alt.(type) {
			case []any:
				points = normalizePoints(t)
			case map[string]any:
				points = normalizePoints([]any{t})
			}
		}
	}
	if points != nil {
		out["chartData"] = points
	}

	analysisVal, ok := out["analysis"]
	if !ok {
		// Accept the whole payload being nested under "result".
		if nested, isMap := out["result"].(map[string]any); isMap {
			analysisVal, ok = nested["analysis"]
		}
	}
	if analysis, isMap := analysisVal.(map[string]any); ok && isMap {
		na := cloneMap(analysis)
		if bazi, present := na["bazi"]; present {
			na["bazi"] = normalizeBazi(bazi)
		}
		out["analysis"] = na
	}

	return out
}

// probeAliases returns the first alias bound to a non-nil value, probing the
// top level of m and then one level down under "result".
func probeAliases(m map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := m[key]; ok && v != nil {
			return v, true
		}
	}
	if nested, ok := m["result"].(map[string]any); ok {
		for _, key := range aliases {
			if v, ok := nested[key]; ok && v != nil {
				return v, true
			}
		}
	}
	return nil, false
}

// normalizePoints coerces each chart element into a well-typed point map.
// String elements get one strict-parse attempt first (models sometimes emit
// each point as its own JSON string); anything still not a mapping is kept
// as-is and left for the validator to judge.
func normalizePoints(seq []any) []any {
	out := make([]any, 0, len(seq))
	currentYear := time.Now().Year()

	for _, el := range seq {
		if s, ok := el.(string); ok {
			var parsed any
			if err := json.Unmarshal([]byte(s), &parsed); err == nil {
				el = parsed
			}
		}
		m, ok := el.(map[string]any)
		if !ok {
			out = append(out, el)
			continue
		}

		np := cloneMap(m)

		open, hasOpen := toNumber(m["open"])
		closeV, hasClose := toNumber(m["close"])

		// high/low fall back to open, then close, then zero, so a partly
		// numeric point still renders as a flat candlestick instead of
		// being dropped.
		levelFallback := 0.0
		if hasOpen {
			levelFallback = open
		} else if hasClose {
			levelFallback = closeV
		}

		np["age"] = int(numberOr(m["age"], 0))
		np["year"] = int(numberOr(m["year"], float64(currentYear)))
		np["open"] = numberOr(m["open"], 0)
		np["close"] = numberOr(m["close"], 0)
		np["high"] = numberOr(m["high"], levelFallback)
		np["low"] = numberOr(m["low"], levelFallback)
		np["score"] = numberOr(m["score"], 0)
		np["ganZhi"] = textOr(m["ganZhi"], "")
		np["daYun"] = textOr(m["daYun"], "")
		np["reason"] = textOr(m["reason"], "")

		out = append(out, np)
	}

	return out
}

// normalizeBazi coerces the pillar labels into a sequence. A single string
// is split on ASCII commas, full-width commas and whitespace; any other
// non-sequence value is wrapped as a one-element sequence.
func normalizeBazi(v any) any {
	switch t := v.(type) {
	case []any:
		return t
	case string:
		fields := strings.FieldsFunc(t, func(r rune) bool {
			return r == ',' || r == '，' || unicode.IsSpace(r)
		})
		labels := make([]any, 0, len(fields))
		for _, f := range fields {
			if f = strings.TrimSpace(f); f != "" {
				labels = append(labels, f)
			}
		}
		return labels
	default:
		return []any{v}
	}
}

// toNumber converts a scalar to a finite float64. Strings are parsed after
// trimming; NaN and infinities are rejected so they can never leak into the
// canonical result.
func toNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func numberOr(v any, fallback float64) float64 {
	if f, ok := toNumber(v); ok {
		return f
	}
	return fallback
}

func textOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
