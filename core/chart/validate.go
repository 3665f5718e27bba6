package chart

import (
	"fmt"
	"sort"

	"github.com/baobaozi233/lifekline/core/extract"
	"github.com/baobaozi233/lifekline/internal/utils"
)

// DefaultMinBaziLabels is the minimum pillar label count a result must carry:
// one label per pillar (year, month, day, hour). Earlier revisions of the
// pipeline accepted a single label; the stricter default is deliberate, and
// callers needing the looser behavior set Validator.MinBaziLabels themselves.
const DefaultMinBaziLabels = 4

// Snapshot captures the state of a rejected value: enough to diagnose prompt
// or schema drift from logs alone, without re-issuing the model request.
type Snapshot struct {
	RawPreview       string   `json:"raw_preview,omitempty"`
	ParsedKeys       []string `json:"parsed_keys"`
	NormalizedKeys   []string `json:"normalized_keys"`
	ChartIsSequence  bool     `json:"chart_is_sequence"`
	ChartLen         int      `json:"chart_len"`
	AnalysisType     string   `json:"analysis_type"`
	AnalysisBaziLen  int      `json:"analysis_bazi_len"`
	AnalysisHasBazi  bool     `json:"analysis_has_bazi"`
	MinBaziRequested int      `json:"min_bazi_requested"`
}

// SchemaError reports that a parsed value failed minimum shape validation.
type SchemaError struct {
	Reason   string
	Snapshot Snapshot
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema failure: %s (snapshot: %s)", e.Reason, utils.ToString(e.Snapshot))
}

// Validator checks a normalized value against the minimum canonical shape.
// The zero value applies DefaultMinBaziLabels.
type Validator struct {
	// MinBaziLabels overrides the required pillar label count when > 0.
	MinBaziLabels int
}

// Validate accepts the normalized value iff chartData is a non-empty
// sequence, analysis is a mapping and analysis.bazi is a sequence of at
// least MinBaziLabels entries. raw is the original completion text and
// parsed the pre-normalization value; both feed the diagnostic snapshot on
// rejection and are otherwise untouched.
func (v Validator) Validate(raw string, parsed, normalized any) error {
	required := v.MinBaziLabels
	if required <= 0 {
		required = DefaultMinBaziLabels
	}

	snap := Snapshot{
		RawPreview:       utils.TruncateString(raw, extract.RawPreviewLimit),
		ParsedKeys:       topLevelKeys(parsed),
		NormalizedKeys:   topLevelKeys(normalized),
		AnalysisType:     "missing",
		MinBaziRequested: required,
	}

	root, ok := normalized.(map[string]any)
	if !ok {
		return &SchemaError{Reason: fmt.Sprintf("top-level value is %T, not a mapping", normalized), Snapshot: snap}
	}

	chartVal, ok := root["chartData"]
	seq, isSeq := chartVal.([]any)
	snap.ChartIsSequence = isSeq
	snap.ChartLen = len(seq)
	if !ok || !isSeq {
		return &SchemaError{Reason: "chartData missing or not a sequence", Snapshot: snap}
	}
	if len(seq) == 0 {
		return &SchemaError{Reason: "chartData is empty", Snapshot: snap}
	}

	analysis, isMap := root["analysis"].(map[string]any)
	if !isMap {
		snap.AnalysisType = fmt.Sprintf("%T", root["analysis"])
		return &SchemaError{Reason: "analysis missing or not a mapping", Snapshot: snap}
	}
	snap.AnalysisType = "mapping"

	baziVal, hasBazi := analysis["bazi"]
	snap.AnalysisHasBazi = hasBazi
	bazi, baziIsSeq := baziVal.([]any)
	snap.AnalysisBaziLen = len(bazi)
	if !hasBazi || !baziIsSeq {
		return &SchemaError{Reason: "analysis.bazi missing or not a sequence", Snapshot: snap}
	}
	if len(bazi) < required {
		return &SchemaError{
			Reason:   fmt.Sprintf("analysis.bazi has %d labels, need at least %d", len(bazi), required),
			Snapshot: snap,
		}
	}

	return nil
}

// topLevelKeys returns the sorted key set of v when it is a mapping, nil
// otherwise.
func topLevelKeys(v any) []string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
