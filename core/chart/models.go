package chart

import (
	"encoding/json"
	"fmt"
)

// Point is one entry of the life trajectory series, rendered downstream as a
// single candlestick: open/close/high/low are fortune levels for the period,
// score is the model's overall rating and reason its free-text explanation.
type Point struct {
	Age    int     `json:"age"`
	Year   int     `json:"year"`
	GanZhi string  `json:"ganZhi"` // stem-branch label for the year
	DaYun  string  `json:"daYun"`  // major cycle (decade period) label
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// Analysis holds the per-category readings plus the four pillar labels.
type Analysis struct {
	Bazi          []string `json:"bazi"` // year/month/day/hour pillars
	Summary       string   `json:"summary"`
	SummaryScore  float64  `json:"summaryScore"`
	Industry      string   `json:"industry"`
	IndustryScore float64  `json:"industryScore"`
	Wealth        string   `json:"wealth"`
	WealthScore   float64  `json:"wealthScore"`
	Marriage      string   `json:"marriage"`
	MarriageScore float64  `json:"marriageScore"`
	Health        string   `json:"health"`
	HealthScore   float64  `json:"healthScore"`
	Family        string   `json:"family"`
	FamilyScore   float64  `json:"familyScore"`
}

// Result is the canonical pipeline output. A Result is only ever returned
// whole: callers never see a partially populated value.
type Result struct {
	ChartData []Point  `json:"chartData"`
	Analysis  Analysis `json:"analysis"`
}

// FromNormalized materializes a normalized, validated value into a typed
// Result by re-encoding it as JSON. Decode errors here mean the value passed
// shape validation but still holds field types the canonical model cannot
// hold (e.g. a numeric summary); they surface as a *SchemaError so callers
// get the same diagnostic treatment as a validation rejection.
func FromNormalized(v any) (*Result, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode normalized value: %w", err)
	}
	var result Result
	if err := json.Unmarshal(encoded, &result); err != nil {
		return nil, &SchemaError{
			Reason:   fmt.Sprintf("normalized value does not fit canonical shape: %v", err),
			Snapshot: Snapshot{NormalizedKeys: topLevelKeys(v)},
		}
	}
	return &result, nil
}
