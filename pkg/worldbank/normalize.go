package worldbank

import (
	"github.com/databoard/databoard/pkg/jsonutil"
)

// Normalize turns a raw API response body into an ordered slice of
// observations. The expected shape is a two-element array whose second
// element lists observation objects:
//
//	[ {metadata...}, [ {"date": "2020", "value": 100, ...}, ... ] ]
//
// Normalize is a total function: any structural mismatch (body that is not
// an array, missing second element, non-object entries) yields an empty
// slice, never an error. Only records with a null value are dropped;
// upstream order is preserved. The result is truncated to the clamped
// query limit.
//
// Country and indicator labels fall back to the requested codes when the
// nested label objects are absent.
func Normalize(body []byte, q Query) []Observation {
	var envelope []any
	if err := jsonutil.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	if len(envelope) < 2 {
		return nil
	}
	entries, ok := envelope[1].([]any)
	if !ok {
		return nil
	}

	limit := ClampLimit(q.Limit)
	out := make([]Observation, 0, limit)
	for _, entry := range entries {
		if len(out) >= limit {
			break
		}
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		value, ok := record["value"].(float64)
		if !ok {
			// Null or non-numeric value: the observation carries no data point.
			continue
		}
		year, _ := record["date"].(string)

		out = append(out, Observation{
			Year:      year,
			Value:     value,
			Country:   nestedLabel(record, "country", q.Country),
			Indicator: nestedLabel(record, "indicator", q.Indicator),
		})
	}
	return out
}

// nestedLabel extracts record[key].value, falling back when absent.
func nestedLabel(record map[string]any, key, fallback string) string {
	nested, ok := record[key].(map[string]any)
	if !ok {
		return fallback
	}
	label, ok := nested["value"].(string)
	if !ok || label == "" {
		return fallback
	}
	return label
}
