package render

import (
	"encoding/json"
	"math"

	"github.com/mako10k/t/internal/value"
)

// JSON renders v as JSON: Text and Number map to their natural JSON
// scalar, and Array maps to a JSON array of its elements recursively.
// The Level tag has no JSON representation and is dropped; a consumer
// reading JSON output never needs to know the element granularity.
//
// Numbers that aren't finite (NaN, +/-Inf) have no JSON representation,
// so they're rendered as their FormatNumber string instead of a bare
// number literal, matching the text contract's own handling of them.
func JSON(v value.Value) ([]byte, error) {
	return json.Marshal(toJSONValue(v))
}

func toJSONValue(v value.Value) interface{} {
	if text, ok := v.AsText(); ok {
		return text
	}
	if n, ok := v.AsNumber(); ok {
		if jn, ok := jsonNumber(n); ok {
			return jn
		}
		return value.FormatNumber(n)
	}
	arr, _ := v.AsArray()
	out := make([]interface{}, arr.Len())
	for i, e := range arr.Elements {
		out[i] = toJSONValue(e)
	}
	return out
}

func jsonNumber(n float64) (float64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
