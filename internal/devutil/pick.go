package devutil

import (
	"encoding/json"
	"strings"
)

// Pick converts v to a generic map through its JSON form and keeps only the
// requested keys. Keys may be dotted paths into nested objects
// ("course.pricing_strategy.launch_price"); the result is keyed by the full
// path. Missing keys are left out.
func Pick(v any, keys ...string) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return map[string]any{}
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if val, ok := lookup(m, k); ok {
			out[k] = val
		}
	}
	return out
}

func lookup(m map[string]any, path string) (any, bool) {
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}
