package schema

import (
	"encoding/json"

	"github.com/KirkDiggler/talent-api/internal/errors"
)

// ToRaw renders a typed value back into the loosely typed form a client
// submits. Parsing the result yields the value again.
func ToRaw(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal value")
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal value")
	}
	return raw, nil
}

// Merge returns a copy of base with changes applied on top. A nil value in
// changes removes the key.
func Merge(base, changes map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(changes))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range changes {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}
