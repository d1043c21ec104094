package talents

import (
	"encoding/json"
	"fmt"
)

func peekKind(data []byte) (string, error) {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", fmt.Errorf("failed to read kind: %w", err)
	}
	if probe.Kind == "" {
		return "", fmt.Errorf("missing kind")
	}
	return probe.Kind, nil
}

// decodeAs unmarshals data into the concrete variant T and returns it as the
// family interface I.
func decodeAs[T any, I any](data []byte) (I, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero I
		return zero, err
	}
	out, ok := any(v).(I)
	if !ok {
		var zero I
		return zero, fmt.Errorf("%T does not implement %T", v, zero)
	}
	return out, nil
}
