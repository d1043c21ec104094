package rarityapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

const (
	// DefaultColor is used when the remote record carries no color
	DefaultColor = "#A0A0A0"

	defaultTier = "common"
)

// envelope keys that may wrap a list, checked in order
var listKeys = []string{"data", "results", "items"}

// decodeList accepts a bare array, an object wrapping the array under one of
// listKeys, or a single bare record. Records without an id are dropped.
func decodeList(body []byte) ([]talents.RarityItem, error) {
	raw, err := decodeAny(body)
	if err != nil {
		return nil, err
	}

	var list []any
	switch v := raw.(type) {
	case []any:
		list = v
	case map[string]any:
		found := false
		for _, key := range listKeys {
			if inner, ok := v[key].([]any); ok {
				list, found = inner, true
				break
			}
		}
		if !found && (present(v, "tier") || present(v, "name")) {
			list = []any{v}
		}
	}

	items := make([]talents.RarityItem, 0, len(list))
	for _, entry := range list {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item, ok := toItem(record)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// decodeOne reads a create or update response, optionally wrapped in data
func decodeOne(body []byte) (*talents.RarityItem, error) {
	raw, err := decodeAny(body)
	if err != nil {
		return nil, err
	}

	record, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Internal("rarity service returned a non-object record")
	}
	if inner, ok := record["data"].(map[string]any); ok {
		record = inner
	}

	item, ok := toItem(record)
	if !ok {
		return nil, errors.Internal("rarity service returned a record without an id")
	}
	return &item, nil
}

func decodeAny(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode rarity service response")
	}
	return raw, nil
}

// toItem maps a remote record onto a RarityItem. The primary field names
// tier, color and weight win over the legacy name, hexColor and dropWeight.
func toItem(r map[string]any) (talents.RarityItem, bool) {
	id := idString(r["id"])
	if id == "" {
		return talents.RarityItem{}, false
	}

	tier := firstString(r, "tier", "name")
	if tier == "" {
		tier = defaultTier
	}

	color := firstString(r, "color", "hexColor")
	if color == "" {
		color = DefaultColor
	}

	weight, ok := number(r["weight"])
	if !ok {
		weight, ok = number(r["dropWeight"])
	}
	if !ok {
		weight = 1
	}

	return talents.RarityItem{
		ID:     id,
		Name:   DisplayName(tier),
		Color:  color,
		Weight: weight,
	}, true
}

// DisplayName renders a tier as a rarity name: lower-cased with the first
// letter capitalized
func DisplayName(tier string) string {
	tier = strings.ToLower(strings.TrimSpace(tier))
	if tier == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(tier)
	return string(unicode.ToUpper(r)) + tier[size:]
}

// TierName is the inverse of DisplayName: the tier sent to the remote
func TierName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func present(r map[string]any, key string) bool {
	s, ok := r[key].(string)
	return ok && s != ""
}

func firstString(r map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := r[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		if f, err := id.Float64(); err == nil && f == 0 {
			return ""
		}
		return id.String()
	default:
		return ""
	}
}

func number(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}
