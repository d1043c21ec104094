package rarityapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
)

func TestDecodeListEnvelopes(t *testing.T) {
	common := talents.RarityItem{ID: "1", Name: "Common", Color: "#A0A0A0", Weight: 1}

	testCases := []struct {
		name     string
		body     string
		expected []talents.RarityItem
	}{
		{
			name:     "bare array",
			body:     `[{"id":"1","tier":"common","color":"#A0A0A0","weight":1}]`,
			expected: []talents.RarityItem{common},
		},
		{
			name:     "data envelope",
			body:     `{"data":[{"id":"1","tier":"common"}]}`,
			expected: []talents.RarityItem{common},
		},
		{
			name:     "results envelope",
			body:     `{"results":[{"id":1,"tier":"COMMON"}],"total":1}`,
			expected: []talents.RarityItem{common},
		},
		{
			name:     "items envelope",
			body:     `{"items":[{"id":"1","name":"common"}]}`,
			expected: []talents.RarityItem{common},
		},
		{
			name:     "single object",
			body:     `{"id":"1","tier":"common"}`,
			expected: []talents.RarityItem{common},
		},
		{
			name:     "unrecognized object",
			body:     `{"status":"ok"}`,
			expected: []talents.RarityItem{},
		},
		{
			name: "records without id are dropped",
			body: `[{"tier":"rare"},{"id":"","tier":"epic"},{"id":0,"tier":"epic"},"junk",{"id":"2","tier":"rare","weight":0.3}]`,
			expected: []talents.RarityItem{
				{ID: "2", Name: "Rare", Color: "#A0A0A0", Weight: 0.3},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := decodeList([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, items)
		})
	}

	_, err := decodeList([]byte(`not json`))
	assert.Error(t, err)
}

func TestToItemFieldAliases(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected talents.RarityItem
	}{
		{
			name:     "legacy names",
			body:     `{"id":"7","name":"legendary","hexColor":"#FFC107","dropWeight":0.02}`,
			expected: talents.RarityItem{ID: "7", Name: "Legendary", Color: "#FFC107", Weight: 0.02},
		},
		{
			name:     "primary names win",
			body:     `{"id":"7","tier":"epic","name":"legendary","color":"#9C27B0","hexColor":"#FFC107","weight":0.1,"dropWeight":0.02}`,
			expected: talents.RarityItem{ID: "7", Name: "Epic", Color: "#9C27B0", Weight: 0.1},
		},
		{
			name:     "defaults",
			body:     `{"id":"7"}`,
			expected: talents.RarityItem{ID: "7", Name: "Common", Color: "#A0A0A0", Weight: 1},
		},
		{
			name:     "zero weight is kept",
			body:     `{"id":"7","tier":"rare","weight":0}`,
			expected: talents.RarityItem{ID: "7", Name: "Rare", Color: "#A0A0A0", Weight: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := decodeOne([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *item)
		})
	}
}

func TestDecodeOne(t *testing.T) {
	item, err := decodeOne([]byte(`{"data":{"id":"9","tier":"rare"}}`))
	require.NoError(t, err)
	assert.Equal(t, "9", item.ID)

	_, err = decodeOne([]byte(`{"tier":"rare"}`))
	assert.Error(t, err)

	_, err = decodeOne([]byte(`[]`))
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Rare", DisplayName("  RARE "))
	assert.Equal(t, "Épico", DisplayName("épico"))
	assert.Equal(t, "", DisplayName(" "))
	assert.Equal(t, "rare", TierName(" Rare "))
}
