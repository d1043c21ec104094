package talents_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/samples"
)

func TestDiceExpressionBounds(t *testing.T) {
	testCases := []struct {
		input    string
		min, max float64
		text     string
	}{
		{input: "d6", min: 1, max: 6, text: "1d6"},
		{input: "2d8", min: 2, max: 16, text: "2d8"},
		{input: "1d8+2", min: 3, max: 10, text: "1d8+2"},
		{input: "3d6-1", min: 2, max: 17, text: "3d6-1"},
		{input: "1d6+0", min: 1, max: 6, text: "1d6"},
		{input: "0d6+2", min: 2, max: 2, text: "0d6+2"},
		{input: "9999999999d9999999999", min: 9999999999, max: 9999999999 * 9999999999.0, text: "9999999999d9999999999"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := talents.ParseDiceExpression(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.min, d.Min())
			assert.Equal(t, tc.max, d.Max())
			assert.Equal(t, tc.text, d.String())
		})
	}

	_, err := talents.ParseDiceExpression("99999999999999999999d6")
	assert.Error(t, err)
}

func TestAmountJSON(t *testing.T) {
	var a talents.Amount
	require.NoError(t, json.Unmarshal([]byte(`"2d6+3"`), &a))
	assert.True(t, a.IsDice())
	assert.Equal(t, "2d6+3", a.String())

	require.NoError(t, json.Unmarshal([]byte(`12.5`), &a))
	assert.False(t, a.IsDice())
	assert.Equal(t, "12.5", a.String())

	require.NoError(t, json.Unmarshal([]byte(`"7"`), &a))
	assert.Equal(t, talents.NumberAmount(7), a)

	assert.Error(t, json.Unmarshal([]byte(`"8+2"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`true`), &a))
}

func TestTalentJSONRoundTrip(t *testing.T) {
	for _, want := range samples.Talents() {
		t.Run(want.Name, func(t *testing.T) {
			data, err := json.Marshal(want)
			require.NoError(t, err)

			got := &talents.Talent{}
			require.NoError(t, json.Unmarshal(data, got))
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestVariantsCarryKind(t *testing.T) {
	data, err := json.Marshal(samples.Effects()[4])
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"kind":"tag","id":"eff-tag-burning-2t","target":"enemy","action":"add","tag":"burning","duration":{"type":"turns","amount":2}}`,
		string(data))

	_, err = talents.UnmarshalEffect([]byte(`{"kind":"summon"}`))
	assert.ErrorContains(t, err, "stat-mod, damage, heal, tag")

	_, err = talents.UnmarshalCost([]byte(`{"turns":3}`))
	assert.ErrorContains(t, err, "missing kind")
}

func TestTalentIsEntity(t *testing.T) {
	tal := samples.Talent("Firebolt")
	assert.Equal(t, "1", tal.GetID())
	assert.Equal(t, talents.EntityTypeTalent, tal.GetType())

	clone := tal.Clone()
	clone.Tags[0] = "frost"
	assert.Equal(t, "pyromancy", tal.Tags[0])
}
