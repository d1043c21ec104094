// Package talents holds the validated, normalized talent data model: talents
// and the requirement, cost, rarity and effect records they are composed of.
//
// Requirements, costs and effects are tagged variants. Each family is a sealed
// interface; the concrete variant is selected by its kind and carries only the
// fields meaningful to it.
package talents

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DicePattern matches dice expressions such as d6, 2d8, 1d8+2 and 3d6-1
var DicePattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// DiceExpression is a parsed tabletop roll: Count dice with Sides faces plus Modifier.
type DiceExpression struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseDiceExpression parses s. The dice count is optional and defaults to 1.
func ParseDiceExpression(s string) (DiceExpression, error) {
	m := DicePattern.FindStringSubmatch(s)
	if m == nil {
		return DiceExpression{}, fmt.Errorf("%q is not a dice expression like 1d8+2", s)
	}

	expr := DiceExpression{Count: 1}
	var err error
	if m[1] != "" {
		if expr.Count, err = strconv.Atoi(m[1]); err != nil {
			return DiceExpression{}, fmt.Errorf("dice count in %q: %w", s, err)
		}
	}
	if expr.Sides, err = strconv.Atoi(m[2]); err != nil {
		return DiceExpression{}, fmt.Errorf("die size in %q: %w", s, err)
	}
	if m[3] != "" {
		if expr.Modifier, err = strconv.Atoi(m[3]); err != nil {
			return DiceExpression{}, fmt.Errorf("modifier in %q: %w", s, err)
		}
	}
	return expr, nil
}

// String renders the canonical form, always with an explicit count
func (d DiceExpression) String() string {
	switch {
	case d.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", d.Count, d.Sides, d.Modifier)
	case d.Modifier < 0:
		return fmt.Sprintf("%dd%d%d", d.Count, d.Sides, d.Modifier)
	default:
		return fmt.Sprintf("%dd%d", d.Count, d.Sides)
	}
}

// Min is the lowest possible total. Bounds are computed in float64 so large
// expressions cannot wrap.
func (d DiceExpression) Min() float64 {
	if d.Count == 0 || d.Sides == 0 {
		return float64(d.Modifier)
	}
	return float64(d.Count) + float64(d.Modifier)
}

// Max is the highest possible total
func (d DiceExpression) Max() float64 {
	return float64(d.Count)*float64(d.Sides) + float64(d.Modifier)
}

// Amount is either a plain number or a dice expression.
type Amount struct {
	Number float64
	Dice   *DiceExpression
}

// NumberAmount returns a numeric amount
func NumberAmount(v float64) Amount {
	return Amount{Number: v}
}

// DiceAmount returns a dice amount
func DiceAmount(d DiceExpression) Amount {
	return Amount{Dice: &d}
}

// IsDice reports whether the amount is rolled
func (a Amount) IsDice() bool {
	return a.Dice != nil
}

func (a Amount) String() string {
	if a.Dice != nil {
		return a.Dice.String()
	}
	return strconv.FormatFloat(a.Number, 'f', -1, 64)
}

// MarshalJSON writes dice amounts as strings and numbers as numbers
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Dice != nil {
		return json.Marshal(a.Dice.String())
	}
	return json.Marshal(a.Number)
}

// UnmarshalJSON accepts a number or a dice expression string
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, convErr := strconv.ParseFloat(s, 64); convErr == nil {
			*a = NumberAmount(n)
			return nil
		}
		d, err := ParseDiceExpression(s)
		if err != nil {
			return err
		}
		*a = DiceAmount(d)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or dice expression: %w", err)
	}
	*a = NumberAmount(n)
	return nil
}

// DurationType discriminates durations
type DurationType string

// Duration types
const (
	DurationInstant DurationType = "instant"
	DurationTurns   DurationType = "turns"
	DurationSeconds DurationType = "seconds"
)

// DurationTypes lists the accepted duration discriminators
var DurationTypes = []DurationType{DurationInstant, DurationTurns, DurationSeconds}

// Duration is how long an effect lasts. Amount is unused for instant effects,
// a whole number of turns for turns and a positive number for seconds.
type Duration struct {
	Type   DurationType `json:"type"`
	Amount float64      `json:"amount,omitempty"`
}

// Instant is the default duration
func Instant() Duration {
	return Duration{Type: DurationInstant}
}

func (d Duration) String() string {
	switch d.Type {
	case DurationTurns:
		return fmt.Sprintf("%s turns", strconv.FormatFloat(d.Amount, 'f', -1, 64))
	case DurationSeconds:
		return fmt.Sprintf("%ss", strconv.FormatFloat(d.Amount, 'f', -1, 64))
	default:
		return string(d.Type)
	}
}

func joinKinds[K ~string](kinds []K) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
