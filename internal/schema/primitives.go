package schema

import (
	"math"
	"regexp"
	"strconv"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

var (
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	integerPattern  = regexp.MustCompile(`^\d+$`)
)

// HexColor validates a #RRGGBB color
func HexColor(raw any) (string, error) {
	ve := errors.NewValidationError()
	c, _ := hexColor(raw, nil, ve)
	return c, result(ve)
}

// DiceExpression validates and parses a dice expression such as 1d8+2
func DiceExpression(raw any) (talents.DiceExpression, error) {
	ve := errors.NewValidationError()
	s, ok := raw.(string)
	if !ok {
		ve.Addf(nil, errors.ReasonInvalidType, "expected string, received %s", describe(raw))
		return talents.DiceExpression{}, result(ve)
	}
	d, err := talents.ParseDiceExpression(s)
	if err != nil {
		ve.Add(nil, errors.ReasonFormat, "must be a dice expression like 1d8+2")
		return talents.DiceExpression{}, result(ve)
	}
	return d, nil
}

// NumberOrDice validates a number constrained by sign, a dice expression or
// a bare nonnegative integer string
func NumberOrDice(raw any, sign Sign) (talents.Amount, error) {
	ve := errors.NewValidationError()
	a, _ := numberOrDice(raw, sign, nil, ve)
	return a, result(ve)
}

// ParseDuration validates a duration. A nil input is the instant default.
func (s *Schema) ParseDuration(raw any) (talents.Duration, error) {
	if raw == nil {
		return talents.Instant(), nil
	}
	ve := errors.NewValidationError()
	d, _ := s.duration(raw, nil, ve)
	return d, result(ve)
}

func hexColor(raw any, path errors.Path, ve *errors.ValidationError) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		ve.Addf(path, errors.ReasonInvalidType, "expected string, received %s", describe(raw))
		return "", false
	}
	if !hexColorPattern.MatchString(s) {
		ve.Add(path, errors.ReasonFormat, "expected hex color #RRGGBB")
		return "", false
	}
	return s, true
}

func numberOrDice(raw any, sign Sign, path errors.Path, ve *errors.ValidationError) (talents.Amount, bool) {
	if n, ok := toNumber(raw); ok {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			ve.Add(path, errors.ReasonFormat, "must be a finite number")
			return talents.Amount{}, false
		}
		if msg := sign.check(n); msg != "" {
			ve.Add(path, errors.ReasonFormat, msg)
			return talents.Amount{}, false
		}
		return talents.NumberAmount(n), true
	}

	s, ok := raw.(string)
	if !ok {
		ve.Addf(path, errors.ReasonInvalidType, "expected number or dice expression, received %s", describe(raw))
		return talents.Amount{}, false
	}

	if integerPattern.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			ve.Add(path, errors.ReasonFormat, "is out of range")
			return talents.Amount{}, false
		}
		if msg := sign.check(float64(n)); msg != "" {
			ve.Add(path, errors.ReasonFormat, msg)
			return talents.Amount{}, false
		}
		return talents.NumberAmount(float64(n)), true
	}

	d, err := talents.ParseDiceExpression(s)
	if err != nil {
		ve.Add(path, errors.ReasonFormat, "must be a number or a dice expression like 1d8+2")
		return talents.Amount{}, false
	}
	return talents.DiceAmount(d), true
}

func (s *Schema) duration(raw any, path errors.Path, ve *errors.ValidationError) (talents.Duration, bool) {
	o, ok := s.object(raw, path, ve)
	if !ok {
		return talents.Duration{}, false
	}

	accepted := names(talents.DurationTypes)
	kind, ok := o.kind("type", accepted)
	if !ok {
		return talents.Duration{}, false
	}

	mark := ve.Len()
	var d talents.Duration
	switch talents.DurationType(kind) {
	case talents.DurationInstant:
		d = talents.Instant()
	case talents.DurationTurns:
		n, _ := o.requiredInt("amount", Positive)
		d = talents.Duration{Type: talents.DurationTurns, Amount: float64(n)}
	case talents.DurationSeconds:
		n, _ := o.requiredNumber("amount", Positive)
		d = talents.Duration{Type: talents.DurationSeconds, Amount: n}
	default:
		o.unknownVariant("type", kind, accepted)
		return talents.Duration{}, false
	}
	o.done()
	return d, ve.Len() == mark
}
