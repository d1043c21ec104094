package talents

import (
	"encoding/json"
	"fmt"
)

// EffectKind discriminates effect variants
type EffectKind string

// Effect kinds
const (
	EffectStatMod EffectKind = "stat-mod"
	EffectDamage  EffectKind = "damage"
	EffectHeal    EffectKind = "heal"
	EffectTag     EffectKind = "tag"
)

// EffectKinds lists every effect variant in declaration order
var EffectKinds = []EffectKind{EffectStatMod, EffectDamage, EffectHeal, EffectTag}

// Target is who an effect lands on
type Target string

// Targets
const (
	TargetSelf  Target = "self"
	TargetAlly  Target = "ally"
	TargetEnemy Target = "enemy"
	TargetArea  Target = "area"
)

// Per-variant target sets and defaults
var (
	StatModTargets = []Target{TargetSelf, TargetAlly, TargetEnemy}
	DamageTargets  = []Target{TargetEnemy, TargetArea}
	HealTargets    = []Target{TargetSelf, TargetAlly, TargetArea}
	TagTargets     = []Target{TargetSelf, TargetAlly, TargetEnemy, TargetArea}
)

// Default targets per variant
const (
	DefaultStatModTarget = TargetEnemy
	DefaultDamageTarget  = TargetEnemy
	DefaultHealTarget    = TargetAlly
	DefaultTagTarget     = TargetEnemy
)

// StatOp is how a stat modifier combines with the base value
type StatOp string

// Stat operations
const (
	OpAdd StatOp = "add"
	OpMul StatOp = "mul"
	OpSet StatOp = "set"
)

// StatOps lists the accepted operations
var StatOps = []StatOp{OpAdd, OpMul, OpSet}

// Stacking is how repeated applications of a stat modifier combine
type Stacking string

// Stacking rules
const (
	StackingNone    Stacking = "none"
	StackingStack   Stacking = "stack"
	StackingRefresh Stacking = "refresh"
)

// Stackings lists the accepted stacking rules
var Stackings = []Stacking{StackingNone, StackingStack, StackingRefresh}

// TagAction adds or removes a status tag
type TagAction string

// Tag actions
const (
	TagAdd    TagAction = "add"
	TagRemove TagAction = "remove"
)

// TagActions lists the accepted tag actions
var TagActions = []TagAction{TagAdd, TagRemove}

// Effect is something a talent does when used
type Effect interface {
	Kind() EffectKind
	GetID() string
	GetTarget() Target
	GetDuration() Duration
	isEffect()
}

// StatModEffect changes a stat
type StatModEffect struct {
	ID       string   `json:"id,omitempty"`
	Target   Target   `json:"target"`
	Stat     string   `json:"stat"`
	Op       StatOp   `json:"op"`
	Value    Amount   `json:"value"`
	Duration Duration `json:"duration"`
	Stacking Stacking `json:"stacking"`
}

// DamageEffect deals typed damage
type DamageEffect struct {
	ID         string   `json:"id,omitempty"`
	Target     Target   `json:"target"`
	DamageType string   `json:"damageType"`
	Amount     Amount   `json:"amount"`
	Duration   Duration `json:"duration"`
}

// HealEffect restores health
type HealEffect struct {
	ID       string   `json:"id,omitempty"`
	Target   Target   `json:"target"`
	Amount   Amount   `json:"amount"`
	Duration Duration `json:"duration"`
}

// TagEffect applies or clears a status tag
type TagEffect struct {
	ID       string    `json:"id,omitempty"`
	Target   Target    `json:"target"`
	Action   TagAction `json:"action"`
	Tag      string    `json:"tag"`
	Duration Duration  `json:"duration"`
}

func (StatModEffect) Kind() EffectKind { return EffectStatMod }
func (DamageEffect) Kind() EffectKind  { return EffectDamage }
func (HealEffect) Kind() EffectKind    { return EffectHeal }
func (TagEffect) Kind() EffectKind     { return EffectTag }

func (e StatModEffect) GetID() string { return e.ID }
func (e DamageEffect) GetID() string  { return e.ID }
func (e HealEffect) GetID() string    { return e.ID }
func (e TagEffect) GetID() string     { return e.ID }

func (e StatModEffect) GetTarget() Target { return e.Target }
func (e DamageEffect) GetTarget() Target  { return e.Target }
func (e HealEffect) GetTarget() Target    { return e.Target }
func (e TagEffect) GetTarget() Target     { return e.Target }

func (e StatModEffect) GetDuration() Duration { return e.Duration }
func (e DamageEffect) GetDuration() Duration  { return e.Duration }
func (e HealEffect) GetDuration() Duration    { return e.Duration }
func (e TagEffect) GetDuration() Duration     { return e.Duration }

func (StatModEffect) isEffect() {}
func (DamageEffect) isEffect()  {}
func (HealEffect) isEffect()    {}
func (TagEffect) isEffect()     {}

// MarshalJSON includes the kind tag
func (e StatModEffect) MarshalJSON() ([]byte, error) {
	type alias StatModEffect
	return json.Marshal(struct {
		Kind EffectKind `json:"kind"`
		alias
	}{e.Kind(), alias(e)})
}

// MarshalJSON includes the kind tag
func (e DamageEffect) MarshalJSON() ([]byte, error) {
	type alias DamageEffect
	return json.Marshal(struct {
		Kind EffectKind `json:"kind"`
		alias
	}{e.Kind(), alias(e)})
}

// MarshalJSON includes the kind tag
func (e HealEffect) MarshalJSON() ([]byte, error) {
	type alias HealEffect
	return json.Marshal(struct {
		Kind EffectKind `json:"kind"`
		alias
	}{e.Kind(), alias(e)})
}

// MarshalJSON includes the kind tag
func (e TagEffect) MarshalJSON() ([]byte, error) {
	type alias TagEffect
	return json.Marshal(struct {
		Kind EffectKind `json:"kind"`
		alias
	}{e.Kind(), alias(e)})
}

// UnmarshalEffect decodes a stored effect by its kind tag
func UnmarshalEffect(data []byte) (Effect, error) {
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}

	switch EffectKind(kind) {
	case EffectStatMod:
		return decodeAs[StatModEffect, Effect](data)
	case EffectDamage:
		return decodeAs[DamageEffect, Effect](data)
	case EffectHeal:
		return decodeAs[HealEffect, Effect](data)
	case EffectTag:
		return decodeAs[TagEffect, Effect](data)
	default:
		return nil, fmt.Errorf("unknown effect kind %q, expected one of: %s", kind, joinKinds(EffectKinds))
	}
}
