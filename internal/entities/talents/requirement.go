package talents

import (
	"encoding/json"
	"fmt"
)

// RequirementKind discriminates requirement variants
type RequirementKind string

// Requirement kinds
const (
	RequirementLevel  RequirementKind = "level"
	RequirementStat   RequirementKind = "stat"
	RequirementTalent RequirementKind = "talent"
	RequirementTag    RequirementKind = "tag"
	RequirementClass  RequirementKind = "class"
)

// RequirementKinds lists every requirement variant in declaration order
var RequirementKinds = []RequirementKind{
	RequirementLevel, RequirementStat, RequirementTalent, RequirementTag, RequirementClass,
}

// Requirement gates a talent's availability
type Requirement interface {
	Kind() RequirementKind
	GetID() string
	isRequirement()
}

// LevelRequirement needs a minimum character level
type LevelRequirement struct {
	ID  string `json:"id,omitempty"`
	Min int    `json:"min"`
}

// StatRequirement needs a minimum stat value
type StatRequirement struct {
	ID   string  `json:"id,omitempty"`
	Stat string  `json:"stat"`
	Min  float64 `json:"min"`
}

// TalentRequirement needs another talent
type TalentRequirement struct {
	ID       string `json:"id,omitempty"`
	TalentID string `json:"talentId"`
}

// TagRequirement needs Count talents carrying Tag (one when Count is nil)
type TagRequirement struct {
	ID    string `json:"id,omitempty"`
	Tag   string `json:"tag"`
	Count *int   `json:"count,omitempty"`
}

// ClassRequirement needs a character class
type ClassRequirement struct {
	ID      string `json:"id,omitempty"`
	ClassID string `json:"classId"`
}

func (LevelRequirement) Kind() RequirementKind  { return RequirementLevel }
func (StatRequirement) Kind() RequirementKind   { return RequirementStat }
func (TalentRequirement) Kind() RequirementKind { return RequirementTalent }
func (TagRequirement) Kind() RequirementKind    { return RequirementTag }
func (ClassRequirement) Kind() RequirementKind  { return RequirementClass }

func (r LevelRequirement) GetID() string  { return r.ID }
func (r StatRequirement) GetID() string   { return r.ID }
func (r TalentRequirement) GetID() string { return r.ID }
func (r TagRequirement) GetID() string    { return r.ID }
func (r ClassRequirement) GetID() string  { return r.ID }

func (LevelRequirement) isRequirement()  {}
func (StatRequirement) isRequirement()   {}
func (TalentRequirement) isRequirement() {}
func (TagRequirement) isRequirement()    {}
func (ClassRequirement) isRequirement()  {}

// MarshalJSON includes the kind tag
func (r LevelRequirement) MarshalJSON() ([]byte, error) {
	type alias LevelRequirement
	return json.Marshal(struct {
		Kind RequirementKind `json:"kind"`
		alias
	}{r.Kind(), alias(r)})
}

// MarshalJSON includes the kind tag
func (r StatRequirement) MarshalJSON() ([]byte, error) {
	type alias StatRequirement
	return json.Marshal(struct {
		Kind RequirementKind `json:"kind"`
		alias
	}{r.Kind(), alias(r)})
}

// MarshalJSON includes the kind tag
func (r TalentRequirement) MarshalJSON() ([]byte, error) {
	type alias TalentRequirement
	return json.Marshal(struct {
		Kind RequirementKind `json:"kind"`
		alias
	}{r.Kind(), alias(r)})
}

// MarshalJSON includes the kind tag
func (r TagRequirement) MarshalJSON() ([]byte, error) {
	type alias TagRequirement
	return json.Marshal(struct {
		Kind RequirementKind `json:"kind"`
		alias
	}{r.Kind(), alias(r)})
}

// MarshalJSON includes the kind tag
func (r ClassRequirement) MarshalJSON() ([]byte, error) {
	type alias ClassRequirement
	return json.Marshal(struct {
		Kind RequirementKind `json:"kind"`
		alias
	}{r.Kind(), alias(r)})
}

// UnmarshalRequirement decodes a stored requirement by its kind tag
func UnmarshalRequirement(data []byte) (Requirement, error) {
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}

	switch RequirementKind(kind) {
	case RequirementLevel:
		return decodeAs[LevelRequirement, Requirement](data)
	case RequirementStat:
		return decodeAs[StatRequirement, Requirement](data)
	case RequirementTalent:
		return decodeAs[TalentRequirement, Requirement](data)
	case RequirementTag:
		return decodeAs[TagRequirement, Requirement](data)
	case RequirementClass:
		return decodeAs[ClassRequirement, Requirement](data)
	default:
		return nil, fmt.Errorf("unknown requirement kind %q, expected one of: %s", kind, joinKinds(RequirementKinds))
	}
}
