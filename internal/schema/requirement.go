package schema

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// ParseRequirement validates a single raw requirement
func (s *Schema) ParseRequirement(raw any) (talents.Requirement, error) {
	ve := errors.NewValidationError()
	r, ok := s.requirement(raw, nil, ve)
	if !ok {
		return nil, result(ve)
	}
	return r, nil
}

func (s *Schema) requirement(raw any, path errors.Path, ve *errors.ValidationError) (talents.Requirement, bool) {
	o, ok := s.object(raw, path, ve)
	if !ok {
		return nil, false
	}

	accepted := names(talents.RequirementKinds)
	kind, ok := o.kind("kind", accepted)
	if !ok {
		return nil, false
	}

	mark := ve.Len()
	id := o.optionalID()

	var req talents.Requirement
	switch talents.RequirementKind(kind) {
	case talents.RequirementLevel:
		minLevel, _ := o.requiredInt("min", Positive)
		req = talents.LevelRequirement{ID: id, Min: minLevel}
	case talents.RequirementStat:
		stat, _ := o.requiredString("stat", 1, 0)
		minValue, _ := o.requiredNumber("min", AnySign)
		req = talents.StatRequirement{ID: id, Stat: stat, Min: minValue}
	case talents.RequirementTalent:
		talentID, _ := o.requiredString("talentId", 1, 0)
		req = talents.TalentRequirement{ID: id, TalentID: talentID}
	case talents.RequirementTag:
		tag, _ := o.requiredString("tag", 1, 0)
		count, _ := o.optionalInt("count", Positive)
		req = talents.TagRequirement{ID: id, Tag: tag, Count: count}
	case talents.RequirementClass:
		classID, _ := o.requiredString("classId", 1, 0)
		req = talents.ClassRequirement{ID: id, ClassID: classID}
	default:
		o.unknownVariant("kind", kind, accepted)
		return nil, false
	}

	o.done()
	return req, ve.Len() == mark
}
