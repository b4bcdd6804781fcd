package service

import (
	"perseverantia_backend/internals/features/registration/model"
)

// ParticipantDraft is one roster entry after DTO conversion, before persistence.
type ParticipantDraft struct {
	Name   string
	Grade  int
	Gender *model.Gender
	Weight *float64
	Order  int
}

// ValidateRoster checks a roster against an event's constraints. Checks run in
// a fixed order and stop at the first failure: participant count, then grade
// range, then gender composition.
func ValidateRoster(ev *model.EventModel, roster []ParticipantDraft) error {
	if len(roster) < ev.EventMinParticipants || len(roster) > ev.EventMaxParticipants {
		return &ParticipantCountError{
			EventName: ev.EventName,
			Min:       ev.EventMinParticipants,
			Max:       ev.EventMaxParticipants,
			Actual:    len(roster),
		}
	}

	var offending []OffendingGrade
	for _, p := range roster {
		if p.Grade < ev.EventMinGrade || p.Grade > ev.EventMaxGrade {
			offending = append(offending, OffendingGrade{Name: p.Name, Grade: p.Grade})
		}
	}
	if len(offending) > 0 {
		return &GradeRangeError{
			EventName: ev.EventName,
			Min:       ev.EventMinGrade,
			Max:       ev.EventMaxGrade,
			Offending: offending,
		}
	}

	return validateGenderComposition(ev, roster)
}

func validateGenderComposition(ev *model.EventModel, roster []ParticipantDraft) error {
	rule := ev.EventGenderRequirement
	if rule == "" || rule == model.GenderAny {
		return nil
	}

	males, females := 0, 0
	for _, p := range roster {
		if p.Gender == nil {
			continue
		}
		switch *p.Gender {
		case model.GenderMale:
			males++
		case model.GenderFemale:
			females++
		}
	}

	fail := func() error {
		return &GenderCompositionError{EventName: ev.EventName, Requirement: string(rule)}
	}

	switch rule {
	case model.GenderMaleFemaleRequired:
		if males < 1 || females < 1 {
			return fail()
		}
	case model.GenderMaleOnly:
		if males != len(roster) {
			return fail()
		}
	case model.GenderFemaleOnly:
		if females != len(roster) {
			return fail()
		}
	}
	return nil
}
