package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"perseverantia_backend/internals/features/registration/model"
)

func genderPtr(g model.Gender) *model.Gender { return &g }

func draftRoster(genders ...model.Gender) []ParticipantDraft {
	roster := make([]ParticipantDraft, 0, len(genders))
	for i, g := range genders {
		roster = append(roster, ParticipantDraft{
			Name:   "Participant",
			Grade:  10,
			Gender: genderPtr(g),
			Order:  i + 1,
		})
	}
	return roster
}

func testEvent(min, max, minGrade, maxGrade int, rule model.GenderRequirement) *model.EventModel {
	return &model.EventModel{
		EventName:              "Gratia",
		EventMinParticipants:   min,
		EventMaxParticipants:   max,
		EventMinGrade:          minGrade,
		EventMaxGrade:          maxGrade,
		EventGenderRequirement: rule,
	}
}

func TestValidateRosterAcceptsValidRoster(t *testing.T) {
	ev := testEvent(2, 4, 9, 12, model.GenderAny)
	roster := draftRoster(model.GenderMale, model.GenderFemale, model.GenderMale)
	require.NoError(t, ValidateRoster(ev, roster))
}

func TestValidateRosterTooFewParticipants(t *testing.T) {
	ev := testEvent(6, 8, 9, 12, model.GenderAny)
	roster := draftRoster(model.GenderMale, model.GenderFemale)

	err := ValidateRoster(ev, roster)
	var countErr *ParticipantCountError
	require.ErrorAs(t, err, &countErr)
	require.Equal(t, 6, countErr.Min)
	require.Equal(t, 8, countErr.Max)
	require.Equal(t, 2, countErr.Actual)
}

func TestValidateRosterTooManyParticipants(t *testing.T) {
	ev := testEvent(2, 2, 9, 12, model.GenderAny)
	roster := draftRoster(model.GenderMale, model.GenderFemale, model.GenderMale)

	err := ValidateRoster(ev, roster)
	var countErr *ParticipantCountError
	require.ErrorAs(t, err, &countErr)
	require.Equal(t, 3, countErr.Actual)
}

func TestValidateRosterGradeOutOfRange(t *testing.T) {
	ev := testEvent(1, 5, 9, 12, model.GenderAny)
	roster := []ParticipantDraft{
		{Name: "A", Grade: 8, Order: 1},
		{Name: "B", Grade: 10, Order: 2},
		{Name: "C", Grade: 13, Order: 3},
	}

	err := ValidateRoster(ev, roster)
	var gradeErr *GradeRangeError
	require.ErrorAs(t, err, &gradeErr)
	require.Len(t, gradeErr.Offending, 2)
	require.Equal(t, "A", gradeErr.Offending[0].Name)
	require.Equal(t, "C", gradeErr.Offending[1].Name)
}

func TestValidateRosterCountCheckedBeforeGrade(t *testing.T) {
	// Both the count and the grades are wrong; the count error must win.
	ev := testEvent(3, 5, 9, 12, model.GenderAny)
	roster := []ParticipantDraft{{Name: "A", Grade: 2, Order: 1}}

	err := ValidateRoster(ev, roster)
	var countErr *ParticipantCountError
	require.ErrorAs(t, err, &countErr)

	var gradeErr *GradeRangeError
	require.False(t, errors.As(err, &gradeErr))
}

func TestValidateRosterGradeCheckedBeforeGender(t *testing.T) {
	ev := testEvent(2, 2, 9, 12, model.GenderMaleFemaleRequired)
	roster := []ParticipantDraft{
		{Name: "A", Grade: 7, Gender: genderPtr(model.GenderMale), Order: 1},
		{Name: "B", Grade: 10, Gender: genderPtr(model.GenderMale), Order: 2},
	}

	err := ValidateRoster(ev, roster)
	var gradeErr *GradeRangeError
	require.ErrorAs(t, err, &gradeErr)
}

func TestValidateRosterMaleFemaleRequired(t *testing.T) {
	ev := testEvent(2, 2, 9, 12, model.GenderMaleFemaleRequired)

	require.NoError(t, ValidateRoster(ev, draftRoster(model.GenderMale, model.GenderFemale)))

	err := ValidateRoster(ev, draftRoster(model.GenderMale, model.GenderMale))
	var genderErr *GenderCompositionError
	require.ErrorAs(t, err, &genderErr)
	require.Equal(t, "male_female_required", genderErr.Requirement)

	err = ValidateRoster(ev, draftRoster(model.GenderFemale, model.GenderFemale))
	require.ErrorAs(t, err, &genderErr)
}

func TestValidateRosterMaleOnly(t *testing.T) {
	ev := testEvent(2, 4, 9, 12, model.GenderMaleOnly)

	require.NoError(t, ValidateRoster(ev, draftRoster(model.GenderMale, model.GenderMale)))

	err := ValidateRoster(ev, draftRoster(model.GenderMale, model.GenderFemale))
	var genderErr *GenderCompositionError
	require.ErrorAs(t, err, &genderErr)
}

func TestValidateRosterFemaleOnly(t *testing.T) {
	ev := testEvent(2, 4, 9, 12, model.GenderFemaleOnly)

	require.NoError(t, ValidateRoster(ev, draftRoster(model.GenderFemale, model.GenderFemale)))

	err := ValidateRoster(ev, draftRoster(model.GenderFemale, model.GenderOther))
	var genderErr *GenderCompositionError
	require.ErrorAs(t, err, &genderErr)
}

func TestValidateRosterMaleOnlyRejectsMissingGender(t *testing.T) {
	ev := testEvent(2, 2, 9, 12, model.GenderMaleOnly)
	roster := []ParticipantDraft{
		{Name: "A", Grade: 10, Gender: genderPtr(model.GenderMale), Order: 1},
		{Name: "B", Grade: 10, Order: 2},
	}

	err := ValidateRoster(ev, roster)
	var genderErr *GenderCompositionError
	require.ErrorAs(t, err, &genderErr)
}

func TestValidateRosterAnyIgnoresGender(t *testing.T) {
	ev := testEvent(1, 3, 9, 12, model.GenderAny)
	roster := []ParticipantDraft{{Name: "A", Grade: 10, Order: 1}}
	require.NoError(t, ValidateRoster(ev, roster))
}
