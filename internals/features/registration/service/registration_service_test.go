package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"perseverantia_backend/internals/features/registration/model"
)

func TestRegisterStagePersistsSchoolAndRoster(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	ev := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)

	res, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(3)},
	})
	require.NoError(t, err)
	require.Equal(t, "St. Mary's", res.School.SchoolName)
	require.Len(t, res.Events, 1)
	require.Equal(t, "Gratia", res.Events[0].EventName)
	require.Equal(t, 3, res.Events[0].Participants)

	var regs []model.EventRegistrationModel
	require.NoError(t, db.Preload("Participants").Find(&regs).Error)
	require.Len(t, regs, 1)
	require.Len(t, regs[0].Participants, 3)
	require.Equal(t, model.RegistrationStatusRegistered, regs[0].EventRegistrationStatus)
}

func TestRegisterStageResubmitReplaces(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	ev := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)

	_, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(2)},
	})
	require.NoError(t, err)

	_, err = svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(3)},
	})
	require.NoError(t, err)

	var regCount, partCount, schoolCount int64
	require.NoError(t, db.Model(&model.EventRegistrationModel{}).Count(&regCount).Error)
	require.NoError(t, db.Model(&model.EventRegistrationParticipantModel{}).Count(&partCount).Error)
	require.NoError(t, db.Model(&model.SchoolModel{}).Count(&schoolCount).Error)
	require.EqualValues(t, 1, regCount)
	require.EqualValues(t, 3, partCount)
	require.EqualValues(t, 1, schoolCount)
}

func TestRegisterStageResubmitDropsOmittedEvents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	gratia := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)
	panache := seedStageEvent(t, db, "Panache", 2, 7, 8, 12, model.GenderAny)

	_, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: gratia.EventID.String(), Roster: rosterOf(2)},
		{EventID: panache.EventID.String(), Roster: rosterOf(2)},
	})
	require.NoError(t, err)

	// Second submit only keeps Panache.
	_, err = svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: panache.EventID.String(), Roster: rosterOf(4)},
	})
	require.NoError(t, err)

	var regs []model.EventRegistrationModel
	require.NoError(t, db.Find(&regs).Error)
	require.Len(t, regs, 1)
	require.Equal(t, panache.EventID, regs[0].EventRegistrationEventID)
}

func TestRegisterStageUnknownEventWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	ev := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)

	_, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(2)},
		{EventID: "2f0d7b3e-0000-0000-0000-000000000000", Roster: rosterOf(2)},
	})
	var notFound *EventNotFoundError
	require.ErrorAs(t, err, &notFound)

	var schoolCount, regCount int64
	require.NoError(t, db.Model(&model.SchoolModel{}).Count(&schoolCount).Error)
	require.NoError(t, db.Model(&model.EventRegistrationModel{}).Count(&regCount).Error)
	require.EqualValues(t, 0, schoolCount)
	require.EqualValues(t, 0, regCount)
}

func TestRegisterStageMalformedEventID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)

	_, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: "not-a-uuid", Roster: rosterOf(2)},
	})
	var notFound *EventNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "not-a-uuid", notFound.EventID)
}

func TestRegisterStageInactiveEventRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	ev := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)
	require.NoError(t, db.Model(ev).Update("event_is_active", false).Error)

	_, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(2)},
	})
	var notFound *EventNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRegisterStageInvalidRosterFailsBeforeWrite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	ok := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)
	strict := seedStageEvent(t, db, "Mr. and Mrs. Perseverantia", 2, 2, 9, 12, model.GenderMaleFemaleRequired)

	// Earlier submission that must survive the failed resubmit.
	_, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ok.EventID.String(), Roster: rosterOf(2)},
	})
	require.NoError(t, err)

	maleOnly := []ParticipantDraft{
		{Name: "A", Grade: 10, Gender: genderPtr(model.GenderMale), Order: 1},
		{Name: "B", Grade: 10, Gender: genderPtr(model.GenderMale), Order: 2},
	}
	_, err = svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ok.EventID.String(), Roster: rosterOf(3)},
		{EventID: strict.EventID.String(), Roster: maleOnly},
	})
	var genderErr *GenderCompositionError
	require.ErrorAs(t, err, &genderErr)

	// Pre-image intact: one registration, two participants.
	var regs []model.EventRegistrationModel
	require.NoError(t, db.Preload("Participants").Find(&regs).Error)
	require.Len(t, regs, 1)
	require.Len(t, regs[0].Participants, 2)
}

func TestRegisterStageUpdatesTeacherKeepsContingentCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	ev := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)

	first := testSchool("St. Mary's")
	code := "PER-042"
	first.ContingentCode = &code
	_, err := svc.RegisterStage(context.Background(), first, []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(2)},
	})
	require.NoError(t, err)

	// Resubmit without a code and with a new teacher.
	second := testSchool("St. Mary's")
	second.TeacherName = "J. D'Souza"
	_, err = svc.RegisterStage(context.Background(), second, []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(2)},
	})
	require.NoError(t, err)

	var sch model.SchoolModel
	require.NoError(t, db.Where("school_name = ?", "St. Mary's").First(&sch).Error)
	require.Equal(t, "J. D'Souza", sch.SchoolTeacherName)
	require.NotNil(t, sch.SchoolContingentCode)
	require.Equal(t, "PER-042", *sch.SchoolContingentCode)
}

func TestRegisterSportsUsesCatalog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)

	weight := 62.5
	roster := rosterOf(2)
	roster[0].Weight = &weight

	res, err := svc.RegisterSports(context.Background(), testSchool("Don Bosco"), []EventSubmission{
		{EventID: "table-tennis", Roster: roster},
	})
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	require.Equal(t, "table-tennis", res.Events[0].EventID)

	var regs []model.SportsRegistrationModel
	require.NoError(t, db.Preload("Participants").Find(&regs).Error)
	require.Len(t, regs, 1)
	require.NotEmpty(t, regs[0].SportsRegistrationEventName)
	require.Len(t, regs[0].Participants, 2)
	require.NotNil(t, regs[0].Participants[0].SportsParticipantWeight)
	require.Equal(t, 62.5, *regs[0].Participants[0].SportsParticipantWeight)
}

func TestRegisterSportsUnknownCatalogID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)

	_, err := svc.RegisterSports(context.Background(), testSchool("Don Bosco"), []EventSubmission{
		{EventID: "underwater-chess", Roster: rosterOf(2)},
	})
	var notFound *EventNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "underwater-chess", notFound.EventID)

	var count int64
	require.NoError(t, db.Model(&model.SportsRegistrationModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestRegisterSportsEmptyRosterRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)

	_, err := svc.RegisterSports(context.Background(), testSchool("Don Bosco"), []EventSubmission{
		{EventID: "table-tennis"},
	})
	var countErr *ParticipantCountError
	require.ErrorAs(t, err, &countErr)
	require.Equal(t, 1, countErr.Min)
	require.Contains(t, countErr.Error(), "at least 1")
	require.NotContains(t, countErr.Error(), "between")
}

func TestRegisterClassroomReplacesPerCategoryOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)

	_, err := svc.RegisterSports(context.Background(), testSchool("Don Bosco"), []EventSubmission{
		{EventID: "gully-cricket", Roster: rosterOf(6)},
	})
	require.NoError(t, err)

	_, err = svc.RegisterClassroom(context.Background(), testSchool("Don Bosco"), []EventSubmission{
		{EventID: "codeferno", Roster: rosterOf(1)},
	})
	require.NoError(t, err)

	// Resubmitting classroom must not touch the sports rows.
	_, err = svc.RegisterClassroom(context.Background(), testSchool("Don Bosco"), []EventSubmission{
		{EventID: "fortuna", Roster: rosterOf(2)},
	})
	require.NoError(t, err)

	var sportsCount, classroomCount int64
	require.NoError(t, db.Model(&model.SportsRegistrationModel{}).Count(&sportsCount).Error)
	require.NoError(t, db.Model(&model.ClassroomRegistrationModel{}).Count(&classroomCount).Error)
	require.EqualValues(t, 1, sportsCount)
	require.EqualValues(t, 1, classroomCount)

	var regs []model.ClassroomRegistrationModel
	require.NoError(t, db.Find(&regs).Error)
	require.Equal(t, "fortuna", regs[0].ClassroomRegistrationEventID)
}

func TestCascadeDeleteOnlyRemovesOwnParticipants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	ev := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)

	_, err := svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(2)},
	})
	require.NoError(t, err)
	_, err = svc.RegisterStage(context.Background(), testSchool("Don Bosco"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(4)},
	})
	require.NoError(t, err)

	// St. Mary's resubmits; Don Bosco's four participants must survive.
	_, err = svc.RegisterStage(context.Background(), testSchool("St. Mary's"), []EventSubmission{
		{EventID: ev.EventID.String(), Roster: rosterOf(3)},
	})
	require.NoError(t, err)

	var partCount int64
	require.NoError(t, db.Model(&model.EventRegistrationParticipantModel{}).Count(&partCount).Error)
	require.EqualValues(t, 7, partCount)
}

func TestIsUniqueViolationSqliteMessage(t *testing.T) {
	db := setupTestDB(t)
	ev := seedStageEvent(t, db, "Gratia", 2, 8, 9, 12, model.GenderAny)

	sch := model.SchoolModel{
		SchoolName:          "St. Mary's",
		SchoolTeacherName:   "R. Fernandes",
		SchoolTeacherMobile: "9876543210",
		SchoolTeacherEmail:  "teacher@example.com",
	}
	require.NoError(t, db.Create(&sch).Error)

	reg := model.EventRegistrationModel{
		EventRegistrationSchoolID: sch.SchoolID,
		EventRegistrationEventID:  ev.EventID,
	}
	require.NoError(t, db.Create(&reg).Error)

	dup := model.EventRegistrationModel{
		EventRegistrationSchoolID: sch.SchoolID,
		EventRegistrationEventID:  ev.EventID,
	}
	err := db.Create(&dup).Error
	require.Error(t, err)
	require.True(t, isUniqueViolation(err))
}
