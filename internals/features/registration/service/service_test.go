package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/model"
)

// setupTestDB opens an in-memory store. A single connection keeps every query
// on the same database; the pragma turns FK cascades on.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.SchoolModel{},
		&model.EventCategoryModel{},
		&model.EventModel{},
		&model.EventRegistrationModel{},
		&model.EventRegistrationParticipantModel{},
		&model.SportsRegistrationModel{},
		&model.SportsRegistrationParticipantModel{},
		&model.ClassroomRegistrationModel{},
		&model.ClassroomRegistrationParticipantModel{},
	))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.EventCategoryModel {
	t.Helper()
	cat := model.EventCategoryModel{EventCategoryName: name}
	require.NoError(t, db.Where("event_category_name = ?", name).FirstOrCreate(&cat).Error)
	return &cat
}

func seedStageEvent(t *testing.T, db *gorm.DB, name string, min, max, minGrade, maxGrade int, rule model.GenderRequirement) *model.EventModel {
	t.Helper()
	cat := seedCategory(t, db, constants.CategoryStage)
	ev := model.EventModel{
		EventName:              name,
		EventCategoryID:        cat.EventCategoryID,
		EventMinParticipants:   min,
		EventMaxParticipants:   max,
		EventMinGrade:          minGrade,
		EventMaxGrade:          maxGrade,
		EventGenderRequirement: rule,
		EventIsActive:          true,
	}
	require.NoError(t, db.Create(&ev).Error)
	return &ev
}

func testSchool(name string) SchoolUpsert {
	return SchoolUpsert{
		Name:          name,
		TeacherName:   "R. Fernandes",
		TeacherMobile: "9876543210",
		TeacherEmail:  "teacher@" + name + ".example",
	}
}

func rosterOf(n int) []ParticipantDraft {
	roster := make([]ParticipantDraft, 0, n)
	for i := 0; i < n; i++ {
		g := model.GenderMale
		if i%2 == 1 {
			g = model.GenderFemale
		}
		roster = append(roster, ParticipantDraft{
			Name:   "Student",
			Grade:  10,
			Gender: &g,
			Order:  i + 1,
		})
	}
	return roster
}
