package seeds

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/model"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.EventCategoryModel{},
		&model.EventModel{},
	))
	return db
}

func TestMigratedSchemaAcceptsCategoryInserts(t *testing.T) {
	// Foreign keys are enforced in the test store; a category row must insert
	// cleanly before any event references it.
	db := setupSeedDB(t)

	cat := model.EventCategoryModel{EventCategoryName: constants.CategoryStage}
	require.NoError(t, db.Create(&cat).Error)

	require.NoError(t, db.Create(&model.EventModel{
		EventName:            "Gratia",
		EventCategoryID:      cat.EventCategoryID,
		EventMinParticipants: 6,
		EventMaxParticipants: 8,
		EventMinGrade:        9,
		EventMaxGrade:        12,
		EventIsActive:        true,
	}).Error)
}

func TestSeedEventsCreatesCatalog(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, SeedEvents(db))

	var catCount, eventCount int64
	require.NoError(t, db.Model(&model.EventCategoryModel{}).Count(&catCount).Error)
	require.NoError(t, db.Model(&model.EventModel{}).Count(&eventCount).Error)
	require.EqualValues(t, 3, catCount)
	require.EqualValues(t, len(eventSeeds), eventCount)

	var strict model.EventModel
	require.NoError(t, db.Where("event_name = ?", "Mr. and Mrs. Perseverantia").First(&strict).Error)
	require.Equal(t, 2, strict.EventMinParticipants)
	require.Equal(t, 2, strict.EventMaxParticipants)
	require.Equal(t, model.GenderMaleFemaleRequired, strict.EventGenderRequirement)
	require.True(t, strict.EventIsActive)
}

func TestSeedEventsRerunIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, SeedEvents(db))
	require.NoError(t, SeedEvents(db))

	var catCount, eventCount int64
	require.NoError(t, db.Model(&model.EventCategoryModel{}).Count(&catCount).Error)
	require.NoError(t, db.Model(&model.EventModel{}).Count(&eventCount).Error)
	require.EqualValues(t, 3, catCount)
	require.EqualValues(t, len(eventSeeds), eventCount)
}

func TestSeedEventsRerunRefreshesConstraints(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, SeedEvents(db))

	var ev model.EventModel
	require.NoError(t, db.Where("event_name = ?", "Gratia").First(&ev).Error)
	require.NoError(t, db.Model(&ev).Update("event_max_participants", 99).Error)

	require.NoError(t, SeedEvents(db))
	require.NoError(t, db.Where("event_name = ?", "Gratia").First(&ev).Error)
	require.Equal(t, 8, ev.EventMaxParticipants)
}

func TestSeedEventsAssignsCategories(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, SeedEvents(db))

	var stage model.EventCategoryModel
	require.NoError(t, db.Where("event_category_name = ?", constants.CategoryStage).First(&stage).Error)

	var stageEvents int64
	require.NoError(t, db.Model(&model.EventModel{}).
		Where("event_category_id = ?", stage.EventCategoryID).
		Count(&stageEvents).Error)
	require.EqualValues(t, 4, stageEvents)
}
