package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perseverantia_backend/internals/constants"
)

func setupSyncDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&SheetSyncLogModel{}))
	return db
}

func TestRecordAttemptWritesOKRow(t *testing.T) {
	db := setupSyncDB(t)
	s := NewSyncer(nil, db)

	s.recordAttempt(constants.CategorySports, "Don Bosco", nil)

	var entry SheetSyncLogModel
	require.NoError(t, db.First(&entry).Error)
	require.Equal(t, SyncStatusOK, entry.SheetSyncLogStatus)
	require.Equal(t, "Don Bosco", entry.SheetSyncLogSchoolName)
	require.Nil(t, entry.SheetSyncLogError)
}

func TestRecordAttemptOutlivesExpiredSyncContext(t *testing.T) {
	db := setupSyncDB(t)
	s := NewSyncer(nil, db)

	// The interesting failure is a sync that died on its own deadline: by the
	// time the audit row is written, the attempt context is long gone.
	syncCtx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	<-syncCtx.Done()
	cancel()

	s.recordAttempt(constants.CategoryStage, "St. Mary's", syncCtx.Err())

	var entry SheetSyncLogModel
	require.NoError(t, db.First(&entry).Error)
	require.Equal(t, SyncStatusFailed, entry.SheetSyncLogStatus)
	require.NotNil(t, entry.SheetSyncLogError)
	require.Equal(t, context.DeadlineExceeded.Error(), *entry.SheetSyncLogError)
}
