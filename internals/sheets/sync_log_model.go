// internals/sheets/sync_log_model.go
package sheets

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SheetSyncLogModel records one sync attempt per submission so failed pushes
// can be audited and replayed.
type SheetSyncLogModel struct {
	SheetSyncLogID uuid.UUID `gorm:"type:uuid;primaryKey;column:sheet_sync_log_id" json:"_id"`

	SheetSyncLogCategory   string         `gorm:"type:varchar(20);not null;index;column:sheet_sync_log_category" json:"category"`
	SheetSyncLogSchoolName string         `gorm:"type:varchar(150);not null;column:sheet_sync_log_school_name" json:"schoolName"`
	SheetSyncLogStatus     string         `gorm:"type:varchar(20);not null;column:sheet_sync_log_status" json:"status"`
	SheetSyncLogError      *string        `gorm:"column:sheet_sync_log_error" json:"error,omitempty"`
	SheetSyncLogPayload    datatypes.JSON `gorm:"column:sheet_sync_log_payload" json:"payload,omitempty"`

	SheetSyncLogCreatedAt time.Time `gorm:"column:sheet_sync_log_created_at;autoCreateTime" json:"createdAt"`
}

func (SheetSyncLogModel) TableName() string { return "sheet_sync_logs" }

func (m *SheetSyncLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.SheetSyncLogID == uuid.Nil {
		m.SheetSyncLogID = uuid.New()
	}
	return nil
}

const (
	SyncStatusOK     = "ok"
	SyncStatusFailed = "failed"
)
