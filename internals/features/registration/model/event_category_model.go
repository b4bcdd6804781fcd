// internals/features/registration/model/event_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Static reference data: Stage / Sports / Classroom. Seeded once.
type EventCategoryModel struct {
	EventCategoryID          uuid.UUID `gorm:"type:uuid;primaryKey;column:event_category_id" json:"_id"`
	EventCategoryName        string    `gorm:"type:varchar(50);uniqueIndex;not null;column:event_category_name" json:"name"`
	EventCategoryDescription *string   `gorm:"column:event_category_description" json:"description,omitempty"`

	EventCategoryCreatedAt time.Time `gorm:"column:event_category_created_at;autoCreateTime" json:"createdAt"`
	EventCategoryUpdatedAt time.Time `gorm:"column:event_category_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (EventCategoryModel) TableName() string { return "event_categories" }

func (m *EventCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventCategoryID == uuid.Nil {
		m.EventCategoryID = uuid.New()
	}
	return nil
}
