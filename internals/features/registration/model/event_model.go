// internals/features/registration/model/event_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Gender requirement (as stored in DB):
- "any"
- "male_female_required"
- "male_only"
- "female_only"
*/
type GenderRequirement string

const (
	GenderAny                GenderRequirement = "any"
	GenderMaleFemaleRequired GenderRequirement = "male_female_required"
	GenderMaleOnly           GenderRequirement = "male_only"
	GenderFemaleOnly         GenderRequirement = "female_only"
)

// Normalize to lower-case on scan/save, safe if the source is ever mixed-case.
func (g *GenderRequirement) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*g = GenderRequirement(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*g = GenderRequirement(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*g = GenderAny
	default:
		*g = GenderRequirement(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
	}
	return nil
}

func (g GenderRequirement) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(g))), nil
}

// EventModel is the rule set a stage roster must satisfy. Read-only on the
// registration path; seeded/updated by the event seeder.
type EventModel struct {
	// PK
	EventID uuid.UUID `gorm:"type:uuid;primaryKey;column:event_id" json:"_id"`

	EventName        string    `gorm:"type:varchar(150);uniqueIndex;not null;column:event_name" json:"name"`
	EventCategoryID  uuid.UUID `gorm:"type:uuid;not null;index;column:event_category_id" json:"categoryId"`
	EventDescription *string   `gorm:"column:event_description" json:"description,omitempty"`

	// Roster constraints
	EventMinParticipants int `gorm:"not null;column:event_min_participants" json:"minParticipants"`
	EventMaxParticipants int `gorm:"not null;column:event_max_participants" json:"maxParticipants"`
	EventMinGrade        int `gorm:"not null;column:event_min_grade" json:"minGrade"`
	EventMaxGrade        int `gorm:"not null;column:event_max_grade" json:"maxGrade"`

	EventGenderRequirement GenderRequirement `gorm:"type:varchar(30);not null;default:'any';column:event_gender_requirement" json:"genderRequirement"`
	EventIsActive          bool              `gorm:"not null;default:true;column:event_is_active" json:"isActive"`

	// Audit
	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"createdAt"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
