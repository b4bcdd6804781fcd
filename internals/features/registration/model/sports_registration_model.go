// internals/features/registration/model/sports_registration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sports registrations mirror the stage shape (header + ordered participant
// rows, cascade delete) but point at the static sports catalog instead of the
// events table, and participants may carry a weight.
type SportsRegistrationModel struct {
	SportsRegistrationID uuid.UUID `gorm:"type:uuid;primaryKey;column:sports_registration_id" json:"_id"`

	SportsRegistrationSchoolID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_sports_registrations_school_event;column:sports_registration_school_id" json:"schoolId"`
	SportsRegistrationEventID   string    `gorm:"type:varchar(60);not null;uniqueIndex:uq_sports_registrations_school_event;column:sports_registration_event_id" json:"eventId"`
	SportsRegistrationEventName string    `gorm:"type:varchar(150);not null;column:sports_registration_event_name" json:"eventName"`

	SportsRegistrationCreatedAt time.Time `gorm:"column:sports_registration_created_at;autoCreateTime" json:"createdAt"`
	SportsRegistrationUpdatedAt time.Time `gorm:"column:sports_registration_updated_at;autoUpdateTime" json:"updatedAt"`

	School       *SchoolModel                         `gorm:"foreignKey:SportsRegistrationSchoolID;references:SchoolID" json:"-"`
	Participants []SportsRegistrationParticipantModel `gorm:"foreignKey:SportsParticipantRegistrationID;references:SportsRegistrationID;constraint:OnDelete:CASCADE" json:"participants"`
}

func (SportsRegistrationModel) TableName() string { return "sports_registrations" }

func (m *SportsRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.SportsRegistrationID == uuid.Nil {
		m.SportsRegistrationID = uuid.New()
	}
	return nil
}

type SportsRegistrationParticipantModel struct {
	SportsParticipantID             uuid.UUID `gorm:"type:uuid;primaryKey;column:sports_participant_id" json:"-"`
	SportsParticipantRegistrationID uuid.UUID `gorm:"type:uuid;not null;index;column:sports_participant_registration_id" json:"-"`

	SportsParticipantName   string   `gorm:"type:varchar(100);not null;column:sports_participant_name" json:"name"`
	SportsParticipantGrade  int      `gorm:"not null;column:sports_participant_grade" json:"grade"`
	SportsParticipantGender *Gender  `gorm:"type:varchar(10);column:sports_participant_gender" json:"gender,omitempty"`
	SportsParticipantWeight *float64 `gorm:"column:sports_participant_weight" json:"weight,omitempty"`

	SportsParticipantOrder int `gorm:"not null;column:sports_participant_order" json:"participantOrder"`
}

func (SportsRegistrationParticipantModel) TableName() string {
	return "sports_registration_participants"
}

func (m *SportsRegistrationParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.SportsParticipantID == uuid.Nil {
		m.SportsParticipantID = uuid.New()
	}
	return nil
}
