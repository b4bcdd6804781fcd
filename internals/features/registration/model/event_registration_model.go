// internals/features/registration/model/event_registration_model.go
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
Registration status (as stored in DB):
- "registered"
- "confirmed"
- "cancelled"
*/
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusConfirmed  RegistrationStatus = "confirmed"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
)

func (s *RegistrationStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = RegistrationStatusRegistered
	default:
		*s = RegistrationStatus(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
	}
	return nil
}

func (s RegistrationStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

/*
Participant gender:
- "male" / "female" / "other", or NULL when not collected.
*/
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g *Gender) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*g = Gender(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*g = Gender(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*g = ""
	default:
		*g = Gender(strings.ToLower(strings.TrimSpace(fmt.Sprint(v))))
	}
	return nil
}

func (g Gender) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(g))), nil
}

// EventRegistrationModel is one school's entry for one stage event.
// At most one row per (school, event); participants are owned rows and go
// down with the registration (FK cascade).
type EventRegistrationModel struct {
	// PK
	EventRegistrationID uuid.UUID `gorm:"type:uuid;primaryKey;column:event_registration_id" json:"_id"`

	EventRegistrationSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_event_registrations_school_event;column:event_registration_school_id" json:"schoolId"`
	EventRegistrationEventID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_event_registrations_school_event;column:event_registration_event_id" json:"eventId"`

	EventRegistrationStatus RegistrationStatus `gorm:"type:varchar(20);not null;default:'registered';column:event_registration_status" json:"registrationStatus"`

	// Audit
	EventRegistrationCreatedAt time.Time `gorm:"column:event_registration_created_at;autoCreateTime" json:"createdAt"`
	EventRegistrationUpdatedAt time.Time `gorm:"column:event_registration_updated_at;autoUpdateTime" json:"updatedAt"`

	School       *SchoolModel                         `gorm:"foreignKey:EventRegistrationSchoolID;references:SchoolID" json:"-"`
	Event        *EventModel                          `gorm:"foreignKey:EventRegistrationEventID;references:EventID" json:"event,omitempty"`
	Participants []EventRegistrationParticipantModel `gorm:"foreignKey:ParticipantRegistrationID;references:EventRegistrationID;constraint:OnDelete:CASCADE" json:"participants"`
}

func (EventRegistrationModel) TableName() string { return "event_registrations" }

func (m *EventRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventRegistrationID == uuid.Nil {
		m.EventRegistrationID = uuid.New()
	}
	return nil
}

type EventRegistrationParticipantModel struct {
	ParticipantID             uuid.UUID `gorm:"type:uuid;primaryKey;column:participant_id" json:"-"`
	ParticipantRegistrationID uuid.UUID `gorm:"type:uuid;not null;index;column:participant_registration_id" json:"-"`

	ParticipantName   string  `gorm:"type:varchar(100);not null;column:participant_name" json:"name"`
	ParticipantGrade  int     `gorm:"not null;column:participant_grade" json:"grade"`
	ParticipantGender *Gender `gorm:"type:varchar(10);column:participant_gender" json:"gender,omitempty"`

	// 1-based, contiguous, exactly as submitted.
	ParticipantOrder int `gorm:"not null;column:participant_order" json:"participantOrder"`
}

func (EventRegistrationParticipantModel) TableName() string {
	return "event_registration_participants"
}

func (m *EventRegistrationParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParticipantID == uuid.Nil {
		m.ParticipantID = uuid.New()
	}
	return nil
}
