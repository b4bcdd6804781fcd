// internals/features/registration/model/classroom_registration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Classroom registrations: same header+participants shape, no gender/weight
// on participants.
type ClassroomRegistrationModel struct {
	ClassroomRegistrationID uuid.UUID `gorm:"type:uuid;primaryKey;column:classroom_registration_id" json:"_id"`

	ClassroomRegistrationSchoolID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_classroom_registrations_school_event;column:classroom_registration_school_id" json:"schoolId"`
	ClassroomRegistrationEventID   string    `gorm:"type:varchar(60);not null;uniqueIndex:uq_classroom_registrations_school_event;column:classroom_registration_event_id" json:"eventId"`
	ClassroomRegistrationEventName string    `gorm:"type:varchar(150);not null;column:classroom_registration_event_name" json:"eventName"`

	ClassroomRegistrationCreatedAt time.Time `gorm:"column:classroom_registration_created_at;autoCreateTime" json:"createdAt"`
	ClassroomRegistrationUpdatedAt time.Time `gorm:"column:classroom_registration_updated_at;autoUpdateTime" json:"updatedAt"`

	School       *SchoolModel                            `gorm:"foreignKey:ClassroomRegistrationSchoolID;references:SchoolID" json:"-"`
	Participants []ClassroomRegistrationParticipantModel `gorm:"foreignKey:ClassroomParticipantRegistrationID;references:ClassroomRegistrationID;constraint:OnDelete:CASCADE" json:"participants"`
}

func (ClassroomRegistrationModel) TableName() string { return "classroom_registrations" }

func (m *ClassroomRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomRegistrationID == uuid.Nil {
		m.ClassroomRegistrationID = uuid.New()
	}
	return nil
}

type ClassroomRegistrationParticipantModel struct {
	ClassroomParticipantID             uuid.UUID `gorm:"type:uuid;primaryKey;column:classroom_participant_id" json:"-"`
	ClassroomParticipantRegistrationID uuid.UUID `gorm:"type:uuid;not null;index;column:classroom_participant_registration_id" json:"-"`

	ClassroomParticipantName  string `gorm:"type:varchar(100);not null;column:classroom_participant_name" json:"name"`
	ClassroomParticipantGrade int    `gorm:"not null;column:classroom_participant_grade" json:"grade"`

	ClassroomParticipantOrder int `gorm:"not null;column:classroom_participant_order" json:"participantOrder"`
}

func (ClassroomRegistrationParticipantModel) TableName() string {
	return "classroom_registration_participants"
}

func (m *ClassroomRegistrationParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomParticipantID == uuid.Nil {
		m.ClassroomParticipantID = uuid.New()
	}
	return nil
}
