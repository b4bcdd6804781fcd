// internals/features/registration/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"type:uuid;primaryKey;column:school_id" json:"_id"`

	// Identity (upsert key is the name)
	SchoolName           string  `gorm:"type:varchar(150);uniqueIndex;not null;column:school_name" json:"name"`
	SchoolContingentCode *string `gorm:"type:varchar(30);uniqueIndex;column:school_contingent_code" json:"contingentCode,omitempty"`

	// Teacher-in-charge contact
	SchoolTeacherName   string `gorm:"type:varchar(100);not null;column:school_teacher_name" json:"teacherName"`
	SchoolTeacherMobile string `gorm:"type:varchar(20);not null;column:school_teacher_mobile" json:"teacherMobile"`
	SchoolTeacherEmail  string `gorm:"type:varchar(150);uniqueIndex;not null;column:school_teacher_email" json:"teacherEmail"`

	// Audit
	SchoolCreatedAt time.Time `gorm:"column:school_created_at;autoCreateTime" json:"createdAt"`
	SchoolUpdatedAt time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"updatedAt"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}
