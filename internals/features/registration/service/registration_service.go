// internals/features/registration/service/registration_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/model"
)

type RegistrationService struct {
	DB *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

// SchoolUpsert carries the school block of a submission.
type SchoolUpsert struct {
	Name           string
	ContingentCode *string
	TeacherName    string
	TeacherMobile  string
	TeacherEmail   string
}

// EventSubmission is one event + roster pair from a submission payload.
type EventSubmission struct {
	EventID string
	Roster  []ParticipantDraft
}

// AcceptedEvent echoes back what was persisted for one event.
type AcceptedEvent struct {
	EventID      string `json:"eventId"`
	EventName    string `json:"eventName"`
	Participants int    `json:"participants"`
}

// SubmissionResult is the outcome of a successful submit.
type SubmissionResult struct {
	School *model.SchoolModel
	Events []AcceptedEvent
}

type resolvedStageEvent struct {
	event  *model.EventModel
	roster []ParticipantDraft
}

// RegisterStage validates every event roster first and only then writes, so a
// failing event never leaves partial state behind. On success the school's
// previous stage registrations are wiped and replaced in one transaction.
func (s *RegistrationService) RegisterStage(ctx context.Context, school SchoolUpsert, subs []EventSubmission) (*SubmissionResult, error) {
	resolved := make([]resolvedStageEvent, 0, len(subs))
	for _, sub := range subs {
		eventID, err := uuid.Parse(sub.EventID)
		if err != nil {
			return nil, &EventNotFoundError{EventID: sub.EventID}
		}

		var ev model.EventModel
		err = s.DB.WithContext(ctx).
			Where("event_id = ? AND event_is_active = ?", eventID, true).
			First(&ev).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &EventNotFoundError{EventID: sub.EventID}
		}
		if err != nil {
			return nil, err
		}

		if err := ValidateRoster(&ev, sub.Roster); err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedStageEvent{event: &ev, roster: sub.Roster})
	}

	result := &SubmissionResult{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sch, err := upsertSchool(tx, school)
		if err != nil {
			return err
		}
		result.School = sch

		// Resubmit replaces: drop everything this school had in the category.
		if err := tx.
			Where("event_registration_school_id = ?", sch.SchoolID).
			Delete(&model.EventRegistrationModel{}).Error; err != nil {
			return err
		}

		for _, r := range resolved {
			reg := model.EventRegistrationModel{
				EventRegistrationSchoolID: sch.SchoolID,
				EventRegistrationEventID:  r.event.EventID,
				EventRegistrationStatus:   model.RegistrationStatusRegistered,
			}
			for _, p := range r.roster {
				reg.Participants = append(reg.Participants, model.EventRegistrationParticipantModel{
					ParticipantName:   p.Name,
					ParticipantGrade:  p.Grade,
					ParticipantGender: p.Gender,
					ParticipantOrder:  p.Order,
				})
			}
			if err := tx.Create(&reg).Error; err != nil {
				if isUniqueViolation(err) {
					return &DuplicateRegistrationError{EventName: r.event.EventName}
				}
				return err
			}
			result.Events = append(result.Events, AcceptedEvent{
				EventID:      r.event.EventID.String(),
				EventName:    r.event.EventName,
				Participants: len(r.roster),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RegisterSports persists a sports submission against the static sports
// catalog. Rosters only need to be non-empty; catalog events carry no
// size/grade/gender rules.
func (s *RegistrationService) RegisterSports(ctx context.Context, school SchoolUpsert, subs []EventSubmission) (*SubmissionResult, error) {
	if err := resolveCatalog(constants.SportsEventNames, subs); err != nil {
		return nil, err
	}

	result := &SubmissionResult{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sch, err := upsertSchool(tx, school)
		if err != nil {
			return err
		}
		result.School = sch

		if err := tx.
			Where("sports_registration_school_id = ?", sch.SchoolID).
			Delete(&model.SportsRegistrationModel{}).Error; err != nil {
			return err
		}

		for _, sub := range subs {
			eventName := constants.SportsEventNames[sub.EventID]
			reg := model.SportsRegistrationModel{
				SportsRegistrationSchoolID:  sch.SchoolID,
				SportsRegistrationEventID:   sub.EventID,
				SportsRegistrationEventName: eventName,
			}
			for _, p := range sub.Roster {
				reg.Participants = append(reg.Participants, model.SportsRegistrationParticipantModel{
					SportsParticipantName:   p.Name,
					SportsParticipantGrade:  p.Grade,
					SportsParticipantGender: p.Gender,
					SportsParticipantWeight: p.Weight,
					SportsParticipantOrder:  p.Order,
				})
			}
			if err := tx.Create(&reg).Error; err != nil {
				if isUniqueViolation(err) {
					return &DuplicateRegistrationError{EventName: eventName}
				}
				return err
			}
			result.Events = append(result.Events, AcceptedEvent{
				EventID:      sub.EventID,
				EventName:    eventName,
				Participants: len(sub.Roster),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RegisterClassroom is the classroom twin of RegisterSports.
func (s *RegistrationService) RegisterClassroom(ctx context.Context, school SchoolUpsert, subs []EventSubmission) (*SubmissionResult, error) {
	if err := resolveCatalog(constants.ClassroomEventNames, subs); err != nil {
		return nil, err
	}

	result := &SubmissionResult{}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sch, err := upsertSchool(tx, school)
		if err != nil {
			return err
		}
		result.School = sch

		if err := tx.
			Where("classroom_registration_school_id = ?", sch.SchoolID).
			Delete(&model.ClassroomRegistrationModel{}).Error; err != nil {
			return err
		}

		for _, sub := range subs {
			eventName := constants.ClassroomEventNames[sub.EventID]
			reg := model.ClassroomRegistrationModel{
				ClassroomRegistrationSchoolID:  sch.SchoolID,
				ClassroomRegistrationEventID:   sub.EventID,
				ClassroomRegistrationEventName: eventName,
			}
			for _, p := range sub.Roster {
				reg.Participants = append(reg.Participants, model.ClassroomRegistrationParticipantModel{
					ClassroomParticipantName:  p.Name,
					ClassroomParticipantGrade: p.Grade,
					ClassroomParticipantOrder: p.Order,
				})
			}
			if err := tx.Create(&reg).Error; err != nil {
				if isUniqueViolation(err) {
					return &DuplicateRegistrationError{EventName: eventName}
				}
				return err
			}
			result.Events = append(result.Events, AcceptedEvent{
				EventID:      sub.EventID,
				EventName:    eventName,
				Participants: len(sub.Roster),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func resolveCatalog(catalog map[string]string, subs []EventSubmission) error {
	for _, sub := range subs {
		name, ok := catalog[sub.EventID]
		if !ok {
			return &EventNotFoundError{EventID: sub.EventID}
		}
		if len(sub.Roster) == 0 {
			// Catalog events have no upper bound; Max stays below Min.
			return &ParticipantCountError{EventName: name, Min: 1, Actual: 0}
		}
	}
	return nil
}

// upsertSchool finds or creates a school by name. Teacher contact fields are
// always refreshed; the contingent code is only overwritten when the new
// submission actually carries one.
func upsertSchool(tx *gorm.DB, in SchoolUpsert) (*model.SchoolModel, error) {
	var sch model.SchoolModel
	err := tx.Where("school_name = ?", in.Name).First(&sch).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sch = model.SchoolModel{
			SchoolName:           in.Name,
			SchoolContingentCode: in.ContingentCode,
			SchoolTeacherName:    in.TeacherName,
			SchoolTeacherMobile:  in.TeacherMobile,
			SchoolTeacherEmail:   in.TeacherEmail,
		}
		if err := tx.Create(&sch).Error; err != nil {
			return nil, err
		}
		return &sch, nil
	case err != nil:
		return nil, err
	}

	updates := map[string]any{
		"school_teacher_name":   in.TeacherName,
		"school_teacher_mobile": in.TeacherMobile,
		"school_teacher_email":  in.TeacherEmail,
	}
	if in.ContingentCode != nil && *in.ContingentCode != "" {
		updates["school_contingent_code"] = *in.ContingentCode
	}
	if err := tx.Model(&sch).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &sch, nil
}

// isUniqueViolation recognizes postgres 23505 as well as the sqlite message
// the test store raises.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
