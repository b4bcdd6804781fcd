// internals/features/registration/service/projection_service.go
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/model"
)

type ProjectionService struct {
	DB *gorm.DB
}

func NewProjectionService(db *gorm.DB) *ProjectionService {
	return &ProjectionService{DB: db}
}

// ParticipantView is one roster row as served to clients.
type ParticipantView struct {
	Name   string        `json:"name"`
	Grade  int           `json:"grade"`
	Gender *model.Gender `json:"gender,omitempty"`
	Weight *float64      `json:"weight,omitempty"`
	Order  int           `json:"participantOrder"`
}

// RegisteredEventView is one event a school is entered in.
type RegisteredEventView struct {
	EventID      string            `json:"eventId"`
	EventName    string            `json:"eventName"`
	Participants []ParticipantView `json:"participants"`
}

// SchoolRegistrationView is everything on record for one school in one category.
type SchoolRegistrationView struct {
	School        *model.SchoolModel    `json:"school"`
	Registrations []RegisteredEventView `json:"registrations"`
}

// CheckResult answers "does this school have a registration in this category".
type CheckResult struct {
	HasRegistration bool                  `json:"hasRegistration"`
	School          *model.SchoolModel    `json:"school,omitempty"`
	Registrations   []RegisteredEventView `json:"registrations,omitempty"`
}

// SchoolSummaryRow is one line of the admin cross-category summary.
type SchoolSummaryRow struct {
	SchoolName        string  `json:"schoolName"`
	ContingentCode    *string `json:"contingentCode,omitempty"`
	TeacherName       string  `json:"teacherName"`
	TeacherMobile     string  `json:"teacherMobile"`
	TeacherEmail      string  `json:"teacherEmail"`
	StageEvents       int     `json:"stageEvents"`
	SportsEvents      int     `json:"sportsEvents"`
	ClassroomEvents   int     `json:"classroomEvents"`
	TotalEvents       int     `json:"totalEvents"`
	TotalParticipants int     `json:"totalParticipants"`
}

// EventSummaryRow aggregates one event across every school entered in it.
type EventSummaryRow struct {
	EventName        string `json:"eventName"`
	ParticipantCount int    `json:"participantCount"`
	SchoolCount      int    `json:"schoolCount"`
}

// Stats are the headline counters for the admin dashboard.
type Stats struct {
	Schools                int `json:"schools"`
	StageRegistrations     int `json:"stageRegistrations"`
	SportsRegistrations    int `json:"sportsRegistrations"`
	ClassroomRegistrations int `json:"classroomRegistrations"`
	TotalParticipants      int `json:"totalParticipants"`
}

func orderedParticipants(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " ASC")
	}
}

// RegistrationsForSchool lists a school's stage registrations by id.
func (s *ProjectionService) RegistrationsForSchool(ctx context.Context, schoolID uuid.UUID) (*SchoolRegistrationView, error) {
	var sch model.SchoolModel
	err := s.DB.WithContext(ctx).Where("school_id = ?", schoolID).First(&sch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &SchoolNotFoundError{SchoolName: schoolID.String()}
	}
	if err != nil {
		return nil, err
	}

	events, err := s.stageEventsForSchool(ctx, sch.SchoolID)
	if err != nil {
		return nil, err
	}
	return &SchoolRegistrationView{School: &sch, Registrations: events}, nil
}

// CheckRegistration looks a school up by name and reports its entries in one
// category. A school that never submitted is not an error here.
func (s *ProjectionService) CheckRegistration(ctx context.Context, category, schoolName string) (*CheckResult, error) {
	var sch model.SchoolModel
	err := s.DB.WithContext(ctx).Where("school_name = ?", schoolName).First(&sch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &CheckResult{HasRegistration: false}, nil
	}
	if err != nil {
		return nil, err
	}

	var events []RegisteredEventView
	switch category {
	case constants.CategorySports:
		events, err = s.sportsEventsForSchool(ctx, sch.SchoolID)
	case constants.CategoryClassroom:
		events, err = s.classroomEventsForSchool(ctx, sch.SchoolID)
	default:
		events, err = s.stageEventsForSchool(ctx, sch.SchoolID)
	}
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return &CheckResult{HasRegistration: false, School: &sch}, nil
	}
	return &CheckResult{HasRegistration: true, School: &sch, Registrations: events}, nil
}

// AdminListings returns every school's entries for one category, one view per
// school, sorted by school name.
func (s *ProjectionService) AdminListings(ctx context.Context, category string) ([]SchoolRegistrationView, error) {
	var schools []model.SchoolModel
	if err := s.DB.WithContext(ctx).Order("school_name ASC").Find(&schools).Error; err != nil {
		return nil, err
	}

	views := make([]SchoolRegistrationView, 0, len(schools))
	for i := range schools {
		sch := schools[i]
		var (
			events []RegisteredEventView
			err    error
		)
		switch category {
		case constants.CategorySports:
			events, err = s.sportsEventsForSchool(ctx, sch.SchoolID)
		case constants.CategoryClassroom:
			events, err = s.classroomEventsForSchool(ctx, sch.SchoolID)
		default:
			events, err = s.stageEventsForSchool(ctx, sch.SchoolID)
		}
		if err != nil {
			return nil, err
		}
		if len(events) == 0 {
			continue
		}
		views = append(views, SchoolRegistrationView{School: &sch, Registrations: events})
	}
	return views, nil
}

// AdminSummary merges the three category listings into one row per school,
// most entries first.
func (s *ProjectionService) AdminSummary(ctx context.Context) ([]SchoolSummaryRow, error) {
	var schools []model.SchoolModel
	if err := s.DB.WithContext(ctx).Order("school_name ASC").Find(&schools).Error; err != nil {
		return nil, err
	}

	rows := make([]SchoolSummaryRow, 0, len(schools))
	for i := range schools {
		sch := schools[i]
		stage, err := s.stageEventsForSchool(ctx, sch.SchoolID)
		if err != nil {
			return nil, err
		}
		sports, err := s.sportsEventsForSchool(ctx, sch.SchoolID)
		if err != nil {
			return nil, err
		}
		classroom, err := s.classroomEventsForSchool(ctx, sch.SchoolID)
		if err != nil {
			return nil, err
		}

		total := len(stage) + len(sports) + len(classroom)
		if total == 0 {
			continue
		}
		participants := 0
		for _, group := range [][]RegisteredEventView{stage, sports, classroom} {
			for _, ev := range group {
				participants += len(ev.Participants)
			}
		}
		rows = append(rows, SchoolSummaryRow{
			SchoolName:        sch.SchoolName,
			ContingentCode:    sch.SchoolContingentCode,
			TeacherName:       sch.SchoolTeacherName,
			TeacherMobile:     sch.SchoolTeacherMobile,
			TeacherEmail:      sch.SchoolTeacherEmail,
			StageEvents:       len(stage),
			SportsEvents:      len(sports),
			ClassroomEvents:   len(classroom),
			TotalEvents:       total,
			TotalParticipants: participants,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalEvents > rows[j].TotalEvents
	})
	return rows, nil
}

// AdminEventSummary folds all three category listings into per-event totals,
// biggest roster first.
func (s *ProjectionService) AdminEventSummary(ctx context.Context) ([]EventSummaryRow, error) {
	type eventAgg struct {
		participants int
		schools      map[string]struct{}
	}
	byEvent := map[string]*eventAgg{}

	for _, category := range []string{constants.CategoryStage, constants.CategorySports, constants.CategoryClassroom} {
		views, err := s.AdminListings(ctx, category)
		if err != nil {
			return nil, err
		}
		for _, view := range views {
			for _, ev := range view.Registrations {
				name := ev.EventName
				if name == "" {
					name = "(Unknown stage event)"
				}
				agg := byEvent[name]
				if agg == nil {
					agg = &eventAgg{schools: map[string]struct{}{}}
					byEvent[name] = agg
				}
				agg.participants += len(ev.Participants)
				agg.schools[view.School.SchoolName] = struct{}{}
			}
		}
	}

	rows := make([]EventSummaryRow, 0, len(byEvent))
	for name, agg := range byEvent {
		rows = append(rows, EventSummaryRow{
			EventName:        name,
			ParticipantCount: agg.participants,
			SchoolCount:      len(agg.schools),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ParticipantCount != rows[j].ParticipantCount {
			return rows[i].ParticipantCount > rows[j].ParticipantCount
		}
		return rows[i].EventName < rows[j].EventName
	})
	return rows, nil
}

// CountStats tallies the dashboard counters.
func (s *ProjectionService) CountStats(ctx context.Context) (*Stats, error) {
	db := s.DB.WithContext(ctx)
	var out Stats

	counts := []struct {
		model any
		dst   *int
	}{
		{&model.SchoolModel{}, &out.Schools},
		{&model.EventRegistrationModel{}, &out.StageRegistrations},
		{&model.SportsRegistrationModel{}, &out.SportsRegistrations},
		{&model.ClassroomRegistrationModel{}, &out.ClassroomRegistrations},
	}
	for _, c := range counts {
		var n int64
		if err := db.Model(c.model).Count(&n).Error; err != nil {
			return nil, err
		}
		*c.dst = int(n)
	}

	participantModels := []any{
		&model.EventRegistrationParticipantModel{},
		&model.SportsRegistrationParticipantModel{},
		&model.ClassroomRegistrationParticipantModel{},
	}
	for _, m := range participantModels {
		var n int64
		if err := db.Model(m).Count(&n).Error; err != nil {
			return nil, err
		}
		out.TotalParticipants += int(n)
	}
	return &out, nil
}

// ParticipatingSchoolsCount counts schools holding at least one registration
// in any category.
func (s *ProjectionService) ParticipatingSchoolsCount(ctx context.Context) (int, error) {
	db := s.DB.WithContext(ctx)
	seen := map[uuid.UUID]struct{}{}

	queries := []struct {
		model  any
		column string
	}{
		{&model.EventRegistrationModel{}, "event_registration_school_id"},
		{&model.SportsRegistrationModel{}, "sports_registration_school_id"},
		{&model.ClassroomRegistrationModel{}, "classroom_registration_school_id"},
	}
	for _, q := range queries {
		var ids []uuid.UUID
		if err := db.Model(q.model).Distinct(q.column).Pluck(q.column, &ids).Error; err != nil {
			return 0, err
		}
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}
	return len(seen), nil
}

// ActiveStageEvents lists the stage catalog as shown on the public form.
func (s *ProjectionService) ActiveStageEvents(ctx context.Context) ([]model.EventModel, error) {
	var events []model.EventModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN event_categories ON event_categories.event_category_id = events.event_category_id").
		Where("events.event_is_active = ? AND event_categories.event_category_name = ?", true, constants.CategoryStage).
		Order("events.event_name ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *ProjectionService) stageEventsForSchool(ctx context.Context, schoolID uuid.UUID) ([]RegisteredEventView, error) {
	var regs []model.EventRegistrationModel
	err := s.DB.WithContext(ctx).
		Preload("Event").
		Preload("Participants", orderedParticipants("participant_order")).
		Where("event_registration_school_id = ?", schoolID).
		Order("event_registration_created_at ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}

	views := make([]RegisteredEventView, 0, len(regs))
	for _, reg := range regs {
		view := RegisteredEventView{EventID: reg.EventRegistrationEventID.String()}
		if reg.Event != nil {
			view.EventName = reg.Event.EventName
		}
		for _, p := range reg.Participants {
			view.Participants = append(view.Participants, ParticipantView{
				Name:   p.ParticipantName,
				Grade:  p.ParticipantGrade,
				Gender: p.ParticipantGender,
				Order:  p.ParticipantOrder,
			})
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].EventName < views[j].EventName })
	return views, nil
}

func (s *ProjectionService) sportsEventsForSchool(ctx context.Context, schoolID uuid.UUID) ([]RegisteredEventView, error) {
	var regs []model.SportsRegistrationModel
	err := s.DB.WithContext(ctx).
		Preload("Participants", orderedParticipants("sports_participant_order")).
		Where("sports_registration_school_id = ?", schoolID).
		Order("sports_registration_event_name ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}

	views := make([]RegisteredEventView, 0, len(regs))
	for _, reg := range regs {
		view := RegisteredEventView{
			EventID:   reg.SportsRegistrationEventID,
			EventName: reg.SportsRegistrationEventName,
		}
		for _, p := range reg.Participants {
			view.Participants = append(view.Participants, ParticipantView{
				Name:   p.SportsParticipantName,
				Grade:  p.SportsParticipantGrade,
				Gender: p.SportsParticipantGender,
				Weight: p.SportsParticipantWeight,
				Order:  p.SportsParticipantOrder,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *ProjectionService) classroomEventsForSchool(ctx context.Context, schoolID uuid.UUID) ([]RegisteredEventView, error) {
	var regs []model.ClassroomRegistrationModel
	err := s.DB.WithContext(ctx).
		Preload("Participants", orderedParticipants("classroom_participant_order")).
		Where("classroom_registration_school_id = ?", schoolID).
		Order("classroom_registration_event_name ASC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}

	views := make([]RegisteredEventView, 0, len(regs))
	for _, reg := range regs {
		view := RegisteredEventView{
			EventID:   reg.ClassroomRegistrationEventID,
			EventName: reg.ClassroomRegistrationEventName,
		}
		for _, p := range reg.Participants {
			view.Participants = append(view.Participants, ParticipantView{
				Name:  p.ClassroomParticipantName,
				Grade: p.ClassroomParticipantGrade,
				Order: p.ClassroomParticipantOrder,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
