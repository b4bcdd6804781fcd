// internals/features/registration/dto/registration_dto.go
package dto

import (
	"strings"

	"perseverantia_backend/internals/features/registration/model"
	"perseverantia_backend/internals/features/registration/service"
)

type SchoolRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=150"`
	ContingentCode *string `json:"contingentCode" validate:"omitempty,max=30"`
	TeacherName    string  `json:"teacherName" validate:"required,max=100"`
	TeacherMobile  string  `json:"teacherMobile" validate:"required,min=7,max=20"`
	TeacherEmail   string  `json:"teacherEmail" validate:"required,email,max=150"`
}

type ParticipantRequest struct {
	Name             string   `json:"name" validate:"required,max=100"`
	Grade            int      `json:"grade" validate:"required,fest_grade"`
	Gender           *string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0,lte=200"`
	ParticipantOrder int      `json:"participantOrder" validate:"required,gte=1"`
}

type EventSubmissionRequest struct {
	EventID      string               `json:"eventId" validate:"required"`
	Participants []ParticipantRequest `json:"participants" validate:"required,min=1,dive"`
}

type RegisterRequest struct {
	School SchoolRequest            `json:"school" validate:"required"`
	Events []EventSubmissionRequest `json:"events" validate:"required,min=1,dive"`
}

func (r *SchoolRequest) ToUpsert() service.SchoolUpsert {
	up := service.SchoolUpsert{
		Name:          strings.TrimSpace(r.Name),
		TeacherName:   strings.TrimSpace(r.TeacherName),
		TeacherMobile: strings.TrimSpace(r.TeacherMobile),
		TeacherEmail:  strings.TrimSpace(strings.ToLower(r.TeacherEmail)),
	}
	if r.ContingentCode != nil {
		code := strings.TrimSpace(*r.ContingentCode)
		if code != "" {
			up.ContingentCode = &code
		}
	}
	return up
}

func (r *RegisterRequest) ToSubmissions() []service.EventSubmission {
	subs := make([]service.EventSubmission, 0, len(r.Events))
	for _, ev := range r.Events {
		sub := service.EventSubmission{EventID: strings.TrimSpace(ev.EventID)}
		for _, p := range ev.Participants {
			draft := service.ParticipantDraft{
				Name:   strings.TrimSpace(p.Name),
				Grade:  p.Grade,
				Weight: p.Weight,
				Order:  p.ParticipantOrder,
			}
			if p.Gender != nil {
				g := model.Gender(strings.ToLower(strings.TrimSpace(*p.Gender)))
				draft.Gender = &g
			}
			sub.Roster = append(sub.Roster, draft)
		}
		subs = append(subs, sub)
	}
	return subs
}

// SubmissionResponse is the success body returned on register.
type SubmissionResponse struct {
	SchoolID         string                  `json:"schoolId"`
	EventsRegistered int                     `json:"eventsRegistered"`
	Events           []service.AcceptedEvent `json:"events"`
}

func NewSubmissionResponse(res *service.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		SchoolID:         res.School.SchoolID.String(),
		EventsRegistered: len(res.Events),
		Events:           res.Events,
	}
}

// LoginRequest covers both the school and the admin login forms.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
