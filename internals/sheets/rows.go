// internals/sheets/rows.go
package sheets

import (
	"fmt"
	"time"

	"perseverantia_backend/internals/features/registration/model"
	"perseverantia_backend/internals/features/registration/service"
)

const (
	SheetStage     = "Stage Registrations"
	SheetSports    = "Sports Registrations"
	SheetClassroom = "Classroom Events"
)

// Column index of School Name within every sheet layout.
const schoolNameColumn = 1

var StageHeaders = []interface{}{
	"Timestamp", "School Name", "Contingent Code", "Teacher Name", "Teacher Mobile",
	"Teacher Email", "Event Name", "Participant Name", "Grade", "Gender", "Participant Order",
}

var SportsHeaders = []interface{}{
	"Timestamp", "School Name", "Contingent Code", "Teacher Name", "Teacher Mobile",
	"Teacher Email", "Event Name", "Participant Name", "Grade", "Gender", "Weight (kg)",
	"Participant Order",
}

var ClassroomHeaders = []interface{}{
	"Timestamp", "School Name", "Contingent Code", "Teacher Name", "Teacher Mobile",
	"Teacher Email", "Event Name", "Participant Name", "Grade",
}

func schoolPrefix(sch *model.SchoolModel, at time.Time) []interface{} {
	code := ""
	if sch.SchoolContingentCode != nil {
		code = *sch.SchoolContingentCode
	}
	return []interface{}{
		at.Format(time.RFC3339),
		sch.SchoolName,
		code,
		sch.SchoolTeacherName,
		sch.SchoolTeacherMobile,
		sch.SchoolTeacherEmail,
	}
}

// StageRows flattens a school's stage registrations, one row per participant.
func StageRows(sch *model.SchoolModel, events []service.RegisteredEventView, at time.Time) [][]interface{} {
	var rows [][]interface{}
	for _, ev := range events {
		for _, p := range ev.Participants {
			gender := ""
			if p.Gender != nil {
				gender = string(*p.Gender)
			}
			row := append(schoolPrefix(sch, at),
				ev.EventName, p.Name, p.Grade, gender, p.Order)
			rows = append(rows, row)
		}
	}
	return rows
}

// SportsRows flattens sports registrations; weight stays blank when absent.
func SportsRows(sch *model.SchoolModel, events []service.RegisteredEventView, at time.Time) [][]interface{} {
	var rows [][]interface{}
	for _, ev := range events {
		for _, p := range ev.Participants {
			gender := ""
			if p.Gender != nil {
				gender = string(*p.Gender)
			}
			weight := ""
			if p.Weight != nil {
				weight = fmt.Sprintf("%g", *p.Weight)
			}
			row := append(schoolPrefix(sch, at),
				ev.EventName, p.Name, p.Grade, gender, weight, p.Order)
			rows = append(rows, row)
		}
	}
	return rows
}

// ClassroomRows flattens classroom registrations (no gender or weight columns).
func ClassroomRows(sch *model.SchoolModel, events []service.RegisteredEventView, at time.Time) [][]interface{} {
	var rows [][]interface{}
	for _, ev := range events {
		for _, p := range ev.Participants {
			row := append(schoolPrefix(sch, at), ev.EventName, p.Name, p.Grade)
			rows = append(rows, row)
		}
	}
	return rows
}

// FilterSchoolRows keeps the data rows that belong to other schools. The
// header row must not be part of the input.
func FilterSchoolRows(rows [][]interface{}, schoolName string) [][]interface{} {
	kept := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		if len(row) > schoolNameColumn && fmt.Sprint(row[schoolNameColumn]) == schoolName {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
