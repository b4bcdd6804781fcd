package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"perseverantia_backend/internals/features/registration/model"
	"perseverantia_backend/internals/features/registration/service"
)

func testSchoolModel() *model.SchoolModel {
	code := "PER-042"
	return &model.SchoolModel{
		SchoolName:           "St. Mary's",
		SchoolContingentCode: &code,
		SchoolTeacherName:    "R. Fernandes",
		SchoolTeacherMobile:  "9876543210",
		SchoolTeacherEmail:   "teacher@example.com",
	}
}

func TestStageRowsOneRowPerParticipant(t *testing.T) {
	male := model.GenderMale
	events := []service.RegisteredEventView{
		{
			EventName: "Gratia",
			Participants: []service.ParticipantView{
				{Name: "Zara", Grade: 10, Order: 1},
				{Name: "Amit", Grade: 11, Gender: &male, Order: 2},
			},
		},
	}
	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	rows := StageRows(testSchoolModel(), events, at)
	require.Len(t, rows, 2)
	require.Len(t, rows[0], len(StageHeaders))

	require.Equal(t, "2026-08-29T10:00:00Z", rows[0][0])
	require.Equal(t, "St. Mary's", rows[0][1])
	require.Equal(t, "PER-042", rows[0][2])
	require.Equal(t, "Gratia", rows[0][6])
	require.Equal(t, "Zara", rows[0][7])
	require.Equal(t, 10, rows[0][8])
	require.Equal(t, "", rows[0][9])
	require.Equal(t, 1, rows[0][10])

	require.Equal(t, "male", rows[1][9])
	require.Equal(t, 2, rows[1][10])
}

func TestSportsRowsIncludeWeight(t *testing.T) {
	female := model.GenderFemale
	weight := 55.5
	events := []service.RegisteredEventView{
		{
			EventName: "Table Tennis: Singles",
			Participants: []service.ParticipantView{
				{Name: "Neha", Grade: 9, Gender: &female, Weight: &weight, Order: 1},
				{Name: "Ravi", Grade: 12, Order: 2},
			},
		},
	}

	rows := SportsRows(testSchoolModel(), events, time.Now())
	require.Len(t, rows, 2)
	require.Len(t, rows[0], len(SportsHeaders))
	require.Equal(t, "55.5", rows[0][10])
	require.Equal(t, "", rows[1][10])
}

func TestClassroomRowsOmitGenderAndWeight(t *testing.T) {
	events := []service.RegisteredEventView{
		{
			EventName: "Fabula",
			Participants: []service.ParticipantView{
				{Name: "Zara", Grade: 10, Order: 1},
			},
		},
	}

	rows := ClassroomRows(testSchoolModel(), events, time.Now())
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(ClassroomHeaders))
	require.Equal(t, "Fabula", rows[0][6])
	require.Equal(t, "Zara", rows[0][7])
	require.Equal(t, 10, rows[0][8])
}

func TestStageRowsBlankContingentCode(t *testing.T) {
	sch := testSchoolModel()
	sch.SchoolContingentCode = nil
	events := []service.RegisteredEventView{
		{EventName: "Gratia", Participants: []service.ParticipantView{{Name: "Zara", Grade: 10, Order: 1}}},
	}

	rows := StageRows(sch, events, time.Now())
	require.Len(t, rows, 1)
	require.Equal(t, "", rows[0][2])
}

func TestFilterSchoolRowsDropsOnlyMatchingSchool(t *testing.T) {
	rows := [][]interface{}{
		{"ts", "St. Mary's", "", "T1", "m", "e", "Gratia", "Zara", 10, "", 1},
		{"ts", "Don Bosco", "", "T2", "m", "e", "Gratia", "Amit", 11, "male", 1},
		{"ts", "St. Mary's", "", "T1", "m", "e", "Panache", "Neha", 9, "", 1},
	}

	kept := FilterSchoolRows(rows, "St. Mary's")
	require.Len(t, kept, 1)
	require.Equal(t, "Don Bosco", kept[0][1])
}

func TestFilterSchoolRowsKeepsShortRows(t *testing.T) {
	rows := [][]interface{}{
		{"only-one-cell"},
		{},
	}
	kept := FilterSchoolRows(rows, "St. Mary's")
	require.Len(t, kept, 2)
}
