// internals/constants/categories.go
package constants

// Category names as seeded in event_categories.
const (
	CategoryStage     = "Stage"
	CategorySports    = "Sports"
	CategoryClassroom = "Classroom"
)

// Sports and classroom events are a fixed catalog: the frontend submits the
// short id, the display name is resolved here. Stage events live in the
// events table instead because they carry roster constraints.
var SportsEventNames = map[string]string{
	"explorare":            "Explorare",
	"monopolium":           "Monopolium",
	"football-u18-boys":    "Football: Category 1: U18 Boys",
	"football-u16-boys":    "Football: Category 2: U16 Boys",
	"football-u18-girls":   "Football: Category 3: U18 Girls",
	"basketball-u19-boys":  "Basketball: Boys (U19)",
	"basketball-u16-boys":  "Basketball: Boys (U16)",
	"basketball-u19-girls": "Basketball: Girls (U19)",
	"basketball-u16-girls": "Basketball: Girls (U16)",
	"gully-cricket":        "Gully Cricket",
	"table-tennis":         "Table Tennis",
	"tug-of-war-boys":      "Tug Of War: Boys (Under 16 and Under 19)",
	"tug-of-war-girls":     "Tug Of War: Girls (Under 16 and Under 19)",
}

var ClassroomEventNames = map[string]string{
	"admeta-cat1": "Admeta: Category 1",
	"admeta-cat2": "Admeta: Category 2",
	"artem":       "Artem",
	"carmen-cat1": "Carmen: Category 1",
	"carmen-cat2": "Carmen: Category 2",
	"fabula":      "Fabula",
	"fortuna":     "Fortuna",
	"codeferno":   "Codeferno",
	"gustatio":    "Gustatio",
	"mahim16":     "Mahim 16",
	"adventurium": "‘Ad’venturium",
}

// Grade domain for every participant, regardless of per-event bounds.
const (
	GradeFloor   = 8
	GradeCeiling = 12
)
