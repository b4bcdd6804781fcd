// internals/features/registration/controller/event_controller.go
package controller

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/service"
	helper "perseverantia_backend/internals/helpers"
)

type EventController struct {
	DB          *gorm.DB
	Projections *service.ProjectionService
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Projections: service.NewProjectionService(db)}
}

// GET /api/events/stage
func (ctl *EventController) ListStageEvents(c *fiber.Ctx) error {
	events, err := ctl.Projections.ActiveStageEvents(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load events")
	}
	return helper.JsonOK(c, "Stage events", events)
}

// GET /api/events/sports
func (ctl *EventController) ListSportsEvents(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Sports events", catalogList(constants.SportsEventNames))
}

// GET /api/events/classroom
func (ctl *EventController) ListClassroomEvents(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Classroom events", catalogList(constants.ClassroomEventNames))
}

type catalogEntry struct {
	EventID   string `json:"eventId"`
	EventName string `json:"eventName"`
}

func catalogList(catalog map[string]string) []catalogEntry {
	out := make([]catalogEntry, 0, len(catalog))
	for id, name := range catalog {
		out = append(out, catalogEntry{EventID: id, EventName: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventName < out[j].EventName })
	return out
}
