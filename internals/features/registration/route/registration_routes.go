// internals/features/registration/route/registration_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perseverantia_backend/internals/features/registration/controller"
	"perseverantia_backend/internals/features/schools"
	"perseverantia_backend/internals/middlewares"
	"perseverantia_backend/internals/middlewares/auth"
)

// RegistrationRoutes mounts the public submission and lookup endpoints.
func RegistrationRoutes(api fiber.Router, db *gorm.DB, dir *schools.Directory, notifier controller.Notifier) {
	regCtl := controller.NewRegistrationController(db, dir, notifier)
	evCtl := controller.NewEventController(db)

	// Submissions replace any earlier submission by the same school.
	api.Post("/register", middlewares.RegisterRateLimiter(), regCtl.RegisterStage)
	api.Post("/register-sports", middlewares.RegisterRateLimiter(), regCtl.RegisterSports)
	api.Post("/register-classroom", middlewares.RegisterRateLimiter(), regCtl.RegisterClassroom)

	// Lookups accept a token when present, ?username= otherwise.
	api.Get("/check-registration", auth.OptionalAuthMiddleware(), regCtl.CheckStageRegistration)
	api.Get("/check-sports-registration", auth.OptionalAuthMiddleware(), regCtl.CheckSportsRegistration)
	api.Get("/check-classroom-registration", auth.OptionalAuthMiddleware(), regCtl.CheckClassroomRegistration)

	api.Get("/registrations/:schoolId", regCtl.RegistrationsBySchool)
	api.Get("/participating-schools", regCtl.ParticipatingSchools)
	api.Get("/stats", regCtl.Stats)

	api.Get("/events/stage", evCtl.ListStageEvents)
	api.Get("/events/sports", evCtl.ListSportsEvents)
	api.Get("/events/classroom", evCtl.ListClassroomEvents)

	api.Post("/school/login", middlewares.LoginRateLimiter(), regCtl.SchoolLogin)
}
