// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "perseverantia_backend/internals/features/admin/route"
	"perseverantia_backend/internals/features/registration/controller"
	registrationRoute "perseverantia_backend/internals/features/registration/route"
	"perseverantia_backend/internals/features/schools"
)

// SetupRoutes mounts every endpoint under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, dir *schools.Directory, notifier controller.Notifier) {
	api := app.Group("/api")

	registrationRoute.RegistrationRoutes(api, db, dir, notifier)
	adminRoute.AdminRoutes(api, db, dir)
}
