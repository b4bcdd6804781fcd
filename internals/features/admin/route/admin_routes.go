// internals/features/admin/route/admin_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perseverantia_backend/internals/features/admin/controller"
	"perseverantia_backend/internals/features/schools"
	"perseverantia_backend/internals/middlewares"
	"perseverantia_backend/internals/middlewares/auth"
)

// AdminRoutes mounts the admin dashboard endpoints under /admin.
func AdminRoutes(api fiber.Router, db *gorm.DB, dir *schools.Directory) {
	ctl := controller.NewAdminController(db, dir)

	admin := api.Group("/admin")
	admin.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	protected := admin.Group("", auth.RequireAdmin())
	protected.Get("/check-auth", ctl.CheckAuth)
	protected.Get("/registrations", ctl.StageListings)
	protected.Get("/sports-registrations", ctl.SportsListings)
	protected.Get("/classroom-registrations", ctl.ClassroomListings)
	protected.Get("/summary", ctl.Summary)
	protected.Get("/stats", ctl.Stats)
	protected.Get("/school-mappings", ctl.SchoolMappings)
}
