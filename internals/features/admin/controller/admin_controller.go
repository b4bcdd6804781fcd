// internals/features/admin/controller/admin_controller.go
package controller

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"perseverantia_backend/internals/configs"
	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/dto"
	"perseverantia_backend/internals/features/registration/service"
	"perseverantia_backend/internals/features/schools"
	helper "perseverantia_backend/internals/helpers"
)

type AdminController struct {
	DB          *gorm.DB
	Projections *service.ProjectionService
	Directory   *schools.Directory
}

func NewAdminController(db *gorm.DB, dir *schools.Directory) *AdminController {
	return &AdminController{
		DB:          db,
		Projections: service.NewProjectionService(db),
		Directory:   dir,
	}
}

// POST /api/admin/login
func (ctl *AdminController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(configs.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(configs.AdminPassword)) == 1
	if configs.AdminUsername == "" || !userOK || !passOK {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid admin credentials")
	}

	claims := jwt.MapClaims{
		"username": req.Username,
		"role":     "admin",
		"exp":      time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":    signed,
		"username": req.Username,
	})
}

// GET /api/admin/check-auth
func (ctl *AdminController) CheckAuth(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	return helper.JsonOK(c, "Authenticated", fiber.Map{
		"authenticated": true,
		"username":      username,
	})
}

func (ctl *AdminController) listings(c *fiber.Ctx, category string) error {
	views, err := ctl.Projections.AdminListings(c.Context(), category)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load registrations")
	}
	return helper.JsonOK(c, category+" registrations", fiber.Map{
		"count":   len(views),
		"schools": views,
	})
}

// GET /api/admin/registrations
func (ctl *AdminController) StageListings(c *fiber.Ctx) error {
	return ctl.listings(c, constants.CategoryStage)
}

// GET /api/admin/sports-registrations
func (ctl *AdminController) SportsListings(c *fiber.Ctx) error {
	return ctl.listings(c, constants.CategorySports)
}

// GET /api/admin/classroom-registrations
func (ctl *AdminController) ClassroomListings(c *fiber.Ctx) error {
	return ctl.listings(c, constants.CategoryClassroom)
}

// GET /api/admin/summary
func (ctl *AdminController) Summary(c *fiber.Ctx) error {
	rows, err := ctl.Projections.AdminSummary(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not build summary")
	}
	events, err := ctl.Projections.AdminEventSummary(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not build summary")
	}
	return helper.JsonOK(c, "Registration summary", fiber.Map{
		"participatingSchools": len(rows),
		"eventSummary":         events,
		"schools":              rows,
	})
}

// GET /api/admin/stats
func (ctl *AdminController) Stats(c *fiber.Ctx) error {
	stats, err := ctl.Projections.CountStats(c.Context())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load stats")
	}
	return helper.JsonOK(c, "Registration stats", stats)
}

// GET /api/admin/school-mappings
func (ctl *AdminController) SchoolMappings(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Configured school accounts", fiber.Map{
		"count":   ctl.Directory.Count(),
		"schools": ctl.Directory.Entries(),
	})
}
