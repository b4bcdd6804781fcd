// internals/features/registration/controller/registration_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"perseverantia_backend/internals/configs"
	"perseverantia_backend/internals/constants"
	"perseverantia_backend/internals/features/registration/dto"
	"perseverantia_backend/internals/features/registration/service"
	"perseverantia_backend/internals/features/schools"
	helper "perseverantia_backend/internals/helpers"

	"gorm.io/gorm"
)

// Notifier receives fire-and-forget sync signals after a successful submit.
type Notifier interface {
	NotifyStage(schoolName string)
	NotifySports(schoolName string)
	NotifyClassroom(schoolName string)
}

type RegistrationController struct {
	DB          *gorm.DB
	Registrar   *service.RegistrationService
	Projections *service.ProjectionService
	Directory   *schools.Directory
	Notifier    Notifier
}

func NewRegistrationController(db *gorm.DB, dir *schools.Directory, notifier Notifier) *RegistrationController {
	return &RegistrationController{
		DB:          db,
		Registrar:   service.NewRegistrationService(db),
		Projections: service.NewProjectionService(db),
		Directory:   dir,
		Notifier:    notifier,
	}
}

// mapDomainError translates service errors into the response envelope.
func mapDomainError(c *fiber.Ctx, err error) error {
	var (
		countErr  *service.ParticipantCountError
		gradeErr  *service.GradeRangeError
		genderErr *service.GenderCompositionError
		notFound  *service.EventNotFoundError
		dup       *service.DuplicateRegistrationError
		noSchool  *service.SchoolNotFoundError
	)
	switch {
	case errors.As(err, &countErr):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, countErr.Error(), "PARTICIPANT_COUNT")
	case errors.As(err, &gradeErr):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, gradeErr.Error(), "GRADE_RANGE")
	case errors.As(err, &genderErr):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, genderErr.Error(), "GENDER_COMPOSITION")
	case errors.As(err, &notFound):
		return helper.JsonError(c, fiber.StatusNotFound, notFound.Error())
	case errors.As(err, &dup):
		return helper.JsonError(c, fiber.StatusConflict, dup.Error())
	case errors.As(err, &noSchool):
		return helper.JsonError(c, fiber.StatusNotFound, noSchool.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

func (ctl *RegistrationController) register(
	c *fiber.Ctx,
	submit func(ctx *fiber.Ctx, school service.SchoolUpsert, subs []service.EventSubmission) (*service.SubmissionResult, error),
	notify func(schoolName string),
) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	result, err := submit(c, req.School.ToUpsert(), req.ToSubmissions())
	if err != nil {
		return mapDomainError(c, err)
	}

	if notify != nil {
		notify(result.School.SchoolName)
	}
	return helper.JsonCreated(c, "Registration saved", dto.NewSubmissionResponse(result))
}

// POST /api/register
func (ctl *RegistrationController) RegisterStage(c *fiber.Ctx) error {
	return ctl.register(c,
		func(fc *fiber.Ctx, school service.SchoolUpsert, subs []service.EventSubmission) (*service.SubmissionResult, error) {
			return ctl.Registrar.RegisterStage(fc.Context(), school, subs)
		},
		ctl.notifyFunc(constants.CategoryStage))
}

// POST /api/register-sports
func (ctl *RegistrationController) RegisterSports(c *fiber.Ctx) error {
	return ctl.register(c,
		func(fc *fiber.Ctx, school service.SchoolUpsert, subs []service.EventSubmission) (*service.SubmissionResult, error) {
			return ctl.Registrar.RegisterSports(fc.Context(), school, subs)
		},
		ctl.notifyFunc(constants.CategorySports))
}

// POST /api/register-classroom
func (ctl *RegistrationController) RegisterClassroom(c *fiber.Ctx) error {
	return ctl.register(c,
		func(fc *fiber.Ctx, school service.SchoolUpsert, subs []service.EventSubmission) (*service.SubmissionResult, error) {
			return ctl.Registrar.RegisterClassroom(fc.Context(), school, subs)
		},
		ctl.notifyFunc(constants.CategoryClassroom))
}

func (ctl *RegistrationController) notifyFunc(category string) func(string) {
	if ctl.Notifier == nil {
		return nil
	}
	switch category {
	case constants.CategorySports:
		return ctl.Notifier.NotifySports
	case constants.CategoryClassroom:
		return ctl.Notifier.NotifyClassroom
	default:
		return ctl.Notifier.NotifyStage
	}
}

// schoolNameFromRequest resolves the caller's school from the token first,
// then from the ?username= fallback the public form still uses.
func (ctl *RegistrationController) schoolNameFromRequest(c *fiber.Ctx) string {
	if name, ok := c.Locals("schoolName").(string); ok && name != "" {
		return name
	}
	username, _ := c.Locals("username").(string)
	if username == "" {
		username = c.Query("username")
	}
	if username == "" {
		return ""
	}
	return ctl.Directory.SchoolNameFor(username)
}

func (ctl *RegistrationController) checkRegistration(c *fiber.Ctx, category string) error {
	schoolName := ctl.schoolNameFromRequest(c)
	if schoolName == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "No school mapped to this account")
	}

	result, err := ctl.Projections.CheckRegistration(c.Context(), category, schoolName)
	if err != nil {
		return mapDomainError(c, err)
	}
	return helper.JsonOK(c, "Registration status", result)
}

// GET /api/check-registration
func (ctl *RegistrationController) CheckStageRegistration(c *fiber.Ctx) error {
	return ctl.checkRegistration(c, constants.CategoryStage)
}

// GET /api/check-sports-registration
func (ctl *RegistrationController) CheckSportsRegistration(c *fiber.Ctx) error {
	return ctl.checkRegistration(c, constants.CategorySports)
}

// GET /api/check-classroom-registration
func (ctl *RegistrationController) CheckClassroomRegistration(c *fiber.Ctx) error {
	return ctl.checkRegistration(c, constants.CategoryClassroom)
}

// GET /api/registrations/:schoolId
func (ctl *RegistrationController) RegistrationsBySchool(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("schoolId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school id")
	}

	view, err := ctl.Projections.RegistrationsForSchool(c.Context(), schoolID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return helper.JsonOK(c, "School registrations", view)
}

// GET /api/participating-schools
func (ctl *RegistrationController) ParticipatingSchools(c *fiber.Ctx) error {
	count, err := ctl.Projections.ParticipatingSchoolsCount(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return helper.JsonOK(c, "Participating schools", fiber.Map{"count": count})
}

// GET /api/stats
func (ctl *RegistrationController) Stats(c *fiber.Ctx) error {
	stats, err := ctl.Projections.CountStats(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return helper.JsonOK(c, "Registration stats", stats)
}

// POST /api/school/login
func (ctl *RegistrationController) SchoolLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	entry, ok := ctl.Directory.Authenticate(req.Username, req.Password)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	claims := jwt.MapClaims{
		"username":   entry.Username,
		"role":       "school",
		"schoolName": entry.SchoolName,
		"exp":        time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token":      signed,
		"username":   entry.Username,
		"schoolName": entry.SchoolName,
	})
}
