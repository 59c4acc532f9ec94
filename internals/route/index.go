// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/attendance/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	v := validator.New()
	api := app.Group("/api")
	attendanceRoute.AttendanceRoutes(api, db, v)
}
