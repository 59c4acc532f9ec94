// file: internals/features/attendance/route/attendance_route.go
package route

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	ctr "sekolahku_backend/internals/features/attendance/controller"
	repo "sekolahku_backend/internals/features/attendance/repository"
	svc "sekolahku_backend/internals/features/attendance/service"
	"sekolahku_backend/internals/middlewares"
)

// AttendanceRoutes merakit repo → engine → controller lalu daftarkan endpoint.
// Accessor disuntik eksplisit — tanpa singleton aplikasi.
func AttendanceRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	repository := repo.NewAttendanceRepository(db)
	engine := svc.NewDashboardService(repository, repository, repository)
	// jam engine dipatok ke zona waktu sekolah, bukan TZ host;
	// "sesi sudah lewat" dan minggu berjalan ikut jam dinding sekolah
	engine.Now = func() time.Time {
		loc := configs.AppTimezone
		if loc == nil {
			loc = time.Local
		}
		return time.Now().In(loc)
	}

	dashboardCtl := ctr.NewDashboardController(engine, repository, repository, v)
	writeCtl := ctr.NewAttendanceWriteController(db, v)

	// 👀 supervisor/admin
	admin := api.Group("/a")
	admin.Get("/attendance/dashboard", dashboardCtl.GetDaily)
	admin.Get("/attendance/dashboard/weekly", dashboardCtl.GetWeekly)
	admin.Get("/attendance/status", dashboardCtl.ProbeStatus)
	admin.Get("/schedules", dashboardCtl.ListSchedules)
	admin.Get("/leaves", dashboardCtl.ListLeaves)
	admin.Post("/leaves", writeCtl.CreateLeave)
	admin.Patch("/leaves/:id/status", writeCtl.UpdateLeaveStatus)

	// 🙋 guru
	user := api.Group("/u")
	user.Post("/attendance/check-in", middlewares.CheckInRateLimiter(), writeCtl.CheckIn)
}
