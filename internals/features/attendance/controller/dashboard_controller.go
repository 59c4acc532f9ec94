// file: internals/features/attendance/controller/dashboard_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	d "sekolahku_backend/internals/features/attendance/dto"
	repo "sekolahku_backend/internals/features/attendance/repository"
	svc "sekolahku_backend/internals/features/attendance/service"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type DashboardController struct {
	Service  *svc.DashboardService
	Catalog  repo.ScheduleCatalog
	Leaves   repo.LeaveRegistry
	Validate *validator.Validate
}

func NewDashboardController(service *svc.DashboardService, catalog repo.ScheduleCatalog, leaves repo.LeaveRegistry, v *validator.Validate) *DashboardController {
	return &DashboardController{Service: service, Catalog: catalog, Leaves: leaves, Validate: v}
}

/* =========================
   Helpers
   ========================= */

// tanggal dari query; kosong → hari ini (zona waktu app)
func dateOrToday(raw string) (time.Time, bool) {
	if raw == "" {
		loc := configs.AppTimezone
		if loc == nil {
			loc = time.Local
		}
		now := time.Now().In(loc)
		y, mo, dd := now.Date()
		return time.Date(y, mo, dd, 0, 0, 0, 0, loc), true
	}
	return d.ParseDateYYYYMMDD(raw)
}

func writeEngineError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}
	var dae *svc.DataAccessError
	if errors.As(err, &dae) {
		// dashboard gagal utuh — tidak ada hasil parsial
		return helper.JsonError(c, http.StatusInternalServerError, dae.Error())
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   GET /api/a/attendance/dashboard?date=YYYY-MM-DD
   ========================= */
func (ctl *DashboardController) GetDaily(c *fiber.Ctx) error {
	var q d.DailyDashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, ok := dateOrToday(q.Date)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	summary, err := ctl.Service.GetDailyDashboard(c.UserContext(), date)
	if err != nil {
		return writeEngineError(c, err)
	}
	return helper.JsonOK(c, "Dashboard harian", summary)
}

/* =========================
   GET /api/a/attendance/dashboard/weekly?week_offset=N
   week_offset: semua integer valid (0 = minggu ini)
   ========================= */
func (ctl *DashboardController) GetWeekly(c *fiber.Ctx) error {
	var q d.WeeklyDashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	weekly, err := ctl.Service.GetWeeklyDashboard(c.UserContext(), q.WeekOffset)
	if err != nil {
		return writeEngineError(c, err)
	}
	return helper.JsonOK(c, "Dashboard mingguan", weekly)
}

/* =========================
   GET /api/a/attendance/status?schedule_id=&date=
   Probe satu sesi (debug)
   ========================= */
func (ctl *DashboardController) ProbeStatus(c *fiber.Ctx) error {
	var q d.StatusProbeQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, ok := dateOrToday(q.Date)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	view, err := ctl.Service.ResolveSessionStatus(c.UserContext(), q.ScheduleID, date)
	if err != nil {
		return writeEngineError(c, err)
	}
	return helper.JsonOK(c, "Status sesi", view)
}

/* =========================
   GET /api/a/schedules?date=YYYY-MM-DD
   Katalog sesi (sudah dedup) untuk satu tanggal
   ========================= */
func (ctl *DashboardController) ListSchedules(c *fiber.Ctx) error {
	var q d.DailyDashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, ok := dateOrToday(q.Date)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	schedules, err := ctl.Catalog.SchedulesForDate(c.UserContext(), date)
	if err != nil {
		return writeEngineError(c, err)
	}
	out := make([]d.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, d.ScheduleResponseFromModel(s))
	}
	return helper.JsonList(c, "Jadwal aktif", out)
}

/* =========================
   GET /api/a/leaves?date=YYYY-MM-DD
   Semua izin yang overlap tanggal (termasuk pending/rejected, untuk audit)
   ========================= */
func (ctl *DashboardController) ListLeaves(c *fiber.Ctx) error {
	var q d.DailyDashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, ok := dateOrToday(q.Date)
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	leaves, err := ctl.Leaves.LeavesOverlappingDate(c.UserContext(), date)
	if err != nil {
		return writeEngineError(c, err)
	}
	out := make([]d.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		out = append(out, d.LeaveResponseFromModel(lv))
	}
	return helper.JsonList(c, "Daftar izin", out)
}
