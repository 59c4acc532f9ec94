// file: internals/features/attendance/controller/attendance_write_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/attendance/dto"
	m "sekolahku_backend/internals/features/attendance/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceWriteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceWriteController(db *gorm.DB, v *validator.Validate) *AttendanceWriteController {
	return &AttendanceWriteController{DB: db, Validate: v}
}

/* =========================
   POST /api/u/attendance/check-in
   Append-only: duplikat (schedule, tanggal) diselesaikan saat read
   dengan aturan record terbaru menang.
   ========================= */
func (ctl *AttendanceWriteController) CheckIn(c *fiber.Ctx) error {
	var req d.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// jadwal harus ada
	var sched m.ClassScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&sched, "class_schedule_id = ?", req.ScheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	record := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&record).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Check-in tercatat", record)
}

/* =========================
   POST /api/a/leaves
   ========================= */
func (ctl *AttendanceWriteController) CreateLeave(c *fiber.Ctx) error {
	var req d.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndDate < req.StartDate { // YYYY-MM-DD aman dibandingkan leksikal
		return helper.JsonError(c, http.StatusBadRequest, "end_date harus >= start_date")
	}

	leave := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&leave).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pengajuan izin dibuat", d.LeaveResponseFromModel(leave))
}

/* =========================
   PATCH /api/a/leaves/:id/status
   approve / reject oleh supervisor
   ========================= */
func (ctl *AttendanceWriteController) UpdateLeaveStatus(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, http.StatusBadRequest, "id izin tidak valid")
	}

	var req d.UpdateLeaveStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var leave m.LeaveRequestModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&leave, "leave_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Izin tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	leave.LeaveRequestStatus = m.LeaveStatus(req.Status)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&leave).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Status izin diperbarui", d.LeaveResponseFromModel(leave))
}
