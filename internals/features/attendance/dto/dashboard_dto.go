// file: internals/features/attendance/dto/dashboard_dto.go
package dto

import (
	"strings"
	"time"

	m "sekolahku_backend/internals/features/attendance/model"
)

/* =========================================================
   Helpers
   ========================================================= */

func ParseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

/* =========================================================
   1) REQUESTS (query)
   ========================================================= */

// tanggal kosong → "hari ini" (zona waktu app) di controller
type DailyDashboardQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

// week_offset: SEMUA integer valid (0 = minggu ini) — bukan kondisi error
type WeeklyDashboardQuery struct {
	WeekOffset int `query:"week_offset"`
}

type StatusProbeQuery struct {
	ScheduleID uint   `query:"schedule_id" validate:"required,min=1"`
	Date       string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScheduleResponse struct {
	ScheduleID  uint   `json:"schedule_id"`
	ClassName   string `json:"class_name"`
	Weekday     int    `json:"weekday"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Subject     string `json:"subject"`
	TeacherID   uint   `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
}

func ScheduleResponseFromModel(s m.ClassScheduleModel) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:  s.ClassScheduleID,
		ClassName:   s.ClassScheduleClassName,
		Weekday:     s.ClassScheduleWeekday,
		StartTime:   s.ClassScheduleStartTime,
		EndTime:     s.ClassScheduleEndTime,
		Subject:     s.ClassScheduleSubject,
		TeacherID:   s.ClassScheduleTeacherID,
		TeacherName: s.TeacherDisplayName(),
	}
}
