// file: internals/features/attendance/dto/check_in_dto.go
package dto

import (
	"strings"

	m "sekolahku_backend/internals/features/attendance/model"
)

/* =========================================================
   REQUEST: check-in guru untuk satu (schedule, tanggal)
   ========================================================= */

type CheckInRequest struct {
	ScheduleID uint   `json:"schedule_id" validate:"required,min=1"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`

	// jam check-in HH:MM:SS; kosong = record tanpa check-in (mis. absen manual)
	CheckInTime *string `json:"check_in_time" validate:"omitempty,datetime=15:04:05"`
	Note        string  `json:"note"          validate:"omitempty,max=500"`
	Status      *string `json:"status"        validate:"omitempty,oneof=present late absent excused pending"`
}

func (r CheckInRequest) ToModel() m.AttendanceRecordModel {
	date, _ := ParseDateYYYYMMDD(r.Date)

	var checkIn *string
	if r.CheckInTime != nil {
		v := strings.TrimSpace(*r.CheckInTime)
		if v != "" {
			checkIn = &v
		}
	}

	status := m.AttendancePending
	if r.Status != nil {
		if s := m.AttendanceStatus(strings.ToLower(strings.TrimSpace(*r.Status))); s.Valid() {
			status = s
		}
	}

	return m.AttendanceRecordModel{
		AttendanceRecordScheduleID: r.ScheduleID,
		AttendanceRecordDate:       date,
		AttendanceRecordCheckIn:    checkIn,
		AttendanceRecordNote:       strings.TrimSpace(r.Note),
		AttendanceRecordStatus:     status,
	}
}
