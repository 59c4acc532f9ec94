// file: internals/features/attendance/model/attendance_record_model.go
package model

import (
	"time"
)

/* =========================
   Enum: AttendanceStatus
========================= */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceExcused AttendanceStatus = "excused"
	AttendancePending AttendanceStatus = "pending"
)

// Valid true kalau status termasuk himpunan tertutup
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceAbsent, AttendanceExcused, AttendancePending:
		return true
	default:
		return false
	}
}

// IsIssue: sesi yang butuh perhatian supervisor
func (s AttendanceStatus) IsIssue() bool {
	switch s {
	case AttendanceAbsent, AttendanceLate, AttendancePending:
		return true
	default:
		return false
	}
}

/* =========================
   Model: AttendanceRecordModel
   Maksimal satu record per (schedule, date); kalau storage masih punya
   duplikat, record terbaru (ID terbesar) yang menang — ditegakkan di accessor.
========================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uint `gorm:"primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	// Kepemilikan: satu (schedule, tanggal)
	AttendanceRecordScheduleID uint      `gorm:"column:attendance_record_schedule_id;not null;index" json:"attendance_record_schedule_id"`
	AttendanceRecordDate       time.Time `gorm:"column:attendance_record_date;type:date;not null;index" json:"attendance_record_date"`

	// Jam check-in (HH:MM:SS, nullable). Data lama kadang berisi tanggal
	// penuh — itu input malformed, ditangani resolver.
	AttendanceRecordCheckIn *string `gorm:"column:attendance_record_check_in;type:time" json:"attendance_record_check_in"`

	// Catatan bebas + label status tersimpan
	AttendanceRecordNote   string           `gorm:"column:attendance_record_note;type:text" json:"attendance_record_note"`
	AttendanceRecordStatus AttendanceStatus `gorm:"column:attendance_record_status;size:20" json:"attendance_record_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AttendanceRecordModel) TableName() string { return "teacher_attendances" }
