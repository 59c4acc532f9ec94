// file: internals/features/attendance/model/leave_request_model.go
package model

import (
	"time"
)

/* =========================
   Enum: LeaveStatus
========================= */

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	default:
		return false
	}
}

/* =========================
   Model: LeaveRequestModel
========================= */

type LeaveRequestModel struct {
	// PK
	LeaveRequestID uint `gorm:"primaryKey;column:leave_request_id" json:"leave_request_id"`

	// Pemilik
	LeaveRequestTeacherID uint          `gorm:"column:leave_request_teacher_id;not null;index" json:"leave_request_teacher_id"`
	LeaveRequestTeacher   *TeacherModel `gorm:"foreignKey:LeaveRequestTeacherID;references:TeacherID" json:"leave_request_teacher,omitempty"`

	// Rentang inklusif [start, end]
	LeaveRequestStartDate time.Time `gorm:"column:leave_request_start_date;type:date;not null;index" json:"leave_request_start_date"`
	LeaveRequestEndDate   time.Time `gorm:"column:leave_request_end_date;type:date;not null;index" json:"leave_request_end_date"`

	LeaveRequestStatus LeaveStatus `gorm:"column:leave_request_status;size:20;default:'pending';not null" json:"leave_request_status"`
	LeaveRequestReason string      `gorm:"column:leave_request_reason;type:text" json:"leave_request_reason"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }

// Covers: start_date <= date <= end_date (komparasi per hari kalender)
func (l LeaveRequestModel) Covers(date time.Time) bool {
	d := date.Format("2006-01-02")
	return l.LeaveRequestStartDate.Format("2006-01-02") <= d &&
		d <= l.LeaveRequestEndDate.Format("2006-01-02")
}
