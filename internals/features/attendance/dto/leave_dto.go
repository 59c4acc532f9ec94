// file: internals/features/attendance/dto/leave_dto.go
package dto

import (
	"strings"

	m "sekolahku_backend/internals/features/attendance/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateLeaveRequest struct {
	TeacherID uint   `json:"teacher_id" validate:"required,min=1"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"     validate:"omitempty,max=500"`
}

func (r CreateLeaveRequest) ToModel() m.LeaveRequestModel {
	start, _ := ParseDateYYYYMMDD(r.StartDate)
	end, _ := ParseDateYYYYMMDD(r.EndDate)
	return m.LeaveRequestModel{
		LeaveRequestTeacherID: r.TeacherID,
		LeaveRequestStartDate: start,
		LeaveRequestEndDate:   end,
		LeaveRequestStatus:    m.LeavePending, // selalu masuk sebagai pending
		LeaveRequestReason:    strings.TrimSpace(r.Reason),
	}
}

// approve/reject oleh supervisor
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type LeaveResponse struct {
	LeaveID     uint   `json:"leave_id"`
	TeacherID   uint   `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
}

func LeaveResponseFromModel(l m.LeaveRequestModel) LeaveResponse {
	name := ""
	if l.LeaveRequestTeacher != nil {
		name = l.LeaveRequestTeacher.TeacherName
	}
	return LeaveResponse{
		LeaveID:     l.LeaveRequestID,
		TeacherID:   l.LeaveRequestTeacherID,
		TeacherName: name,
		StartDate:   l.LeaveRequestStartDate.Format("2006-01-02"),
		EndDate:     l.LeaveRequestEndDate.Format("2006-01-02"),
		Status:      string(l.LeaveRequestStatus),
		Reason:      l.LeaveRequestReason,
	}
}
