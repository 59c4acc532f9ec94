// file: internals/features/attendance/service/dashboard_service.go
package service

import (
	"context"
	"log"
	"sort"
	"time"

	m "sekolahku_backend/internals/features/attendance/model"
	repo "sekolahku_backend/internals/features/attendance/repository"
)

/* =========================================================
   Value objects (read-only, dihitung per request)
   ========================================================= */

type StatusCounts struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Excused int `json:"excused"`
	Pending int `json:"pending"`
}

func (c *StatusCounts) bump(status m.AttendanceStatus) {
	switch status {
	case m.AttendancePresent:
		c.Present++
	case m.AttendanceLate:
		c.Late++
	case m.AttendanceAbsent:
		c.Absent++
	case m.AttendanceExcused:
		c.Excused++
	case m.AttendancePending:
		c.Pending++
	}
}

type SessionStatusView struct {
	ScheduleID  uint               `json:"schedule_id"`
	ClassName   string             `json:"class_name"`
	Subject     string             `json:"subject"`
	TeacherName string             `json:"teacher_name"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Status      m.AttendanceStatus `json:"status"`
	LateMinutes *int               `json:"late_minutes"`
}

type ClassGroup struct {
	ClassName  string              `json:"class_name"`
	IssueCount int                 `json:"issue_count"`
	Sessions   []SessionStatusView `json:"sessions"`
}

type DashboardSummary struct {
	Date    string       `json:"date"`
	Counts  StatusCounts `json:"counts"`
	Classes []ClassGroup `json:"classes"`
	// record check-in yang malformed (diturunkan ke pending) — observable,
	// tidak pernah menggagalkan dashboard
	MalformedRecords int `json:"malformed_records"`
}

type WeeklyDashboard struct {
	Week WeekWindow         `json:"week"`
	Days []DashboardSummary `json:"days"`
}

/* =========================================================
   DashboardService — engine; accessor disuntik, tanpa state
   ========================================================= */

type DashboardService struct {
	Catalog repo.ScheduleCatalog
	Leaves  repo.LeaveRegistry
	Records repo.AttendanceLog

	// Now bisa ditukar di test; default time.Now
	Now func() time.Time
}

func NewDashboardService(catalog repo.ScheduleCatalog, leaves repo.LeaveRegistry, records repo.AttendanceLog) *DashboardService {
	return &DashboardService{
		Catalog: catalog,
		Leaves:  leaves,
		Records: records,
		Now:     time.Now,
	}
}

// GetDailyDashboard: satu tanggal → DashboardSummary utuh, atau gagal utuh.
func (s *DashboardService) GetDailyDashboard(ctx context.Context, date time.Time) (*DashboardSummary, error) {
	schedules, err := s.Catalog.SchedulesForDate(ctx, date)
	if err != nil {
		return nil, wrapDataAccess("schedules", err)
	}
	records, err := s.Records.RecordsForDate(ctx, date)
	if err != nil {
		return nil, wrapDataAccess("attendance records", err)
	}
	leavesByTeacher, err := s.Leaves.ApprovedLeavesOnDate(ctx, date)
	if err != nil {
		return nil, wrapDataAccess("leaves", err)
	}

	now := s.Now()
	summary := &DashboardSummary{Date: date.Format("2006-01-02")}
	groupIdx := map[string]int{}

	for _, sched := range schedules {
		var record *m.AttendanceRecordModel
		if rec, ok := records[sched.ClassScheduleID]; ok {
			recCopy := rec
			record = &recCopy
		}

		res := ResolveStatus(sched, date, record, leavesByTeacher[sched.ClassScheduleTeacherID], now)
		if res.Malformed {
			summary.MalformedRecords++
			log.Printf("[WARN] check-in malformed: schedule_id=%d date=%s → pending", sched.ClassScheduleID, summary.Date)
		}
		summary.Counts.bump(res.Status)

		view := SessionStatusView{
			ScheduleID:  sched.ClassScheduleID,
			ClassName:   sched.ClassScheduleClassName,
			Subject:     sched.ClassScheduleSubject,
			TeacherName: sched.TeacherDisplayName(),
			StartTime:   sched.ClassScheduleStartTime,
			EndTime:     sched.ClassScheduleEndTime,
			Status:      res.Status,
			LateMinutes: res.LateMinutes,
		}

		idx, ok := groupIdx[sched.ClassScheduleClassName]
		if !ok {
			idx = len(summary.Classes)
			groupIdx[sched.ClassScheduleClassName] = idx
			summary.Classes = append(summary.Classes, ClassGroup{ClassName: sched.ClassScheduleClassName})
		}
		summary.Classes[idx].Sessions = append(summary.Classes[idx].Sessions, view)
		if res.Status.IsIssue() {
			summary.Classes[idx].IssueCount++
		}
	}

	// dalam grup: urut jam mulai naik (numerik, tahan jam tanpa nol di depan)
	for i := range summary.Classes {
		sessions := summary.Classes[i].Sessions
		sort.Slice(sessions, func(a, b int) bool {
			return m.BeforeTimeOfDay(sessions[a].StartTime, sessions[b].StartTime)
		})
	}
	// antar grup: issue terbanyak dulu, seri → nama kelas naik
	sort.Slice(summary.Classes, func(a, b int) bool {
		if summary.Classes[a].IssueCount != summary.Classes[b].IssueCount {
			return summary.Classes[a].IssueCount > summary.Classes[b].IssueCount
		}
		return summary.Classes[a].ClassName < summary.Classes[b].ClassName
	})

	return summary, nil
}

// GetWeeklyDashboard: window Senin–Minggu dari offset + 7 summary harian.
func (s *DashboardService) GetWeeklyDashboard(ctx context.Context, weekOffset int) (*WeeklyDashboard, error) {
	window := ResolveWeekWindow(weekOffset, s.Now())
	days := make([]DashboardSummary, 0, 7)
	for _, date := range window.Dates() {
		daily, err := s.GetDailyDashboard(ctx, date)
		if err != nil {
			return nil, err // gagal utuh, bukan minggu parsial
		}
		days = append(days, *daily)
	}
	return &WeeklyDashboard{Week: window, Days: days}, nil
}

// ResolveSessionStatus: probe satu sesi (debug/testing).
func (s *DashboardService) ResolveSessionStatus(ctx context.Context, scheduleID uint, date time.Time) (*SessionStatusView, error) {
	sched, err := s.Catalog.ScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, wrapDataAccess("schedule by id", err)
	}
	records, err := s.Records.RecordsForDate(ctx, date)
	if err != nil {
		return nil, wrapDataAccess("attendance records", err)
	}
	leavesByTeacher, err := s.Leaves.ApprovedLeavesOnDate(ctx, date)
	if err != nil {
		return nil, wrapDataAccess("leaves", err)
	}

	var record *m.AttendanceRecordModel
	if rec, ok := records[sched.ClassScheduleID]; ok {
		recCopy := rec
		record = &recCopy
	}
	res := ResolveStatus(*sched, date, record, leavesByTeacher[sched.ClassScheduleTeacherID], s.Now())
	if res.Malformed {
		log.Printf("[WARN] check-in malformed: schedule_id=%d date=%s → pending", sched.ClassScheduleID, date.Format("2006-01-02"))
	}

	return &SessionStatusView{
		ScheduleID:  sched.ClassScheduleID,
		ClassName:   sched.ClassScheduleClassName,
		Subject:     sched.ClassScheduleSubject,
		TeacherName: sched.TeacherDisplayName(),
		StartTime:   sched.ClassScheduleStartTime,
		EndTime:     sched.ClassScheduleEndTime,
		Status:      res.Status,
		LateMinutes: res.LateMinutes,
	}, nil
}
