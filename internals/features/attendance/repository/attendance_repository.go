// file: internals/features/attendance/repository/attendance_repository.go
package repository

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/attendance/model"
)

/* =========================================================
   Accessor interfaces — disuntik ke engine (bukan singleton)
   ========================================================= */

// ScheduleCatalog: sesi terjadwal yang aktif pada satu tanggal
type ScheduleCatalog interface {
	SchedulesForDate(ctx context.Context, date time.Time) ([]m.ClassScheduleModel, error)
	ScheduleByID(ctx context.Context, id uint) (*m.ClassScheduleModel, error)
}

// LeaveRegistry: izin/cuti guru yang overlap satu tanggal
type LeaveRegistry interface {
	// approved saja, keyed by teacher_id — dipakai resolver
	ApprovedLeavesOnDate(ctx context.Context, date time.Time) (map[uint][]m.LeaveRequestModel, error)
	// semua status (audit), urut created_at
	LeavesOverlappingDate(ctx context.Context, date time.Time) ([]m.LeaveRequestModel, error)
}

// AttendanceLog: record check-in per (schedule, tanggal)
type AttendanceLog interface {
	// keyed by schedule_id; duplikat → record terbaru yang menang
	RecordsForDate(ctx context.Context, date time.Time) (map[uint]m.AttendanceRecordModel, error)
}

/* =========================================================
   Dedup rule (pure)
   ========================================================= */

type scheduleKey struct {
	ClassName string
	Weekday   int
	StartTime string
}

// DedupSchedules: grup per (kelas, hari, jam mulai), simpan ID terbesar.
// Dipanggil di SETIAP read — storage tidak diasumsikan sudah bersih.
// Idempoten: dedup dua kali == dedup sekali.
func DedupSchedules(rows []m.ClassScheduleModel) []m.ClassScheduleModel {
	winners := make(map[scheduleKey]m.ClassScheduleModel, len(rows))
	for _, row := range rows {
		key := scheduleKey{
			ClassName: row.ClassScheduleClassName,
			Weekday:   row.ClassScheduleWeekday,
			StartTime: row.ClassScheduleStartTime,
		}
		if cur, ok := winners[key]; !ok || row.ClassScheduleID > cur.ClassScheduleID {
			winners[key] = row
		}
	}

	out := make([]m.ClassScheduleModel, 0, len(winners))
	for _, s := range winners {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClassScheduleClassName != out[j].ClassScheduleClassName {
			return out[i].ClassScheduleClassName < out[j].ClassScheduleClassName
		}
		return m.BeforeTimeOfDay(out[i].ClassScheduleStartTime, out[j].ClassScheduleStartTime)
	})
	return out
}

// WeekdayOf memetakan time.Weekday (Minggu=0) ke konvensi jadwal (Senin=1..Minggu=7)
func WeekdayOf(date time.Time) int {
	w := int(date.Weekday())
	if w == 0 {
		return 7
	}
	return w
}

/* =========================================================
   GORM implementation
   ========================================================= */

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// compile-time check
var (
	_ ScheduleCatalog = (*AttendanceRepository)(nil)
	_ LeaveRegistry   = (*AttendanceRepository)(nil)
	_ AttendanceLog   = (*AttendanceRepository)(nil)
)

func (r *AttendanceRepository) SchedulesForDate(ctx context.Context, date time.Time) ([]m.ClassScheduleModel, error) {
	var rows []m.ClassScheduleModel
	err := r.DB.WithContext(ctx).
		Preload("ClassScheduleTeacher").
		Where("class_schedule_weekday = ?", WeekdayOf(date)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return DedupSchedules(rows), nil
}

func (r *AttendanceRepository) ScheduleByID(ctx context.Context, id uint) (*m.ClassScheduleModel, error) {
	var row m.ClassScheduleModel
	err := r.DB.WithContext(ctx).
		Preload("ClassScheduleTeacher").
		First(&row, "class_schedule_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *AttendanceRepository) ApprovedLeavesOnDate(ctx context.Context, date time.Time) (map[uint][]m.LeaveRequestModel, error) {
	var rows []m.LeaveRequestModel
	d := date.Format("2006-01-02")
	err := r.DB.WithContext(ctx).
		Where("leave_request_status = ?", m.LeaveApproved).
		Where("leave_request_start_date <= ? AND leave_request_end_date >= ?", d, d).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	byTeacher := make(map[uint][]m.LeaveRequestModel, len(rows))
	for _, lv := range rows {
		byTeacher[lv.LeaveRequestTeacherID] = append(byTeacher[lv.LeaveRequestTeacherID], lv)
	}
	return byTeacher, nil
}

func (r *AttendanceRepository) LeavesOverlappingDate(ctx context.Context, date time.Time) ([]m.LeaveRequestModel, error) {
	var rows []m.LeaveRequestModel
	d := date.Format("2006-01-02")
	err := r.DB.WithContext(ctx).
		Preload("LeaveRequestTeacher").
		Where("leave_request_start_date <= ? AND leave_request_end_date >= ?", d, d).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AttendanceRepository) RecordsForDate(ctx context.Context, date time.Time) (map[uint]m.AttendanceRecordModel, error) {
	var rows []m.AttendanceRecordModel
	err := r.DB.WithContext(ctx).
		Where("attendance_record_date = ?", date.Format("2006-01-02")).
		Order("attendance_record_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	// urut ASC lalu overwrite → ID terbesar (paling baru) yang menang
	bySchedule := make(map[uint]m.AttendanceRecordModel, len(rows))
	for _, rec := range rows {
		bySchedule[rec.AttendanceRecordScheduleID] = rec
	}
	return bySchedule, nil
}
