// file: internals/features/attendance/service/status_resolver.go
package service

import (
	"strings"
	"time"

	m "sekolahku_backend/internals/features/attendance/model"
)

/* =========================
   Status Resolver — inti algoritma.
   Murni: (jadwal, record?, izin) → status + late_minutes.
========================= */

type Resolution struct {
	Status      m.AttendanceStatus `json:"status"`
	LateMinutes *int               `json:"late_minutes"`
	// Malformed: check-in berisi tanggal, bukan jam — sesi diturunkan ke
	// pending, BUKAN present/absent. Caller yang menghitung/mencatatnya.
	Malformed bool `json:"-"`
}

// ResolveStatus menerapkan urutan presedensi (yang pertama cocok, menang):
//  1. izin approved menutup tanggal → excused
//  2. ada check-in → hitung keterlambatan (malformed → pending)
//  3. check-in kosong + catatan absen eksplisit → absent
//  4. sesi sudah lewat tanpa record → absent
//  5. sisanya (belum mulai / sedang jalan) → pending
func ResolveStatus(schedule m.ClassScheduleModel, date time.Time, record *m.AttendanceRecordModel, approvedLeaves []m.LeaveRequestModel, now time.Time) Resolution {
	// 1) Izin selalu menang, termasuk atas check-in yang ada
	for _, lv := range approvedLeaves {
		if lv.LeaveRequestStatus == m.LeaveApproved && lv.Covers(date) {
			return Resolution{Status: m.AttendanceExcused}
		}
	}

	// 2) Check-in tercatat
	if record != nil && record.AttendanceRecordCheckIn != nil {
		checkIn, okIn := m.TimeOfDaySeconds(*record.AttendanceRecordCheckIn)
		start, okStart := m.TimeOfDaySeconds(schedule.ClassScheduleStartTime)
		if !okIn || !okStart {
			return Resolution{Status: m.AttendancePending, Malformed: true}
		}
		late := (checkIn - start) / 60 // menit utuh, wall-clock hari yang sama
		if late <= 0 {
			zero := 0
			return Resolution{Status: m.AttendancePresent, LateMinutes: &zero}
		}
		return Resolution{Status: m.AttendanceLate, LateMinutes: &late}
	}

	// 3) Record tanpa check-in, tapi ditandai absen eksplisit
	if record != nil && record.AttendanceRecordCheckIn == nil && marksExplicitAbsence(record) {
		return Resolution{Status: m.AttendanceAbsent}
	}

	// 4) Sesi sudah selesai dan tidak ada record
	if record == nil && sessionElapsed(schedule, date, now) {
		return Resolution{Status: m.AttendanceAbsent}
	}

	// 5) Belum mulai / sedang berjalan
	return Resolution{Status: m.AttendancePending}
}

func marksExplicitAbsence(record *m.AttendanceRecordModel) bool {
	if record.AttendanceRecordStatus == m.AttendanceAbsent {
		return true
	}
	note := strings.ToLower(record.AttendanceRecordNote)
	for _, marker := range []string{"absen", "absent", "tidak hadir", "alpha"} {
		if strings.Contains(note, marker) {
			return true
		}
	}
	return false
}

// sessionElapsed: jam selesai pada tanggal tsb sudah lewat terhadap now
// (jam dinding dibaca di lokasi now — engine memasang clock ber-zona sekolah)
func sessionElapsed(schedule m.ClassScheduleModel, date time.Time, now time.Time) bool {
	endSec, ok := m.TimeOfDaySeconds(schedule.ClassScheduleEndTime)
	if !ok {
		return false
	}
	y, mo, d := date.Date()
	endAt := time.Date(y, mo, d, 0, 0, endSec, 0, now.Location())
	return now.After(endAt)
}
