package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/attendance/model"
	repo "sekolahku_backend/internals/features/attendance/repository"
)

/* =========================
   Fake accessors (in-memory)
   ========================= */

type fakeStore struct {
	schedules []m.ClassScheduleModel
	records   []m.AttendanceRecordModel
	leaves    []m.LeaveRequestModel

	schedErr error
	recErr   error
	leaveErr error
}

func (f *fakeStore) SchedulesForDate(_ context.Context, date time.Time) ([]m.ClassScheduleModel, error) {
	if f.schedErr != nil {
		return nil, f.schedErr
	}
	var rows []m.ClassScheduleModel
	for _, s := range f.schedules {
		if s.ClassScheduleWeekday == repo.WeekdayOf(date) {
			rows = append(rows, s)
		}
	}
	return repo.DedupSchedules(rows), nil
}

func (f *fakeStore) ScheduleByID(_ context.Context, id uint) (*m.ClassScheduleModel, error) {
	if f.schedErr != nil {
		return nil, f.schedErr
	}
	for _, s := range f.schedules {
		if s.ClassScheduleID == id {
			sc := s
			return &sc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) RecordsForDate(_ context.Context, date time.Time) (map[uint]m.AttendanceRecordModel, error) {
	if f.recErr != nil {
		return nil, f.recErr
	}
	d := date.Format("2006-01-02")
	out := map[uint]m.AttendanceRecordModel{}
	for _, rec := range f.records {
		if rec.AttendanceRecordDate.Format("2006-01-02") != d {
			continue
		}
		if cur, ok := out[rec.AttendanceRecordScheduleID]; !ok || rec.AttendanceRecordID > cur.AttendanceRecordID {
			out[rec.AttendanceRecordScheduleID] = rec
		}
	}
	return out, nil
}

func (f *fakeStore) ApprovedLeavesOnDate(_ context.Context, date time.Time) (map[uint][]m.LeaveRequestModel, error) {
	if f.leaveErr != nil {
		return nil, f.leaveErr
	}
	out := map[uint][]m.LeaveRequestModel{}
	for _, lv := range f.leaves {
		if lv.LeaveRequestStatus == m.LeaveApproved && lv.Covers(date) {
			out[lv.LeaveRequestTeacherID] = append(out[lv.LeaveRequestTeacherID], lv)
		}
	}
	return out, nil
}

func (f *fakeStore) LeavesOverlappingDate(_ context.Context, date time.Time) ([]m.LeaveRequestModel, error) {
	if f.leaveErr != nil {
		return nil, f.leaveErr
	}
	var out []m.LeaveRequestModel
	for _, lv := range f.leaves {
		if lv.Covers(date) {
			out = append(out, lv)
		}
	}
	return out, nil
}

func newEngine(store *fakeStore, now time.Time) *DashboardService {
	engine := NewDashboardService(store, store, store)
	engine.Now = func() time.Time { return now }
	return engine
}

/* =========================
   Fixture: Senin 2025-09-01, jam 12:00
   ========================= */

func mondayStore() *fakeStore {
	schedule := func(id uint, class, start, end, subject string, teacherID uint, teacherName string) m.ClassScheduleModel {
		return m.ClassScheduleModel{
			ClassScheduleID:        id,
			ClassScheduleClassName: class,
			ClassScheduleWeekday:   1,
			ClassScheduleStartTime: start,
			ClassScheduleEndTime:   end,
			ClassScheduleSubject:   subject,
			ClassScheduleTeacherID: teacherID,
			ClassScheduleTeacher:   &m.TeacherModel{TeacherID: teacherID, TeacherName: teacherName},
		}
	}
	checkIn := func(id, scheduleID uint, at string) m.AttendanceRecordModel {
		return m.AttendanceRecordModel{
			AttendanceRecordID:         id,
			AttendanceRecordScheduleID: scheduleID,
			AttendanceRecordDate:       monday,
			AttendanceRecordCheckIn:    &at,
		}
	}

	return &fakeStore{
		schedules: []m.ClassScheduleModel{
			// baris duplikat id 10 dari slot yang sama dengan id 15 — harus hilang
			schedule(10, "X RPL", "08:00:00", "09:00:00", "Pemrograman Dasar", 1, "Budi Santoso"),
			schedule(15, "X RPL", "08:00:00", "09:00:00", "Pemrograman Dasar", 1, "Budi Santoso"),
			schedule(20, "X RPL", "09:00:00", "10:00:00", "Basis Data", 2, "Siti Aminah"),
			schedule(30, "XI TKJ", "07:00:00", "08:00:00", "Jaringan Dasar", 3, "Agus Wijaya"),
			schedule(40, "XII MM", "13:00:00", "14:00:00", "Desain Grafis", 4, "Dewi Lestari"),
			schedule(50, "XI TKJ", "10:00:00", "11:00:00", "Sistem Operasi", 5, "Rina Marlina"),
		},
		records: []m.AttendanceRecordModel{
			checkIn(1, 15, "08:15:00"), // telat 15 menit
			checkIn(2, 30, "07:00:00"), // tepat waktu
			checkIn(3, 50, "10:30:00"), // ada check-in, tapi guru sedang izin
		},
		leaves: []m.LeaveRequestModel{
			{
				LeaveRequestID:        1,
				LeaveRequestTeacherID: 5,
				LeaveRequestStartDate: monday,
				LeaveRequestEndDate:   monday,
				LeaveRequestStatus:    m.LeaveApproved,
				LeaveRequestReason:    "Dinas luar",
			},
			{
				// pending tidak pernah menekan issue
				LeaveRequestID:        2,
				LeaveRequestTeacherID: 2,
				LeaveRequestStartDate: monday,
				LeaveRequestEndDate:   monday,
				LeaveRequestStatus:    m.LeavePending,
			},
		},
	}
}

/* =========================
   Tests
   ========================= */

func TestGetDailyDashboard_StatusCountsZeroFilled(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	summary, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	// late(15'), absent(tanpa record & lewat), present, pending(sesi sore), excused(izin)
	assert.Equal(t, StatusCounts{Present: 1, Late: 1, Absent: 1, Excused: 1, Pending: 1}, summary.Counts)
	assert.Equal(t, "2025-09-01", summary.Date)
	assert.Zero(t, summary.MalformedRecords)
}

func TestGetDailyDashboard_DuplicateScheduleCollapsed(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	summary, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	total := 0
	for _, grp := range summary.Classes {
		for _, s := range grp.Sessions {
			assert.NotEqual(t, uint(10), s.ScheduleID, "baris duplikat harus hilang")
			total++
		}
	}
	assert.Equal(t, 5, total)
}

func TestGetDailyDashboard_GroupOrderingAndIssueTotals(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	summary, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	require.Len(t, summary.Classes, 3)
	// X RPL: late + absent = 2 issue; XII MM: pending = 1; XI TKJ: present + excused = 0
	assert.Equal(t, "X RPL", summary.Classes[0].ClassName)
	assert.Equal(t, 2, summary.Classes[0].IssueCount)
	assert.Equal(t, "XII MM", summary.Classes[1].ClassName)
	assert.Equal(t, 1, summary.Classes[1].IssueCount)
	assert.Equal(t, "XI TKJ", summary.Classes[2].ClassName)
	assert.Equal(t, 0, summary.Classes[2].IssueCount)

	// konservasi: total issue per kelas == jumlah sesi berstatus issue
	sumIssues := 0
	issueSessions := 0
	for _, grp := range summary.Classes {
		sumIssues += grp.IssueCount
		for _, s := range grp.Sessions {
			if s.Status.IsIssue() {
				issueSessions++
			}
		}
	}
	assert.Equal(t, issueSessions, sumIssues)
	assert.Equal(t, summary.Counts.Late+summary.Counts.Absent+summary.Counts.Pending, sumIssues)
}

func TestGetDailyDashboard_TieBrokenByClassNameAsc(t *testing.T) {
	store := mondayStore()
	// buang sesi absent di X RPL supaya dua kelas sama-sama 1 issue
	var kept []m.ClassScheduleModel
	for _, s := range store.schedules {
		if s.ClassScheduleID != 20 {
			kept = append(kept, s)
		}
	}
	store.schedules = kept
	engine := newEngine(store, noon)

	summary, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	require.Len(t, summary.Classes, 3)
	// X RPL (late) dan XII MM (pending) seri 1 issue → alfabetis
	assert.Equal(t, "X RPL", summary.Classes[0].ClassName)
	assert.Equal(t, "XII MM", summary.Classes[1].ClassName)
}

func TestGetDailyDashboard_SessionsOrderedByStartTime(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	summary, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	for _, grp := range summary.Classes {
		for i := 1; i < len(grp.Sessions); i++ {
			assert.LessOrEqual(t, grp.Sessions[i-1].StartTime, grp.Sessions[i].StartTime,
				"kelas %s", grp.ClassName)
		}
	}
}

func TestGetDailyDashboard_SessionAnnotations(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	summary, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	var late *SessionStatusView
	for _, grp := range summary.Classes {
		for i, s := range grp.Sessions {
			if s.Status == m.AttendanceLate {
				late = &grp.Sessions[i]
			}
		}
	}
	require.NotNil(t, late)
	assert.Equal(t, uint(15), late.ScheduleID)
	assert.Equal(t, "Pemrograman Dasar", late.Subject)
	assert.Equal(t, "Budi Santoso", late.TeacherName)
	require.NotNil(t, late.LateMinutes)
	assert.Equal(t, 15, *late.LateMinutes)
}

func TestGetDailyDashboard_MalformedRecordCountedNotFatal(t *testing.T) {
	store := mondayStore()
	bad := "2025-09-01 08:15:00"
	store.records[0].AttendanceRecordCheckIn = &bad
	engine := newEngine(store, noon)

	summary, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.MalformedRecords)
	// sesi yang malformed turun ke pending, bukan present/absent
	assert.Equal(t, 2, summary.Counts.Pending)
	assert.Zero(t, summary.Counts.Late)
}

func TestGetDailyDashboard_AccessorFailureFailsWhole(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(*fakeStore)
	}{
		{"schedules", func(f *fakeStore) { f.schedErr = errors.New("db down") }},
		{"records", func(f *fakeStore) { f.recErr = errors.New("db down") }},
		{"leaves", func(f *fakeStore) { f.leaveErr = errors.New("db down") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mondayStore()
			tc.mutate(store)
			engine := newEngine(store, noon)

			summary, err := engine.GetDailyDashboard(context.Background(), monday)

			require.Error(t, err)
			assert.Nil(t, summary, "tidak boleh ada hasil parsial")
			var dae *DataAccessError
			assert.ErrorAs(t, err, &dae)
		})
	}
}

func TestGetDailyDashboard_ClockFollowsSchoolTimezone(t *testing.T) {
	// instan yang sama: 2025-09-01 02:30 UTC == 09:30 WIB.
	// Sesi Senin 08:00–09:00 sudah selesai menurut jam dinding sekolah —
	// makanya jam engine dipatok ke zona sekolah saat perakitan route.
	wib := time.FixedZone("WIB", 7*3600)
	instant := time.Date(2025, time.September, 1, 2, 30, 0, 0, time.UTC)

	store := &fakeStore{
		schedules: []m.ClassScheduleModel{
			{
				ClassScheduleID:        15,
				ClassScheduleClassName: "X RPL",
				ClassScheduleWeekday:   1,
				ClassScheduleStartTime: "08:00:00",
				ClassScheduleEndTime:   "09:00:00",
				ClassScheduleSubject:   "Pemrograman Dasar",
				ClassScheduleTeacherID: 1,
			},
		},
	}

	schoolClock := newEngine(store, instant.In(wib))
	summary, err := schoolClock.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Absent: 1}, summary.Counts)

	// jam ber-lokasi UTC pada instan yang sama masih 02:30 → sesi dianggap
	// belum lewat; output tidak boleh bergantung pada TZ host
	hostClock := newEngine(store, instant)
	summary, err = hostClock.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Pending: 1}, summary.Counts)
}

func TestGetWeeklyDashboard_WindowFollowsClockLocation(t *testing.T) {
	// Senin 2025-09-01 00:30 WIB == Minggu 2025-08-31 17:30 UTC:
	// dekat tengah malam, lokasi jam menentukan minggu yang terpilih
	wib := time.FixedZone("WIB", 7*3600)
	instant := time.Date(2025, time.August, 31, 17, 30, 0, 0, time.UTC)

	schoolClock := newEngine(&fakeStore{}, instant.In(wib))
	weekly, err := schoolClock.GetWeeklyDashboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01", weekly.Days[0].Date)

	hostClock := newEngine(&fakeStore{}, instant)
	weekly, err = hostClock.GetWeeklyDashboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-25", weekly.Days[0].Date)
}

func TestGetDailyDashboard_Deterministic(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	first, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)
	second, err := engine.GetDailyDashboard(context.Background(), monday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetWeeklyDashboard_WindowAndDays(t *testing.T) {
	// "sekarang" = Rabu 2025-09-10; offset -1 → minggu 2025-09-01..07
	wednesday := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)
	engine := newEngine(mondayStore(), wednesday)

	weekly, err := engine.GetWeeklyDashboard(context.Background(), -1)
	require.NoError(t, err)

	assert.Equal(t, "1 week ago", weekly.Week.Label)
	assert.Equal(t, date(2025, time.September, 1), weekly.Week.Monday)
	require.Len(t, weekly.Days, 7)
	assert.Equal(t, "2025-09-01", weekly.Days[0].Date)
	assert.Equal(t, "2025-09-07", weekly.Days[6].Date)

	// hanya Senin yang punya jadwal di fixture
	assert.NotEmpty(t, weekly.Days[0].Classes)
	for i := 1; i < 7; i++ {
		assert.Empty(t, weekly.Days[i].Classes)
		assert.Equal(t, StatusCounts{}, weekly.Days[i].Counts)
	}
}

func TestGetWeeklyDashboard_PropagatesAccessorFailure(t *testing.T) {
	store := mondayStore()
	store.recErr = errors.New("db down")
	engine := newEngine(store, noon)

	weekly, err := engine.GetWeeklyDashboard(context.Background(), 0)

	require.Error(t, err)
	assert.Nil(t, weekly)
}

func TestResolveSessionStatus_Probe(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	view, err := engine.ResolveSessionStatus(context.Background(), 15, monday)
	require.NoError(t, err)

	assert.Equal(t, m.AttendanceLate, view.Status)
	require.NotNil(t, view.LateMinutes)
	assert.Equal(t, 15, *view.LateMinutes)
}

func TestResolveSessionStatus_UnknownSchedule(t *testing.T) {
	engine := newEngine(mondayStore(), noon)

	view, err := engine.ResolveSessionStatus(context.Background(), 999, monday)

	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
