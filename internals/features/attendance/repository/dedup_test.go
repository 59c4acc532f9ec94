package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/attendance/model"
)

func schedRow(id uint, class string, weekday int, start string) m.ClassScheduleModel {
	return m.ClassScheduleModel{
		ClassScheduleID:        id,
		ClassScheduleClassName: class,
		ClassScheduleWeekday:   weekday,
		ClassScheduleStartTime: start,
		ClassScheduleEndTime:   "09:00:00",
	}
}

func TestDedupSchedules_KeepsHighestID(t *testing.T) {
	// dua baris duplikat (X RPL, Senin, 08:00) dengan id 10 dan 15
	rows := []m.ClassScheduleModel{
		schedRow(10, "X RPL", 1, "08:00:00"),
		schedRow(15, "X RPL", 1, "08:00:00"),
	}

	out := DedupSchedules(rows)

	require.Len(t, out, 1)
	assert.Equal(t, uint(15), out[0].ClassScheduleID)
}

func TestDedupSchedules_DifferentStartTimesSurvive(t *testing.T) {
	rows := []m.ClassScheduleModel{
		schedRow(1, "X RPL", 1, "08:00:00"),
		schedRow(2, "X RPL", 1, "10:00:00"),
	}

	out := DedupSchedules(rows)

	assert.Len(t, out, 2)
}

func TestDedupSchedules_Idempotent(t *testing.T) {
	rows := []m.ClassScheduleModel{
		schedRow(10, "X RPL", 1, "08:00:00"),
		schedRow(15, "X RPL", 1, "08:00:00"),
		schedRow(3, "XI TKJ", 1, "07:00:00"),
		schedRow(9, "X RPL", 1, "10:00:00"),
	}

	once := DedupSchedules(rows)
	twice := DedupSchedules(once)

	assert.Equal(t, once, twice)
}

func TestDedupSchedules_OrderedByClassThenStart(t *testing.T) {
	rows := []m.ClassScheduleModel{
		schedRow(4, "XI TKJ", 1, "07:00:00"),
		schedRow(2, "X RPL", 1, "10:00:00"),
		schedRow(1, "X RPL", 1, "08:00:00"),
	}

	out := DedupSchedules(rows)

	require.Len(t, out, 3)
	assert.Equal(t, "X RPL", out[0].ClassScheduleClassName)
	assert.Equal(t, "08:00:00", out[0].ClassScheduleStartTime)
	assert.Equal(t, "X RPL", out[1].ClassScheduleClassName)
	assert.Equal(t, "10:00:00", out[1].ClassScheduleStartTime)
	assert.Equal(t, "XI TKJ", out[2].ClassScheduleClassName)
}

func TestDedupSchedules_UnpaddedHourOrdersNumerically(t *testing.T) {
	// storage kotor: jam tanpa nol di depan tidak boleh terurut leksikal
	rows := []m.ClassScheduleModel{
		schedRow(1, "X RPL", 1, "10:00:00"),
		schedRow(2, "X RPL", 1, "9:00:00"),
	}

	out := DedupSchedules(rows)

	require.Len(t, out, 2)
	assert.Equal(t, "9:00:00", out[0].ClassScheduleStartTime)
	assert.Equal(t, "10:00:00", out[1].ClassScheduleStartTime)
}

func TestDedupSchedules_EmptyInput(t *testing.T) {
	assert.Empty(t, DedupSchedules(nil))
}

func TestWeekdayOf(t *testing.T) {
	// 2025-09-01 Senin ... 2025-09-07 Minggu
	for i := 0; i < 7; i++ {
		d := time.Date(2025, time.September, 1+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, i+1, WeekdayOf(d), d.Format("2006-01-02"))
	}
}
