// file: internals/features/attendance/service/week_window.go
package service

import (
	"fmt"
	"time"
)

/* =========================
   Value object: WeekWindow
   Offset 0 = minggu berjalan; negatif = mundur; positif = maju.
   Tidak pernah dipersist — dihitung per request.
========================= */

type WeekWindow struct {
	Offset     int       `json:"offset"`
	Monday     time.Time `json:"monday"`
	Sunday     time.Time `json:"sunday"`
	Label      string    `json:"label"`
	RangeLabel string    `json:"range_label"`
}

// ResolveWeekWindow: Senin ISO dari minggu "today", digeser offset*7 hari.
// Semua offset valid (lintas bulan/tahun/kabisat) — murni aritmetika kalender.
func ResolveWeekWindow(offset int, today time.Time) WeekWindow {
	y, mo, d := today.Date()
	day := time.Date(y, mo, d, 0, 0, 0, 0, today.Location())

	// Senin=0 .. Minggu=6
	back := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -back+offset*7)
	sunday := monday.AddDate(0, 0, 6)

	return WeekWindow{
		Offset:     offset,
		Monday:     monday,
		Sunday:     sunday,
		Label:      weekLabel(offset),
		RangeLabel: monday.Format("2006-01-02") + " – " + sunday.Format("2006-01-02"),
	}
}

func weekLabel(offset int) string {
	switch {
	case offset == 0:
		return "This Week"
	case offset == -1:
		return "1 week ago"
	case offset < 0:
		return fmt.Sprintf("%d weeks ago", -offset)
	case offset == 1:
		return "in 1 week"
	default:
		return fmt.Sprintf("in %d weeks", offset)
	}
}

// Dates: tujuh tanggal Senin..Minggu dalam window
func (w WeekWindow) Dates() []time.Time {
	out := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, w.Monday.AddDate(0, 0, i))
	}
	return out
}
