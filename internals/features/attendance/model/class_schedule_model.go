// file: internals/features/attendance/model/class_schedule_model.go
package model

import (
	"strings"
	"time"
)

/* =========================
   Model: ClassScheduleModel
   Satu baris = satu sesi mengajar berulang (kelas + hari + jam).
   Data sumber masih mengandung baris duplikat (kelas+hari+jam sama);
   pembersihan dilakukan di accessor, bukan diasumsikan di storage.
========================= */

type ClassScheduleModel struct {
	// PK
	ClassScheduleID uint `gorm:"primaryKey;column:class_schedule_id" json:"class_schedule_id"`

	// Identitas sesi
	ClassScheduleClassName string `gorm:"column:class_schedule_class_name;size:60;not null;index" json:"class_schedule_class_name"`
	ClassScheduleWeekday   int    `gorm:"column:class_schedule_weekday;not null;index" json:"class_schedule_weekday"` // 1..7, Senin=1
	ClassScheduleStartTime string `gorm:"column:class_schedule_start_time;type:time;not null" json:"class_schedule_start_time"` // HH:MM:SS
	ClassScheduleEndTime   string `gorm:"column:class_schedule_end_time;type:time;not null" json:"class_schedule_end_time"`
	ClassScheduleSubject   string `gorm:"column:class_schedule_subject;size:120;not null" json:"class_schedule_subject"`

	// Guru pengampu
	ClassScheduleTeacherID uint          `gorm:"column:class_schedule_teacher_id;not null;index" json:"class_schedule_teacher_id"`
	ClassScheduleTeacher   *TeacherModel `gorm:"foreignKey:ClassScheduleTeacherID;references:TeacherID" json:"class_schedule_teacher,omitempty"`

	// Timestamps
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

// TeacherDisplayName aman dipanggil tanpa preload
func (s ClassScheduleModel) TeacherDisplayName() string {
	if s.ClassScheduleTeacher != nil {
		return s.ClassScheduleTeacher.TeacherName
	}
	return ""
}

/* =========================
   Jam dinding (HH:MM:SS)
========================= */

// TimeOfDaySeconds: HH:MM:SS atau HH:MM → detik sejak 00:00.
// Nilai yang ternyata tanggal penuh (data lama) gagal di sini.
func TimeOfDaySeconds(s string) (int, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
		}
	}
	return 0, false
}

// BeforeTimeOfDay: komparasi numerik jam dinding. Tahan terhadap nilai
// tanpa nol di depan ("9:00:00" tetap sebelum "10:00:00"); kalau salah
// satu tak bisa diparse, jatuh ke komparasi leksikal.
func BeforeTimeOfDay(a, b string) bool {
	sa, oka := TimeOfDaySeconds(a)
	sb, okb := TimeOfDaySeconds(b)
	if oka && okb {
		return sa < sb
	}
	return a < b
}
