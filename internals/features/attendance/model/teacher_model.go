// file: internals/features/attendance/model/teacher_model.go
package model

import (
	"time"
)

/* =========================
   Model: TeacherModel
========================= */

type TeacherModel struct {
	TeacherID   uint      `gorm:"primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherName string    `gorm:"column:teacher_name;size:120;not null" json:"teacher_name"`
	TeacherNIP  string    `gorm:"column:teacher_nip;size:30;uniqueIndex" json:"teacher_nip"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
