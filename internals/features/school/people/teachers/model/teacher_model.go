package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: teachers
========================================= */

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_id" json:"teacher_id"`

	// Relasi utama (1 user ↔ max 1 teacher)
	TeacherUserID uuid.UUID `gorm:"type:uuid;not null;column:teacher_user_id;uniqueIndex:uq_teachers_user_id,where:teacher_deleted_at IS NULL" json:"teacher_user_id"`

	// Snapshot nama untuk tampilan (denormalisasi dari users)
	TeacherName string  `gorm:"type:varchar(80);not null;column:teacher_name" json:"teacher_name"`
	TeacherNIP  *string `gorm:"type:varchar(30);column:teacher_nip" json:"teacher_nip,omitempty"`

	// Audit
	TeacherCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (t *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if t.TeacherID == uuid.Nil {
		t.TeacherID = uuid.New()
	}
	return nil
}
