package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: students
========================================= */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	// Relasi utama (1 user ↔ max 1 student; student wajib punya kelas)
	StudentUserID      uuid.UUID `gorm:"type:uuid;not null;column:student_user_id;uniqueIndex:uq_students_user_id,where:student_deleted_at IS NULL" json:"student_user_id"`
	StudentClassroomID uuid.UUID `gorm:"type:uuid;not null;column:student_classroom_id;index" json:"student_classroom_id"`

	// Snapshot nama untuk tampilan (denormalisasi dari users)
	StudentName string  `gorm:"type:varchar(80);not null;column:student_name" json:"student_name"`
	StudentNIS  *string `gorm:"type:varchar(30);column:student_nis" json:"student_nis,omitempty"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}
