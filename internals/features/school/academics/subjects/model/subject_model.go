package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: subjects
   Titik join untuk akses guru non-wali:
   teacher X boleh akses classroom Y ⇔ X mengajar subject di Y.
========================================= */

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `gorm:"type:uuid;primaryKey;column:subject_id" json:"subject_id"`

	SubjectName string `gorm:"type:varchar(80);not null;column:subject_name" json:"subject_name"`
	SubjectCode string `gorm:"type:varchar(20);not null;column:subject_code;uniqueIndex:uq_subjects_code,where:subject_deleted_at IS NULL" json:"subject_code"`

	// Relasi
	SubjectTeacherID   uuid.UUID  `gorm:"type:uuid;not null;column:subject_teacher_id;index" json:"subject_teacher_id"`
	SubjectClassroomID *uuid.UUID `gorm:"type:uuid;column:subject_classroom_id;index" json:"subject_classroom_id,omitempty"`

	// Audit
	SubjectCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
