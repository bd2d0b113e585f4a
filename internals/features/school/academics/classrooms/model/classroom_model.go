package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: classrooms
========================================= */

type ClassroomModel struct {
	// PK
	ClassroomID uuid.UUID `gorm:"type:uuid;primaryKey;column:classroom_id" json:"classroom_id"`

	ClassroomName       string `gorm:"type:varchar(80);not null;column:classroom_name" json:"classroom_name"`
	ClassroomGradeLevel int    `gorm:"not null;column:classroom_grade_level" json:"classroom_grade_level"`
	ClassroomRoomNumber string `gorm:"type:varchar(20);not null;column:classroom_room_number" json:"classroom_room_number"`

	// Wali kelas (homeroom), satu guru max satu kelas
	ClassroomHomeroomTeacherID *uuid.UUID `gorm:"type:uuid;column:classroom_homeroom_teacher_id;uniqueIndex:uq_classrooms_homeroom_teacher,where:classroom_deleted_at IS NULL" json:"classroom_homeroom_teacher_id,omitempty"`

	// Audit
	ClassroomCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:classroom_created_at" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:classroom_updated_at" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomID == uuid.Nil {
		m.ClassroomID = uuid.New()
	}
	return nil
}
