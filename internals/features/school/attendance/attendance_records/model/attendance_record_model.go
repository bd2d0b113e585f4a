package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceStatus merepresentasikan status kehadiran per jam pelajaran.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceLate, AttendanceAbsent, AttendanceLeave:
		return true
	default:
		return false
	}
}

/* =========================================
   Model: attendance_records
   Unique (student, date, period) adalah arbiter
   at-most-once untuk redeem QR dan penandaan manual.
   Hard delete; record koreksi = delete + create.
========================================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordStudentID uuid.UUID        `gorm:"type:uuid;not null;column:attendance_record_student_id;uniqueIndex:uq_attendance_student_date_period" json:"attendance_record_student_id"`
	AttendanceRecordDate      time.Time        `gorm:"type:date;not null;column:attendance_record_date;uniqueIndex:uq_attendance_student_date_period" json:"attendance_record_date"`
	AttendanceRecordPeriod    int              `gorm:"not null;column:attendance_record_period;uniqueIndex:uq_attendance_student_date_period" json:"attendance_record_period"`
	AttendanceRecordStatus    AttendanceStatus `gorm:"type:varchar(10);not null;column:attendance_record_status" json:"attendance_record_status"`

	// Asal record: sesi QR atau guru yang menandai manual
	AttendanceRecordSessionID         *uuid.UUID `gorm:"type:uuid;column:attendance_record_session_id;index" json:"attendance_record_session_id,omitempty"`
	AttendanceRecordMarkedByTeacherID *uuid.UUID `gorm:"type:uuid;column:attendance_record_marked_by_teacher_id" json:"attendance_record_marked_by_teacher_id,omitempty"`

	AttendanceRecordCreatedAt time.Time `gorm:"not null;autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	m.AttendanceRecordDate = DateOnly(m.AttendanceRecordDate)
	return nil
}

// DateOnly menormalkan timestamp ke tanggal (UTC midnight) supaya
// unique index (student, date, period) konsisten lintas timezone.
func DateOnly(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
