package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequestStatus string

const (
	LeavePending  LeaveRequestStatus = "pending"
	LeaveApproved LeaveRequestStatus = "approved"
	LeaveRejected LeaveRequestStatus = "rejected"
)

func (s LeaveRequestStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	default:
		return false
	}
}

/* =========================================
   Model: leave_requests
   Izin tidak masuk per tanggal; direview wali kelas atau admin.
========================================= */

type LeaveRequestModel struct {
	// PK
	LeaveRequestID uuid.UUID `gorm:"type:uuid;primaryKey;column:leave_request_id" json:"leave_request_id"`

	LeaveRequestStudentID uuid.UUID          `gorm:"type:uuid;not null;column:leave_request_student_id;uniqueIndex:uq_leave_requests_student_date,where:leave_request_deleted_at IS NULL" json:"leave_request_student_id"`
	LeaveRequestDate      time.Time          `gorm:"type:date;not null;column:leave_request_date;uniqueIndex:uq_leave_requests_student_date,where:leave_request_deleted_at IS NULL" json:"leave_request_date"`
	LeaveRequestReason    string             `gorm:"type:text;not null;column:leave_request_reason" json:"leave_request_reason"`
	LeaveRequestStatus    LeaveRequestStatus `gorm:"type:varchar(10);not null;default:'pending';column:leave_request_status" json:"leave_request_status"`

	// Review
	LeaveRequestReviewedByTeacherID *uuid.UUID `gorm:"type:uuid;column:leave_request_reviewed_by_teacher_id" json:"leave_request_reviewed_by_teacher_id,omitempty"`
	LeaveRequestReviewNote          *string    `gorm:"type:text;column:leave_request_review_note" json:"leave_request_review_note,omitempty"`

	// Audit
	LeaveRequestCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:leave_request_created_at" json:"leave_request_created_at"`
	LeaveRequestUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:leave_request_updated_at" json:"leave_request_updated_at"`
	LeaveRequestDeletedAt gorm.DeletedAt `gorm:"column:leave_request_deleted_at;index" json:"leave_request_deleted_at,omitempty"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }

func (m *LeaveRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.LeaveRequestID == uuid.Nil {
		m.LeaveRequestID = uuid.New()
	}
	return nil
}
