package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================
   Model: qr_attendance_sessions
   Lifecycle: ACTIVE --(deactivate ATAU lewat expires_at)--> INACTIVE.
   Tidak pernah diaktifkan ulang; scan baru = sesi baru.
   "Expired" dihitung lazy saat redeem/query, tanpa timer background.
========================================= */

const SessionCodeLength = 6

type QRAttendanceSessionModel struct {
	// PK
	QRAttendanceSessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:qr_attendance_session_id" json:"qr_attendance_session_id"`

	// Kode pendek yang bisa diketik manusia; satu-satunya lookup key selama aktif
	QRAttendanceSessionCode string `gorm:"type:varchar(12);not null;column:qr_attendance_session_code;uniqueIndex:uq_qr_sessions_code,where:qr_attendance_session_deleted_at IS NULL" json:"qr_attendance_session_code"`

	// Relasi
	QRAttendanceSessionClassroomID uuid.UUID `gorm:"type:uuid;not null;column:qr_attendance_session_classroom_id;index" json:"qr_attendance_session_classroom_id"`
	QRAttendanceSessionTeacherID   uuid.UUID `gorm:"type:uuid;not null;column:qr_attendance_session_teacher_id;index" json:"qr_attendance_session_teacher_id"`
	QRAttendanceSessionPeriod      int       `gorm:"not null;column:qr_attendance_session_period" json:"qr_attendance_session_period"`

	// Jendela aktif
	QRAttendanceSessionExpiresAt time.Time `gorm:"not null;column:qr_attendance_session_expires_at" json:"qr_attendance_session_expires_at"`
	QRAttendanceSessionIsActive  bool      `gorm:"not null;default:true;column:qr_attendance_session_is_active" json:"qr_attendance_session_is_active"`

	// Snapshot kelas untuk tampilan (raw JSONB)
	QRAttendanceSessionClassroomSnapshot datatypes.JSONMap `gorm:"type:jsonb;column:qr_attendance_session_classroom_snapshot" json:"qr_attendance_session_classroom_snapshot,omitempty"`

	// Audit
	QRAttendanceSessionCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:qr_attendance_session_created_at" json:"qr_attendance_session_created_at"`
	QRAttendanceSessionUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:qr_attendance_session_updated_at" json:"qr_attendance_session_updated_at"`
	QRAttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:qr_attendance_session_deleted_at;index" json:"qr_attendance_session_deleted_at,omitempty"`
}

func (QRAttendanceSessionModel) TableName() string { return "qr_attendance_sessions" }

func (m *QRAttendanceSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QRAttendanceSessionID == uuid.Nil {
		m.QRAttendanceSessionID = uuid.New()
	}
	return nil
}

// Redeemable: aktif DAN belum lewat expires_at.
// Keduanya diperlakukan sama ke caller (redeem gagal, tanpa partial success).
func (m *QRAttendanceSessionModel) Redeemable(now time.Time) bool {
	return m.QRAttendanceSessionIsActive && now.Before(m.QRAttendanceSessionExpiresAt)
}
