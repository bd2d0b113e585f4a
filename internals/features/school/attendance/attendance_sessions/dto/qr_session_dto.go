// file: internals/features/school/attendance/attendance_sessions/dto/qr_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	recordModel "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
	m "sekolahku_backend/internals/features/school/attendance/attendance_sessions/model"
)

/* =========================
   Request
   ========================= */

type CreateQRSessionRequest struct {
	ClassroomID     uuid.UUID `json:"classroom_id" validate:"required"`
	Period          int       `json:"period" validate:"required,min=1,max=8"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=1"`
}

type RedeemQRCodeRequest struct {
	Code string `json:"code" validate:"required,min=4,max=12"`
}

/* =========================
   Response
   ========================= */

type QRSessionResponse struct {
	SessionID   uuid.UUID      `json:"session_id"`
	Code        string         `json:"code"`
	ClassroomID uuid.UUID      `json:"classroom_id"`
	Period      int            `json:"period"`
	ExpiresAt   time.Time      `json:"expires_at"`
	IsActive    bool           `json:"is_active"`
	Classroom   map[string]any `json:"classroom,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func FromSessionModel(s *m.QRAttendanceSessionModel) QRSessionResponse {
	return QRSessionResponse{
		SessionID:   s.QRAttendanceSessionID,
		Code:        s.QRAttendanceSessionCode,
		ClassroomID: s.QRAttendanceSessionClassroomID,
		Period:      s.QRAttendanceSessionPeriod,
		ExpiresAt:   s.QRAttendanceSessionExpiresAt,
		IsActive:    s.QRAttendanceSessionIsActive,
		Classroom:   s.QRAttendanceSessionClassroomSnapshot,
		CreatedAt:   s.QRAttendanceSessionCreatedAt,
	}
}

func FromSessionModels(list []m.QRAttendanceSessionModel) []QRSessionResponse {
	out := make([]QRSessionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromSessionModel(&list[i]))
	}
	return out
}

// Konfirmasi redeem menampilkan nama student di layar scan.
type RedeemResultResponse struct {
	AttendanceRecordID uuid.UUID `json:"attendance_record_id"`
	StudentName        string    `json:"student_name"`
	Date               string    `json:"date"`
	Period             int       `json:"period"`
	Status             string    `json:"status"`
}

func FromRecordModel(r *recordModel.AttendanceRecordModel, studentName string) RedeemResultResponse {
	return RedeemResultResponse{
		AttendanceRecordID: r.AttendanceRecordID,
		StudentName:        studentName,
		Date:               r.AttendanceRecordDate.Format("2006-01-02"),
		Period:             r.AttendanceRecordPeriod,
		Status:             string(r.AttendanceRecordStatus),
	}
}
