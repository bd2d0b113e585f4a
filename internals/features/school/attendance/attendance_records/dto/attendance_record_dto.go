// file: internals/features/school/attendance/attendance_records/dto/attendance_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
)

/* =========================
   Request
   ========================= */

// MarkAttendanceRequest: penandaan manual oleh guru (absent/leave/koreksi).
type MarkAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Period    int       `json:"period" validate:"required,min=1,max=8"`
	Status    string    `json:"status" validate:"required,oneof=present late absent leave"`
}

func (r *MarkAttendanceRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

/* =========================
   Response
   ========================= */

type AttendanceRecordResponse struct {
	AttendanceRecordID uuid.UUID  `json:"attendance_record_id"`
	StudentID          uuid.UUID  `json:"student_id"`
	Date               string     `json:"date"`
	Period             int        `json:"period"`
	Status             string     `json:"status"`
	SessionID          *uuid.UUID `json:"session_id,omitempty"`
	MarkedByTeacherID  *uuid.UUID `json:"marked_by_teacher_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromModel(r *m.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID: r.AttendanceRecordID,
		StudentID:          r.AttendanceRecordStudentID,
		Date:               r.AttendanceRecordDate.Format("2006-01-02"),
		Period:             r.AttendanceRecordPeriod,
		Status:             string(r.AttendanceRecordStatus),
		SessionID:          r.AttendanceRecordSessionID,
		MarkedByTeacherID:  r.AttendanceRecordMarkedByTeacherID,
		CreatedAt:          r.AttendanceRecordCreatedAt,
	}
}

func FromModels(list []m.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
