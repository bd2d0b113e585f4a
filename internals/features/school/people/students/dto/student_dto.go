// file: internals/features/school/people/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	recordModel "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
	m "sekolahku_backend/internals/features/school/people/students/model"
)

/* =========================
   Request
   ========================= */

type CreateStudentRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=80"`
	NIS         *string   `json:"nis" validate:"omitempty,max=30"`
}

func (r *CreateStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentUserID:      r.UserID,
		StudentClassroomID: r.ClassroomID,
		StudentName:        strings.TrimSpace(r.Name),
		StudentNIS:         r.NIS,
	}
}

type UpdateStudentRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=80"`
	NIS         *string    `json:"nis" validate:"omitempty,max=30"`
	ClassroomID *uuid.UUID `json:"classroom_id"`
}

func (r *UpdateStudentRequest) Apply(s *m.StudentModel) {
	if r.Name != nil {
		s.StudentName = strings.TrimSpace(*r.Name)
	}
	if r.NIS != nil {
		s.StudentNIS = r.NIS
	}
	if r.ClassroomID != nil {
		s.StudentClassroomID = *r.ClassroomID
	}
}

/* =========================
   Response
   ========================= */

type RecentAttendanceItem struct {
	Date   string `json:"date"`
	Period int    `json:"period"`
	Status string `json:"status"`
}

// StudentProfileResponse: profil + aktivitas kehadiran terakhir.
type StudentProfileResponse struct {
	StudentID        uuid.UUID              `json:"student_id"`
	UserID           uuid.UUID              `json:"user_id"`
	Name             string                 `json:"name"`
	NIS              *string                `json:"nis,omitempty"`
	ClassroomID      uuid.UUID              `json:"classroom_id"`
	CreatedAt        time.Time              `json:"created_at"`
	RecentAttendance []RecentAttendanceItem `json:"recent_attendance"`
}

func BuildProfile(s *m.StudentModel, records []recordModel.AttendanceRecordModel) StudentProfileResponse {
	recent := make([]RecentAttendanceItem, 0, len(records))
	for i := range records {
		recent = append(recent, RecentAttendanceItem{
			Date:   records[i].AttendanceRecordDate.Format("2006-01-02"),
			Period: records[i].AttendanceRecordPeriod,
			Status: string(records[i].AttendanceRecordStatus),
		})
	}
	return StudentProfileResponse{
		StudentID:        s.StudentID,
		UserID:           s.StudentUserID,
		Name:             s.StudentName,
		NIS:              s.StudentNIS,
		ClassroomID:      s.StudentClassroomID,
		CreatedAt:        s.StudentCreatedAt,
		RecentAttendance: recent,
	}
}
