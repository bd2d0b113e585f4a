// file: internals/features/school/academics/schedules/dto/class_schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/schedules/model"
	"sekolahku_backend/internals/features/school/academics/schedules/service"
)

/* =========================
   Request
   ========================= */

type CreateClassScheduleRequest struct {
	DayOfWeek   int       `json:"day_of_week" validate:"required,min=1,max=5"`
	PeriodStart int       `json:"period_start" validate:"required,min=1,max=8"`
	PeriodEnd   int       `json:"period_end" validate:"required,min=1,max=8"`
	SubjectID   uuid.UUID `json:"subject_id" validate:"required"`
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
}

func (r *CreateClassScheduleRequest) ToInput() service.CreateScheduleInput {
	return service.CreateScheduleInput{
		DayOfWeek:   m.DayOfWeek(r.DayOfWeek),
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		SubjectID:   r.SubjectID,
		ClassroomID: r.ClassroomID,
		TeacherID:   r.TeacherID,
	}
}

/* =========================
   Response
   ========================= */

type ClassScheduleResponse struct {
	ClassScheduleID uuid.UUID `json:"class_schedule_id"`
	DayOfWeek       int       `json:"day_of_week"`
	DayName         string    `json:"day_name"`
	PeriodStart     int       `json:"period_start"`
	PeriodEnd       int       `json:"period_end"`
	SubjectID       uuid.UUID `json:"subject_id"`
	SubjectName     string    `json:"subject_name"`
	ClassroomID     uuid.UUID `json:"classroom_id"`
	ClassroomName   string    `json:"classroom_name"`
	TeacherID       uuid.UUID `json:"teacher_id"`
	TeacherName     string    `json:"teacher_name"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromModel(s *m.ClassScheduleModel) ClassScheduleResponse {
	return ClassScheduleResponse{
		ClassScheduleID: s.ClassScheduleID,
		DayOfWeek:       int(s.ClassScheduleDayOfWeek),
		DayName:         s.ClassScheduleDayOfWeek.String(),
		PeriodStart:     s.ClassSchedulePeriodStart,
		PeriodEnd:       s.ClassSchedulePeriodEnd,
		SubjectID:       s.ClassScheduleSubjectID,
		SubjectName:     s.ClassScheduleSubjectNameSnap,
		ClassroomID:     s.ClassScheduleClassroomID,
		ClassroomName:   s.ClassScheduleClassroomNameSnap,
		TeacherID:       s.ClassScheduleTeacherID,
		TeacherName:     s.ClassScheduleTeacherNameSnap,
		CreatedAt:       s.ClassScheduleCreatedAt,
	}
}

func FromModels(list []m.ClassScheduleModel) []ClassScheduleResponse {
	out := make([]ClassScheduleResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
