// file: internals/features/school/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/subjects/model"
)

type CreateSubjectRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=80"`
	Code        string     `json:"code" validate:"required,min=2,max=20"`
	TeacherID   uuid.UUID  `json:"teacher_id" validate:"required"`
	ClassroomID *uuid.UUID `json:"classroom_id"`
}

func (r *CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		SubjectName:        strings.TrimSpace(r.Name),
		SubjectCode:        strings.ToUpper(strings.TrimSpace(r.Code)),
		SubjectTeacherID:   r.TeacherID,
		SubjectClassroomID: r.ClassroomID,
	}
}

type UpdateSubjectRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=80"`
	TeacherID   *uuid.UUID `json:"teacher_id"`
	ClassroomID *uuid.UUID `json:"classroom_id"`
	Unassign    bool       `json:"unassign_classroom"`
}

// Apply: mutasi teacher/classroom di sini mengubah set akses guru.
// Efeknya langsung terlihat request berikutnya (akses tidak di-cache).
func (r *UpdateSubjectRequest) Apply(s *m.SubjectModel) {
	if r.Name != nil {
		s.SubjectName = strings.TrimSpace(*r.Name)
	}
	if r.TeacherID != nil {
		s.SubjectTeacherID = *r.TeacherID
	}
	if r.Unassign {
		s.SubjectClassroomID = nil
	} else if r.ClassroomID != nil {
		s.SubjectClassroomID = r.ClassroomID
	}
}
