// file: internals/features/school/people/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/people/teachers/model"
)

type CreateTeacherRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Name   string    `json:"name" validate:"required,min=1,max=80"`
	NIP    *string   `json:"nip" validate:"omitempty,max=30"`
}

func (r *CreateTeacherRequest) ToModel() m.TeacherModel {
	return m.TeacherModel{
		TeacherUserID: r.UserID,
		TeacherName:   strings.TrimSpace(r.Name),
		TeacherNIP:    r.NIP,
	}
}

type UpdateTeacherRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=80"`
	NIP  *string `json:"nip" validate:"omitempty,max=30"`
}

func (r *UpdateTeacherRequest) Apply(t *m.TeacherModel) {
	if r.Name != nil {
		t.TeacherName = strings.TrimSpace(*r.Name)
	}
	if r.NIP != nil {
		t.TeacherNIP = r.NIP
	}
}
