// file: internals/features/school/academics/classrooms/dto/classroom_dto.go
package dto

import (
	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/classrooms/model"
)

type CreateClassroomRequest struct {
	Name              string     `json:"name" validate:"required,min=1,max=80"`
	GradeLevel        int        `json:"grade_level" validate:"required,min=1,max=12"`
	RoomNumber        string     `json:"room_number" validate:"required,max=20"`
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id"`
}

func (r *CreateClassroomRequest) ToModel() m.ClassroomModel {
	return m.ClassroomModel{
		ClassroomName:              r.Name,
		ClassroomGradeLevel:        r.GradeLevel,
		ClassroomRoomNumber:        r.RoomNumber,
		ClassroomHomeroomTeacherID: r.HomeroomTeacherID,
	}
}

type UpdateClassroomRequest struct {
	Name              *string    `json:"name" validate:"omitempty,min=1,max=80"`
	GradeLevel        *int       `json:"grade_level" validate:"omitempty,min=1,max=12"`
	RoomNumber        *string    `json:"room_number" validate:"omitempty,max=20"`
	HomeroomTeacherID *uuid.UUID `json:"homeroom_teacher_id"`
	ClearHomeroom     bool       `json:"clear_homeroom"`
}

func (r *UpdateClassroomRequest) Apply(room *m.ClassroomModel) {
	if r.Name != nil {
		room.ClassroomName = *r.Name
	}
	if r.GradeLevel != nil {
		room.ClassroomGradeLevel = *r.GradeLevel
	}
	if r.RoomNumber != nil {
		room.ClassroomRoomNumber = *r.RoomNumber
	}
	if r.ClearHomeroom {
		room.ClassroomHomeroomTeacherID = nil
	} else if r.HomeroomTeacherID != nil {
		room.ClassroomHomeroomTeacherID = r.HomeroomTeacherID
	}
}
