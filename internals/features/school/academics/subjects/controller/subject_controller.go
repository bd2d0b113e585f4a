// file: internals/features/school/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "sekolahku_backend/internals/features/school/academics/classrooms/model"
	"sekolahku_backend/internals/features/school/academics/subjects/dto"
	m "sekolahku_backend/internals/features/school/academics/subjects/model"
	teacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// =============================
// ➕ POST /api/a/subjects (admin)
// =============================
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.ensureRefsExist(c, &req.TeacherID, req.ClassroomID); err != nil {
		return helper.WritePGError(c, err)
	}

	subject := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode subject sudah dipakai")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Subject berhasil dibuat", subject)
}

// =============================
// 📄 GET /api/a/subjects (admin; filter ?teacher_id= / ?classroom_id=)
// =============================
func (ctrl *SubjectController) GetAllSubjects(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&m.SubjectModel{})
	if raw := c.Query("teacher_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("subject_teacher_id = ?", id)
	}
	if raw := c.Query("classroom_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
		}
		q = q.Where("subject_classroom_id = ?", id)
	}

	var subjects []m.SubjectModel
	if err := q.Order("subject_code ASC").Find(&subjects).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar subject", subjects, nil)
}

// =============================
// ✏️ PATCH /api/a/subjects/:id (admin)
// =============================
func (ctrl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var subject m.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var classroomRef *uuid.UUID
	if !req.Unassign {
		classroomRef = req.ClassroomID
	}
	if err := ctrl.ensureRefsExist(c, req.TeacherID, classroomRef); err != nil {
		return helper.WritePGError(c, err)
	}
	req.Apply(&subject)

	if err := ctrl.DB.WithContext(c.Context()).Save(&subject).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Subject berhasil diperbarui", subject)
}

// =============================
// 🗑️ DELETE /api/a/subjects/:id (admin, soft delete)
// =============================
func (ctrl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID subject tidak valid")
	}
	res := ctrl.DB.WithContext(c.Context()).
		Where("subject_id = ?", id).
		Delete(&m.SubjectModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Subject berhasil dihapus", fiber.Map{"subject_id": id})
}

func (ctrl *SubjectController) ensureRefsExist(c *fiber.Ctx, teacherID, classroomID *uuid.UUID) error {
	if teacherID != nil {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&teacherModel.TeacherModel{}).
			Where("teacher_id = ?", *teacherID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
	}
	if classroomID != nil {
		var count int64
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&classroomModel.ClassroomModel{}).
			Where("classroom_id = ?", *classroomID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
	}
	return nil
}
