// file: internals/features/school/academics/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/classrooms/dto"
	m "sekolahku_backend/internals/features/school/academics/classrooms/model"
	teacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db, Validate: validator.New()}
}

// =============================
// ➕ POST /api/a/classrooms (admin)
// =============================
func (ctrl *ClassroomController) CreateClassroom(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.HomeroomTeacherID != nil {
		if err := ctrl.ensureTeacherExists(c, *req.HomeroomTeacherID); err != nil {
			return helper.WritePGError(c, err)
		}
	}

	room := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&room).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Guru tersebut sudah jadi wali kelas lain")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", room)
}

// =============================
// 📄 GET /api/a/classrooms (admin)
// =============================
func (ctrl *ClassroomController) GetAllClassrooms(c *fiber.Ctx) error {
	var rooms []m.ClassroomModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("classroom_grade_level ASC, classroom_name ASC").
		Find(&rooms).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar kelas", rooms, nil)
}

// =============================
// 📄 GET /api/a/classrooms/:id (admin)
// =============================
func (ctrl *ClassroomController) GetClassroomByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	var room m.ClassroomModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&room, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Detail kelas", room)
}

// =============================
// ✏️ PATCH /api/a/classrooms/:id (admin)
// =============================
func (ctrl *ClassroomController) UpdateClassroom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var req dto.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var room m.ClassroomModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&room, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if !req.ClearHomeroom && req.HomeroomTeacherID != nil {
		if err := ctrl.ensureTeacherExists(c, *req.HomeroomTeacherID); err != nil {
			return helper.WritePGError(c, err)
		}
	}
	req.Apply(&room)

	if err := ctrl.DB.WithContext(c.Context()).Save(&room).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Guru tersebut sudah jadi wali kelas lain")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", room)
}

// =============================
// 🗑️ DELETE /api/a/classrooms/:id (admin, soft delete)
// Kelas yang masih punya student tidak boleh dihapus.
// =============================
func (ctrl *ClassroomController) DeleteClassroom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	var studentCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("students").
		Where("student_classroom_id = ? AND student_deleted_at IS NULL", id).
		Count(&studentCount).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if studentCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kelas masih punya student; pindahkan dulu")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("classroom_id = ?", id).
		Delete(&m.ClassroomModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"classroom_id": id})
}

func (ctrl *ClassroomController) ensureTeacherExists(c *fiber.Ctx, teacherID uuid.UUID) error {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Teacher tidak ditemukan")
	}
	return nil
}
