// file: internals/features/school/people/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/people/teachers/dto"
	m "sekolahku_backend/internals/features/school/people/teachers/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// =============================
// ➕ POST /api/a/teachers (admin)
// User harus ada dan ber-role teacher; satu user max satu profil teacher
// (unique index yang menjaga race-nya).
// =============================
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	if user.Role != constants.RoleTeacher {
		return helper.JsonError(c, fiber.StatusBadRequest, "User tersebut bukan role teacher")
	}

	teacher := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&teacher).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User tersebut sudah punya profil teacher")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Profil teacher dibuat", teacher)
}

// =============================
// 📄 GET /api/a/teachers (admin)
// =============================
func (ctrl *TeacherController) GetAllTeachers(c *fiber.Ctx) error {
	var teachers []m.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("teacher_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar teacher", teachers, nil)
}

// =============================
// ✏️ PATCH /api/a/teachers/:id (admin)
// =============================
func (ctrl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID teacher tidak valid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var teacher m.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&teacher, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	req.Apply(&teacher)
	if err := ctrl.DB.WithContext(c.Context()).Save(&teacher).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Profil teacher diperbarui", teacher)
}

// =============================
// 🗑️ DELETE /api/a/teachers/:id (admin, soft delete)
// =============================
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID teacher tidak valid")
	}
	res := ctrl.DB.WithContext(c.Context()).
		Where("teacher_id = ?", id).
		Delete(&m.TeacherModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Profil teacher dihapus", fiber.Map{"teacher_id": id})
}
