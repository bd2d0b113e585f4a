// file: internals/features/school/people/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/access"
	recordModel "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
	"sekolahku_backend/internals/features/school/people/students/dto"
	m "sekolahku_backend/internals/features/school/people/students/model"
	userModel "sekolahku_backend/internals/features/users/users/model"
	helper "sekolahku_backend/internals/helpers"
)

const recentAttendanceLimit = 20

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Access   *access.Resolver
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:       db,
		Validate: validator.New(),
		Access:   access.NewResolver(db),
	}
}

// =============================
// ➕ POST /api/a/students (admin)
// =============================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
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
	if user.Role != constants.RoleStudent {
		return helper.JsonError(c, fiber.StatusBadRequest, "User tersebut bukan role student")
	}
	if _, err := ctrl.Access.EnsureClassroomExists(c.Context(), req.ClassroomID); err != nil {
		return helper.WritePGError(c, err)
	}

	student := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User tersebut sudah punya profil student")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Profil student dibuat", student)
}

// =============================
// 📄 GET /api/a/students (admin; filter ?classroom_id=)
// =============================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&m.StudentModel{})
	if raw := c.Query("classroom_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
		}
		q = q.Where("student_classroom_id = ?", id)
	}

	var students []m.StudentModel
	if err := q.Order("student_name ASC").Find(&students).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar student", students, nil)
}

// =============================
// ✏️ PATCH /api/a/students/:id (admin; pindah kelas lewat sini)
// =============================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student m.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.ClassroomID != nil {
		if _, err := ctrl.Access.EnsureClassroomExists(c.Context(), *req.ClassroomID); err != nil {
			return helper.WritePGError(c, err)
		}
	}
	req.Apply(&student)

	if err := ctrl.DB.WithContext(c.Context()).Save(&student).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Profil student diperbarui", student)
}

// =============================
// 🗑️ DELETE /api/a/students/:id (admin, soft delete)
// =============================
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}
	res := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).
		Delete(&m.StudentModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Profil student dihapus", fiber.Map{"student_id": id})
}

// =============================
// 👤 GET /api/u/students/:id (self / teacher dengan akses / admin)
// 404 dicek sebelum 403 (di resolver).
// =============================
func (ctrl *StudentController) GetStudentProfile(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID student tidak valid")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	student, err := ctrl.Access.EnsureCanViewStudent(c.Context(), access.Principal{
		UserID: userID, Role: role,
	}, studentID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var records []recordModel.AttendanceRecordModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_record_student_id = ?", student.StudentID).
		Order("attendance_record_date DESC, attendance_record_period DESC").
		Limit(recentAttendanceLimit).
		Find(&records).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Profil student", dto.BuildProfile(student, records))
}

// =============================
// 👥 GET /api/t/students[?classroom_id=] (teacher)
// Tanpa filter: semua student di set akses guru. Dengan filter:
// 403 kalau kelas itu di luar set (404 dulu kalau kelasnya tidak ada).
// =============================
func (ctrl *StudentController) GetMyStudents(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacher, err := ctrl.Access.RequireTeacherProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var classroomIDs []uuid.UUID
	if raw := c.Query("classroom_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
		}
		if _, err := ctrl.Access.EnsureTeacherCanActOnClassroom(c.Context(), teacher.TeacherID, id); err != nil {
			return helper.WritePGError(c, err)
		}
		classroomIDs = []uuid.UUID{id}
	} else {
		ids, err := ctrl.Access.AccessibleClassroomIDs(c.Context(), teacher.TeacherID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		for id := range ids {
			classroomIDs = append(classroomIDs, id)
		}
		if len(classroomIDs) == 0 {
			return helper.JsonList(c, "Student di kelas Anda", []m.StudentModel{}, nil)
		}
	}

	var students []m.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_classroom_id IN ?", classroomIDs).
		Order("student_name ASC").
		Find(&students).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Student di kelas Anda", students, nil)
}
