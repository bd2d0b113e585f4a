// file: internals/features/school/academics/schedules/controller/class_schedule_controller.go
package controller

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/academics/schedules/dto"
	"sekolahku_backend/internals/features/school/academics/schedules/service"
	"sekolahku_backend/internals/features/school/access"
	helper "sekolahku_backend/internals/helpers"
)

type ClassScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.ScheduleService
	Access   *access.Resolver
}

func NewClassScheduleController(db *gorm.DB) *ClassScheduleController {
	return &ClassScheduleController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
		Access:   access.NewResolver(db),
	}
}

// =============================
// ➕ POST /api/a/class-schedules (admin)
// =============================
func (ctrl *ClassScheduleController) CreateClassSchedule(c *fiber.Ctx) error {
	var req dto.CreateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, err := ctrl.Service.Create(c.Context(), req.ToInput())
	if err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[SCHEDULE] ✅ jadwal dibuat: kelas=%s guru=%s hari=%d jam=%d-%d",
		entry.ClassScheduleClassroomID, entry.ClassScheduleTeacherID,
		entry.ClassScheduleDayOfWeek, entry.ClassSchedulePeriodStart, entry.ClassSchedulePeriodEnd)

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", dto.FromModel(entry))
}

// =============================
// 🗑️ DELETE /api/a/class-schedules/:id (admin)
// =============================
func (ctrl *ClassScheduleController) DeleteClassSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}
	if err := ctrl.Service.Delete(c.Context(), id); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{"class_schedule_id": id})
}

// =============================
// 📄 GET /api/a/class-schedules (admin, semua)
// =============================
func (ctrl *ClassScheduleController) GetAllClassSchedules(c *fiber.Ctx) error {
	list, err := ctrl.Service.ListAll(c.Context())
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar jadwal", dto.FromModels(list), nil)
}

// =============================
// 📄 GET /api/u/classrooms/:id/schedule (semua role login)
// Student hanya kelasnya sendiri; teacher hanya kelas dalam set aksesnya.
// =============================
func (ctrl *ClassScheduleController) GetClassroomSchedule(c *fiber.Ctx) error {
	classroomID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	if err := ctrl.ensureCanViewClassroom(c.Context(), role, userID, classroomID); err != nil {
		return helper.WritePGError(c, err)
	}

	list, err := ctrl.Service.ListByClassroom(c.Context(), classroomID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Jadwal kelas", dto.FromModels(list), nil)
}

// =============================
// 📄 GET /api/t/my-schedule (teacher)
// =============================
func (ctrl *ClassScheduleController) GetMySchedule(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacher, err := ctrl.Access.RequireTeacherProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	list, err := ctrl.Service.ListByTeacher(c.Context(), teacher.TeacherID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Jadwal mengajar Anda", dto.FromModels(list), nil)
}

func (ctrl *ClassScheduleController) ensureCanViewClassroom(ctx context.Context, role string, userID, classroomID uuid.UUID) error {
	switch role {
	case constants.RoleAdmin:
		// 404 tetap dicek supaya id asal-asalan tidak balas list kosong
		_, err := ctrl.Access.EnsureClassroomExists(ctx, classroomID)
		return err
	case constants.RoleTeacher:
		teacher, err := ctrl.Access.RequireTeacherProfile(ctx, userID)
		if err != nil {
			return err
		}
		_, err = ctrl.Access.EnsureTeacherCanActOnClassroom(ctx, teacher.TeacherID, classroomID)
		return err
	case constants.RoleStudent:
		student, err := ctrl.Access.RequireStudentProfile(ctx, userID)
		if err != nil {
			return err
		}
		if _, err := ctrl.Access.EnsureClassroomExists(ctx, classroomID); err != nil {
			return err
		}
		if student.StudentClassroomID != classroomID {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak punya akses ke kelas ini")
		}
		return nil
	default:
		return fiber.NewError(fiber.StatusForbidden, "Role tidak dikenali")
	}
}
