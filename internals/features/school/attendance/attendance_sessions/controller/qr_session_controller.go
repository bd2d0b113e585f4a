// file: internals/features/school/attendance/attendance_sessions/controller/qr_session_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/access"
	"sekolahku_backend/internals/features/school/attendance/attendance_sessions/dto"
	"sekolahku_backend/internals/features/school/attendance/attendance_sessions/service"
	helper "sekolahku_backend/internals/helpers"
)

type QRSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.QRSessionService
	Access   *access.Resolver
}

func NewQRSessionController(db *gorm.DB) *QRSessionController {
	return &QRSessionController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
		Access:   access.NewResolver(db),
	}
}

// =============================
// ➕ POST /api/t/attendance-sessions (teacher)
// =============================
func (ctrl *QRSessionController) CreateSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateQRSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	session, err := ctrl.Service.CreateSession(c.Context(), service.CreateSessionInput{
		TeacherUserID:   userID,
		ClassroomID:     req.ClassroomID,
		Period:          req.Period,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[QR] ✅ sesi dibuat: kelas=%s period=%d exp=%s",
		session.QRAttendanceSessionClassroomID, session.QRAttendanceSessionPeriod,
		session.QRAttendanceSessionExpiresAt.Format("15:04:05"))

	return helper.JsonCreated(c, "Sesi absensi dibuat", dto.FromSessionModel(session))
}

// =============================
// 📄 GET /api/t/attendance-sessions (teacher, sesi miliknya)
// =============================
func (ctrl *QRSessionController) GetMySessions(c *fiber.Ctx) error {
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
	return helper.JsonList(c, "Sesi absensi Anda", dto.FromSessionModels(list), nil)
}

// =============================
// 🔒 POST /api/t/attendance-sessions/:id/deactivate (creator atau admin)
// =============================
func (ctrl *QRSessionController) DeactivateSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	session, err := ctrl.Service.DeactivateSession(c.Context(), sessionID, userID, role)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Sesi dinonaktifkan", dto.FromSessionModel(session))
}

// =============================
// 🎯 POST /api/s/attendance-sessions/redeem (student)
// =============================
func (ctrl *QRSessionController) RedeemCode(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RedeemQRCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := ctrl.Service.RedeemCode(c.Context(), service.RedeemInput{
		StudentUserID: userID,
		Code:          req.Code,
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[QR] ✅ redeem: student=%s period=%d status=%s",
		res.Record.AttendanceRecordStudentID, res.Record.AttendanceRecordPeriod, res.Record.AttendanceRecordStatus)

	return helper.JsonCreated(c, "Kehadiran tercatat", dto.FromRecordModel(&res.Record, res.StudentName))
}
