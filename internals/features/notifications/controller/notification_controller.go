// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/notifications/dto"
	"sekolahku_backend/internals/features/notifications/service"
	"sekolahku_backend/internals/features/school/access"
	helper "sekolahku_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.NotificationService
	Access   *access.Resolver
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.New(db),
		Access:   access.NewResolver(db),
	}
}

// =============================
// 📣 POST /api/a/notifications (admin broadcast)
// =============================
func (ctrl *NotificationController) Broadcast(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.BroadcastNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.ClassroomID != nil {
		if _, err := ctrl.Access.EnsureClassroomExists(c.Context(), *req.ClassroomID); err != nil {
			return helper.WritePGError(c, err)
		}
	}

	ctrl.Service.Dispatch(service.DispatchInput{
		Title:           req.Title,
		Body:            req.Body,
		AudienceRoles:   req.AudienceRoles,
		ClassroomID:     req.ClassroomID,
		Payload:         req.Payload,
		CreatedByUserID: &userID,
	})
	return helper.JsonCreated(c, "Notifikasi dikirim", fiber.Map{"queued": true})
}

// =============================
// 📄 GET /api/u/notifications (semua role login)
// Student dibatasi ke kelasnya; teacher/admin lihat broadcast umum.
// =============================
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var classroomID *uuid.UUID
	if helper.IsStudent(c) {
		student, err := ctrl.Access.RequireStudentProfile(c.Context(), userID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		classroomID = &student.StudentClassroomID
	}

	list, err := ctrl.Service.ListForUser(c.Context(), role, classroomID, c.QueryInt("limit", 50))
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Notifikasi Anda", list, nil)
}
