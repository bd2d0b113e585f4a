// file: internals/features/school/others/leave_requests/controller/leave_request_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	notificationService "sekolahku_backend/internals/features/notifications/service"
	"sekolahku_backend/internals/features/school/access"
	"sekolahku_backend/internals/features/school/others/leave_requests/dto"
	m "sekolahku_backend/internals/features/school/others/leave_requests/model"
	helper "sekolahku_backend/internals/helpers"
)

type LeaveRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Access   *access.Resolver
	Notif    *notificationService.NotificationService
}

func NewLeaveRequestController(db *gorm.DB) *LeaveRequestController {
	return &LeaveRequestController{
		DB:       db,
		Validate: validator.New(),
		Access:   access.NewResolver(db),
		Notif:    notificationService.New(db),
	}
}

// =============================
// ➕ POST /api/s/leave-requests (student)
// Satu pengajuan per (student, tanggal); unique index yang menjaga.
// =============================
func (ctrl *LeaveRequestController) CreateLeaveRequest(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	student, err := ctrl.Access.RequireStudentProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var req dto.CreateLeaveRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	date, err := req.ParsedDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	leave := m.LeaveRequestModel{
		LeaveRequestStudentID: student.StudentID,
		LeaveRequestDate:      date,
		LeaveRequestReason:    req.Reason,
		LeaveRequestStatus:    m.LeavePending,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&leave).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Sudah ada pengajuan izin untuk tanggal tersebut")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Pengajuan izin terkirim", leave)
}

// =============================
// 📄 GET /api/s/leave-requests (student, milik sendiri)
// =============================
func (ctrl *LeaveRequestController) GetMyLeaveRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	student, err := ctrl.Access.RequireStudentProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var list []m.LeaveRequestModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("leave_request_student_id = ?", student.StudentID).
		Order("leave_request_date DESC").
		Find(&list).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Pengajuan izin Anda", list, nil)
}

// =============================
// 📄 GET /api/t/leave-requests (teacher: pengajuan student di set aksesnya)
// =============================
func (ctrl *LeaveRequestController) GetPendingLeaveRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	teacher, err := ctrl.Access.RequireTeacherProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	ids, err := ctrl.Access.AccessibleClassroomIDs(c.Context(), teacher.TeacherID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if len(ids) == 0 {
		return helper.JsonList(c, "Pengajuan izin menunggu review", []m.LeaveRequestModel{}, nil)
	}
	classroomIDs := make([]uuid.UUID, 0, len(ids))
	for id := range ids {
		classroomIDs = append(classroomIDs, id)
	}

	var list []m.LeaveRequestModel
	if err := ctrl.DB.WithContext(c.Context()).
		Joins("JOIN students ON students.student_id = leave_requests.leave_request_student_id").
		Where("students.student_classroom_id IN ?", classroomIDs).
		Where("leave_request_status = ?", m.LeavePending).
		Order("leave_request_date ASC").
		Find(&list).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Pengajuan izin menunggu review", list, nil)
}

// =============================
// ✅ POST /api/t/leave-requests/:id/review (teacher dengan akses, atau admin)
// Review ulang ditolak: status pending satu arah ke approved/rejected.
// =============================
func (ctrl *LeaveRequestController) ReviewLeaveRequest(c *fiber.Ctx) error {
	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ReviewLeaveRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var leave m.LeaveRequestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&leave, "leave_request_id = ?", leaveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	// 404 dulu di atas; sekarang cek hak review (403)
	student, err := ctrl.Access.EnsureCanViewStudent(c.Context(), access.Principal{
		UserID: userID, Role: role,
	}, leave.LeaveRequestStudentID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	var reviewerTeacherID *uuid.UUID
	if !helper.IsAdmin(c) {
		teacher, err := ctrl.Access.RequireTeacherProfile(c.Context(), userID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		reviewerTeacherID = &teacher.TeacherID
	}

	if leave.LeaveRequestStatus != m.LeavePending {
		return helper.JsonError(c, fiber.StatusConflict, "Pengajuan sudah direview")
	}

	if req.Approve {
		leave.LeaveRequestStatus = m.LeaveApproved
	} else {
		leave.LeaveRequestStatus = m.LeaveRejected
	}
	leave.LeaveRequestReviewedByTeacherID = reviewerTeacherID
	leave.LeaveRequestReviewNote = req.Note

	if err := ctrl.DB.WithContext(c.Context()).Save(&leave).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	log.Printf("[LEAVE] ✅ review: id=%s status=%s", leave.LeaveRequestID, leave.LeaveRequestStatus)

	ctrl.Notif.Dispatch(notificationService.DispatchInput{
		Title:         "Pengajuan izin " + string(leave.LeaveRequestStatus),
		Body:          "Pengajuan izin tanggal " + leave.LeaveRequestDate.Format("2006-01-02") + " telah direview",
		AudienceRoles: []string{constants.RoleStudent},
		ClassroomID:   &student.StudentClassroomID,
		Payload: map[string]any{
			"leave_request_id": leave.LeaveRequestID.String(),
			"status":           string(leave.LeaveRequestStatus),
		},
		CreatedByUserID: &userID,
	})

	return helper.JsonUpdated(c, "Pengajuan direview", leave)
}
