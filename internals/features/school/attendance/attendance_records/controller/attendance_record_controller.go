// file: internals/features/school/attendance/attendance_records/controller/attendance_record_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/access"
	"sekolahku_backend/internals/features/school/attendance/attendance_records/dto"
	m "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceRecordController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Access   *access.Resolver
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{
		DB:       db,
		Validate: validator.New(),
		Access:   access.NewResolver(db),
	}
}

// =============================
// ✍️ POST /api/t/attendance-records (teacher, manual mark)
// Pakai arbiter yang sama dengan redeem QR: unique (student, date, period).
// =============================
func (ctrl *AttendanceRecordController) MarkAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
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

	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	teacher, err := ctrl.Access.RequireTeacherProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	// 404 student dulu, baru 403 akses kelas
	student, err := ctrl.Access.EnsureCanViewStudent(c.Context(), access.Principal{
		UserID: userID, Role: role,
	}, req.StudentID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	record := m.AttendanceRecordModel{
		AttendanceRecordStudentID:         student.StudentID,
		AttendanceRecordDate:              m.DateOnly(date),
		AttendanceRecordPeriod:            req.Period,
		AttendanceRecordStatus:            m.AttendanceStatus(req.Status),
		AttendanceRecordMarkedByTeacherID: &teacher.TeacherID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kehadiran student sudah tercatat untuk jam tersebut")
		}
		return helper.WritePGError(c, err)
	}

	log.Printf("[ATTENDANCE] ✍️ manual mark: student=%s date=%s period=%d status=%s oleh guru=%s",
		student.StudentID, req.Date, req.Period, req.Status, teacher.TeacherID)

	return helper.JsonCreated(c, "Kehadiran tercatat", dto.FromModel(&record))
}

// =============================
// 📄 GET /api/t/attendance-records?classroom_id=&date= (teacher)
// =============================
func (ctrl *AttendanceRecordController) GetClassroomAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	classroomID, err := uuid.Parse(c.Query("classroom_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id wajib diisi dan valid")
	}

	teacher, err := ctrl.Access.RequireTeacherProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if _, err := ctrl.Access.EnsureTeacherCanActOnClassroom(c.Context(), teacher.TeacherID, classroomID); err != nil {
		return helper.WritePGError(c, err)
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&m.AttendanceRecordModel{}).
		Joins("JOIN students ON students.student_id = attendance_records.attendance_record_student_id").
		Where("students.student_classroom_id = ?", classroomID)

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		q = q.Where("attendance_record_date = ?", m.DateOnly(date))
	}

	var list []m.AttendanceRecordModel
	if err := q.Order("attendance_record_date DESC, attendance_record_period ASC").
		Find(&list).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Catatan kehadiran kelas", dto.FromModels(list), nil)
}

// =============================
// 📄 GET /api/s/my-attendance (student, riwayat sendiri)
// =============================
func (ctrl *AttendanceRecordController) GetMyAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	student, err := ctrl.Access.RequireStudentProfile(c.Context(), userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var list []m.AttendanceRecordModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_record_student_id = ?", student.StudentID).
		Order("attendance_record_date DESC, attendance_record_period ASC").
		Limit(100).
		Find(&list).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Riwayat kehadiran Anda", dto.FromModels(list), nil)
}
