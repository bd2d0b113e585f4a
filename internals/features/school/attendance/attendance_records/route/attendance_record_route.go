// file: internals/features/school/attendance/attendance_records/route/attendance_record_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordController "sekolahku_backend/internals/features/school/attendance/attendance_records/controller"
)

// AttendanceRecordTeacherRoutes: mount di group /api/t.
func AttendanceRecordTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := recordController.NewAttendanceRecordController(db)

	teacher.Get("/attendance-records", ctrl.GetClassroomAttendance)
	teacher.Post("/attendance-records", ctrl.MarkAttendance)
}

// AttendanceRecordStudentRoutes: mount di group /api/s.
func AttendanceRecordStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := recordController.NewAttendanceRecordController(db)

	student.Get("/my-attendance", ctrl.GetMyAttendance)
}
