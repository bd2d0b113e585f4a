// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	NotificationRoutes "sekolahku_backend/internals/features/notifications/route"
	ClassroomRoutes "sekolahku_backend/internals/features/school/academics/classrooms/route"
	ScheduleRoutes "sekolahku_backend/internals/features/school/academics/schedules/route"
	SubjectRoutes "sekolahku_backend/internals/features/school/academics/subjects/route"
	AttendanceRecordRoutes "sekolahku_backend/internals/features/school/attendance/attendance_records/route"
	QRSessionRoutes "sekolahku_backend/internals/features/school/attendance/attendance_sessions/route"
	LeaveRequestRoutes "sekolahku_backend/internals/features/school/others/leave_requests/route"
	StudentRoutes "sekolahku_backend/internals/features/school/people/students/route"
	TeacherRoutes "sekolahku_backend/internals/features/school/people/teachers/route"
	UserRoutes "sekolahku_backend/internals/features/users/users/route"
)

/* ===================== ADMIN (/api/a) ===================== */
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	UserRoutes.UserAdminRoutes(r, db)
	TeacherRoutes.TeacherAdminRoutes(r, db)
	StudentRoutes.StudentAdminRoutes(r, db)
	ClassroomRoutes.ClassroomAdminRoutes(r, db)
	SubjectRoutes.SubjectAdminRoutes(r, db)
	ScheduleRoutes.ClassScheduleAdminRoutes(r, db)
	NotificationRoutes.NotificationAdminRoutes(r, db)
}

/* ===================== TEACHER (/api/t) ===================== */
func TeacherRoutesGroup(r fiber.Router, db *gorm.DB) {
	ScheduleRoutes.ClassScheduleTeacherRoutes(r, db)
	StudentRoutes.StudentTeacherRoutes(r, db)
	QRSessionRoutes.QRSessionTeacherRoutes(r, db)
	AttendanceRecordRoutes.AttendanceRecordTeacherRoutes(r, db)
	LeaveRequestRoutes.LeaveRequestTeacherRoutes(r, db)
}

/* ===================== STUDENT (/api/s) ===================== */
func StudentRoutesGroup(r fiber.Router, db *gorm.DB) {
	QRSessionRoutes.QRSessionStudentRoutes(r, db)
	AttendanceRecordRoutes.AttendanceRecordStudentRoutes(r, db)
	LeaveRequestRoutes.LeaveRequestStudentRoutes(r, db)
}

/* ===================== USER (/api/u) ===================== */
func UserRoutesGroup(r fiber.Router, db *gorm.DB) {
	StudentRoutes.StudentUserRoutes(r, db)
	ScheduleRoutes.ClassScheduleUserRoutes(r, db)
	NotificationRoutes.NotificationUserRoutes(r, db)
}
