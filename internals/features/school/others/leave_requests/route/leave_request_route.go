// file: internals/features/school/others/leave_requests/route/leave_request_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaveController "sekolahku_backend/internals/features/school/others/leave_requests/controller"
)

// LeaveRequestStudentRoutes: mount di group /api/s.
func LeaveRequestStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := leaveController.NewLeaveRequestController(db)

	student.Post("/leave-requests", ctrl.CreateLeaveRequest)
	student.Get("/leave-requests", ctrl.GetMyLeaveRequests)
}

// LeaveRequestTeacherRoutes: mount di group /api/t.
// Admin ikut lewat guard role di service review (reviewer admin sah).
func LeaveRequestTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := leaveController.NewLeaveRequestController(db)

	teacher.Get("/leave-requests", ctrl.GetPendingLeaveRequests)
	teacher.Post("/leave-requests/:id/review", ctrl.ReviewLeaveRequest)
}
