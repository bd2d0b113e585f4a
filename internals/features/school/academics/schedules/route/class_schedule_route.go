// file: internals/features/school/academics/schedules/route/class_schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "sekolahku_backend/internals/features/school/academics/schedules/controller"
)

// ClassScheduleAdminRoutes: mount di group /api/a (admin).
func ClassScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewClassScheduleController(db)

	admin.Post("/class-schedules", ctrl.CreateClassSchedule)
	admin.Delete("/class-schedules/:id", ctrl.DeleteClassSchedule)
	admin.Get("/class-schedules", ctrl.GetAllClassSchedules)
}

// ClassScheduleTeacherRoutes: mount di group /api/t (teacher).
func ClassScheduleTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewClassScheduleController(db)

	teacher.Get("/my-schedule", ctrl.GetMySchedule)
}

// ClassScheduleUserRoutes: mount di group /api/u (semua role login).
func ClassScheduleUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewClassScheduleController(db)

	user.Get("/classrooms/:id/schedule", ctrl.GetClassroomSchedule)
}
