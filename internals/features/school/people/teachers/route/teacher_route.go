// file: internals/features/school/people/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "sekolahku_backend/internals/features/school/people/teachers/controller"
)

// TeacherAdminRoutes: mount di group /api/a.
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := teacherController.NewTeacherController(db)

	admin.Post("/teachers", ctrl.CreateTeacher)
	admin.Get("/teachers", ctrl.GetAllTeachers)
	admin.Patch("/teachers/:id", ctrl.UpdateTeacher)
	admin.Delete("/teachers/:id", ctrl.DeleteTeacher)
}
