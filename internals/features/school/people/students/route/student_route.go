// file: internals/features/school/people/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "sekolahku_backend/internals/features/school/people/students/controller"
)

// StudentAdminRoutes: mount di group /api/a.
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	admin.Post("/students", ctrl.CreateStudent)
	admin.Get("/students", ctrl.GetAllStudents)
	admin.Patch("/students/:id", ctrl.UpdateStudent)
	admin.Delete("/students/:id", ctrl.DeleteStudent)
}

// StudentTeacherRoutes: mount di group /api/t.
func StudentTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	teacher.Get("/students", ctrl.GetMyStudents)
}

// StudentUserRoutes: mount di group /api/u.
func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	user.Get("/students/:id", ctrl.GetStudentProfile)
}
