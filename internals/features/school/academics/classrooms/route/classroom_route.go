// file: internals/features/school/academics/classrooms/route/classroom_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomController "sekolahku_backend/internals/features/school/academics/classrooms/controller"
)

// ClassroomAdminRoutes: mount di group /api/a.
func ClassroomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := classroomController.NewClassroomController(db)

	admin.Post("/classrooms", ctrl.CreateClassroom)
	admin.Get("/classrooms", ctrl.GetAllClassrooms)
	admin.Get("/classrooms/:id", ctrl.GetClassroomByID)
	admin.Patch("/classrooms/:id", ctrl.UpdateClassroom)
	admin.Delete("/classrooms/:id", ctrl.DeleteClassroom)
}
