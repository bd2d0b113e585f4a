// file: internals/features/school/academics/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectController "sekolahku_backend/internals/features/school/academics/subjects/controller"
)

// SubjectAdminRoutes: mount di group /api/a.
func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	admin.Post("/subjects", ctrl.CreateSubject)
	admin.Get("/subjects", ctrl.GetAllSubjects)
	admin.Patch("/subjects/:id", ctrl.UpdateSubject)
	admin.Delete("/subjects/:id", ctrl.DeleteSubject)
}
