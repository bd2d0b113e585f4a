// file: internals/features/school/attendance/attendance_sessions/route/qr_session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "sekolahku_backend/internals/features/school/attendance/attendance_sessions/controller"
	"sekolahku_backend/internals/middlewares"
)

// QRSessionTeacherRoutes: mount di group /api/t.
// Admin juga boleh menonaktifkan sesi; guard creator-or-admin ada di service.
func QRSessionTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewQRSessionController(db)

	teacher.Post("/attendance-sessions", ctrl.CreateSession)
	teacher.Get("/attendance-sessions", ctrl.GetMySessions)
	teacher.Post("/attendance-sessions/:id/deactivate", ctrl.DeactivateSession)
}

// QRSessionStudentRoutes: mount di group /api/s.
// Redeem di-rate-limit terpisah: endpoint ini satu-satunya tempat menebak kode.
func QRSessionStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewQRSessionController(db)

	student.Post("/attendance-sessions/redeem", middlewares.QRRedeemRateLimiter(), ctrl.RedeemCode)
}
