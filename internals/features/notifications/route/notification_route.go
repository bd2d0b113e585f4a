// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "sekolahku_backend/internals/features/notifications/controller"
)

// NotificationAdminRoutes: mount di group /api/a.
func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	admin.Post("/notifications", ctrl.Broadcast)
}

// NotificationUserRoutes: mount di group /api/u.
func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	user.Get("/notifications", ctrl.GetMyNotifications)
}
