// file: internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sekolahku_backend/internals/features/users/users/controller"
)

// UserAdminRoutes: direktori user hanya untuk admin.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	admin.Post("/users", ctrl.CreateUser)
	admin.Get("/users", ctrl.GetAllUsers)
	admin.Get("/users/:id", ctrl.GetUserByID)
	admin.Patch("/users/:id", ctrl.UpdateUser)
	admin.Delete("/users/:id", ctrl.DeactivateUser)
}
