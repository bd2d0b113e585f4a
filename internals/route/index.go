// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

// SetupRoutes memasang semua group API:
//
//	/api/a → admin
//	/api/t → teacher (+admin)
//	/api/s → student
//	/api/u → semua role login
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatalln("❌ JWT_SECRET belum diset, semua group API butuh token")
	}
	jwtGuard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              secret,
		AllowCookieFallback: true,
	})

	// DB tersedia di c.Locals("db") untuk handler yang tidak dibangun via constructor
	app.Use(middlewares.DBMiddleware(db))

	/* ===================== ADMIN ===================== */
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		jwtGuard,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("area admin"), constants.RoleAdmin),
	)
	routeDetails.AdminRoutes(admin, db)

	/* ===================== TEACHER ===================== */
	log.Println("[INFO] Setting up TEACHER group (/api/t)...")
	teacher := app.Group("/api/t",
		jwtGuard,
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("area guru"), constants.TeacherAndAbove...),
	)
	routeDetails.TeacherRoutesGroup(teacher, db)

	/* ===================== STUDENT ===================== */
	log.Println("[INFO] Setting up STUDENT group (/api/s)...")
	student := app.Group("/api/s",
		jwtGuard,
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("area student"), constants.RoleStudent),
	)
	routeDetails.StudentRoutesGroup(student, db)

	/* ===================== USER (semua role) ===================== */
	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := app.Group("/api/u",
		jwtGuard,
		authMiddleware.OnlyRoles("❌ Login diperlukan.", constants.AllRoles...),
	)
	routeDetails.UserRoutesGroup(user, db)
}
