// file: internals/seeds/users/admin_seeder.go
package users

import (
	"errors"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userModel "sekolahku_backend/internals/features/users/users/model"
)

// SeedDefaultAdmin memastikan minimal ada satu akun admin supaya
// instance baru bisa langsung dipakai. Idempotent: kalau email sudah
// ada, tidak menyentuh apa pun. Dilewati kalau env tidak diisi.
func SeedDefaultAdmin(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing userModel.UserModel
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := userModel.UserModel{
		UserName: "Administrator",
		Email:    email,
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("[SEED] ✅ admin default dibuat: %s", email)
	return nil
}
