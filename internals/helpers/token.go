// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

// Kunci Locals yang diisi middleware AuthJWT. Jangan baca claim mentah di controller.
const (
	LocUserID = "user_id"
	LocRole   = "user_role"
)

// Ambil user_id dari c.Locals(LocUserID).
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// Ambil role dari c.Locals(LocRole). Role di luar closed set dianggap tidak sah.
func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals(LocRole)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Role tidak ditemukan di token")
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !constants.ValidRole(s) {
		return "", fiber.NewError(fiber.StatusForbidden, "Role tidak dikenal")
	}
	return s, nil
}

func IsAdmin(c *fiber.Ctx) bool {
	r, err := GetRoleFromToken(c)
	return err == nil && r == constants.RoleAdmin
}

func IsTeacher(c *fiber.Ctx) bool {
	r, err := GetRoleFromToken(c)
	return err == nil && r == constants.RoleTeacher
}

func IsStudent(c *fiber.Ctx) bool {
	r, err := GetRoleFromToken(c)
	return err == nil && r == constants.RoleStudent
}
