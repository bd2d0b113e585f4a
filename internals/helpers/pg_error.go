// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- PG error mapping ---
// 23P01 = exclusion_violation (bentrok jadwal)
// 23503 = foreign_key_violation
// 23505 = unique_violation

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func pgCode(err error) string {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState()
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation: unique constraint kena (Postgres 23505, atau sqlite saat test).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgCode(err) == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsExclusionViolation: EXCLUDE constraint kena (bentrok interval jadwal).
func IsExclusionViolation(err error) bool {
	return err != nil && pgCode(err) == "23P01"
}

func mapPGError(err error) (int, string) {
	switch pgCode(err) {
	case "23P01":
		return http.StatusConflict, "Bentrok jadwal: time range overlap."
	case "23503":
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case "23505":
		return http.StatusConflict, "Data duplikat (unique violation)."
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return http.StatusConflict, "Data duplikat (unique violation)."
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}
	code, msg := mapPGError(err)
	return JsonError(c, code, msg)
}
