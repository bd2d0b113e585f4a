package helper

import "strings"

// NormalizeSessionCode menyamakan input scan/ketik manual: trim + uppercase.
// "ab12cd" dan "AB12CD " adalah kode yang sama.
func NormalizeSessionCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
