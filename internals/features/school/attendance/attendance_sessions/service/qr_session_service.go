// file: internals/features/school/attendance/attendance_sessions/service/qr_session_service.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/access"
	scheduleModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	recordModel "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
	m "sekolahku_backend/internals/features/school/attendance/attendance_sessions/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   QR session service
   =========================
   Issue kode pendek, redeem, deactivate. Pesan gagal redeem sengaja
   generik: jangan kasih tahu penebak kode apakah kodenya pernah ada.
*/

// Alfabet kode: uppercase alnum penuh 36 char; kode ditampilkan
// di proyektor, bukan diketik dari memori.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeIssueMaxRetries = 5

var errRedeemInvalid = fiber.NewError(fiber.StatusNotFound, "Kode tidak valid")

type QRSessionService struct {
	DB     *gorm.DB
	Access *access.Resolver
}

func New(db *gorm.DB) *QRSessionService {
	return &QRSessionService{DB: db, Access: access.NewResolver(db)}
}

// GenerateCode menghasilkan kode acak (crypto/rand) sepanjang n.
// Byte di atas 251 dibuang (252 = 7*36) supaya tiap karakter
// punya peluang sama, modulo polos bikin A..H lebih sering muncul.
func GenerateCode(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= 7*len(codeAlphabet) {
				continue
			}
			out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}

type CreateSessionInput struct {
	TeacherUserID   uuid.UUID
	ClassroomID     uuid.UUID
	Period          int
	DurationMinutes int
}

// CreateSession: cek akses guru ke kelas (404 dulu, baru 403), clamp durasi,
// lalu insert dengan retry kalau kode tabrakan (unique index yang memutus).
func (s *QRSessionService) CreateSession(ctx context.Context, in CreateSessionInput) (*m.QRAttendanceSessionModel, error) {
	if in.Period < scheduleModel.PeriodMin || in.Period > scheduleModel.PeriodMax {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Period harus %d..%d", scheduleModel.PeriodMin, scheduleModel.PeriodMax))
	}

	teacher, err := s.Access.RequireTeacherProfile(ctx, in.TeacherUserID)
	if err != nil {
		return nil, err
	}
	room, err := s.Access.EnsureTeacherCanActOnClassroom(ctx, teacher.TeacherID, in.ClassroomID)
	if err != nil {
		return nil, err
	}

	minutes := in.DurationMinutes
	if minutes < configs.QRSessionMinMinutes() {
		minutes = configs.QRSessionMinMinutes()
	}
	if minutes > configs.QRSessionMaxMinutes() {
		minutes = configs.QRSessionMaxMinutes()
	}

	var lastErr error
	for attempt := 0; attempt < codeIssueMaxRetries; attempt++ {
		code, err := GenerateCode(m.SessionCodeLength)
		if err != nil {
			return nil, err
		}
		session := m.QRAttendanceSessionModel{
			QRAttendanceSessionCode:        code,
			QRAttendanceSessionClassroomID: in.ClassroomID,
			QRAttendanceSessionTeacherID:   teacher.TeacherID,
			QRAttendanceSessionPeriod:      in.Period,
			QRAttendanceSessionExpiresAt:   time.Now().Add(time.Duration(minutes) * time.Minute),
			QRAttendanceSessionIsActive:    true,
			QRAttendanceSessionClassroomSnapshot: datatypes.JSONMap{
				"classroom_name":        room.ClassroomName,
				"classroom_grade_level": room.ClassroomGradeLevel,
			},
		}
		if err := s.DB.WithContext(ctx).Create(&session).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				lastErr = err
				continue // kode tabrakan, coba kode lain
			}
			return nil, err
		}
		return &session, nil
	}
	return nil, fmt.Errorf("gagal mendapat kode sesi unik setelah %d percobaan: %w", codeIssueMaxRetries, lastErr)
}

type RedeemInput struct {
	StudentUserID uuid.UUID
	Code          string
}

// RedeemResult membawa nama student untuk konfirmasi layar scan,
// record sendiri tidak menyimpan nama.
type RedeemResult struct {
	Record      recordModel.AttendanceRecordModel
	StudentName string
}

// RedeemCode menukar kode menjadi satu attendance record untuk hari ini.
// Urutan cek: lookup kode → redeemable → profil student → kelas cocok →
// insert. Unique (student, date, period) yang memutus double-scan.
func (s *QRSessionService) RedeemCode(ctx context.Context, in RedeemInput) (*RedeemResult, error) {
	code := helper.NormalizeSessionCode(in.Code)
	if len(code) != m.SessionCodeLength {
		return nil, errRedeemInvalid
	}

	var session m.QRAttendanceSessionModel
	if err := s.DB.WithContext(ctx).
		Where("qr_attendance_session_code = ?", code).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errRedeemInvalid
		}
		return nil, err
	}

	now := time.Now()
	if !session.Redeemable(now) {
		// dinonaktifkan ATAU lewat expires_at, dua-duanya jawaban yang sama
		return nil, fiber.NewError(fiber.StatusGone, "Sesi sudah berakhir")
	}

	student, err := s.Access.RequireStudentProfile(ctx, in.StudentUserID)
	if err != nil {
		return nil, err
	}
	if student.StudentClassroomID != session.QRAttendanceSessionClassroomID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Kode ini bukan untuk kelas Anda")
	}

	status := recordModel.AttendancePresent
	if grace := configs.QRLateAfterMinutes(); grace > 0 {
		if now.After(session.QRAttendanceSessionCreatedAt.Add(time.Duration(grace) * time.Minute)) {
			status = recordModel.AttendanceLate
		}
	}

	record := recordModel.AttendanceRecordModel{
		AttendanceRecordStudentID: student.StudentID,
		AttendanceRecordDate:      recordModel.DateOnly(now),
		AttendanceRecordPeriod:    session.QRAttendanceSessionPeriod,
		AttendanceRecordStatus:    status,
		AttendanceRecordSessionID: &session.QRAttendanceSessionID,
	}
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Kehadiran Anda sudah tercatat")
		}
		return nil, err
	}
	return &RedeemResult{Record: record, StudentName: student.StudentName}, nil
}

// DeactivateSession: hanya guru pembuat atau admin; idempotent,
// menonaktifkan sesi yang sudah nonaktif tetap sukses.
func (s *QRSessionService) DeactivateSession(ctx context.Context, sessionID, actorUserID uuid.UUID, actorRole string) (*m.QRAttendanceSessionModel, error) {
	var session m.QRAttendanceSessionModel
	if err := s.DB.WithContext(ctx).
		Where("qr_attendance_session_id = ?", sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return nil, err
	}

	if actorRole != constants.RoleAdmin {
		teacher, err := s.Access.RequireTeacherProfile(ctx, actorUserID)
		if err != nil {
			return nil, err
		}
		if session.QRAttendanceSessionTeacherID != teacher.TeacherID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Hanya pembuat sesi atau admin yang boleh menonaktifkan")
		}
	}

	if !session.QRAttendanceSessionIsActive {
		return &session, nil
	}
	if err := s.DB.WithContext(ctx).
		Model(&session).
		Update("qr_attendance_session_is_active", false).Error; err != nil {
		return nil, err
	}
	session.QRAttendanceSessionIsActive = false
	return &session, nil
}

// ListByTeacher: sesi milik guru, terbaru dulu.
func (s *QRSessionService) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]m.QRAttendanceSessionModel, error) {
	var out []m.QRAttendanceSessionModel
	err := s.DB.WithContext(ctx).
		Where("qr_attendance_session_teacher_id = ?", teacherID).
		Order("qr_attendance_session_created_at DESC").
		Find(&out).Error
	return out, err
}
