// file: internals/features/school/attendance/attendance_sessions/service/qr_session_service_test.go
package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
	classroomModel "sekolahku_backend/internals/features/school/academics/classrooms/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	recordModel "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
	m "sekolahku_backend/internals/features/school/attendance/attendance_sessions/model"
	studentModel "sekolahku_backend/internals/features/school/people/students/model"
	teacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
)

type fixture struct {
	db       *gorm.DB
	svc      *QRSessionService
	teacher  teacherModel.TeacherModel
	room     classroomModel.ClassroomModel
	student  studentModel.StudentModel
	outsider studentModel.StudentModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&classroomModel.ClassroomModel{},
		&subjectModel.SubjectModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&m.QRAttendanceSessionModel{},
		&recordModel.AttendanceRecordModel{},
	))

	teacher := teacherModel.TeacherModel{TeacherUserID: uuid.New(), TeacherName: "Bu Sari"}
	require.NoError(t, db.Create(&teacher).Error)
	room := classroomModel.ClassroomModel{
		ClassroomName: "7A", ClassroomGradeLevel: 7, ClassroomRoomNumber: "R1",
		ClassroomHomeroomTeacherID: &teacher.TeacherID,
	}
	require.NoError(t, db.Create(&room).Error)
	otherRoom := classroomModel.ClassroomModel{ClassroomName: "9C", ClassroomGradeLevel: 9, ClassroomRoomNumber: "R9"}
	require.NoError(t, db.Create(&otherRoom).Error)

	student := studentModel.StudentModel{StudentUserID: uuid.New(), StudentClassroomID: room.ClassroomID, StudentName: "Andi"}
	require.NoError(t, db.Create(&student).Error)
	outsider := studentModel.StudentModel{StudentUserID: uuid.New(), StudentClassroomID: otherRoom.ClassroomID, StudentName: "Rina"}
	require.NoError(t, db.Create(&outsider).Error)

	return &fixture{
		db:       db,
		svc:      New(db),
		teacher:  teacher,
		room:     room,
		student:  student,
		outsider: outsider,
	}
}

func (f *fixture) createSession(t *testing.T) *m.QRAttendanceSessionModel {
	t.Helper()
	session, err := f.svc.CreateSession(context.Background(), CreateSessionInput{
		TeacherUserID:   f.teacher.TeacherUserID,
		ClassroomID:     f.room.ClassroomID,
		Period:          3,
		DurationMinutes: 10,
	})
	require.NoError(t, err)
	return session
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, status, fe.Code)
}

func (f *fixture) recordCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&recordModel.AttendanceRecordModel{}).Count(&n).Error)
	return n
}

func TestGenerateCodeShapeAndAlphabet(t *testing.T) {
	code, err := GenerateCode(m.SessionCodeLength)
	require.NoError(t, err)
	assert.Len(t, code, m.SessionCodeLength)
	for _, r := range code {
		assert.Contains(t, codeAlphabet, string(r))
	}
	assert.Equal(t, strings.ToUpper(code), code)

	// panjang besar memaksa jalur buang-byte (rejection) terisi ulang:
	// hasil tetap tepat n karakter dan semuanya dari alfabet
	long, err := GenerateCode(512)
	require.NoError(t, err)
	assert.Len(t, long, 512)
	for _, r := range long {
		assert.Contains(t, codeAlphabet, string(r))
	}
}

func TestCreateSessionRequiresClassroomAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// kelas yang tidak ada → 404
	_, err := f.svc.CreateSession(ctx, CreateSessionInput{
		TeacherUserID: f.teacher.TeacherUserID,
		ClassroomID:   uuid.New(),
		Period:        1,
	})
	requireStatus(t, err, fiber.StatusNotFound)

	// kelas ada tapi di luar set akses → 403
	_, err = f.svc.CreateSession(ctx, CreateSessionInput{
		TeacherUserID: f.teacher.TeacherUserID,
		ClassroomID:   f.outsider.StudentClassroomID,
		Period:        1,
	})
	requireStatus(t, err, fiber.StatusForbidden)

	// bukan guru sama sekali → 403
	_, err = f.svc.CreateSession(ctx, CreateSessionInput{
		TeacherUserID: uuid.New(),
		ClassroomID:   f.room.ClassroomID,
		Period:        1,
	})
	requireStatus(t, err, fiber.StatusForbidden)
}

func TestCreateSessionClampsDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before := time.Now()
	session, err := f.svc.CreateSession(ctx, CreateSessionInput{
		TeacherUserID:   f.teacher.TeacherUserID,
		ClassroomID:     f.room.ClassroomID,
		Period:          2,
		DurationMinutes: 9999,
	})
	require.NoError(t, err)

	// durasi kena clamp ke maksimum (default 30 menit)
	maxExpiry := before.Add(31 * time.Minute)
	assert.True(t, session.QRAttendanceSessionExpiresAt.Before(maxExpiry))
	assert.True(t, session.QRAttendanceSessionIsActive)
	assert.Len(t, session.QRAttendanceSessionCode, m.SessionCodeLength)
}

func TestRedeemableBoundary(t *testing.T) {
	now := time.Now()
	session := m.QRAttendanceSessionModel{
		QRAttendanceSessionIsActive:  true,
		QRAttendanceSessionExpiresAt: now.Add(10 * time.Minute),
	}

	assert.True(t, session.Redeemable(now))
	// tepat di expires_at sudah dianggap berakhir
	assert.False(t, session.Redeemable(session.QRAttendanceSessionExpiresAt))
	assert.False(t, session.Redeemable(session.QRAttendanceSessionExpiresAt.Add(time.Nanosecond)))

	session.QRAttendanceSessionIsActive = false
	assert.False(t, session.Redeemable(now))
}

func TestRedeemCreatesSingleRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.createSession(t)

	res, err := f.svc.RedeemCode(ctx, RedeemInput{
		StudentUserID: f.student.StudentUserID,
		Code:          session.QRAttendanceSessionCode,
	})
	require.NoError(t, err)
	assert.Equal(t, recordModel.AttendancePresent, res.Record.AttendanceRecordStatus)
	assert.Equal(t, session.QRAttendanceSessionPeriod, res.Record.AttendanceRecordPeriod)
	require.NotNil(t, res.Record.AttendanceRecordSessionID)
	assert.Equal(t, session.QRAttendanceSessionID, *res.Record.AttendanceRecordSessionID)
	// konfirmasi membawa nama student untuk layar scan
	assert.Equal(t, f.student.StudentName, res.StudentName)

	// scan kedua ditolak, tidak ada record kedua
	_, err = f.svc.RedeemCode(ctx, RedeemInput{
		StudentUserID: f.student.StudentUserID,
		Code:          session.QRAttendanceSessionCode,
	})
	requireStatus(t, err, fiber.StatusConflict)
	assert.EqualValues(t, 1, f.recordCount(t))
}

func TestRedeemNormalizesCodeInput(t *testing.T) {
	f := newFixture(t)
	session := f.createSession(t)

	_, err := f.svc.RedeemCode(context.Background(), RedeemInput{
		StudentUserID: f.student.StudentUserID,
		Code:          "  " + strings.ToLower(session.QRAttendanceSessionCode) + " ",
	})
	require.NoError(t, err)
}

func TestRedeemRejectsUnknownCode(t *testing.T) {
	f := newFixture(t)
	f.createSession(t)

	_, err := f.svc.RedeemCode(context.Background(), RedeemInput{
		StudentUserID: f.student.StudentUserID,
		Code:          "ZZZZZZ",
	})
	requireStatus(t, err, fiber.StatusNotFound)
	assert.EqualValues(t, 0, f.recordCount(t))
}

func TestRedeemChecksCodeBeforeProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.createSession(t)

	// kode tidak dikenal dari user tanpa profil student → tetap 404,
	// bukan bocor 403 soal profilnya
	_, err := f.svc.RedeemCode(ctx, RedeemInput{
		StudentUserID: uuid.New(),
		Code:          "ZZZZZZ",
	})
	requireStatus(t, err, fiber.StatusNotFound)

	// kode valid, user tanpa profil student → 403 profil
	_, err = f.svc.RedeemCode(ctx, RedeemInput{
		StudentUserID: uuid.New(),
		Code:          session.QRAttendanceSessionCode,
	})
	requireStatus(t, err, fiber.StatusForbidden)
	assert.EqualValues(t, 0, f.recordCount(t))
}

func TestRedeemRejectsExpiredAndDeactivatedAlike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expired := f.createSession(t)
	require.NoError(t, f.db.Model(expired).
		Update("qr_attendance_session_expires_at", time.Now().Add(-time.Minute)).Error)

	_, err := f.svc.RedeemCode(ctx, RedeemInput{
		StudentUserID: f.student.StudentUserID,
		Code:          expired.QRAttendanceSessionCode,
	})
	requireStatus(t, err, fiber.StatusGone)

	deactivated := f.createSession(t)
	_, err = f.svc.DeactivateSession(ctx, deactivated.QRAttendanceSessionID, f.teacher.TeacherUserID, constants.RoleTeacher)
	require.NoError(t, err)

	_, err = f.svc.RedeemCode(ctx, RedeemInput{
		StudentUserID: f.student.StudentUserID,
		Code:          deactivated.QRAttendanceSessionCode,
	})
	requireStatus(t, err, fiber.StatusGone)
	assert.EqualValues(t, 0, f.recordCount(t))
}

func TestRedeemRejectsCrossClassroomStudent(t *testing.T) {
	f := newFixture(t)
	session := f.createSession(t)

	_, err := f.svc.RedeemCode(context.Background(), RedeemInput{
		StudentUserID: f.outsider.StudentUserID,
		Code:          session.QRAttendanceSessionCode,
	})
	requireStatus(t, err, fiber.StatusForbidden)
	assert.EqualValues(t, 0, f.recordCount(t))
}

func TestRedeemMarksLateAfterGraceWindow(t *testing.T) {
	f := newFixture(t)
	t.Setenv("QR_LATE_AFTER_MINUTES", "5")

	session := f.createSession(t)
	// mundurkan created_at melewati jendela toleransi
	require.NoError(t, f.db.Model(session).
		Update("qr_attendance_session_created_at", time.Now().Add(-10*time.Minute)).Error)

	res, err := f.svc.RedeemCode(context.Background(), RedeemInput{
		StudentUserID: f.student.StudentUserID,
		Code:          session.QRAttendanceSessionCode,
	})
	require.NoError(t, err)
	assert.Equal(t, recordModel.AttendanceLate, res.Record.AttendanceRecordStatus)
}

func TestDeactivateGuardsAndIdempotency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.createSession(t)

	// guru lain bukan pembuat → 403
	other := teacherModel.TeacherModel{TeacherUserID: uuid.New(), TeacherName: "Pak Budi"}
	require.NoError(t, f.db.Create(&other).Error)
	_, err := f.svc.DeactivateSession(ctx, session.QRAttendanceSessionID, other.TeacherUserID, constants.RoleTeacher)
	requireStatus(t, err, fiber.StatusForbidden)

	// pembuat → sukses
	got, err := f.svc.DeactivateSession(ctx, session.QRAttendanceSessionID, f.teacher.TeacherUserID, constants.RoleTeacher)
	require.NoError(t, err)
	assert.False(t, got.QRAttendanceSessionIsActive)

	// idempotent: nonaktifkan lagi tetap sukses
	got, err = f.svc.DeactivateSession(ctx, session.QRAttendanceSessionID, f.teacher.TeacherUserID, constants.RoleTeacher)
	require.NoError(t, err)
	assert.False(t, got.QRAttendanceSessionIsActive)

	// admin boleh walau bukan pembuat
	_, err = f.svc.DeactivateSession(ctx, session.QRAttendanceSessionID, uuid.New(), constants.RoleAdmin)
	require.NoError(t, err)

	// id yang tidak ada → 404
	_, err = f.svc.DeactivateSession(ctx, uuid.New(), f.teacher.TeacherUserID, constants.RoleTeacher)
	requireStatus(t, err, fiber.StatusNotFound)
}

func TestConcurrentSessionsGetDistinctCodes(t *testing.T) {
	f := newFixture(t)

	const n = 20
	var wg sync.WaitGroup
	codes := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(period int) {
			defer wg.Done()
			session, err := f.svc.CreateSession(context.Background(), CreateSessionInput{
				TeacherUserID: f.teacher.TeacherUserID,
				ClassroomID:   f.room.ClassroomID,
				Period:        period%8 + 1,
			})
			if err == nil {
				codes <- session.QRAttendanceSessionCode
			}
		}(i)
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]struct{})
	for code := range codes {
		_, dup := seen[code]
		assert.False(t, dup, "kode duplikat: %s", code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, n)
}
