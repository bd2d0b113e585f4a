// file: internals/features/school/access/resolver_test.go
package access

import (
	"context"
	"testing"

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
	studentModel "sekolahku_backend/internals/features/school/people/students/model"
	teacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	))
	return db
}

func seedTeacher(t *testing.T, db *gorm.DB, name string) teacherModel.TeacherModel {
	t.Helper()
	teacher := teacherModel.TeacherModel{
		TeacherUserID: uuid.New(),
		TeacherName:   name,
	}
	require.NoError(t, db.Create(&teacher).Error)
	return teacher
}

func seedClassroom(t *testing.T, db *gorm.DB, name string, homeroom *uuid.UUID) classroomModel.ClassroomModel {
	t.Helper()
	room := classroomModel.ClassroomModel{
		ClassroomName:              name,
		ClassroomGradeLevel:        7,
		ClassroomRoomNumber:        "R-" + name,
		ClassroomHomeroomTeacherID: homeroom,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedSubject(t *testing.T, db *gorm.DB, code string, teacherID uuid.UUID, classroomID *uuid.UUID) subjectModel.SubjectModel {
	t.Helper()
	subject := subjectModel.SubjectModel{
		SubjectName:        "Subject " + code,
		SubjectCode:        code,
		SubjectTeacherID:   teacherID,
		SubjectClassroomID: classroomID,
	}
	require.NoError(t, db.Create(&subject).Error)
	return subject
}

func seedStudent(t *testing.T, db *gorm.DB, classroomID uuid.UUID) studentModel.StudentModel {
	t.Helper()
	student := studentModel.StudentModel{
		StudentUserID:      uuid.New(),
		StudentClassroomID: classroomID,
		StudentName:        "Student",
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func TestAccessibleClassroomIDsUnionsHomeroomAndSubjects(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	teacher := seedTeacher(t, db, "Bu Sari")
	homeroom := seedClassroom(t, db, "7A", &teacher.TeacherID)
	subjectRoom := seedClassroom(t, db, "8B", nil)
	seedClassroom(t, db, "9C", nil) // tidak terkait

	seedSubject(t, db, "MTK8B", teacher.TeacherID, &subjectRoom.ClassroomID)
	// subject tanpa kelas tidak menambah apa pun
	seedSubject(t, db, "MTKX", teacher.TeacherID, nil)

	ids, err := r.AccessibleClassroomIDs(ctx, teacher.TeacherID)
	require.NoError(t, err)

	assert.Len(t, ids, 2)
	assert.Contains(t, ids, homeroom.ClassroomID)
	assert.Contains(t, ids, subjectRoom.ClassroomID)
}

func TestAccessibleClassroomIDsEmptyForUnassignedTeacher(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)

	teacher := seedTeacher(t, db, "Pak Budi")
	seedClassroom(t, db, "7A", nil)

	ids, err := r.AccessibleClassroomIDs(context.Background(), teacher.TeacherID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAccessibleClassroomIDsDedupsHomeroomTaughtSubject(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)

	teacher := seedTeacher(t, db, "Bu Sari")
	room := seedClassroom(t, db, "7A", &teacher.TeacherID)
	// wali kelas sekaligus guru mapel di kelas yang sama
	seedSubject(t, db, "IPA7A", teacher.TeacherID, &room.ClassroomID)

	ids, err := r.AccessibleClassroomIDs(context.Background(), teacher.TeacherID)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestEnsureTeacherCanActOnClassroomNotFoundBeforeForbidden(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	teacher := seedTeacher(t, db, "Bu Sari")
	other := seedClassroom(t, db, "9C", nil)

	// id yang tidak ada → 404 meskipun guru juga tidak punya akses
	_, err := r.EnsureTeacherCanActOnClassroom(ctx, teacher.TeacherID, uuid.New())
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	// id yang ada tapi di luar set akses → 403
	_, err = r.EnsureTeacherCanActOnClassroom(ctx, teacher.TeacherID, other.ClassroomID)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestCanViewStudentPerRole(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	teacher := seedTeacher(t, db, "Bu Sari")
	room := seedClassroom(t, db, "7A", &teacher.TeacherID)
	otherRoom := seedClassroom(t, db, "9C", nil)
	student := seedStudent(t, db, room.ClassroomID)
	outsider := seedStudent(t, db, otherRoom.ClassroomID)

	// admin selalu boleh
	ok, err := r.CanViewStudent(ctx, Principal{UserID: uuid.New(), Role: constants.RoleAdmin}, &student)
	require.NoError(t, err)
	assert.True(t, ok)

	// student hanya dirinya sendiri
	ok, err = r.CanViewStudent(ctx, Principal{UserID: student.StudentUserID, Role: constants.RoleStudent}, &student)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.CanViewStudent(ctx, Principal{UserID: outsider.StudentUserID, Role: constants.RoleStudent}, &student)
	require.NoError(t, err)
	assert.False(t, ok)

	// teacher: hanya student di set aksesnya
	ok, err = r.CanViewStudent(ctx, Principal{UserID: teacher.TeacherUserID, Role: constants.RoleTeacher}, &student)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.CanViewStudent(ctx, Principal{UserID: teacher.TeacherUserID, Role: constants.RoleTeacher}, &outsider)
	require.NoError(t, err)
	assert.False(t, ok)

	// role tak dikenal jatuh ke deny
	ok, err = r.CanViewStudent(ctx, Principal{UserID: uuid.New(), Role: "superuser"}, &student)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanViewStudentReflectsSubjectReassignment(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	teacher := seedTeacher(t, db, "Pak Budi")
	room := seedClassroom(t, db, "8B", nil)
	student := seedStudent(t, db, room.ClassroomID)
	subject := seedSubject(t, db, "FIS8B", teacher.TeacherID, &room.ClassroomID)

	principal := Principal{UserID: teacher.TeacherUserID, Role: constants.RoleTeacher}

	ok, err := r.CanViewStudent(ctx, principal, &student)
	require.NoError(t, err)
	assert.True(t, ok)

	// pindahkan mapel ke guru lain: akses harus langsung hilang (tanpa cache)
	other := seedTeacher(t, db, "Bu Rina")
	require.NoError(t, db.Model(&subject).
		Update("subject_teacher_id", other.TeacherID).Error)

	ok, err = r.CanViewStudent(ctx, principal, &student)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureCanViewStudentNotFoundBeforeForbidden(t *testing.T) {
	db := newTestDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	room := seedClassroom(t, db, "7A", nil)
	student := seedStudent(t, db, room.ClassroomID)
	stranger := seedStudent(t, db, room.ClassroomID)

	var fe *fiber.Error

	_, err := r.EnsureCanViewStudent(ctx, Principal{UserID: stranger.StudentUserID, Role: constants.RoleStudent}, uuid.New())
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	_, err = r.EnsureCanViewStudent(ctx, Principal{UserID: stranger.StudentUserID, Role: constants.RoleStudent}, student.StudentID)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}
