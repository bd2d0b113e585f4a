// file: internals/features/school/academics/schedules/service/schedule_service_test.go
package service

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

	classroomModel "sekolahku_backend/internals/features/school/academics/classrooms/model"
	m "sekolahku_backend/internals/features/school/academics/schedules/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	teacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
)

type fixture struct {
	db        *gorm.DB
	svc       *ScheduleService
	subject   subjectModel.SubjectModel
	classroom classroomModel.ClassroomModel
	teacher   teacherModel.TeacherModel
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
		&m.ClassScheduleModel{},
	))

	teacher := teacherModel.TeacherModel{TeacherUserID: uuid.New(), TeacherName: "Bu Sari"}
	require.NoError(t, db.Create(&teacher).Error)
	room := classroomModel.ClassroomModel{ClassroomName: "7A", ClassroomGradeLevel: 7, ClassroomRoomNumber: "R1"}
	require.NoError(t, db.Create(&room).Error)
	subject := subjectModel.SubjectModel{
		SubjectName: "Matematika", SubjectCode: "MTK7",
		SubjectTeacherID: teacher.TeacherID, SubjectClassroomID: &room.ClassroomID,
	}
	require.NoError(t, db.Create(&subject).Error)

	return &fixture{
		db:        db,
		svc:       New(db),
		subject:   subject,
		classroom: room,
		teacher:   teacher,
	}
}

func (f *fixture) input(day m.DayOfWeek, start, end int) CreateScheduleInput {
	return CreateScheduleInput{
		DayOfWeek:   day,
		PeriodStart: start,
		PeriodEnd:   end,
		SubjectID:   f.subject.SubjectID,
		ClassroomID: f.classroom.ClassroomID,
		TeacherID:   f.teacher.TeacherID,
	}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, status, fe.Code)
}

func TestOverlapsIsSymmetricAndCatchesContainment(t *testing.T) {
	existing := m.ClassScheduleModel{ClassSchedulePeriodStart: 2, ClassSchedulePeriodEnd: 4}

	assert.True(t, existing.Overlaps(3, 5))  // overlap parsial
	assert.True(t, existing.Overlaps(1, 2))  // berbagi satu jam di tepi
	assert.True(t, existing.Overlaps(4, 6))  // tepi lainnya
	assert.True(t, existing.Overlaps(1, 8))  // yang baru menelan yang lama
	assert.True(t, existing.Overlaps(3, 3))  // yang lama menelan yang baru
	assert.True(t, existing.Overlaps(2, 4))  // duplikat persis
	assert.False(t, existing.Overlaps(5, 6)) // bersebelahan, tidak bentrok
	assert.False(t, existing.Overlaps(1, 1))

	// simetri: tes dari sudut pandang sebaliknya memberi jawaban sama
	flipped := m.ClassScheduleModel{ClassSchedulePeriodStart: 3, ClassSchedulePeriodEnd: 5}
	assert.Equal(t, existing.Overlaps(3, 5), flipped.Overlaps(2, 4))
}

func TestCreateRejectsInvalidRanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.input(m.Monday, 5, 3)) // start > end
	requireStatus(t, err, fiber.StatusBadRequest)

	_, err = f.svc.Create(ctx, f.input(m.Monday, 0, 3)) // di bawah jam pertama
	requireStatus(t, err, fiber.StatusBadRequest)

	_, err = f.svc.Create(ctx, f.input(m.Monday, 7, 9)) // di atas jam terakhir
	requireStatus(t, err, fiber.StatusBadRequest)

	_, err = f.svc.Create(ctx, f.input(m.DayOfWeek(6), 1, 2)) // sabtu
	requireStatus(t, err, fiber.StatusBadRequest)

	_, err = f.svc.Create(ctx, f.input(m.Monday, 1, 8)) // rentang penuh sah
	require.NoError(t, err)
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := f.input(m.Monday, 1, 2)
	in.SubjectID = uuid.New()
	_, err := f.svc.Create(ctx, in)
	requireStatus(t, err, fiber.StatusNotFound)

	in = f.input(m.Monday, 1, 2)
	in.ClassroomID = uuid.New()
	_, err = f.svc.Create(ctx, in)
	requireStatus(t, err, fiber.StatusNotFound)

	in = f.input(m.Monday, 1, 2)
	in.TeacherID = uuid.New()
	_, err = f.svc.Create(ctx, in)
	requireStatus(t, err, fiber.StatusNotFound)
}

func TestNoDoubleBookingForClassroom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.input(m.Monday, 2, 4))
	require.NoError(t, err)

	// guru lain, kelas sama, jam bentrok → tetap ditolak
	other := teacherModel.TeacherModel{TeacherUserID: uuid.New(), TeacherName: "Pak Budi"}
	require.NoError(t, f.db.Create(&other).Error)

	in := f.input(m.Monday, 4, 6) // berbagi jam ke-4
	in.TeacherID = other.TeacherID
	_, err = f.svc.Create(ctx, in)
	requireStatus(t, err, fiber.StatusConflict)

	// hari berbeda, slot sama → boleh
	in = f.input(m.Tuesday, 2, 4)
	in.TeacherID = other.TeacherID
	_, err = f.svc.Create(ctx, in)
	require.NoError(t, err)

	// hari sama, jam bersebelahan → boleh
	in = f.input(m.Monday, 5, 6)
	in.TeacherID = other.TeacherID
	_, err = f.svc.Create(ctx, in)
	require.NoError(t, err)
}

func TestNoDoubleBookingForTeacherAcrossClassrooms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.input(m.Wednesday, 1, 3))
	require.NoError(t, err)

	// kelas lain, guru sama, jam bentrok
	otherRoom := classroomModel.ClassroomModel{ClassroomName: "8B", ClassroomGradeLevel: 8, ClassroomRoomNumber: "R2"}
	require.NoError(t, f.db.Create(&otherRoom).Error)

	in := f.input(m.Wednesday, 3, 5)
	in.ClassroomID = otherRoom.ClassroomID
	_, err = f.svc.Create(ctx, in)
	requireStatus(t, err, fiber.StatusConflict)

	// jam lepas dari jadwal guru → boleh
	in = f.input(m.Wednesday, 4, 5)
	in.ClassroomID = otherRoom.ClassroomID
	_, err = f.svc.Create(ctx, in)
	require.NoError(t, err)
}

func TestClassroomConflictReportedBeforeTeacherConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.input(m.Friday, 2, 3))
	require.NoError(t, err)

	// bentrok kelas DAN guru sekaligus: pesan yang keluar yang soal kelas
	_, err = f.svc.Create(ctx, f.input(m.Friday, 2, 3))
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.Contains(t, fe.Message, "Kelas")
}

func TestCreateStampsDisplaySnapshots(t *testing.T) {
	f := newFixture(t)

	entry, err := f.svc.Create(context.Background(), f.input(m.Thursday, 1, 2))
	require.NoError(t, err)

	assert.Equal(t, "Matematika", entry.ClassScheduleSubjectNameSnap)
	assert.Equal(t, "Bu Sari", entry.ClassScheduleTeacherNameSnap)
	assert.Equal(t, "7A", entry.ClassScheduleClassroomNameSnap)
}

func TestDeleteFreesSlotForReplacement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	entry, err := f.svc.Create(ctx, f.input(m.Monday, 2, 4))
	require.NoError(t, err)

	// slot terkunci selama entri hidup
	_, err = f.svc.Create(ctx, f.input(m.Monday, 2, 4))
	requireStatus(t, err, fiber.StatusConflict)

	require.NoError(t, f.svc.Delete(ctx, entry.ClassScheduleID))

	// ganti jadwal = delete + create
	_, err = f.svc.Create(ctx, f.input(m.Monday, 2, 4))
	require.NoError(t, err)

	// delete ulang id yang sudah hilang → 404
	err = f.svc.Delete(ctx, entry.ClassScheduleID)
	requireStatus(t, err, fiber.StatusNotFound)
}

func TestListOrderedByDayThenPeriod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.input(m.Friday, 1, 2))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.input(m.Monday, 5, 6))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.input(m.Monday, 1, 2))
	require.NoError(t, err)

	list, err := f.svc.ListByClassroom(ctx, f.classroom.ClassroomID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, m.Monday, list[0].ClassScheduleDayOfWeek)
	assert.Equal(t, 1, list[0].ClassSchedulePeriodStart)
	assert.Equal(t, m.Monday, list[1].ClassScheduleDayOfWeek)
	assert.Equal(t, 5, list[1].ClassSchedulePeriodStart)
	assert.Equal(t, m.Friday, list[2].ClassScheduleDayOfWeek)
}
