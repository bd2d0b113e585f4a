// file: internals/features/school/academics/schedules/service/schedule_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "sekolahku_backend/internals/features/school/academics/classrooms/model"
	m "sekolahku_backend/internals/features/school/academics/schedules/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	teacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================
   Schedule service
   =========================
   Validasi + persist entri jadwal. Stateless: tidak ada state machine.
   Pengecekan overlap di sini hanya early-exit yang ramah pesan error;
   penjaga sebenarnya adalah constraint EXCLUDE di DB (cek-lalu-insert
   dua request paralel bisa sama-sama lolos pengecekan aplikasi).
*/

type ScheduleService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ScheduleService { return &ScheduleService{DB: db} }

type CreateScheduleInput struct {
	DayOfWeek   m.DayOfWeek
	PeriodStart int
	PeriodEnd   int
	SubjectID   uuid.UUID
	ClassroomID uuid.UUID
	TeacherID   uuid.UUID
}

func (in *CreateScheduleInput) validate() error {
	if !in.DayOfWeek.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "day_of_week harus 1 (Senin) sampai 5 (Jumat)")
	}
	if in.PeriodStart < m.PeriodMin || in.PeriodEnd > m.PeriodMax {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Jam pelajaran harus %d..%d", m.PeriodMin, m.PeriodMax))
	}
	if in.PeriodStart > in.PeriodEnd {
		return fiber.NewError(fiber.StatusBadRequest, "period_start tidak boleh melewati period_end")
	}
	if in.SubjectID == uuid.Nil || in.ClassroomID == uuid.Nil || in.TeacherID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "subject_id, classroom_id, dan teacher_id wajib diisi")
	}
	return nil
}

// Create: validasi rentang → cek bentrok kelas → cek bentrok guru → insert.
// Urutan cek kelas-dulu-baru-guru disengaja konsisten; kalau dua-duanya
// bentrok sekaligus, hanya yang pertama yang dilaporkan.
func (s *ScheduleService) Create(ctx context.Context, in CreateScheduleInput) (*m.ClassScheduleModel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	// Referensi harus ada (404 sebelum cek bentrok)
	var subject subjectModel.SubjectModel
	if err := s.DB.WithContext(ctx).Where("subject_id = ?", in.SubjectID).First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return nil, err
	}
	var room classroomModel.ClassroomModel
	if err := s.DB.WithContext(ctx).Where("classroom_id = ?", in.ClassroomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, err
	}
	var teacher teacherModel.TeacherModel
	if err := s.DB.WithContext(ctx).Where("teacher_id = ?", in.TeacherID).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return nil, err
	}

	// Bentrok kelas: existing.start ≤ new.end && existing.end ≥ new.start
	conflict, err := s.hasOverlap(ctx, "class_schedule_classroom_id", in.ClassroomID, in)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, fiber.NewError(fiber.StatusConflict, "Kelas sudah terisi pada rentang jam tersebut")
	}

	// Bentrok guru: tes yang sama, scope teacher_id
	conflict, err = s.hasOverlap(ctx, "class_schedule_teacher_id", in.TeacherID, in)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, fiber.NewError(fiber.StatusConflict, "Guru sudah mengajar pada rentang jam tersebut")
	}

	entry := m.ClassScheduleModel{
		ClassScheduleDayOfWeek:         in.DayOfWeek,
		ClassSchedulePeriodStart:       in.PeriodStart,
		ClassSchedulePeriodEnd:         in.PeriodEnd,
		ClassScheduleSubjectID:         in.SubjectID,
		ClassScheduleClassroomID:       in.ClassroomID,
		ClassScheduleTeacherID:         in.TeacherID,
		ClassScheduleSubjectNameSnap:   subject.SubjectName,
		ClassScheduleTeacherNameSnap:   teacher.TeacherName,
		ClassScheduleClassroomNameSnap: room.ClassroomName,
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		// Kalah race: constraint EXCLUDE (23P01) yang jadi arbiter
		if helper.IsExclusionViolation(err) || helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Bentrok jadwal: slot baru saja terisi")
		}
		return nil, err
	}
	return &entry, nil
}

func (s *ScheduleService) hasOverlap(ctx context.Context, scopeColumn string, scopeID uuid.UUID, in CreateScheduleInput) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&m.ClassScheduleModel{}).
		Where("class_schedule_day_of_week = ?", int(in.DayOfWeek)).
		Where(scopeColumn+" = ?", scopeID).
		Where("class_schedule_period_start <= ? AND class_schedule_period_end >= ?", in.PeriodEnd, in.PeriodStart).
		Count(&count).Error
	return count > 0, err
}

// Delete: entri jadwal tidak pernah dimutasi in place; ganti = delete + create.
func (s *ScheduleService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Where("class_schedule_id = ?", id).
		Delete(&m.ClassScheduleModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return nil
}

/* =========================
   Reads (urut hari, jam mulai)
   ========================= */

func (s *ScheduleService) ListByClassroom(ctx context.Context, classroomID uuid.UUID) ([]m.ClassScheduleModel, error) {
	return s.list(ctx, s.DB.Where("class_schedule_classroom_id = ?", classroomID))
}

func (s *ScheduleService) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]m.ClassScheduleModel, error) {
	return s.list(ctx, s.DB.Where("class_schedule_teacher_id = ?", teacherID))
}

func (s *ScheduleService) ListAll(ctx context.Context) ([]m.ClassScheduleModel, error) {
	return s.list(ctx, s.DB)
}

func (s *ScheduleService) list(ctx context.Context, tx *gorm.DB) ([]m.ClassScheduleModel, error) {
	var out []m.ClassScheduleModel
	err := tx.WithContext(ctx).
		Order("class_schedule_day_of_week ASC, class_schedule_period_start ASC").
		Find(&out).Error
	return out, err
}
