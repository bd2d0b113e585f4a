// file: internals/features/school/access/resolver.go
package access

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classroomModel "sekolahku_backend/internals/features/school/academics/classrooms/model"
	subjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	studentModel "sekolahku_backend/internals/features/school/people/students/model"
	teacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
)

// Principal adalah identitas request (dari token): user + role.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

/* =========================
   Resolver
   =========================
   Menjawab "boleh nggak principal P menyentuh resource R" dengan
   menelusuri relasi keanggotaan: wali kelas → homeroom, guru mapel →
   kelas mapelnya, student → dirinya sendiri, admin → semua.

   Tanpa side effect dan TANPA cache lintas request: penugasan mapel
   bisa berubah kapan saja, grant basi tidak boleh meloloskan akses.
*/

type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{DB: db} }

// AccessibleClassroomIDs = {homeroom} ∪ {kelas tiap subject yang diajar}.
// Set kosong kalau guru tidak punya keduanya.
func (r *Resolver) AccessibleClassroomIDs(ctx context.Context, teacherID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := make(map[uuid.UUID]struct{})
	if teacherID == uuid.Nil {
		return out, nil
	}

	var homeroomIDs []uuid.UUID
	if err := r.DB.WithContext(ctx).
		Model(&classroomModel.ClassroomModel{}).
		Where("classroom_homeroom_teacher_id = ?", teacherID).
		Pluck("classroom_id", &homeroomIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range homeroomIDs {
		out[id] = struct{}{}
	}

	var subjectClassroomIDs []uuid.UUID
	if err := r.DB.WithContext(ctx).
		Model(&subjectModel.SubjectModel{}).
		Where("subject_teacher_id = ? AND subject_classroom_id IS NOT NULL", teacherID).
		Distinct().
		Pluck("subject_classroom_id", &subjectClassroomIDs).Error; err != nil {
		return nil, err
	}
	for _, id := range subjectClassroomIDs {
		out[id] = struct{}{}
	}

	return out, nil
}

// CanActOnClassroom: classroomID ∈ AccessibleClassroomIDs(teacherID).
func (r *Resolver) CanActOnClassroom(ctx context.Context, teacherID, classroomID uuid.UUID) (bool, error) {
	ids, err := r.AccessibleClassroomIDs(ctx, teacherID)
	if err != nil {
		return false, err
	}
	_, ok := ids[classroomID]
	return ok, nil
}

// EnsureClassroomExists: load kelas, 404 kalau tidak ada.
func (r *Resolver) EnsureClassroomExists(ctx context.Context, classroomID uuid.UUID) (*classroomModel.ClassroomModel, error) {
	var room classroomModel.ClassroomModel
	if err := r.DB.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, err
	}
	return &room, nil
}

// EnsureTeacherCanActOnClassroom: NotFound dicek dulu, baru Forbidden.
// Id yang tidak ada ≠ id yang ada tapi di luar set akses.
func (r *Resolver) EnsureTeacherCanActOnClassroom(ctx context.Context, teacherID, classroomID uuid.UUID) (*classroomModel.ClassroomModel, error) {
	var room classroomModel.ClassroomModel
	if err := r.DB.WithContext(ctx).
		Where("classroom_id = ?", classroomID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, err
	}
	ok, err := r.CanActOnClassroom(ctx, teacherID, classroomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak punya akses ke kelas ini")
	}
	return &room, nil
}

// CanViewStudent memutuskan akses baca profil student:
// admin selalu boleh; student boleh lihat dirinya sendiri; teacher boleh
// kalau kelas si student masuk set aksesnya. Role di-switch exhaustive;
// role baru tidak boleh jatuh diam-diam ke default-allow.
func (r *Resolver) CanViewStudent(ctx context.Context, p Principal, student *studentModel.StudentModel) (bool, error) {
	switch p.Role {
	case constants.RoleAdmin:
		return true, nil
	case constants.RoleStudent:
		return student.StudentUserID == p.UserID, nil
	case constants.RoleTeacher:
		t, err := r.TeacherByUserID(ctx, p.UserID)
		if err != nil {
			return false, err
		}
		if t == nil {
			return false, nil
		}
		return r.CanActOnClassroom(ctx, t.TeacherID, student.StudentClassroomID)
	default:
		return false, nil
	}
}

// EnsureCanViewStudent: load student (404 dulu), lalu cek kepemilikan (403).
func (r *Resolver) EnsureCanViewStudent(ctx context.Context, p Principal, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var s studentModel.StudentModel
	if err := r.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return nil, err
	}
	ok, err := r.CanViewStudent(ctx, p, &s)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak punya akses ke student ini")
	}
	return &s, nil
}

/* =========================
   Profil lookup helpers
   ========================= */

// TeacherByUserID: nil kalau user tidak punya profil teacher.
func (r *Resolver) TeacherByUserID(ctx context.Context, userID uuid.UUID) (*teacherModel.TeacherModel, error) {
	var t teacherModel.TeacherModel
	if err := r.DB.WithContext(ctx).
		Where("teacher_user_id = ?", userID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// StudentByUserID: nil kalau user tidak punya profil student.
func (r *Resolver) StudentByUserID(ctx context.Context, userID uuid.UUID) (*studentModel.StudentModel, error) {
	var s studentModel.StudentModel
	if err := r.DB.WithContext(ctx).
		Where("student_user_id = ?", userID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// RequireTeacherProfile: 403 kalau user login bukan guru terdaftar.
func (r *Resolver) RequireTeacherProfile(ctx context.Context, userID uuid.UUID) (*teacherModel.TeacherModel, error) {
	t, err := r.TeacherByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda tidak punya profil teacher")
	}
	return t, nil
}

// RequireStudentProfile: 403 kalau user login bukan student terdaftar.
func (r *Resolver) RequireStudentProfile(ctx context.Context, userID uuid.UUID) (*studentModel.StudentModel, error) {
	s, err := r.StudentByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda tidak punya profil student")
	}
	return s, nil
}
