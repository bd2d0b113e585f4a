package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hari sekolah (senin..jumat). Closed set, selaras dengan constraint DB.
type DayOfWeek int

const (
	Monday    DayOfWeek = 1
	Tuesday   DayOfWeek = 2
	Wednesday DayOfWeek = 3
	Thursday  DayOfWeek = 4
	Friday    DayOfWeek = 5
)

func (d DayOfWeek) Valid() bool { return d >= Monday && d <= Friday }

func (d DayOfWeek) String() string {
	switch d {
	case Monday:
		return "MONDAY"
	case Tuesday:
		return "TUESDAY"
	case Wednesday:
		return "WEDNESDAY"
	case Thursday:
		return "THURSDAY"
	case Friday:
		return "FRIDAY"
	default:
		return "UNKNOWN"
	}
}

// Rentang jam pelajaran yang sah
const (
	PeriodMin = 1
	PeriodMax = 8
)

/* =========================================
   Model: class_schedules
   Entri jadwal tidak pernah di-update in place:
   ganti = delete + create (hard delete, bukan soft).
   Constraint EXCLUDE di migration adalah penjaga
   bentrok yang sebenarnya (lihat databases.Migrate).
========================================= */

type ClassScheduleModel struct {
	// PK
	ClassScheduleID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_schedule_id" json:"class_schedule_id"`

	// Slot
	ClassScheduleDayOfWeek   DayOfWeek `gorm:"not null;column:class_schedule_day_of_week;index" json:"class_schedule_day_of_week"`
	ClassSchedulePeriodStart int       `gorm:"not null;column:class_schedule_period_start" json:"class_schedule_period_start"`
	ClassSchedulePeriodEnd   int       `gorm:"not null;column:class_schedule_period_end" json:"class_schedule_period_end"`

	// Relasi
	ClassScheduleSubjectID   uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_subject_id" json:"class_schedule_subject_id"`
	ClassScheduleClassroomID uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_classroom_id;index" json:"class_schedule_classroom_id"`
	ClassScheduleTeacherID   uuid.UUID `gorm:"type:uuid;not null;column:class_schedule_teacher_id;index" json:"class_schedule_teacher_id"`

	/* ==========================
	   SNAPSHOTS untuk tampilan
	========================== */
	ClassScheduleSubjectNameSnap   string `gorm:"type:text;not null;default:'';column:class_schedule_subject_name_snap" json:"class_schedule_subject_name_snap"`
	ClassScheduleTeacherNameSnap   string `gorm:"type:text;not null;default:'';column:class_schedule_teacher_name_snap" json:"class_schedule_teacher_name_snap"`
	ClassScheduleClassroomNameSnap string `gorm:"type:text;not null;default:'';column:class_schedule_classroom_name_snap" json:"class_schedule_classroom_name_snap"`

	// Audit
	ClassScheduleCreatedAt time.Time `gorm:"not null;autoCreateTime;column:class_schedule_created_at" json:"class_schedule_created_at"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

func (m *ClassScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassScheduleID == uuid.Nil {
		m.ClassScheduleID = uuid.New()
	}
	return nil
}

// Overlaps: dua interval periode bentrok ⇔ startA ≤ endB && endA ≥ startB.
// Satu perbandingan menangkap overlap parsial, containment, dan duplikat persis.
func (m *ClassScheduleModel) Overlaps(periodStart, periodEnd int) bool {
	return m.ClassSchedulePeriodStart <= periodEnd && m.ClassSchedulePeriodEnd >= periodStart
}
