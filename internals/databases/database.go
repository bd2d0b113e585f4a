package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	NotificationModel "sekolahku_backend/internals/features/notifications/model"
	ClassroomModel "sekolahku_backend/internals/features/school/academics/classrooms/model"
	ScheduleModel "sekolahku_backend/internals/features/school/academics/schedules/model"
	SubjectModel "sekolahku_backend/internals/features/school/academics/subjects/model"
	AttendanceRecordModel "sekolahku_backend/internals/features/school/attendance/attendance_records/model"
	QRSessionModel "sekolahku_backend/internals/features/school/attendance/attendance_sessions/model"
	LeaveRequestModel "sekolahku_backend/internals/features/school/others/leave_requests/model"
	StudentModel "sekolahku_backend/internals/features/school/people/students/model"
	TeacherModel "sekolahku_backend/internals/features/school/people/teachers/model"
	UserModel "sekolahku_backend/internals/features/users/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ DSN lengkap + statement_timeout (selaras dengan HTTP timeout guard)
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate semua tabel + constraint khusus Postgres.
// Constraint EXCLUDE adalah race-breaker sebenarnya untuk bentrok jadwal;
// pengecekan overlap di service hanya early-exit.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&UserModel.UserModel{},
		&TeacherModel.TeacherModel{},
		&StudentModel.StudentModel{},
		&ClassroomModel.ClassroomModel{},
		&SubjectModel.SubjectModel{},
		&ScheduleModel.ClassScheduleModel{},
		&QRSessionModel.QRAttendanceSessionModel{},
		&AttendanceRecordModel.AttendanceRecordModel{},
		&LeaveRequestModel.LeaveRequestModel{},
		&NotificationModel.NotificationModel{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	// EXCLUDE butuh btree_gist untuk kombinasi uuid/int + range
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	stmts := []string{
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'class_schedule_no_classroom_overlap') THEN
				ALTER TABLE class_schedules ADD CONSTRAINT class_schedule_no_classroom_overlap
					EXCLUDE USING gist (
						class_schedule_classroom_id WITH =,
						class_schedule_day_of_week WITH =,
						int4range(class_schedule_period_start, class_schedule_period_end + 1) WITH &&
					);
			END IF;
		END $$;`,
		`DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'class_schedule_no_teacher_overlap') THEN
				ALTER TABLE class_schedules ADD CONSTRAINT class_schedule_no_teacher_overlap
					EXCLUDE USING gist (
						class_schedule_teacher_id WITH =,
						class_schedule_day_of_week WITH =,
						int4range(class_schedule_period_start, class_schedule_period_end + 1) WITH &&
					);
			END IF;
		END $$;`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
