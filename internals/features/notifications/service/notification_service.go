// file: internals/features/notifications/service/notification_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/notifications/model"
)

/* =========================
   Notification dispatcher
   =========================
   Penulisan notifikasi tidak pernah menggagalkan operasi inti:
   Dispatch jalan di goroutine sendiri dengan context terpisah.
*/

type NotificationService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *NotificationService { return &NotificationService{DB: db} }

type DispatchInput struct {
	Title           string
	Body            string
	AudienceRoles   []string
	ClassroomID     *uuid.UUID
	Payload         map[string]any
	CreatedByUserID *uuid.UUID
}

// Dispatch: fire-and-forget. Error hanya dicatat ke log.
func (s *NotificationService) Dispatch(in DispatchInput) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		n := m.NotificationModel{
			NotificationTitle:           in.Title,
			NotificationBody:            in.Body,
			NotificationAudienceRoles:   pq.StringArray(in.AudienceRoles),
			NotificationClassroomID:     in.ClassroomID,
			NotificationPayload:         datatypes.JSONMap(in.Payload),
			NotificationCreatedByUserID: in.CreatedByUserID,
		}
		if err := s.DB.WithContext(ctx).Create(&n).Error; err != nil {
			log.Printf("[NOTIF] ⚠️ gagal menulis notifikasi %q: %v", in.Title, err)
		}
	}()
}

// ListForUser: notifikasi untuk role user ybs, dibatasi kelas kalau ada.
// classroomID nil ⇒ hanya broadcast tanpa kelas.
func (s *NotificationService) ListForUser(ctx context.Context, role string, classroomID *uuid.UUID, limit int) ([]m.NotificationModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := s.DB.WithContext(ctx).
		Model(&m.NotificationModel{}).
		Where("? = ANY(notification_audience_roles)", role)
	if classroomID != nil {
		q = q.Where("notification_classroom_id IS NULL OR notification_classroom_id = ?", *classroomID)
	} else {
		q = q.Where("notification_classroom_id IS NULL")
	}

	var out []m.NotificationModel
	err := q.Order("notification_created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}
