package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================
   Model: notifications
   Ditulis fire-and-forget oleh dispatcher (tidak di-await core).
========================================= */

type NotificationModel struct {
	// PK
	NotificationID uuid.UUID `gorm:"type:uuid;primaryKey;column:notification_id" json:"notification_id"`

	NotificationTitle string `gorm:"type:varchar(120);not null;column:notification_title" json:"notification_title"`
	NotificationBody  string `gorm:"type:text;not null;column:notification_body" json:"notification_body"`

	// Target: role mana saja yang melihat, opsional dibatasi per kelas
	NotificationAudienceRoles pq.StringArray `gorm:"type:text[];column:notification_audience_roles" json:"notification_audience_roles"`
	NotificationClassroomID   *uuid.UUID     `gorm:"type:uuid;column:notification_classroom_id;index" json:"notification_classroom_id,omitempty"`

	// Payload bebas (raw JSONB) untuk deep-link di client
	NotificationPayload datatypes.JSONMap `gorm:"type:jsonb;column:notification_payload" json:"notification_payload,omitempty"`

	NotificationCreatedByUserID *uuid.UUID `gorm:"type:uuid;column:notification_created_by_user_id" json:"notification_created_by_user_id,omitempty"`

	// Audit
	NotificationCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:notification_created_at" json:"notification_created_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at;index" json:"notification_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
