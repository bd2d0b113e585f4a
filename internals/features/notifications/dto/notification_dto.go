// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"github.com/google/uuid"
)

// BroadcastNotificationRequest: pengumuman manual dari admin.
type BroadcastNotificationRequest struct {
	Title         string         `json:"title" validate:"required,min=1,max=120"`
	Body          string         `json:"body" validate:"required,min=1"`
	AudienceRoles []string       `json:"audience_roles" validate:"required,min=1,dive,oneof=admin teacher student"`
	ClassroomID   *uuid.UUID     `json:"classroom_id"`
	Payload       map[string]any `json:"payload"`
}
