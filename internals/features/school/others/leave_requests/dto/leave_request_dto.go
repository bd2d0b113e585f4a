// file: internals/features/school/others/leave_requests/dto/leave_request_dto.go
package dto

import (
	"time"
)

type CreateLeaveRequestRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required,min=3"`
}

func (r *CreateLeaveRequestRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

type ReviewLeaveRequestRequest struct {
	Approve bool    `json:"approve"`
	Note    *string `json:"note" validate:"omitempty,max=500"`
}
