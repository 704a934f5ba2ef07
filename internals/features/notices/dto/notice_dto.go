// file: internals/features/notices/dto/notice_dto.go
package dto

import "time"

type CreateNoticeRequest struct {
	Title     string                 `json:"title" validate:"required,max=150"`
	Body      string                 `json:"body" validate:"required"`
	Audience  []string               `json:"audience" validate:"required,min=1,dive,oneof=SUPER_ADMIN ADMIN FACULTY STUDENT STAFF"`
	Metadata  map[string]interface{} `json:"metadata"`
	IsPinned  bool                   `json:"is_pinned"`
	ExpiresAt *time.Time             `json:"expires_at"`
}

type UpdateNoticeRequest struct {
	Title    *string  `json:"title" validate:"omitempty,max=150"`
	Body     *string  `json:"body"`
	Audience []string `json:"audience" validate:"omitempty,min=1,dive,oneof=SUPER_ADMIN ADMIN FACULTY STUDENT STAFF"`
	IsPinned *bool    `json:"is_pinned"`
}
