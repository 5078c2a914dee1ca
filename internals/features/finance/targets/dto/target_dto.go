package dto

import "time"

/* ===================== Request DTO ===================== */

type GraduateRequest struct {
	Name     string    `json:"name" validate:"required,max=100"`
	Date     time.Time `json:"date" validate:"required"`
	Location string    `json:"location" validate:"omitempty,max=200"`
}

// CreateTargetRequest membuat target wisuda baru. TargetAmount boleh 0
// kalau jumlah kebutuhan dihitung dari jumlah wisudawan oleh frontend.
type CreateTargetRequest struct {
	TargetMonth    string            `json:"target_month" validate:"required,max=20"`
	TargetYear     int               `json:"target_year" validate:"required,gte=2020,lte=2100"`
	TargetAmount   int64             `json:"target_amount" validate:"gte=0"`
	TargetDeadline time.Time         `json:"target_deadline" validate:"required"`
	Graduates      []GraduateRequest `json:"graduates" validate:"required,min=1,dive"`
}

type UpdateTargetStatusRequest struct {
	TargetStatus string `json:"target_status" validate:"required,oneof=upcoming active closing_soon closed archived"`
}
