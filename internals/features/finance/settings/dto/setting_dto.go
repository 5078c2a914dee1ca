package dto

// UpdateSettingsRequest mengganti konfigurasi sistem. Field nil dibiarkan
// seperti semula.
type UpdateSettingsRequest struct {
	PerPersonAllocation *int64 `json:"per_person_allocation" validate:"omitempty,gt=0"`
	DeadlineOffsetDays  *int   `json:"deadline_offset_days" validate:"omitempty,gte=1,lte=30"`
	MinimumContribution *int64 `json:"minimum_contribution" validate:"omitempty,gte=0"`
	AutoOpenNextTarget  *bool  `json:"auto_open_next_target"`

	EnabledChannels []string `json:"enabled_channels" validate:"omitempty,dive,oneof=transfer online"`
}
