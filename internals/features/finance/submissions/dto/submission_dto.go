package dto

// CreateSubmissionRequest dikirim kontributor lewat form publik.
// Bukti transfer diunggah sebagai multipart field "proof".
type CreateSubmissionRequest struct {
	SubmissionName    string `json:"submission_name" form:"submission_name" validate:"required,max=50"`
	SubmissionAmount  int64  `json:"submission_amount" form:"submission_amount" validate:"required,gt=0"`
	SubmissionMessage string `json:"submission_message" form:"submission_message" validate:"omitempty,max=500"`
}

type ReviewSubmissionRequest struct {
	Action     string  `json:"action" validate:"required,oneof=approve reject"`
	ReviewNote *string `json:"review_note" validate:"omitempty,max=500"`
}
