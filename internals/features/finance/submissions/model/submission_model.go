package model

import (
	"time"

	"github.com/google/uuid"
)

// PendingSubmission adalah bukti transfer yang menunggu review admin.
// Submission yang ditolak dibersihkan sweeper setelah masa retensi.
type PendingSubmission struct {
	SubmissionID uuid.UUID `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`

	SubmissionName    string `gorm:"column:submission_name;type:varchar(50);not null" json:"submission_name"`
	SubmissionAmount  int64  `gorm:"column:submission_amount;not null;check:submission_amount > 0" json:"submission_amount"`
	SubmissionMessage string `gorm:"column:submission_message;type:text" json:"submission_message"`

	SubmissionStatus   string  `gorm:"column:submission_status;type:varchar(20);not null;default:'pending';index" json:"submission_status"`
	SubmissionProofURL *string `gorm:"column:submission_proof_url;type:text" json:"submission_proof_url,omitempty"`

	SubmissionReviewedAt *time.Time `gorm:"column:submission_reviewed_at;index" json:"submission_reviewed_at,omitempty"`
	SubmissionReviewedBy *string    `gorm:"column:submission_reviewed_by;type:varchar(50)" json:"submission_reviewed_by,omitempty"`
	SubmissionReviewNote *string    `gorm:"column:submission_review_note;type:text" json:"submission_review_note,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PendingSubmission) TableName() string {
	return "pending_submissions"
}
