package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Transaction adalah catatan keuangan yang immutable setelah dirutekan.
type Transaction struct {
	TransactionID uuid.UUID `gorm:"column:transaction_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaction_id"`

	TransactionType   string `gorm:"column:transaction_type;type:varchar(10);not null" json:"transaction_type"` // income | expense
	TransactionAmount int64  `gorm:"column:transaction_amount;not null;check:transaction_amount > 0" json:"transaction_amount"`

	// NULL sampai dirutekan; "general_fund" untuk dompet bersama,
	// selain itu UUID target dalam bentuk string.
	TransactionTargetID    *string `gorm:"column:transaction_target_id;type:varchar(40);index" json:"transaction_target_id,omitempty"`
	TransactionTargetMonth *string `gorm:"column:transaction_target_month;type:varchar(30)" json:"transaction_target_month,omitempty"`

	TransactionDescription string  `gorm:"column:transaction_description;type:text" json:"transaction_description"`
	TransactionProofURL    *string `gorm:"column:transaction_proof_url;type:text" json:"transaction_proof_url,omitempty"`

	TransactionValidated        bool   `gorm:"column:transaction_validated;not null;default:false" json:"transaction_validated"`
	TransactionValidationStatus string `gorm:"column:transaction_validation_status;type:varchar(20);not null;default:'pending'" json:"transaction_validation_status"`

	// Khusus kanal donasi online (Midtrans)
	TransactionOrderID      *string `gorm:"column:transaction_order_id;type:varchar(100);unique" json:"transaction_order_id,omitempty"`
	TransactionPaymentToken string  `gorm:"column:transaction_payment_token;type:text" json:"transaction_payment_token,omitempty"`

	TransactionCreatedBy string         `gorm:"column:transaction_created_by;type:varchar(50);not null;default:'system'" json:"transaction_created_by"`
	TransactionMetadata  datatypes.JSON `gorm:"column:transaction_metadata;type:jsonb" json:"transaction_metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// MetadataJSON encode map provenance jadi JSONB (error marshal diabaikan,
// metadata bersifat best-effort).
func MetadataJSON(meta map[string]any) datatypes.JSON {
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
