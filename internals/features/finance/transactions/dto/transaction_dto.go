package dto

/* ===================== Request DTO ===================== */

// CreateTransactionRequest dipakai admin untuk mencatat pemasukan/pengeluaran
// manual (transfer bank yang sudah diverifikasi, biaya operasional, dll).
type CreateTransactionRequest struct {
	TransactionType        string  `json:"transaction_type" validate:"required,oneof=income expense"`
	TransactionAmount      int64   `json:"transaction_amount" validate:"required,gt=0"`
	TransactionDescription string  `json:"transaction_description" validate:"omitempty,max=500"`
	TransactionProofURL    *string `json:"transaction_proof_url" validate:"omitempty,url"`

	// Opsional: paksa transaksi masuk ke target tertentu (skip routing).
	// "general_fund" atau UUID target.
	TransactionTargetID *string `json:"transaction_target_id" validate:"omitempty,max=40"`
}

// CreateDonationRequest untuk kanal donasi online via Midtrans Snap.
type CreateDonationRequest struct {
	DonationName    string  `json:"donation_name" validate:"required,max=50"`
	DonationEmail   *string `json:"donation_email" validate:"omitempty,email"`
	DonationAmount  int64   `json:"donation_amount" validate:"required,gt=0"`
	DonationMessage *string `json:"donation_message" validate:"omitempty,max=500"`
}

/* ===================== Response DTO ===================== */

type CreateDonationResponse struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
	SnapToken     string `json:"snap_token"`
}
