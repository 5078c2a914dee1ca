package constants

// ==========================
// ⏰ Zona waktu & jadwal cron
// ==========================
const (
	TimeZone = "Asia/Jakarta"

	// Jadwal (format cron, zona Asia/Jakarta)
	ScheduleCheckDeadlines     = "0 1 * * *" // tiap hari jam 01:00
	ScheduleUpdateClosingSoon  = "0 0 * * *" // tiap hari jam 00:00
	ScheduleCleanupSubmissions = "0 2 * * 0" // tiap Minggu jam 02:00
)

// Retensi submission yang ditolak (hari)
const RetentionRejectedSubmissionDays = 30

// ==========================
// 🎯 Status target kelulusan
// ==========================
const (
	TargetStatusUpcoming    = "upcoming"
	TargetStatusActive      = "active"
	TargetStatusClosingSoon = "closing_soon"
	TargetStatusClosed      = "closed"
	TargetStatusArchived    = "archived"
)

// Status distribusi dana target
const (
	DistributionStatusPending     = "pending"
	DistributionStatusDistributed = "distributed"
)

// ==========================
// 💸 Transaksi
// ==========================
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

const (
	ValidationStatusPending  = "pending"
	ValidationStatusApproved = "approved"
	ValidationStatusRejected = "rejected"
)

// ==========================
// 📥 Submission bukti transfer
// ==========================
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// ==========================
// ⚙️ Default system config
// (fallback kalau settings tidak bisa dibaca)
// ==========================
const (
	DefaultPerPersonAllocation = 250000 // Rp 250.000 per wisudawan
	DefaultDeadlineOffsetDays  = 3
	DefaultMinimumContribution = 10000 // Rp 10.000
)

// ==========================
// 🏦 Dompet Bersama (general fund)
// ==========================
const (
	// ID dokumen singleton dompet bersama
	GeneralFundDocID = "current"

	// Sentinel target_id untuk transaksi yang masuk ke dompet bersama
	GeneralFundTargetID = "general_fund"
)

// User otomatis untuk transaksi yang dibuat sistem
const SystemUser = "system"

// ID dokumen singleton settings
const AppConfigDocID = "app_config"
