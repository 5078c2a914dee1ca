package constants

import "fmt"

// ==========================
// 👤 Roles
// ==========================

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Template pesan error role
const ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
