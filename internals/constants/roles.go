package constants

import "fmt"

// Role codes — seragam dengan klaim "role" di JWT
const (
	RoleStudent          = "student"
	RoleAdmin            = "admin"
	RoleAdmissionOfficer = "admission_officer"
	RoleReviewer         = "reviewer"
	RoleAccountant       = "accountant"
	RoleDataEntry        = "data_entry"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess      = "❌ Hanya staff admisi yang boleh mengakses fitur %s."
	ErrOnlyReviewersCanAccess  = "❌ Hanya admin, admission officer, atau reviewer yang boleh mengakses fitur %s."
	ErrOnlyAccountantCanAccess = "❌ Hanya admin atau accountant yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyDataEntryCanAccess  = "❌ Hanya admin atau data entry yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorReviewer(feature string) string {
	return fmt.Sprintf(ErrOnlyReviewersCanAccess, feature)
}

func RoleErrorAccountant(feature string) string {
	return fmt.Sprintf(ErrOnlyAccountantCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorDataEntry(feature string) string {
	return fmt.Sprintf(ErrOnlyDataEntryCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleAdmin,
		RoleAdmissionOfficer,
		RoleReviewer,
		RoleAccountant,
		RoleDataEntry,
	}

	// Semua role selain student (akses panel staff)
	StaffRoles = []string{
		RoleAdmin,
		RoleAdmissionOfficer,
		RoleReviewer,
		RoleAccountant,
		RoleDataEntry,
	}

	// Boleh memproses transisi status aplikasi
	ReviewerRoles = []string{
		RoleAdmin,
		RoleAdmissionOfficer,
		RoleReviewer,
	}

	// Boleh verifikasi / tolak pembayaran
	AccountantRoles = []string{
		RoleAdmin,
		RoleAccountant,
	}

	// Boleh kelola data referensi (program, session, degree, institute)
	DataEntryRoles = []string{
		RoleAdmin,
		RoleDataEntry,
	}
)

// IsStaffRole cek apakah role termasuk role staff (bukan student)
func IsStaffRole(role string) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
