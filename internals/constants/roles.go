package constants

import "fmt"

// Role dasar aplikasi. Keputusan otorisasi tetap di pemanggil;
// konstanta ini hanya vocabulary bersama untuk guard di controller.
const (
	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleTeacher    = "teacher"
	RoleWaliAsrama = "wali_asrama"
	RoleUser       = "user"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess      = "❌ Hanya staff, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyGuardiansCanAccess  = "❌ Hanya wali asrama atau admin yang boleh mengakses fitur %s."
	ErrOnlyTeachersCanAccess   = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorGuardian(feature string) string {
	return fmt.Sprintf(ErrOnlyGuardiansCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStaff,
		RoleTeacher,
		RoleWaliAsrama,
		RoleAdmin,
		RoleOwner,
	}

	// Pengelola jadwal akademik (timetable & kalender libur)
	AcademicStaff = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	// Pengelola kegiatan & absensi asrama
	BoardingStaff = []string{
		RoleWaliAsrama,
		RoleAdmin,
		RoleOwner,
	}

	// Pencatat absensi kelas
	ClassAttendanceStaff = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}
)
