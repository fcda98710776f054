package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RoleProfessor = "professor"
	RoleStudent   = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Only admins can access %s."
	ErrOnlyProfessorsCanAccess = "❌ Only professors or admins can access %s."
	ErrOnlyStudentsCanAccess   = "❌ Only students can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorProfessor(feature string) string {
	return fmt.Sprintf(ErrOnlyProfessorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleProfessor,
		RoleStudent,
	}

	ProfessorAndAbove = []string{
		RoleProfessor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ProfessorOnly = []string{
		RoleProfessor,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
