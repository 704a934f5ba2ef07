package constants

import "fmt"

// Role is the closed set of account roles. A user holds exactly one.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleFaculty    Role = "FACULTY"
	RoleStudent    Role = "STUDENT"
	RoleStaff      Role = "STAFF"
)

// DefaultRole is assigned when registration does not name one.
const DefaultRole = RoleStudent

// IsValidRole is the single place role input is checked.
func IsValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleFaculty, RoleStudent, RoleStaff:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []Role{
		RoleSuperAdmin,
		RoleAdmin,
		RoleFaculty,
		RoleStudent,
		RoleStaff,
	}

	AdminAndAbove = []Role{
		RoleSuperAdmin,
		RoleAdmin,
	}

	FacultyAndAbove = []Role{
		RoleSuperAdmin,
		RoleAdmin,
		RoleFaculty,
	}

	StaffAndAbove = []Role{
		RoleSuperAdmin,
		RoleAdmin,
		RoleFaculty,
		RoleStaff,
	}
)

// Role error message templates
const (
	ErrOnlyFacultyCanAccess = "Only faculty or admins may access %s."
	ErrOnlyAdminsCanAccess  = "Only admins may access %s."
)

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
