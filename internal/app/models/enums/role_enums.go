package enums

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
	RoleParent  RoleType = "PARENT"
	// RoleUnknown covers any role name the console does not recognize
	RoleUnknown RoleType = "UNKNOWN"
)

// ParseRole maps a backend role name onto the closed role set.
// Unrecognized names resolve to RoleUnknown rather than falling
// through to some default role.
func ParseRole(name string) RoleType {
	switch RoleType(name) {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return RoleType(name)
	default:
		return RoleUnknown
	}
}

// LandingRoute returns the dashboard route a session with this role
// is dispatched to after login.
func (r RoleType) LandingRoute() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleTeacher:
		return "/teacher"
	case RoleStudent:
		return "/student"
	case RoleParent:
		return "/parent"
	default:
		return "/login"
	}
}

// EnrollmentStatus is the progress state of a student in a class
type EnrollmentStatus string

const (
	EnrollmentInProgress EnrollmentStatus = "In progress"
	EnrollmentCompleted  EnrollmentStatus = "Completed"
)
