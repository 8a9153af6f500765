package domain

// Role gates navigation and menu contents.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

// Known reports whether r is one of the three recognised roles. Anything
// else is treated as unauthenticated by the route guard.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// DashboardPath returns the default landing page for the role. Unknown roles
// fall back to the login page.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleDoctor:
		return "/doctor/dashboard"
	case RolePatient:
		return "/patient/dashboard"
	default:
		return "/login"
	}
}

// Identity is the authenticated profile returned by the backend login
// endpoint. It is immutable after creation; the session store is its only
// holder for the lifetime of the session.
type Identity struct {
	Success   bool   `json:"success"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	Message   string `json:"message,omitempty"`
}

func (i Identity) FullName() string {
	if i.FirstName == "" && i.LastName == "" {
		return i.Username
	}
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}
