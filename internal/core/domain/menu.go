package domain

// MenuItem is a single sidebar entry. Paths must match the route table
// exactly: active-item highlighting compares them against the current
// location verbatim.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// MenuFor maps a role to its ordered sidebar entries: dashboard first, then
// the role's domain pages in declaration order. Unknown roles get an empty
// menu.
func MenuFor(role Role) []MenuItem {
	switch role {
	case RoleAdmin:
		return []MenuItem{
			{Path: "/admin/dashboard", Label: "Dashboard", Icon: "📊"},
			{Path: "/admin/users", Label: "User Management", Icon: "👥"},
			{Path: "/admin/patients", Label: "Patients", Icon: "🤒"},
			{Path: "/admin/doctors", Label: "Doctors", Icon: "👨‍⚕️"},
			{Path: "/admin/appointments", Label: "Appointments", Icon: "📅"},
		}
	case RoleDoctor:
		return []MenuItem{
			{Path: "/doctor/dashboard", Label: "Dashboard", Icon: "📊"},
			{Path: "/doctor/appointments", Label: "My Appointments", Icon: "📅"},
			{Path: "/doctor/patients", Label: "Patient Records", Icon: "📋"},
		}
	case RolePatient:
		return []MenuItem{
			{Path: "/patient/dashboard", Label: "Dashboard", Icon: "📊"},
			{Path: "/patient/book-appointment", Label: "Book Appointment", Icon: "📅"},
			{Path: "/patient/medical-history", Label: "Medical History", Icon: "📋"},
		}
	default:
		return []MenuItem{}
	}
}
