package domain

// DashboardStats is the admin dashboard aggregate from the backend.
type DashboardStats struct {
	TotalUsers         int64         `json:"totalUsers"`
	TotalPatients      int64         `json:"totalPatients"`
	TotalDoctors       int64         `json:"totalDoctors"`
	TotalAppointments  int64         `json:"totalAppointments"`
	RecentPatients     []Patient     `json:"recentPatients,omitempty"`
	RecentAppointments []Appointment `json:"recentAppointments,omitempty"`
}

// UserStats breaks account counts down by role.
type UserStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalAdmins   int64 `json:"totalAdmins"`
	TotalDoctors  int64 `json:"totalDoctors"`
	TotalPatients int64 `json:"totalPatients"`
	ActiveUsers   int64 `json:"activeUsers"`
}

// AppointmentStats summarises appointment volumes by status.
type AppointmentStats struct {
	TotalAppointments int64 `json:"totalAppointments"`
	Scheduled         int64 `json:"scheduled"`
	Completed         int64 `json:"completed"`
	Cancelled         int64 `json:"cancelled"`
	Today             int64 `json:"today"`
}
