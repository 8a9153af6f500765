package domain

// Appointment statuses as reported by the backend.
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// AppointmentStatuses lists the valid statuses in filter order.
var AppointmentStatuses = []string{StatusScheduled, StatusCompleted, StatusCancelled}

// StatusColor returns the display colour for an appointment status badge.
func StatusColor(status string) string {
	switch status {
	case StatusScheduled:
		return "#007bff"
	case StatusCompleted:
		return "#28a745"
	case StatusCancelled:
		return "#dc3545"
	default:
		return "#6c757d"
	}
}

// Appointment is an appointment record. AppointmentDateTime is the backend's
// raw local datetime string.
type Appointment struct {
	ID                  int64  `json:"id"`
	PatientID           int64  `json:"patientId"`
	DoctorID            int64  `json:"doctorId"`
	PatientName         string `json:"patientName,omitempty"`
	DoctorName          string `json:"doctorName,omitempty"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Reason              string `json:"reason,omitempty"`
	Status              string `json:"status"`
	Notes               string `json:"notes,omitempty"`
	Prescription        string `json:"prescription,omitempty"`
}
