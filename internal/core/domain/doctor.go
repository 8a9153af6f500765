package domain

// Specializations lists the departments offered in the doctor forms, in
// display order.
var Specializations = []string{
	"Cardiology",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Dermatology",
	"Psychiatry",
	"Radiology",
	"General Medicine",
	"Surgery",
	"Gynecology",
}

// Doctor is a doctor record.
type Doctor struct {
	ID              int64   `json:"id"`
	DoctorID        string  `json:"doctorId,omitempty"`
	User            *User   `json:"user,omitempty"`
	Specialization  string  `json:"specialization,omitempty"`
	Qualification   string  `json:"qualification,omitempty"`
	Department      string  `json:"department,omitempty"`
	Experience      int     `json:"experience,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`
	WorkingHours    string  `json:"workingHours,omitempty"`
	Available       bool    `json:"available"`
}
