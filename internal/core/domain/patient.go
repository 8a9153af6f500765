package domain

// BloodGroups lists the accepted blood group values in form order.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Patient is a patient record. Date fields are carried as the backend's raw
// date strings; formatting happens at the view layer.
type Patient struct {
	ID               int64  `json:"id"`
	PatientID        string `json:"patientId,omitempty"`
	User             *User  `json:"user,omitempty"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Gender           string `json:"gender,omitempty"`
	BloodGroup       string `json:"bloodGroup,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	MedicalHistory   string `json:"medicalHistory,omitempty"`
}
