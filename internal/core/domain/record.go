package domain

// MedicalRecord is a single visit record.
type MedicalRecord struct {
	ID           int64  `json:"id"`
	PatientID    int64  `json:"patientId"`
	DoctorID     int64  `json:"doctorId,omitempty"`
	PatientName  string `json:"patientName,omitempty"`
	DoctorName   string `json:"doctorName,omitempty"`
	VisitDate    string `json:"visitDate,omitempty"`
	Symptoms     string `json:"symptoms,omitempty"`
	Diagnosis    string `json:"diagnosis,omitempty"`
	Treatment    string `json:"treatment,omitempty"`
	Prescription string `json:"prescription,omitempty"`
	Notes        string `json:"notes,omitempty"`
}
