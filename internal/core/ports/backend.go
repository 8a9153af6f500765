package ports

import (
	"context"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

// AuthBackend is the upstream authentication collaborator. Login returns the
// decoded response body even when the backend reports success=false; only
// transport and decode failures surface as errors.
type AuthBackend interface {
	Login(ctx context.Context, username, password string) (*domain.Identity, error)
	Logout(ctx context.Context) error
}

// UserInput is the payload for creating or updating an account. Password is
// only sent on create.
type UserInput struct {
	Username    string      `json:"username,omitempty"`
	Password    string      `json:"password,omitempty"`
	FirstName   string      `json:"firstName,omitempty"`
	LastName    string      `json:"lastName,omitempty"`
	Email       string      `json:"email,omitempty"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	Role        domain.Role `json:"role,omitempty"`
	Active      *bool       `json:"active,omitempty"`
}

type PatientInput struct {
	User             *UserInput `json:"user,omitempty"`
	DateOfBirth      string     `json:"dateOfBirth,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	BloodGroup       string     `json:"bloodGroup,omitempty"`
	Address          string     `json:"address,omitempty"`
	EmergencyContact string     `json:"emergencyContact,omitempty"`
	Allergies        string     `json:"allergies,omitempty"`
	MedicalHistory   string     `json:"medicalHistory,omitempty"`
}

type DoctorInput struct {
	User            *UserInput `json:"user,omitempty"`
	Specialization  string     `json:"specialization,omitempty"`
	Qualification   string     `json:"qualification,omitempty"`
	Department      string     `json:"department,omitempty"`
	Experience      int        `json:"experience,omitempty"`
	ConsultationFee float64    `json:"consultationFee,omitempty"`
	WorkingHours    string     `json:"workingHours,omitempty"`
	Available       *bool      `json:"available,omitempty"`
}

type AppointmentInput struct {
	PatientID           int64  `json:"patientId,omitempty"`
	DoctorID            int64  `json:"doctorId,omitempty"`
	AppointmentDateTime string `json:"appointmentDateTime,omitempty"`
	Reason              string `json:"reason,omitempty"`
	Status              string `json:"status,omitempty"`
	Notes               string `json:"notes,omitempty"`
	Prescription        string `json:"prescription,omitempty"`
}

type MedicalRecordInput struct {
	PatientID     int64  `json:"patientId,omitempty"`
	DoctorID      int64  `json:"doctorId,omitempty"`
	AppointmentID int64  `json:"appointmentId,omitempty"`
	VisitDate     string `json:"visitDate,omitempty"`
	Symptoms      string `json:"symptoms,omitempty"`
	Diagnosis     string `json:"diagnosis,omitempty"`
	Treatment     string `json:"treatment,omitempty"`
	Prescription  string `json:"prescription,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// UserDirectory mirrors the backend /api/users resource.
type UserDirectory interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Create(ctx context.Context, in UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, in UserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// PatientDirectory mirrors the backend /api/patients resource.
type PatientDirectory interface {
	List(ctx context.Context) ([]domain.Patient, error)
	ListActive(ctx context.Context) ([]domain.Patient, error)
	Get(ctx context.Context, id int64) (*domain.Patient, error)
	Create(ctx context.Context, in PatientInput) (*domain.Patient, error)
	Update(ctx context.Context, id int64, in PatientInput) (*domain.Patient, error)
	Delete(ctx context.Context, id int64) error
}

// DoctorDirectory mirrors the backend /api/doctors resource.
type DoctorDirectory interface {
	List(ctx context.Context) ([]domain.Doctor, error)
	ListActive(ctx context.Context) ([]domain.Doctor, error)
	ListAvailable(ctx context.Context) ([]domain.Doctor, error)
	Get(ctx context.Context, id int64) (*domain.Doctor, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error)
	Create(ctx context.Context, in DoctorInput) (*domain.Doctor, error)
	Update(ctx context.Context, id int64, in DoctorInput) (*domain.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

// AppointmentBook mirrors the backend /api/appointments resource.
type AppointmentBook interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	ListToday(ctx context.Context) ([]domain.Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Appointment, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Appointment, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Appointment, error)
	Create(ctx context.Context, in AppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, in AppointmentInput) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// MedicalRecordArchive mirrors the backend /api/medical-records resource.
type MedicalRecordArchive interface {
	List(ctx context.Context) ([]domain.MedicalRecord, error)
	Get(ctx context.Context, id int64) (*domain.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64) ([]domain.MedicalRecord, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]domain.MedicalRecord, error)
	GetByAppointment(ctx context.Context, appointmentID int64) (*domain.MedicalRecord, error)
	SearchByDiagnosis(ctx context.Context, diagnosis string) ([]domain.MedicalRecord, error)
	Create(ctx context.Context, in MedicalRecordInput) (*domain.MedicalRecord, error)
	Update(ctx context.Context, id int64, in MedicalRecordInput) (*domain.MedicalRecord, error)
	Delete(ctx context.Context, id int64) error
}

// AdminReports mirrors the backend /api/admin resource.
type AdminReports interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	UserStats(ctx context.Context) (*domain.UserStats, error)
	AppointmentStats(ctx context.Context) (*domain.AppointmentStats, error)
	CreateAdmin(ctx context.Context, in UserInput) (*domain.User, error)
}
