package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// AdminHandler serves the /admin pages: the stats dashboard plus the user,
// patient, doctor and appointment management screens.
type AdminHandler struct {
	reports      ports.AdminReports
	users        ports.UserDirectory
	patients     ports.PatientDirectory
	doctors      ports.DoctorDirectory
	appointments ports.AppointmentBook
	logger       zerolog.Logger
}

func NewAdminHandler(
	reports ports.AdminReports,
	users ports.UserDirectory,
	patients ports.PatientDirectory,
	doctors ports.DoctorDirectory,
	appointments ports.AppointmentBook,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		reports:      reports,
		users:        users,
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		logger:       logger,
	}
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Dashboard renders the admin overview: aggregate counts plus today's
// appointments. Failed reads degrade to an empty dashboard.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  page
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	notice := ""
	stats, err := h.reports.Dashboard(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load dashboard stats")
		stats = &domain.DashboardStats{}
		notice = noDataNotice
	}

	today, err := h.appointments.ListToday(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load today's appointments")
		notice = noDataNotice
	}

	return renderPage(c, identity, "Admin Dashboard", echo.Map{
		"stats":              stats,
		"todaysAppointments": appointmentViews(today),
	}, notice)
}

// --- User management ---

type userRequest struct {
	Username    string      `json:"username" validate:"required"`
	Password    string      `json:"password" validate:"required,min=6"`
	FirstName   string      `json:"firstName" validate:"required"`
	LastName    string      `json:"lastName" validate:"required"`
	Email       string      `json:"email" validate:"omitempty,email"`
	PhoneNumber string      `json:"phoneNumber"`
	Role        domain.Role `json:"role" validate:"required,oneof=ADMIN DOCTOR PATIENT"`
}

type userUpdateRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Active      *bool  `json:"active"`
}

// Users renders the user management screen, optionally filtered by role.
//
// @Summary      User management
// @Tags         admin
// @Produce      json
// @Param        role  query     string  false  "Filter by role"
// @Success      200   {object}  page
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var users []domain.User
	var loadErr error
	if role := c.QueryParam("role"); role != "" {
		users, loadErr = h.users.ListByRole(ctx, domain.Role(role))
	} else {
		users, loadErr = h.users.List(ctx)
	}

	notice := ""
	if loadErr != nil {
		h.logger.Error().Err(loadErr).Msg("failed to load users")
		users = []domain.User{}
		notice = noDataNotice
	}

	// Best effort; the table is still useful without the counts.
	stats, err := h.reports.UserStats(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to load user stats")
		stats = nil
	}

	return renderPage(c, identity, "User Management", echo.Map{
		"users": users,
		"stats": stats,
		"roles": []domain.Role{domain.RoleAdmin, domain.RoleDoctor, domain.RolePatient},
	}, notice)
}

// CreateUser creates a new account.
//
// @Summary      Create user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "New account"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.users.Create(c.Request().Context(), ports.UserInput{
		Username:    req.Username,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	})
	if err != nil {
		return &domain.MutationError{Resource: "user", Err: err}
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser updates profile fields on an existing account.
//
// @Summary      Update user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      userUpdateRequest  true  "Changed fields"
// @Success      200   {object}  domain.User
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.users.Update(c.Request().Context(), id, ports.UserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Active:      req.Active,
	})
	if err != nil {
		return &domain.MutationError{Resource: "user", Err: err}
	}
	return c.JSON(http.StatusOK, user)
}

// DeactivateUser disables an account without deleting it.
//
// @Summary      Deactivate user
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "User ID"
// @Success      200  {object}  map[string]bool
// @Router       /admin/users/{id}/deactivate [put]
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.users.Deactivate(c.Request().Context(), id); err != nil {
		return &domain.MutationError{Resource: "user", Err: err}
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// DeleteUser removes an account.
//
// @Summary      Delete user
// @Tags         admin
// @Param        id  path  int  true  "User ID"
// @Success      204
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return &domain.MutationError{Resource: "user", Err: err}
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateAdmin provisions another administrator account.
//
// @Summary      Create admin account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "New admin"
// @Success      201   {object}  domain.User
// @Router       /admin/users/admin [post]
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	req.Role = domain.RoleAdmin
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.reports.CreateAdmin(c.Request().Context(), ports.UserInput{
		Username:    req.Username,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        domain.RoleAdmin,
	})
	if err != nil {
		return &domain.MutationError{Resource: "admin", Err: err}
	}
	return c.JSON(http.StatusCreated, user)
}

// --- Patient management ---

type patientUserRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}

type patientRequest struct {
	User             *patientUserRequest `json:"user"`
	DateOfBirth      string              `json:"dateOfBirth"`
	Gender           string              `json:"gender"`
	BloodGroup       string              `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address          string              `json:"address"`
	EmergencyContact string              `json:"emergencyContact"`
	Allergies        string              `json:"allergies"`
	MedicalHistory   string              `json:"medicalHistory"`
}

func (r patientRequest) toInput() ports.PatientInput {
	in := ports.PatientInput{
		DateOfBirth:      r.DateOfBirth,
		Gender:           r.Gender,
		BloodGroup:       r.BloodGroup,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		Allergies:        r.Allergies,
		MedicalHistory:   r.MedicalHistory,
	}
	if r.User != nil {
		in.User = &ports.UserInput{
			Username:    r.User.Username,
			Password:    r.User.Password,
			FirstName:   r.User.FirstName,
			LastName:    r.User.LastName,
			Email:       r.User.Email,
			PhoneNumber: r.User.PhoneNumber,
			Role:        domain.RolePatient,
		}
	}
	return in
}

// Patients renders the patient management screen.
//
// @Summary      Patient management
// @Tags         admin
// @Produce      json
// @Success      200  {object}  page
// @Router       /admin/patients [get]
func (h *AdminHandler) Patients(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notice := ""
	patients, err := h.patients.List(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load patients")
		patients = []domain.Patient{}
		notice = noDataNotice
	}

	return renderPage(c, identity, "Patients", echo.Map{
		"patients":    patients,
		"bloodGroups": domain.BloodGroups,
	}, notice)
}

// CreatePatient registers a new patient.
//
// @Summary      Create patient
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      patientRequest  true  "New patient"
// @Success      201   {object}  domain.Patient
// @Router       /admin/patients [post]
func (h *AdminHandler) CreatePatient(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	patient, err := h.patients.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return &domain.MutationError{Resource: "patient", Err: err}
	}
	return c.JSON(http.StatusCreated, patient)
}

// UpdatePatient updates a patient record.
//
// @Summary      Update patient
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Patient ID"
// @Param        body  body      patientRequest  true  "Changed fields"
// @Success      200   {object}  domain.Patient
// @Router       /admin/patients/{id} [put]
func (h *AdminHandler) UpdatePatient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	patient, err := h.patients.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return &domain.MutationError{Resource: "patient", Err: err}
	}
	return c.JSON(http.StatusOK, patient)
}

// DeletePatient removes a patient record.
//
// @Summary      Delete patient
// @Tags         admin
// @Param        id  path  int  true  "Patient ID"
// @Success      204
// @Router       /admin/patients/{id} [delete]
func (h *AdminHandler) DeletePatient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.patients.Delete(c.Request().Context(), id); err != nil {
		return &domain.MutationError{Resource: "patient", Err: err}
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Doctor management ---

type doctorRequest struct {
	User            *patientUserRequest `json:"user"`
	Specialization  string              `json:"specialization" validate:"required"`
	Qualification   string              `json:"qualification"`
	Department      string              `json:"department"`
	Experience      int                 `json:"experience" validate:"omitempty,min=0"`
	ConsultationFee float64             `json:"consultationFee" validate:"omitempty,min=0"`
	WorkingHours    string              `json:"workingHours"`
	Available       *bool               `json:"available"`
}

func (r doctorRequest) toInput() ports.DoctorInput {
	in := ports.DoctorInput{
		Specialization:  r.Specialization,
		Qualification:   r.Qualification,
		Department:      r.Department,
		Experience:      r.Experience,
		ConsultationFee: r.ConsultationFee,
		WorkingHours:    r.WorkingHours,
		Available:       r.Available,
	}
	if r.User != nil {
		in.User = &ports.UserInput{
			Username:    r.User.Username,
			Password:    r.User.Password,
			FirstName:   r.User.FirstName,
			LastName:    r.User.LastName,
			Email:       r.User.Email,
			PhoneNumber: r.User.PhoneNumber,
			Role:        domain.RoleDoctor,
		}
	}
	return in
}

// Doctors renders the doctor management screen, optionally filtered by
// specialization.
//
// @Summary      Doctor management
// @Tags         admin
// @Produce      json
// @Param        specialization  query     string  false  "Filter by specialization"
// @Success      200             {object}  page
// @Router       /admin/doctors [get]
func (h *AdminHandler) Doctors(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var doctors []domain.Doctor
	var loadErr error
	if spec := c.QueryParam("specialization"); spec != "" {
		doctors, loadErr = h.doctors.ListBySpecialization(ctx, spec)
	} else {
		doctors, loadErr = h.doctors.List(ctx)
	}

	notice := ""
	if loadErr != nil {
		h.logger.Error().Err(loadErr).Msg("failed to load doctors")
		doctors = []domain.Doctor{}
		notice = noDataNotice
	}

	return renderPage(c, identity, "Doctors", echo.Map{
		"doctors":         doctors,
		"specializations": domain.Specializations,
	}, notice)
}

// CreateDoctor registers a new doctor.
//
// @Summary      Create doctor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      doctorRequest  true  "New doctor"
// @Success      201   {object}  domain.Doctor
// @Router       /admin/doctors [post]
func (h *AdminHandler) CreateDoctor(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	doctor, err := h.doctors.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return &domain.MutationError{Resource: "doctor", Err: err}
	}
	return c.JSON(http.StatusCreated, doctor)
}

// UpdateDoctor updates a doctor record.
//
// @Summary      Update doctor
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Doctor ID"
// @Param        body  body      doctorRequest  true  "Changed fields"
// @Success      200   {object}  domain.Doctor
// @Router       /admin/doctors/{id} [put]
func (h *AdminHandler) UpdateDoctor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	doctor, err := h.doctors.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return &domain.MutationError{Resource: "doctor", Err: err}
	}
	return c.JSON(http.StatusOK, doctor)
}

// DeleteDoctor removes a doctor record.
//
// @Summary      Delete doctor
// @Tags         admin
// @Param        id  path  int  true  "Doctor ID"
// @Success      204
// @Router       /admin/doctors/{id} [delete]
func (h *AdminHandler) DeleteDoctor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.doctors.Delete(c.Request().Context(), id); err != nil {
		return &domain.MutationError{Resource: "doctor", Err: err}
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Appointment management ---

type appointmentRequest struct {
	PatientID           int64  `json:"patientId" validate:"required,gt=0"`
	DoctorID            int64  `json:"doctorId" validate:"required,gt=0"`
	AppointmentDateTime string `json:"appointmentDateTime" validate:"required"`
	Reason              string `json:"reason"`
	Notes               string `json:"notes"`
}

// Appointments renders the appointment management screen with optional
// status and date-range filters.
//
// @Summary      Appointment management
// @Tags         admin
// @Produce      json
// @Param        status     query     string  false  "Filter by status"
// @Param        startDate  query     string  false  "Range start (YYYY-MM-DD)"
// @Param        endDate    query     string  false  "Range end (YYYY-MM-DD)"
// @Success      200        {object}  page
// @Router       /admin/appointments [get]
func (h *AdminHandler) Appointments(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var appointments []domain.Appointment
	var loadErr error
	status := c.QueryParam("status")
	startDate, endDate := c.QueryParam("startDate"), c.QueryParam("endDate")
	switch {
	case status != "":
		appointments, loadErr = h.appointments.ListByStatus(ctx, status)
	case startDate != "" && endDate != "":
		appointments, loadErr = h.appointments.ListByDateRange(ctx, startDate, endDate)
	default:
		appointments, loadErr = h.appointments.List(ctx)
	}

	notice := ""
	if loadErr != nil {
		h.logger.Error().Err(loadErr).Msg("failed to load appointments")
		appointments = nil
		notice = noDataNotice
	}

	stats, err := h.reports.AppointmentStats(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to load appointment stats")
		stats = nil
	}

	return renderPage(c, identity, "Appointments", echo.Map{
		"appointments": appointmentViews(appointments),
		"stats":        stats,
		"statuses":     domain.AppointmentStatuses,
	}, notice)
}

// CreateAppointment books an appointment on behalf of a patient.
//
// @Summary      Create appointment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      appointmentRequest  true  "New appointment"
// @Success      201   {object}  domain.Appointment
// @Router       /admin/appointments [post]
func (h *AdminHandler) CreateAppointment(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	appointment, err := h.appointments.Create(c.Request().Context(), ports.AppointmentInput{
		PatientID:           req.PatientID,
		DoctorID:            req.DoctorID,
		AppointmentDateTime: req.AppointmentDateTime,
		Reason:              req.Reason,
		Notes:               req.Notes,
		Status:              domain.StatusScheduled,
	})
	if err != nil {
		return &domain.MutationError{Resource: "appointment", Err: err}
	}
	return c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointment reschedules or edits an appointment.
//
// @Summary      Update appointment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Appointment ID"
// @Param        body  body      appointmentRequest  true  "Changed fields"
// @Success      200   {object}  domain.Appointment
// @Router       /admin/appointments/{id} [put]
func (h *AdminHandler) UpdateAppointment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	appointment, err := h.appointments.Update(c.Request().Context(), id, ports.AppointmentInput{
		PatientID:           req.PatientID,
		DoctorID:            req.DoctorID,
		AppointmentDateTime: req.AppointmentDateTime,
		Reason:              req.Reason,
		Notes:               req.Notes,
	})
	if err != nil {
		return &domain.MutationError{Resource: "appointment", Err: err}
	}
	return c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
//
// @Summary      Update appointment status
// @Tags         admin
// @Produce      json
// @Param        id      path      int     true  "Appointment ID"
// @Param        status  query     string  true  "New status"
// @Success      200     {object}  domain.Appointment
// @Router       /admin/appointments/{id}/status [put]
func (h *AdminHandler) UpdateAppointmentStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	status := c.QueryParam("status")
	if !validStatus(status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
	}

	appointment, err := h.appointments.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		return &domain.MutationError{Resource: "appointment", Err: err}
	}
	return c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment.
//
// @Summary      Delete appointment
// @Tags         admin
// @Param        id  path  int  true  "Appointment ID"
// @Success      204
// @Router       /admin/appointments/{id} [delete]
func (h *AdminHandler) DeleteAppointment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.appointments.Delete(c.Request().Context(), id); err != nil {
		return &domain.MutationError{Resource: "appointment", Err: err}
	}
	return c.NoContent(http.StatusNoContent)
}

func validStatus(status string) bool {
	for _, s := range domain.AppointmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
