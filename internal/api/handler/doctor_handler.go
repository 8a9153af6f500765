package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// DoctorHandler serves the /doctor pages. Every query is scoped to the
// signed-in doctor's own caseload.
type DoctorHandler struct {
	appointments ports.AppointmentBook
	patients     ports.PatientDirectory
	records      ports.MedicalRecordArchive
	logger       zerolog.Logger
}

func NewDoctorHandler(
	appointments ports.AppointmentBook,
	patients ports.PatientDirectory,
	records ports.MedicalRecordArchive,
	logger zerolog.Logger,
) *DoctorHandler {
	return &DoctorHandler{
		appointments: appointments,
		patients:     patients,
		records:      records,
		logger:       logger,
	}
}

// Dashboard renders the doctor overview: today's schedule and the doctor's
// upcoming appointments.
//
// @Summary      Doctor dashboard
// @Tags         doctor
// @Produce      json
// @Success      200  {object}  page
// @Router       /doctor/dashboard [get]
func (h *DoctorHandler) Dashboard(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	notice := ""
	mine, err := h.appointments.ListByDoctor(ctx, identity.UserID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load doctor appointments")
		mine = nil
		notice = noDataNotice
	}

	today := make([]domain.Appointment, 0)
	allToday, err := h.appointments.ListToday(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load today's appointments")
		notice = noDataNotice
	} else {
		for _, a := range allToday {
			if a.DoctorID == identity.UserID {
				today = append(today, a)
			}
		}
	}

	scheduled := 0
	for _, a := range mine {
		if a.Status == domain.StatusScheduled {
			scheduled++
		}
	}

	return renderPage(c, identity, "Doctor Dashboard", echo.Map{
		"todaysAppointments": appointmentViews(today),
		"appointments":       appointmentViews(mine),
		"scheduledCount":     scheduled,
	}, notice)
}

// Appointments renders the doctor's appointment list with an optional status
// filter.
//
// @Summary      Doctor appointments
// @Tags         doctor
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  page
// @Router       /doctor/appointments [get]
func (h *DoctorHandler) Appointments(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notice := ""
	appointments, err := h.appointments.ListByDoctor(c.Request().Context(), identity.UserID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load doctor appointments")
		appointments = nil
		notice = noDataNotice
	}

	if status := c.QueryParam("status"); status != "" {
		filtered := make([]domain.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	return renderPage(c, identity, "My Appointments", echo.Map{
		"appointments": appointmentViews(appointments),
		"statuses":     domain.AppointmentStatuses,
	}, notice)
}

// UpdateAppointmentStatus completes or cancels one of the doctor's
// appointments.
//
// @Summary      Update appointment status
// @Tags         doctor
// @Produce      json
// @Param        id      path      int     true  "Appointment ID"
// @Param        status  query     string  true  "New status"
// @Success      200     {object}  domain.Appointment
// @Router       /doctor/appointments/{id}/status [put]
func (h *DoctorHandler) UpdateAppointmentStatus(c echo.Context) error {
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

type appointmentNotesRequest struct {
	Notes        string `json:"notes"`
	Prescription string `json:"prescription"`
}

// UpdateAppointmentNotes saves consultation notes and a prescription on an
// appointment.
//
// @Summary      Update appointment notes
// @Tags         doctor
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Appointment ID"
// @Param        body  body      appointmentNotesRequest  true  "Notes"
// @Success      200   {object}  domain.Appointment
// @Router       /doctor/appointments/{id}/notes [put]
func (h *DoctorHandler) UpdateAppointmentNotes(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req appointmentNotesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	appointment, err := h.appointments.Update(c.Request().Context(), id, ports.AppointmentInput{
		Notes:        req.Notes,
		Prescription: req.Prescription,
	})
	if err != nil {
		return &domain.MutationError{Resource: "appointment", Err: err}
	}
	return c.JSON(http.StatusOK, appointment)
}

// Patients renders the doctor's patient screen: active patients plus the
// doctor's own visit records, searchable by diagnosis.
//
// @Summary      Doctor patients
// @Tags         doctor
// @Produce      json
// @Param        diagnosis  query     string  false  "Search records by diagnosis"
// @Success      200        {object}  page
// @Router       /doctor/patients [get]
func (h *DoctorHandler) Patients(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	notice := ""
	patients, err := h.patients.ListActive(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load patients")
		patients = []domain.Patient{}
		notice = noDataNotice
	}

	var records []domain.MedicalRecord
	if diagnosis := c.QueryParam("diagnosis"); diagnosis != "" {
		records, err = h.records.SearchByDiagnosis(ctx, diagnosis)
	} else {
		records, err = h.records.ListByDoctor(ctx, identity.UserID)
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load medical records")
		records = nil
		notice = noDataNotice
	}

	return renderPage(c, identity, "My Patients", echo.Map{
		"patients": patients,
		"records":  recordViews(records),
	}, notice)
}

type medicalRecordRequest struct {
	PatientID     int64  `json:"patientId" validate:"required,gt=0"`
	AppointmentID int64  `json:"appointmentId"`
	VisitDate     string `json:"visitDate" validate:"required"`
	Symptoms      string `json:"symptoms"`
	Diagnosis     string `json:"diagnosis" validate:"required"`
	Treatment     string `json:"treatment"`
	Prescription  string `json:"prescription"`
	Notes         string `json:"notes"`
}

// CreateRecord files a visit record for one of the doctor's patients.
//
// @Summary      Create medical record
// @Tags         doctor
// @Accept       json
// @Produce      json
// @Param        body  body      medicalRecordRequest  true  "Visit record"
// @Success      201   {object}  domain.MedicalRecord
// @Failure      400   {object}  map[string]string
// @Router       /doctor/patients/records [post]
func (h *DoctorHandler) CreateRecord(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req medicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	record, err := h.records.Create(c.Request().Context(), ports.MedicalRecordInput{
		PatientID:     req.PatientID,
		DoctorID:      identity.UserID,
		AppointmentID: req.AppointmentID,
		VisitDate:     req.VisitDate,
		Symptoms:      req.Symptoms,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
	})
	if err != nil {
		return &domain.MutationError{Resource: "medical record", Err: err}
	}
	return c.JSON(http.StatusCreated, record)
}
