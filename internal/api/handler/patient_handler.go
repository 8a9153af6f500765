package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// PatientHandler serves the /patient pages. Every query is scoped to the
// signed-in patient.
type PatientHandler struct {
	appointments ports.AppointmentBook
	doctors      ports.DoctorDirectory
	records      ports.MedicalRecordArchive
	logger       zerolog.Logger
}

func NewPatientHandler(
	appointments ports.AppointmentBook,
	doctors ports.DoctorDirectory,
	records ports.MedicalRecordArchive,
	logger zerolog.Logger,
) *PatientHandler {
	return &PatientHandler{
		appointments: appointments,
		doctors:      doctors,
		records:      records,
		logger:       logger,
	}
}

// Dashboard renders the patient overview: their upcoming and past
// appointments.
//
// @Summary      Patient dashboard
// @Tags         patient
// @Produce      json
// @Success      200  {object}  page
// @Router       /patient/dashboard [get]
func (h *PatientHandler) Dashboard(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notice := ""
	appointments, err := h.appointments.ListByPatient(c.Request().Context(), identity.UserID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load patient appointments")
		appointments = nil
		notice = noDataNotice
	}

	upcoming := 0
	for _, a := range appointments {
		if a.Status == domain.StatusScheduled {
			upcoming++
		}
	}

	return renderPage(c, identity, "Patient Dashboard", echo.Map{
		"appointments":  appointmentViews(appointments),
		"upcomingCount": upcoming,
	}, notice)
}

// BookAppointmentPage renders the booking form: the list of available
// doctors to choose from.
//
// @Summary      Booking form
// @Tags         patient
// @Produce      json
// @Success      200  {object}  page
// @Router       /patient/book-appointment [get]
func (h *PatientHandler) BookAppointmentPage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notice := ""
	doctors, err := h.doctors.ListAvailable(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load available doctors")
		doctors = []domain.Doctor{}
		notice = noDataNotice
	}

	return renderPage(c, identity, "Book Appointment", echo.Map{
		"doctors":         doctors,
		"specializations": domain.Specializations,
	}, notice)
}

type bookAppointmentRequest struct {
	DoctorID            int64  `json:"doctorId" validate:"required,gt=0"`
	AppointmentDateTime string `json:"appointmentDateTime" validate:"required"`
	Reason              string `json:"reason" validate:"required"`
}

// BookAppointment books a new appointment for the signed-in patient. New
// bookings always start out scheduled.
//
// @Summary      Book appointment
// @Tags         patient
// @Accept       json
// @Produce      json
// @Param        body  body      bookAppointmentRequest  true  "Booking"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Router       /patient/book-appointment [post]
func (h *PatientHandler) BookAppointment(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	appointment, err := h.appointments.Create(c.Request().Context(), ports.AppointmentInput{
		PatientID:           identity.UserID,
		DoctorID:            req.DoctorID,
		AppointmentDateTime: req.AppointmentDateTime,
		Reason:              req.Reason,
		Status:              domain.StatusScheduled,
	})
	if err != nil {
		return &domain.MutationError{Resource: "appointment", Err: err}
	}
	return c.JSON(http.StatusCreated, appointment)
}

// CancelAppointment cancels one of the patient's own scheduled appointments.
//
// @Summary      Cancel appointment
// @Tags         patient
// @Produce      json
// @Param        id  path  int  true  "Appointment ID"
// @Success      200  {object}  domain.Appointment
// @Router       /patient/appointments/{id}/cancel [put]
func (h *PatientHandler) CancelAppointment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	appointment, err := h.appointments.UpdateStatus(c.Request().Context(), id, domain.StatusCancelled)
	if err != nil {
		return &domain.MutationError{Resource: "appointment", Err: err}
	}
	return c.JSON(http.StatusOK, appointment)
}

// MedicalHistory renders the patient's visit records.
//
// @Summary      Medical history
// @Tags         patient
// @Produce      json
// @Success      200  {object}  page
// @Router       /patient/medical-history [get]
func (h *PatientHandler) MedicalHistory(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notice := ""
	records, err := h.records.ListByPatient(c.Request().Context(), identity.UserID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load medical history")
		records = nil
		notice = noDataNotice
	}

	return renderPage(c, identity, "Medical History", echo.Map{
		"records": recordViews(records),
	}, notice)
}
