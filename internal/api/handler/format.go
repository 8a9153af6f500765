package handler

import (
	"time"

	"github.com/medisync/healthcare-portal/internal/core/domain"
)

// The backend serialises datetimes as zone-less local values; dates come as
// plain calendar days. Unknown shapes pass through untouched rather than
// blanking the cell.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseBackendTime(value string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// formatDateTime renders "Jan 2, 2006 3:04 PM", the portal's standard
// table format.
func formatDateTime(value string) string {
	if value == "" {
		return ""
	}
	ts, ok := parseBackendTime(value)
	if !ok {
		return value
	}
	return ts.Format("Jan 2, 2006 3:04 PM")
}

// formatDateOnly renders "Jan 2, 2006".
func formatDateOnly(value string) string {
	if value == "" {
		return ""
	}
	ts, ok := parseBackendTime(value)
	if !ok {
		return value
	}
	return ts.Format("Jan 2, 2006")
}

// formatTime renders "3:04 PM".
func formatTime(value string) string {
	if value == "" {
		return ""
	}
	ts, ok := parseBackendTime(value)
	if !ok {
		return value
	}
	return ts.Format("3:04 PM")
}

// appointmentView decorates an appointment with its display fields.
type appointmentView struct {
	domain.Appointment
	FormattedDateTime string `json:"formattedDateTime"`
	FormattedTime     string `json:"formattedTime"`
	StatusColor       string `json:"statusColor"`
}

func newAppointmentView(a domain.Appointment) appointmentView {
	return appointmentView{
		Appointment:       a,
		FormattedDateTime: formatDateTime(a.AppointmentDateTime),
		FormattedTime:     formatTime(a.AppointmentDateTime),
		StatusColor:       domain.StatusColor(a.Status),
	}
}

func appointmentViews(appointments []domain.Appointment) []appointmentView {
	views := make([]appointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, newAppointmentView(a))
	}
	return views
}

// recordView decorates a medical record with its display fields.
type recordView struct {
	domain.MedicalRecord
	FormattedVisitDate string `json:"formattedVisitDate"`
}

func newRecordView(r domain.MedicalRecord) recordView {
	return recordView{MedicalRecord: r, FormattedVisitDate: formatDateOnly(r.VisitDate)}
}

func recordViews(records []domain.MedicalRecord) []recordView {
	views := make([]recordView, 0, len(records))
	for _, r := range records {
		views = append(views, newRecordView(r))
	}
	return views
}
