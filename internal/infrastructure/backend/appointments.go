package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// AppointmentsClient implements ports.AppointmentBook against /api/appointments.
type AppointmentsClient struct {
	c *Client
}

func NewAppointmentsClient(c *Client) *AppointmentsClient {
	return &AppointmentsClient{c: c}
}

func (a *AppointmentsClient) List(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := a.c.get(ctx, "/api/appointments", &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *AppointmentsClient) ListToday(ctx context.Context) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := a.c.get(ctx, "/api/appointments/today", &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *AppointmentsClient) ListByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := a.c.get(ctx, fmt.Sprintf("/api/appointments/patient/%d", patientID), &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *AppointmentsClient) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := a.c.get(ctx, fmt.Sprintf("/api/appointments/doctor/%d", doctorID), &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *AppointmentsClient) ListByStatus(ctx context.Context, status string) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	if err := a.c.get(ctx, "/api/appointments/status/"+url.PathEscape(status), &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *AppointmentsClient) ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.Appointment, error) {
	query := url.Values{}
	query.Set("startDate", startDate)
	query.Set("endDate", endDate)

	var appointments []domain.Appointment
	if err := a.c.get(ctx, "/api/appointments/date-range?"+query.Encode(), &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (a *AppointmentsClient) Create(ctx context.Context, in ports.AppointmentInput) (*domain.Appointment, error) {
	var appointment domain.Appointment
	if err := a.c.post(ctx, "/api/appointments", in, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (a *AppointmentsClient) Update(ctx context.Context, id int64, in ports.AppointmentInput) (*domain.Appointment, error) {
	var appointment domain.Appointment
	if err := a.c.put(ctx, fmt.Sprintf("/api/appointments/%d", id), in, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (a *AppointmentsClient) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Appointment, error) {
	query := url.Values{}
	query.Set("status", status)

	var appointment domain.Appointment
	if err := a.c.put(ctx, fmt.Sprintf("/api/appointments/%d/status?%s", id, query.Encode()), nil, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (a *AppointmentsClient) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/api/appointments/%d", id))
}
