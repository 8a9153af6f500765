package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// RecordsClient implements ports.MedicalRecordArchive against /api/medical-records.
type RecordsClient struct {
	c *Client
}

func NewRecordsClient(c *Client) *RecordsClient {
	return &RecordsClient{c: c}
}

func (r *RecordsClient) List(ctx context.Context) ([]domain.MedicalRecord, error) {
	var records []domain.MedicalRecord
	if err := r.c.get(ctx, "/api/medical-records", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordsClient) Get(ctx context.Context, id int64) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	if err := r.c.get(ctx, fmt.Sprintf("/api/medical-records/%d", id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordsClient) ListByPatient(ctx context.Context, patientID int64) ([]domain.MedicalRecord, error) {
	var records []domain.MedicalRecord
	if err := r.c.get(ctx, fmt.Sprintf("/api/medical-records/patient/%d", patientID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordsClient) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.MedicalRecord, error) {
	var records []domain.MedicalRecord
	if err := r.c.get(ctx, fmt.Sprintf("/api/medical-records/doctor/%d", doctorID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordsClient) GetByAppointment(ctx context.Context, appointmentID int64) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	if err := r.c.get(ctx, fmt.Sprintf("/api/medical-records/appointment/%d", appointmentID), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordsClient) SearchByDiagnosis(ctx context.Context, diagnosis string) ([]domain.MedicalRecord, error) {
	query := url.Values{}
	query.Set("diagnosis", diagnosis)

	var records []domain.MedicalRecord
	if err := r.c.get(ctx, "/api/medical-records/search?"+query.Encode(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordsClient) Create(ctx context.Context, in ports.MedicalRecordInput) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	if err := r.c.post(ctx, "/api/medical-records", in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordsClient) Update(ctx context.Context, id int64, in ports.MedicalRecordInput) (*domain.MedicalRecord, error) {
	var record domain.MedicalRecord
	if err := r.c.put(ctx, fmt.Sprintf("/api/medical-records/%d", id), in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordsClient) Delete(ctx context.Context, id int64) error {
	return r.c.delete(ctx, fmt.Sprintf("/api/medical-records/%d", id))
}
