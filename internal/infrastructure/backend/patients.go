package backend

import (
	"context"
	"fmt"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// PatientsClient implements ports.PatientDirectory against /api/patients.
type PatientsClient struct {
	c *Client
}

func NewPatientsClient(c *Client) *PatientsClient {
	return &PatientsClient{c: c}
}

func (p *PatientsClient) List(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := p.c.get(ctx, "/api/patients", &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (p *PatientsClient) ListActive(ctx context.Context) ([]domain.Patient, error) {
	var patients []domain.Patient
	if err := p.c.get(ctx, "/api/patients/active", &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (p *PatientsClient) Get(ctx context.Context, id int64) (*domain.Patient, error) {
	var patient domain.Patient
	if err := p.c.get(ctx, fmt.Sprintf("/api/patients/%d", id), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (p *PatientsClient) Create(ctx context.Context, in ports.PatientInput) (*domain.Patient, error) {
	var patient domain.Patient
	if err := p.c.post(ctx, "/api/patients", in, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (p *PatientsClient) Update(ctx context.Context, id int64, in ports.PatientInput) (*domain.Patient, error) {
	var patient domain.Patient
	if err := p.c.put(ctx, fmt.Sprintf("/api/patients/%d", id), in, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (p *PatientsClient) Delete(ctx context.Context, id int64) error {
	return p.c.delete(ctx, fmt.Sprintf("/api/patients/%d", id))
}
