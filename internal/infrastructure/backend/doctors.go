package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// DoctorsClient implements ports.DoctorDirectory against /api/doctors.
type DoctorsClient struct {
	c *Client
}

func NewDoctorsClient(c *Client) *DoctorsClient {
	return &DoctorsClient{c: c}
}

func (d *DoctorsClient) List(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := d.c.get(ctx, "/api/doctors", &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (d *DoctorsClient) ListActive(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := d.c.get(ctx, "/api/doctors/active", &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (d *DoctorsClient) ListAvailable(ctx context.Context) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := d.c.get(ctx, "/api/doctors/available", &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (d *DoctorsClient) Get(ctx context.Context, id int64) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := d.c.get(ctx, fmt.Sprintf("/api/doctors/%d", id), &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (d *DoctorsClient) ListBySpecialization(ctx context.Context, specialization string) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	if err := d.c.get(ctx, "/api/doctors/specialization/"+url.PathEscape(specialization), &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (d *DoctorsClient) Create(ctx context.Context, in ports.DoctorInput) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := d.c.post(ctx, "/api/doctors", in, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (d *DoctorsClient) Update(ctx context.Context, id int64, in ports.DoctorInput) (*domain.Doctor, error) {
	var doctor domain.Doctor
	if err := d.c.put(ctx, fmt.Sprintf("/api/doctors/%d", id), in, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (d *DoctorsClient) Delete(ctx context.Context, id int64) error {
	return d.c.delete(ctx, fmt.Sprintf("/api/doctors/%d", id))
}
