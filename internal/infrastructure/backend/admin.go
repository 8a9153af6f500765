package backend

import (
	"context"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// AdminClient implements ports.AdminReports against /api/admin.
type AdminClient struct {
	c *Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{c: c}
}

func (a *AdminClient) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := a.c.get(ctx, "/api/admin/dashboard", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *AdminClient) UserStats(ctx context.Context) (*domain.UserStats, error) {
	var stats domain.UserStats
	if err := a.c.get(ctx, "/api/admin/users/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *AdminClient) AppointmentStats(ctx context.Context) (*domain.AppointmentStats, error) {
	var stats domain.AppointmentStats
	if err := a.c.get(ctx, "/api/admin/appointments/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *AdminClient) CreateAdmin(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	var user domain.User
	if err := a.c.post(ctx, "/api/admin/create-admin", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
