package backend

import (
	"context"
	"fmt"

	"github.com/medisync/healthcare-portal/internal/core/domain"
	"github.com/medisync/healthcare-portal/internal/core/ports"
)

// UsersClient implements ports.UserDirectory against /api/users.
type UsersClient struct {
	c *Client
}

func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{c: c}
}

func (u *UsersClient) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := u.c.get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UsersClient) Get(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := u.c.get(ctx, fmt.Sprintf("/api/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UsersClient) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var users []domain.User
	if err := u.c.get(ctx, "/api/users/role/"+string(role), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UsersClient) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	var user domain.User
	if err := u.c.post(ctx, "/api/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UsersClient) Update(ctx context.Context, id int64, in ports.UserInput) (*domain.User, error) {
	var user domain.User
	if err := u.c.put(ctx, fmt.Sprintf("/api/users/%d", id), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UsersClient) Deactivate(ctx context.Context, id int64) error {
	return u.c.put(ctx, fmt.Sprintf("/api/users/%d/deactivate", id), nil, nil)
}

func (u *UsersClient) Delete(ctx context.Context, id int64) error {
	return u.c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}
