package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medisync/healthcare-portal/internal/api/middleware"
	"github.com/medisync/healthcare-portal/internal/core/domain"
)

// identityView is the identity as exposed to pages. The login success flag
// and message never leave the server.
type identityView struct {
	UserID    int64       `json:"userId"`
	Username  string      `json:"username"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	FullName  string      `json:"fullName"`
	Role      domain.Role `json:"role"`
}

func newIdentityView(i *domain.Identity) *identityView {
	return &identityView{
		UserID:    i.UserID,
		Username:  i.Username,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		FullName:  i.FullName(),
		Role:      i.Role,
	}
}

// page is the common envelope for every portal view model: who is looking at
// it, their sidebar, and the page payload. Notice carries the "no data"
// message when a read failed and the page rendered its empty state.
type page struct {
	Title  string            `json:"title"`
	User   *identityView     `json:"user"`
	Menu   []domain.MenuItem `json:"menu"`
	Data   any               `json:"data"`
	Notice string            `json:"notice,omitempty"`
}

// ctxIdentity returns the identity the guard has already vouched for. A
// missing identity here means a route was wired without the guard.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return identity, nil
}

func renderPage(c echo.Context, identity *domain.Identity, title string, data any, notice string) error {
	return c.JSON(http.StatusOK, page{
		Title:  title,
		User:   newIdentityView(identity),
		Menu:   domain.MenuFor(identity.Role),
		Data:   data,
		Notice: notice,
	})
}

const noDataNotice = "No data available right now."
