package backend

import (
	"context"
	"fmt"

	"github.com/Sonalgupta2005/game-time-go/internal/core/domain"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
)

// AdminClient implements ports.AdminBackend against /admin.
type AdminClient struct {
	c *Client
}

func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{c: c}
}

// Login authenticates against the separate admin entry point. The upstream
// returns the same user envelope as /auth/login.
func (a *AdminClient) Login(ctx context.Context, adminID, password string) (*domain.Identity, error) {
	body := map[string]string{"adminId": adminID, "password": password}
	var envelope authEnvelope
	if err := a.c.postJSON(ctx, "/admin/login", body, &envelope); err != nil {
		return nil, err
	}
	return envelope.User.toDomain()
}

func (a *AdminClient) Stats(ctx context.Context) (*ports.AdminStats, error) {
	var stats ports.AdminStats
	if err := a.c.getJSON(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (a *AdminClient) PendingFacilities(ctx context.Context) ([]ports.PendingFacility, error) {
	var facilities []ports.PendingFacility
	if err := a.c.getJSON(ctx, "/admin/facilities/pending", nil, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}

func (a *AdminClient) ApproveFacility(ctx context.Context, facilityID int64, comments string) error {
	body := map[string]string{"comments": comments}
	return a.c.putJSON(ctx, fmt.Sprintf("/admin/facilities/%d/approve", facilityID), body, nil)
}

func (a *AdminClient) RejectFacility(ctx context.Context, facilityID int64, comments string) error {
	body := map[string]string{"comments": comments}
	return a.c.putJSON(ctx, fmt.Sprintf("/admin/facilities/%d/reject", facilityID), body, nil)
}

func (a *AdminClient) ListUsers(ctx context.Context) ([]ports.AdminUser, error) {
	var users []ports.AdminUser
	if err := a.c.getJSON(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *AdminClient) BanUser(ctx context.Context, userID int64) error {
	return a.c.putJSON(ctx, fmt.Sprintf("/admin/users/%d/ban", userID), nil, nil)
}

func (a *AdminClient) UnbanUser(ctx context.Context, userID int64) error {
	return a.c.putJSON(ctx, fmt.Sprintf("/admin/users/%d/unban", userID), nil, nil)
}
