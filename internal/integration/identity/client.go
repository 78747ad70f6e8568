package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flight-booking/pkg/auth"

	"go.uber.org/zap"
)

const membershipPageLimit = 100

// Client talks to the identity provider's backend API
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL, secretKey string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With(zap.String("client", "identity")),
	}
}

// ListOrganizationMemberships fetches every organization membership of a user
func (c *Client) ListOrganizationMemberships(ctx context.Context, userID string) ([]Membership, error) {
	if c.secretKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/users/%s/organization_memberships?limit=%d",
		c.baseURL, url.PathEscape(userID), membershipPageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var list MembershipList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return list.Data, nil
}

// ResolveRole returns RoleAdmin when any membership carries an admin label and
// RoleMember otherwise. Any failure returns RoleUnauthenticated with the error.
func (c *Client) ResolveRole(ctx context.Context, userID string) (auth.Role, error) {
	memberships, err := c.ListOrganizationMemberships(ctx, userID)
	if err != nil {
		c.log.Error("Organization membership lookup failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return auth.RoleUnauthenticated, err
	}

	for _, m := range memberships {
		if auth.IsAdminLabel(m.Role) {
			c.log.Debug("Admin membership found",
				zap.String("user_id", userID),
				zap.String("organization_id", m.Organization.ID),
				zap.String("role", m.Role),
			)
			return auth.RoleAdmin, nil
		}
	}

	return auth.RoleMember, nil
}
