package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	endpointWhoAmI = "/user/v1/whoami"
	endpointFleets = "/v6/application"
)

// fleetsQuery selects the fleets directly accessible by the current user,
// with device type and per-device online status expanded.
func fleetsQuery() string {
	q := url.Values{}
	q.Set("$select", "id,app_name,slug")
	q.Set("$expand", "is_for__device_type($select=slug),owns__device($select=is_online)")
	q.Set("$filter", "is_directly_accessible_by__user/any(dau:1 eq 1)")
	q.Set("$orderby", "app_name asc")
	return q.Encode()
}

// WhoAmI fetches the user owning the session token from /user/v1/whoami.
func (c *DefaultClient) WhoAmI(ctx context.Context) (*User, error) {
	body, err := c.doGet(ctx, endpointWhoAmI)
	if err != nil {
		return nil, fmt.Errorf("WhoAmI: %w", err)
	}

	var result User
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("WhoAmI decode: %w", err)
	}
	return &result, nil
}

// ListFleets fetches all fleets with device associations from /v6/application.
func (c *DefaultClient) ListFleets(ctx context.Context) ([]RawFleet, error) {
	body, err := c.doGet(ctx, endpointFleets+"?"+fleetsQuery())
	if err != nil {
		return nil, fmt.Errorf("ListFleets: %w", err)
	}

	var result fleetsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("ListFleets decode: %w", err)
	}
	return result.D, nil
}
