package fleet

import (
	"context"
	"errors"

	"github.com/dm/balena-go/internal/client"
)

// MockFleetAPI implements client.FleetAPI for testing.
type MockFleetAPI struct {
	WhoAmIFn     func(ctx context.Context) (*client.User, error)
	ListFleetsFn func(ctx context.Context) ([]client.RawFleet, error)
}

func (m *MockFleetAPI) WhoAmI(ctx context.Context) (*client.User, error) {
	if m.WhoAmIFn != nil {
		return m.WhoAmIFn(ctx)
	}
	return &client.User{ID: 1, Username: "test"}, nil
}

func (m *MockFleetAPI) ListFleets(ctx context.Context) ([]client.RawFleet, error) {
	if m.ListFleetsFn != nil {
		return m.ListFleetsFn(ctx)
	}
	return []client.RawFleet{{ID: 1, Name: "test", Slug: "test/test", DeviceTypes: []client.DeviceTypeRef{{Slug: "raspberrypi3"}}}}, nil
}

func (m *MockFleetAPI) BaseURL() string {
	return "http://mock"
}

var errMockFailure = errors.New("mock failure")
