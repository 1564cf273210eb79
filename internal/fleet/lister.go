package fleet

import (
	"errors"
	"fmt"

	"github.com/dm/balena-go/internal/client"
	"github.com/dm/balena-go/internal/model"
)

// ErrMissingDeviceType is returned when a fetched fleet has no device-type
// association. The API always expands one, so this indicates bad upstream data.
var ErrMissingDeviceType = errors.New("fleet has no device type")

// ComputeDisplayFleets converts raw fleets into table rows, preserving order.
// It fails on the first fleet without a device type and returns no rows.
func ComputeDisplayFleets(raw []client.RawFleet) ([]model.DisplayFleet, error) {
	out := make([]model.DisplayFleet, 0, len(raw))
	for _, f := range raw {
		if len(f.DeviceTypes) == 0 {
			return nil, fmt.Errorf("fleet %d (%s): %w", f.ID, f.Slug, ErrMissingDeviceType)
		}
		out = append(out, model.DisplayFleet{
			ID:                f.ID,
			Name:              f.Name,
			Slug:              f.Slug,
			DeviceType:        f.DeviceTypes[0].Slug,
			OnlineDeviceCount: countOnline(f.Devices),
			TotalDeviceCount:  len(f.Devices),
		})
	}
	return out, nil
}

func countOnline(devices []client.Device) int {
	n := 0
	for _, d := range devices {
		if d.IsOnline {
			n++
		}
	}
	return n
}
