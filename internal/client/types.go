package client

import "bytes"

// User represents the response from /user/v1/whoami.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RawFleet is a single application record with its device-type and device
// associations expanded.
type RawFleet struct {
	ID          int64           `json:"id"`
	Name        string          `json:"app_name"`
	Slug        string          `json:"slug"`
	DeviceTypes []DeviceTypeRef `json:"is_for__device_type"`
	Devices     []Device        `json:"owns__device,omitempty"`
}

// DeviceTypeRef is the expanded is_for__device_type association.
type DeviceTypeRef struct {
	Slug string `json:"slug"`
}

// Device is the expanded owns__device association, selected down to is_online.
type Device struct {
	IsOnline OnlineFlag `json:"is_online"`
}

// OnlineFlag accepts any JSON value for is_online. Only the literal true
// marks a device as online; false, null, strings and numbers do not.
type OnlineFlag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *OnlineFlag) UnmarshalJSON(data []byte) error {
	*f = OnlineFlag(bytes.Equal(bytes.TrimSpace(data), []byte("true")))
	return nil
}

// fleetsResponse is the OData envelope returned by the resource endpoints.
type fleetsResponse struct {
	D []RawFleet `json:"d"`
}
