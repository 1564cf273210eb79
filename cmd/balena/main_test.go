package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dm/balena-go/internal/auth"
	"github.com/dm/balena-go/internal/client"
	"github.com/dm/balena-go/internal/commands"
)

type stubAPI struct {
	fleets []client.RawFleet
	err    error
}

func (s *stubAPI) WhoAmI(_ context.Context) (*client.User, error) { return &client.User{ID: 1}, nil }

func (s *stubAPI) ListFleets(_ context.Context) ([]client.RawFleet, error) { return s.fleets, s.err }

func (s *stubAPI) BaseURL() string { return "http://stub" }

func newEnv(connect func(context.Context) (client.FleetAPI, error)) (*commands.Env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &commands.Env{
		Stdout:           &stdout,
		Stderr:           &stderr,
		StderrIsTerminal: func() bool { return false },
		Connect:          connect,
	}, &stdout, &stderr
}

func TestRun_Success(t *testing.T) {
	api := &stubAPI{fleets: []client.RawFleet{{
		ID: 5, Name: "F5", Slug: "f5",
		DeviceTypes: []client.DeviceTypeRef{{Slug: "raspberrypi3"}},
	}}}
	env, stdout, stderr := newEnv(func(context.Context) (client.FleetAPI, error) { return api, nil })

	code := run(context.Background(), env, []string{"fleets"})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "raspberrypi3")
	assert.Empty(t, stderr.String())
}

func TestRun_FailureExitsNonZero(t *testing.T) {
	tests := []struct {
		name    string
		connect func(context.Context) (client.FleetAPI, error)
		want    string
	}{
		{
			name:    "not logged in",
			connect: func(context.Context) (client.FleetAPI, error) { return nil, auth.ErrNotLoggedIn },
			want:    "error: Login required",
		},
		{
			name: "upstream failure",
			connect: func(context.Context) (client.FleetAPI, error) {
				return &stubAPI{err: errors.New("boom")}, nil
			},
			want: "error: fetch fleets: boom",
		},
		{
			name: "missing device type",
			connect: func(context.Context) (client.FleetAPI, error) {
				return &stubAPI{fleets: []client.RawFleet{{ID: 9, Slug: "f9"}}}, nil
			},
			want: "fleet has no device type",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, stdout, stderr := newEnv(tc.connect)
			code := run(context.Background(), env, []string{"fleets"})
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), tc.want)
		})
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	env, _, stderr := newEnv(nil)
	code := run(context.Background(), env, []string{"fleets", "--nope"})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown flag: --nope")
}

func TestRun_Help(t *testing.T) {
	env, stdout, _ := newEnv(nil)
	code := run(context.Background(), env, []string{"apps", "--help"})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "DEPRECATED alias")
}
