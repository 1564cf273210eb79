package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dm/balena-go/internal/auth"
	"github.com/dm/balena-go/internal/client"
	"github.com/dm/balena-go/internal/config"
	"github.com/dm/balena-go/internal/logger"
)

// Env is everything a command touches outside its own flags. Tests swap in
// buffers and a fake API; DefaultEnv wires the real process.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	// StderrIsTerminal reports whether Stderr is an interactive terminal.
	StderrIsTerminal func() bool

	// Connect returns an authenticated API client. It is only called once
	// flags are parsed and help was not requested.
	Connect func(ctx context.Context) (client.FleetAPI, error)
}

// DefaultEnv returns an Env bound to the process streams and the settings
// resolved by config.Load.
func DefaultEnv() *Env {
	return &Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		StderrIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stderr.Fd()))
		},
		Connect: connect,
	}
}

// connect loads settings and credentials and builds the API client.
func connect(_ context.Context) (client.FleetAPI, error) {
	settings, err := config.Load(config.Options{})
	if err != nil {
		return nil, err
	}
	if err := logger.Init(settings.Debug); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	tok, err := auth.Load(settings.DataDirectory, settings.APIKey)
	if err != nil {
		return nil, err
	}
	if err := tok.Validate(time.Now()); err != nil {
		return nil, err
	}
	logger.Logger.Debug("credentials loaded",
		zap.String("api_url", settings.APIURL),
		zap.Bool("api_key", tok.Kind == auth.KindAPIKey),
	)

	c, err := client.NewDefaultClient(client.ClientConfig{
		BaseURL:        settings.APIURL,
		Token:          tok.Raw,
		RequestTimeout: settings.RequestTimeout,
		Logger:         logger.Logger,
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
