package fleet

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dm/balena-go/internal/auth"
	"github.com/dm/balena-go/internal/client"
)

// Fetch confirms the session with WhoAmI and lists fleets, concurrently.
// Either failure aborts both; a rejected session is reported as
// auth.ErrNotLoggedIn.
func Fetch(ctx context.Context, c client.FleetAPI) ([]client.RawFleet, error) {
	var fleets []client.RawFleet

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := c.WhoAmI(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		fleets, err = c.ListFleets(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return nil, auth.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("fetch fleets: %w", err)
	}
	return fleets, nil
}
