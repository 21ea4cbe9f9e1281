// Package bridge exposes a PlayFab title to a Nakama runtime module.
package bridge

import (
	"context"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pkg/errors"

	"fabforge/playfab"
)

// Bridge holds the pieces registered by Init.
type Bridge struct {
	Client    *playfab.Client
	Refresher *playfab.TokenRefresher
	Forwarder *EventForwarder
	Publisher *PlayFabPublisher
}

// Init builds a client for the title, fetches a title entity token, schedules its refresh
// and registers the RPCs, the event forwarder and the after-authenticate hooks.
func Init(ctx context.Context, logger runtime.Logger, initializer runtime.Initializer, cfg Config, opts ...playfab.ClientOption) (*Bridge, error) {
	if cfg.TitleID == "" {
		return nil, errors.Errorf("%s is not set", EnvTitleID)
	}
	if cfg.SecretKey == "" {
		return nil, errors.Errorf("%s is not set", EnvSecretKey)
	}

	opts = append([]playfab.ClientOption{playfab.WithCredentials(playfab.NewCredentialHolder(nil))}, opts...)
	if cfg.Metrics != nil {
		observer, err := playfab.NewPrometheusObserver(cfg.Metrics)
		if err != nil {
			return nil, errors.WithMessage(err, "register playfab metrics")
		}
		opts = append(opts, playfab.WithObservers(observer))
	}
	client := playfab.NewClient(cfg.Settings(), opts...)

	refresherOpts := []playfab.RefresherOption{
		playfab.WithOnRefresh(func(ac playfab.AuthenticationContext) {
			logger.Debug("Refreshed PlayFab title entity token for %s", ac.Entity.Id)
		}),
	}
	if cfg.RefreshSchedule != "" {
		refresherOpts = append(refresherOpts, playfab.WithSchedule(cfg.RefreshSchedule))
	}
	refresher := playfab.NewTokenRefresher(client, refresherOpts...)
	if _, err := refresher.RefreshNow(ctx); err != nil {
		return nil, errors.WithMessage(err, "fetch title entity token")
	}
	if err := refresher.Start(); err != nil {
		return nil, err
	}

	b := &Bridge{
		Client:    client,
		Refresher: refresher,
		Forwarder: NewEventForwarder(client, cfg),
	}
	b.Publisher = NewPlayFabPublisher(b.Forwarder)

	if err := RegisterRpcs(initializer, client, cfg); err != nil {
		<-refresher.Stop().Done()
		return nil, err
	}
	if err := b.Forwarder.Register(initializer); err != nil {
		<-refresher.Stop().Done()
		return nil, errors.WithMessage(err, "register event forwarder")
	}
	if err := b.Publisher.RegisterAuthHooks(initializer); err != nil {
		<-refresher.Stop().Done()
		return nil, err
	}

	logger.Info("PlayFab bridge ready for title %s with %d endpoint rules", cfg.TitleID, len(cfg.AllowedEndpoints))
	return b, nil
}
