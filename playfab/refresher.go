package playfab

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultRefreshSchedule renews entity tokens well inside their 24 hour lifetime.
const DefaultRefreshSchedule = "@every 12h"

// TokenRefresher renews the client's entity token on a cron schedule.
type TokenRefresher struct {
	client    *Client
	schedule  string
	request   *GetEntityTokenRequest
	onRefresh func(AuthenticationContext)
	logger    *zap.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
}

type RefresherOption func(*TokenRefresher)

// WithSchedule sets the cron spec, e.g. "0 */6 * * *" or "@every 1h".
func WithSchedule(spec string) RefresherOption {
	return func(r *TokenRefresher) {
		r.schedule = spec
	}
}

// WithRefreshRequest sets the request sent on every refresh, e.g. to refresh a specific entity.
func WithRefreshRequest(req *GetEntityTokenRequest) RefresherOption {
	return func(r *TokenRefresher) {
		r.request = req
	}
}

// WithOnRefresh registers a callback invoked with the credentials after each successful refresh.
func WithOnRefresh(fn func(AuthenticationContext)) RefresherOption {
	return func(r *TokenRefresher) {
		r.onRefresh = fn
	}
}

func NewTokenRefresher(client *Client, opts ...RefresherOption) *TokenRefresher {
	r := &TokenRefresher{
		client:   client,
		schedule: DefaultRefreshSchedule,
		logger:   client.Settings().Logger.With(zap.String("component", "playfab.refresher")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start schedules the refresh job. It returns an error for an invalid schedule or when already started.
func (r *TokenRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cron != nil {
		return errors.New("token refresher already started")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))
	id, err := c.AddFunc(r.schedule, r.tick)
	if err != nil {
		return errors.WithMessagef(err, "invalid refresh schedule %q", r.schedule)
	}
	r.cron = c
	r.entryID = id
	c.Start()
	r.logger.Info("token refresher started", zap.String("schedule", r.schedule))
	return nil
}

// Stop halts scheduling. The returned context is done once a running refresh has finished.
func (r *TokenRefresher) Stop() context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cron == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	ctx := r.cron.Stop()
	r.cron = nil
	return ctx
}

// Next returns the time of the next scheduled refresh, or the zero time when not started.
func (r *TokenRefresher) Next() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cron == nil {
		return time.Time{}
	}
	return r.cron.Entry(r.entryID).Next
}

// RefreshNow renews the token immediately and returns the updated credentials.
func (r *TokenRefresher) RefreshNow(ctx context.Context) (AuthenticationContext, error) {
	if _, err := r.client.Authentication.GetEntityToken(ctx, r.request); err != nil {
		return AuthenticationContext{}, err
	}
	ac := r.client.Credentials().Load()
	if r.onRefresh != nil {
		r.onRefresh(ac)
	}
	return ac, nil
}

func (r *TokenRefresher) tick() {
	ctx := context.Background()
	if timeout := r.client.Settings().RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ac, err := r.RefreshNow(ctx)
	if err != nil {
		r.logger.Warn("entity token refresh failed", zap.Error(err))
		return
	}
	fields := []zap.Field{zap.String("entity_id", ac.Entity.Id), zap.String("entity_type", ac.Entity.Type)}
	if ac.EntityTokenExpiration != nil {
		fields = append(fields, zap.Time("expires", *ac.EntityTokenExpiration))
	}
	r.logger.Debug("entity token refreshed", fields...)
}
