package bridge

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pkg/errors"

	"fabforge/playfab"
)

type PublisherEvent struct {
	Name      string            `json:"name,omitempty"`
	Id        string            `json:"id,omitempty"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Value     string            `json:"value,omitempty"`

	// Source ID identifies what produced the event, such as an achievement ID.
	SourceId string `json:"source_id,omitempty"`
}

// The Publisher describes a target that receives analytics-style events generated server-side.
//
// Implementations must safely handle concurrent calls and handle any errors or retries
// internally, callers will not repeat calls in case of errors.
type Publisher interface {
	// Authenticate is called every time a user authenticates. The 'created' flag is true if this
	// is a newly created user account.
	Authenticate(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, created bool)

	// Send is called when there are one or more events generated.
	Send(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, events []*PublisherEvent)
}

// PlayFabPublisher writes publisher events through an EventForwarder.
type PlayFabPublisher struct {
	forwarder *EventForwarder
}

var _ Publisher = (*PlayFabPublisher)(nil)

func NewPlayFabPublisher(forwarder *EventForwarder) *PlayFabPublisher {
	return &PlayFabPublisher{forwarder: forwarder}
}

func (p *PlayFabPublisher) Authenticate(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, created bool) {
	p.Send(ctx, logger, nk, userID, []*PublisherEvent{{
		Name:      "player_authenticated",
		Timestamp: time.Now().Unix(),
		Metadata:  map[string]string{"created": strconv.FormatBool(created)},
	}})
}

func (p *PlayFabPublisher) Send(ctx context.Context, logger runtime.Logger, _ runtime.NakamaModule, userID string, events []*PublisherEvent) {
	contents := make([]playfab.EventContents, 0, len(events))
	for _, e := range events {
		if e == nil || e.Name == "" {
			continue
		}
		c := playfab.NewEvent(p.forwarder.namespace, e.Name, publisherPayload(userID, e))
		if e.Id != "" {
			c.OriginalId = e.Id
		}
		if e.Timestamp > 0 {
			t := time.Unix(e.Timestamp, 0).UTC()
			c.OriginalTimestamp = &t
		}
		contents = append(contents, c)
	}
	if len(contents) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.forwarder.timeout)
	defer cancel()
	if err := p.forwarder.write(ctx, contents); err != nil {
		logger.WithField("user_id", userID).Error("Failed to publish %d events to PlayFab: %v", len(contents), err)
	}
}

// RegisterAuthHooks calls Authenticate after every custom, device and email authentication.
func (p *PlayFabPublisher) RegisterAuthHooks(initializer runtime.Initializer) error {
	if err := initializer.RegisterAfterAuthenticateCustom(afterAuthenticate[*api.AuthenticateCustomRequest](p)); err != nil {
		return errors.WithMessage(err, "register after authenticate custom")
	}
	if err := initializer.RegisterAfterAuthenticateDevice(afterAuthenticate[*api.AuthenticateDeviceRequest](p)); err != nil {
		return errors.WithMessage(err, "register after authenticate device")
	}
	if err := initializer.RegisterAfterAuthenticateEmail(afterAuthenticate[*api.AuthenticateEmailRequest](p)); err != nil {
		return errors.WithMessage(err, "register after authenticate email")
	}
	return nil
}

func afterAuthenticate[Req any](p Publisher) func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in Req) error {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in Req) error {
		userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if !ok || userID == "" {
			logger.Warn("Authenticated session has no user id, skipping PlayFab event")
			return nil
		}
		p.Authenticate(ctx, logger, nk, userID, out.GetCreated())
		return nil
	}
}

func publisherPayload(userID string, e *PublisherEvent) map[string]any {
	payload := map[string]any{"user_id": userID}
	if e.Value != "" {
		payload["value"] = e.Value
	}
	if e.SourceId != "" {
		payload["source_id"] = e.SourceId
	}
	if len(e.Metadata) > 0 {
		payload["metadata"] = e.Metadata
	}
	return payload
}
