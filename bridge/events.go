package bridge

import (
	"context"
	"time"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"google.golang.org/protobuf/encoding/protojson"

	"fabforge/playfab"
)

// maxEventsPerWrite is the WriteEvents batch limit.
const maxEventsPerWrite = 200

var eventMarshaler = protojson.MarshalOptions{UseProtoNames: true}

// EventForwarder writes Nakama runtime events to PlayFab as custom title events.
type EventForwarder struct {
	client    *playfab.Client
	namespace string
	entity    *playfab.EntityKey
	timeout   time.Duration
}

func NewEventForwarder(client *playfab.Client, cfg Config) *EventForwarder {
	namespace := cfg.EventNamespace
	if namespace == "" {
		namespace = DefaultEventNamespace
	}
	return &EventForwarder{
		client:    client,
		namespace: namespace,
		entity:    cfg.EventEntity,
		timeout:   10 * time.Second,
	}
}

// Register hooks the forwarder into the runtime event stream.
func (f *EventForwarder) Register(initializer runtime.Initializer) error {
	return initializer.RegisterEvent(f.Handle)
}

// Handle is the runtime event callback. Failures are logged, never returned.
func (f *EventForwarder) Handle(ctx context.Context, logger runtime.Logger, evt *api.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
	defer cancel()

	if err := f.Forward(ctx, evt); err != nil {
		logger.WithField("event", evt.GetName()).Error("Failed to forward event to PlayFab: %v", err)
	}
}

// Forward converts events and writes them in batches.
func (f *EventForwarder) Forward(ctx context.Context, events ...*api.Event) error {
	contents := make([]playfab.EventContents, 0, len(events))
	for _, evt := range events {
		if evt == nil || evt.GetName() == "" {
			continue
		}
		c, err := f.convert(evt)
		if err != nil {
			return err
		}
		contents = append(contents, c)
	}
	return f.write(ctx, contents)
}

func (f *EventForwarder) convert(evt *api.Event) (playfab.EventContents, error) {
	payload, err := eventMarshaler.Marshal(evt)
	if err != nil {
		return playfab.EventContents{}, errors.WithMessagef(err, "encode event %q", evt.GetName())
	}
	c := playfab.NewEvent(f.namespace, evt.GetName(), nil)
	c.PayloadJSON = string(payload)
	if ts := evt.GetTimestamp(); ts != nil && ts.IsValid() {
		t := ts.AsTime().UTC()
		c.OriginalTimestamp = &t
	}
	return c, nil
}

func (f *EventForwarder) write(ctx context.Context, contents []playfab.EventContents) error {
	entity := f.targetEntity()
	for _, batch := range lo.Chunk(contents, maxEventsPerWrite) {
		for i := range batch {
			if batch[i].Entity == nil {
				batch[i].Entity = entity
			}
		}
		if _, err := f.client.Events.WriteEvents(ctx, &playfab.WriteEventsRequest{Events: batch}); err != nil {
			return errors.WithMessagef(err, "write %d events", len(batch))
		}
	}
	return nil
}

func (f *EventForwarder) targetEntity() *playfab.EntityKey {
	if f.entity != nil {
		return f.entity
	}
	if e := f.client.Credentials().Load().Entity; e.Id != "" {
		return &e
	}
	return nil
}
