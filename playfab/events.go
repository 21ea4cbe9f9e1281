package playfab

import "context"

var (
	eventsWriteEvents          = register("Events", "WriteEvents", "/Event/WriteEvents", AuthEntityToken)
	eventsWriteTelemetryEvents = register("Events", "WriteTelemetryEvents", "/Event/WriteTelemetryEvents", AuthEntityToken)
	eventsCreateTelemetryKey   = register("Events", "CreateTelemetryKey", "/Event/CreateTelemetryKey", AuthEntityToken)
	eventsDeleteTelemetryKey   = register("Events", "DeleteTelemetryKey", "/Event/DeleteTelemetryKey", AuthEntityToken)
	eventsListTelemetryKeys    = register("Events", "ListTelemetryKeys", "/Event/ListTelemetryKeys", AuthEntityToken)
)

// EventsAPI writes PlayStream and telemetry events.
type EventsAPI struct {
	client *Client
}

// WriteEvents writes a batch of PlayStream events.
func (a *EventsAPI) WriteEvents(ctx context.Context, req *WriteEventsRequest, opts ...CallOption) (*WriteEventsResponse, error) {
	return invoke[WriteEventsResponse](ctx, a.client, eventsWriteEvents, req, opts)
}

// WriteTelemetryEvents writes events to the telemetry pipeline only. They are not
// processed by PlayStream rules.
func (a *EventsAPI) WriteTelemetryEvents(ctx context.Context, req *WriteEventsRequest, opts ...CallOption) (*WriteEventsResponse, error) {
	return invoke[WriteEventsResponse](ctx, a.client, eventsWriteTelemetryEvents, req, opts)
}

// CreateTelemetryKey creates a key that lets clients write telemetry without an entity token.
func (a *EventsAPI) CreateTelemetryKey(ctx context.Context, req *CreateTelemetryKeyRequest, opts ...CallOption) (*CreateTelemetryKeyResponse, error) {
	return invoke[CreateTelemetryKeyResponse](ctx, a.client, eventsCreateTelemetryKey, req, opts)
}

func (a *EventsAPI) DeleteTelemetryKey(ctx context.Context, req *DeleteTelemetryKeyRequest, opts ...CallOption) (*DeleteTelemetryKeyResponse, error) {
	return invoke[DeleteTelemetryKeyResponse](ctx, a.client, eventsDeleteTelemetryKey, req, opts)
}

func (a *EventsAPI) ListTelemetryKeys(ctx context.Context, req *ListTelemetryKeysRequest, opts ...CallOption) (*ListTelemetryKeysResponse, error) {
	return invoke[ListTelemetryKeysResponse](ctx, a.client, eventsListTelemetryKeys, req, opts)
}
