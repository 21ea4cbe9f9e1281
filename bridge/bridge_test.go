package bridge

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"fabforge/playfab"
	"fabforge/playfabtest"
)

type rpcFunc = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

type afterAuthFunc = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session) error

type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, v ...interface{}) {
	m.Called(format, v)
}

func (m *MockLogger) Info(format string, v ...interface{}) {
	m.Called(format, v)
}

func (m *MockLogger) Warn(format string, v ...interface{}) {
	m.Called(format, v)
}

func (m *MockLogger) Error(format string, v ...interface{}) {
	m.Called(format, v)
}

func (m *MockLogger) Fatal(format string, v ...interface{}) {
	m.Called(format, v)
}

func (m *MockLogger) WithField(key string, v interface{}) runtime.Logger {
	return m
}

func (m *MockLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	return m
}

func (m *MockLogger) Fields() map[string]interface{} {
	return make(map[string]interface{})
}

func newMockLogger() *MockLogger {
	l := &MockLogger{}
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		l.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return l
}

// fakeInitializer records registrations. Unused Initializer methods panic.
type fakeInitializer struct {
	runtime.Initializer

	rpcs      map[string]rpcFunc
	events    []func(ctx context.Context, logger runtime.Logger, evt *api.Event)
	afterAuth map[string]afterAuthFunc
	failOn    string
}

func newFakeInitializer() *fakeInitializer {
	return &fakeInitializer{rpcs: make(map[string]rpcFunc), afterAuth: make(map[string]afterAuthFunc)}
}

func (f *fakeInitializer) RegisterAfterAuthenticateCustom(fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateCustomRequest) error) error {
	return f.recordAfterAuth("custom", func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session) error {
		return fn(ctx, logger, db, nk, out, &api.AuthenticateCustomRequest{})
	})
}

func (f *fakeInitializer) RegisterAfterAuthenticateDevice(fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error) error {
	return f.recordAfterAuth("device", func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session) error {
		return fn(ctx, logger, db, nk, out, &api.AuthenticateDeviceRequest{})
	})
}

func (f *fakeInitializer) RegisterAfterAuthenticateEmail(fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateEmailRequest) error) error {
	return f.recordAfterAuth("email", func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session) error {
		return fn(ctx, logger, db, nk, out, &api.AuthenticateEmailRequest{})
	})
}

func (f *fakeInitializer) recordAfterAuth(kind string, fn afterAuthFunc) error {
	if kind == f.failOn {
		return errors.New("duplicate hook")
	}
	f.afterAuth[kind] = fn
	return nil
}

func (f *fakeInitializer) RegisterRpc(id string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)) error {
	if id == f.failOn {
		return errors.New("duplicate rpc")
	}
	f.rpcs[id] = fn
	return nil
}

func (f *fakeInitializer) RegisterEvent(fn func(ctx context.Context, logger runtime.Logger, evt *api.Event)) error {
	f.events = append(f.events, fn)
	return nil
}

var titleEntity = playfab.EntityKey{Id: "TITLE", Type: playfab.EntityTypeTitle}

func newBridgeClient(t *testing.T) (*playfab.Client, *playfabtest.Server) {
	t.Helper()
	srv := playfabtest.NewServer()
	t.Cleanup(srv.Close)
	holder := playfab.NewCredentialHolder(&playfab.AuthenticationContext{EntityToken: "title-token", Entity: titleEntity})
	return playfab.NewClient(srv.Settings(), playfab.WithCredentials(holder)), srv
}

func TestConfigFromEnv(t *testing.T) {
	cfg := ConfigFromEnv(map[string]string{
		EnvTitleID:          " ABCD ",
		EnvSecretKey:        "secret",
		EnvAllowedEndpoints: "Groups.*, Events.WriteEvents,,",
		EnvRequestTimeout:   "5s",
		EnvMetrics:          "true",
	})

	assert.Equal(t, "ABCD", cfg.TitleID)
	assert.Equal(t, "secret", cfg.SecretKey)
	assert.Equal(t, []string{"Groups.*", "Events.WriteEvents"}, cfg.AllowedEndpoints)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, DefaultEventNamespace, cfg.EventNamespace)
	assert.Equal(t, prometheus.DefaultRegisterer, cfg.Metrics)

	settings := cfg.Settings()
	assert.Equal(t, "ABCD", settings.TitleID)
	assert.Equal(t, "secret", settings.DeveloperSecretKey)
}

func TestConfigAllows(t *testing.T) {
	createGroup, ok := playfab.LookupEndpoint("Groups.CreateGroup")
	require.True(t, ok)

	tests := []struct {
		name  string
		rules []string
		want  bool
	}{
		{"empty denies", nil, false},
		{"wildcard", []string{"*"}, true},
		{"api wildcard", []string{"groups.*"}, true},
		{"other api", []string{"Events.*"}, false},
		{"exact name", []string{"Groups.CreateGroup"}, true},
		{"other name", []string{"Groups.DeleteGroup"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{AllowedEndpoints: tt.rules}.Allows(createGroup))
		})
	}
}

func TestRpcCallForwardsRawRequest(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Respond("/Group/CreateGroup", map[string]any{"GroupName": "Clan", "ProfileVersion": 1})

	initializer := newFakeInitializer()
	require.NoError(t, RegisterRpcs(initializer, client, Config{AllowedEndpoints: []string{"Groups.*"}}))
	require.Contains(t, initializer.rpcs, RpcIdCall)

	out, err := initializer.rpcs[RpcIdCall](context.Background(), newMockLogger(), nil, nil,
		`{"endpoint":"Groups.CreateGroup","request":{"GroupName":"Clan"}}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"GroupName":"Clan","ProfileVersion":1}`, out)

	req, ok := srv.LastRequest("/Group/CreateGroup")
	require.True(t, ok)
	assert.JSONEq(t, `{"GroupName":"Clan"}`, string(req.Body))
	assert.Equal(t, "title-token", req.Header.Get("X-EntityToken"))
}

func TestRpcCallDefaultsEmptyRequest(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Respond("/Event/ListTelemetryKeys", map[string]any{})

	out, err := rpcCall(client, Config{AllowedEndpoints: []string{"*"}})(context.Background(), newMockLogger(), nil, nil,
		`{"endpoint":"Events.ListTelemetryKeys"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, out)

	req, _ := srv.LastRequest("/Event/ListTelemetryKeys")
	assert.JSONEq(t, `{}`, string(req.Body))
}

func TestRpcCallRejections(t *testing.T) {
	client, srv := newBridgeClient(t)
	call := rpcCall(client, Config{AllowedEndpoints: []string{"Events.*"}})

	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"bad json", `{"endpoint":`, ErrPayloadDecode},
		{"missing endpoint", `{"request":{}}`, ErrEndpointMissing},
		{"unknown endpoint", `{"endpoint":"Groups.Nope"}`, ErrEndpointNotFound},
		{"not allowed", `{"endpoint":"Groups.CreateGroup","request":{"GroupName":"x"}}`, ErrEndpointForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(context.Background(), newMockLogger(), nil, nil, tt.payload)
			assert.Equal(t, tt.want, err)
		})
	}
	assert.Empty(t, srv.Requests())
}

func TestRpcCallMapsErrors(t *testing.T) {
	tests := []struct {
		name     string
		apiErr   playfab.APIError
		wantCode int
	}{
		{"bad request", playfab.APIError{HTTPCode: 400, ErrorName: "InvalidParams", ErrorMessage: "bad"}, INVALID_ARGUMENT_ERROR_CODE},
		{"unauthorized", playfab.APIError{HTTPCode: 401, ErrorName: "NotAuthenticated", ErrorMessage: "nope"}, PERMISSION_DENIED_ERROR_CODE},
		{"not found", playfab.APIError{HTTPCode: 404, ErrorName: "GroupNotFound", ErrorMessage: "gone"}, NOT_FOUND_ERROR_CODE},
		{"unavailable", playfab.APIError{HTTPCode: 503, ErrorName: "ServiceUnavailable", ErrorMessage: "later"}, UNAVAILABLE_ERROR_CODE},
		{"other", playfab.APIError{HTTPCode: 500, ErrorName: "InternalServerError", ErrorMessage: "boom"}, INTERNAL_ERROR_CODE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newBridgeClient(t)
			srv.Fail("/Group/GetGroup", tt.apiErr)

			_, err := rpcCall(client, Config{AllowedEndpoints: []string{"*"}})(context.Background(), newMockLogger(), nil, nil,
				`{"endpoint":"Groups.GetGroup","request":{"GroupName":"Clan"}}`)

			var rtErr *runtime.Error
			require.ErrorAs(t, err, &rtErr)
			assert.Equal(t, tt.wantCode, rtErr.Code)
			assert.Equal(t, fmt.Sprintf("%s: %s", tt.apiErr.ErrorName, tt.apiErr.ErrorMessage), rtErr.Message)
		})
	}
}

func TestRpcCallWithoutCredentials(t *testing.T) {
	srv := playfabtest.NewServer()
	t.Cleanup(srv.Close)
	client := playfab.NewClient(srv.Settings(), playfab.WithCredentials(playfab.NewCredentialHolder(nil)))

	_, err := rpcCall(client, Config{AllowedEndpoints: []string{"*"}})(context.Background(), newMockLogger(), nil, nil,
		`{"endpoint":"Groups.GetGroup","request":{"GroupName":"Clan"}}`)

	var rtErr *runtime.Error
	require.ErrorAs(t, err, &rtErr)
	assert.Equal(t, FAILED_PRECONDITION_ERROR_CODE, rtErr.Code)
	assert.Empty(t, srv.Requests())
}

func TestRpcEndpointsListsAllowed(t *testing.T) {
	initializer := newFakeInitializer()
	client, _ := newBridgeClient(t)
	require.NoError(t, RegisterRpcs(initializer, client, Config{AllowedEndpoints: []string{"Events.*", "Groups.CreateGroup"}}))

	out, err := initializer.rpcs[RpcIdEndpoints](context.Background(), newMockLogger(), nil, nil, "")
	require.NoError(t, err)

	var list EndpointList
	require.NoError(t, playfab.SonicSerializer().Unmarshal([]byte(out), &list))
	assert.Len(t, list.Endpoints, len(playfab.EndpointsByAPI("Events"))+1)
	for _, ep := range list.Endpoints {
		assert.True(t, strings.HasPrefix(ep.Name, "Events.") || ep.Name == "Groups.CreateGroup", ep.Name)
		assert.Equal(t, "EntityToken", ep.Auth)
	}
}

func TestRegisterRpcsFailure(t *testing.T) {
	initializer := newFakeInitializer()
	initializer.failOn = RpcIdEndpoints
	client, _ := newBridgeClient(t)

	err := RegisterRpcs(initializer, client, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), RpcIdEndpoints)
}

type writtenEvents struct {
	Events []struct {
		Entity            *playfab.EntityKey `json:"Entity"`
		EventNamespace    string             `json:"EventNamespace"`
		Name              string             `json:"Name"`
		OriginalId        string             `json:"OriginalId"`
		OriginalTimestamp *time.Time         `json:"OriginalTimestamp"`
		Payload           map[string]any     `json:"Payload"`
		PayloadJSON       string             `json:"PayloadJSON"`
	} `json:"Events"`
}

func lastWrite(t *testing.T, srv *playfabtest.Server) writtenEvents {
	t.Helper()
	req, ok := srv.LastRequest("/Event/WriteEvents")
	require.True(t, ok, "no WriteEvents request")
	var body writtenEvents
	require.NoError(t, req.Decode(&body))
	return body
}

func TestEventForwarderHandle(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Respond("/Event/WriteEvents", map[string]any{"AssignedEventIds": []string{"a"}})

	initializer := newFakeInitializer()
	require.NoError(t, NewEventForwarder(client, Config{}).Register(initializer))
	require.Len(t, initializer.events, 1)

	ts := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	initializer.events[0](context.Background(), newMockLogger(), &api.Event{
		Name:       "match_end",
		Properties: map[string]string{"winner": "u1"},
		Timestamp:  timestamppb.New(ts),
	})

	body := lastWrite(t, srv)
	require.Len(t, body.Events, 1)
	e := body.Events[0]
	assert.Equal(t, DefaultEventNamespace, e.EventNamespace)
	assert.Equal(t, "match_end", e.Name)
	assert.Equal(t, &titleEntity, e.Entity)
	assert.NotEmpty(t, e.OriginalId)
	require.NotNil(t, e.OriginalTimestamp)
	assert.True(t, ts.Equal(*e.OriginalTimestamp))
	assert.JSONEq(t, `{"name":"match_end","properties":{"winner":"u1"},"timestamp":"2030-01-02T03:04:05Z"}`, e.PayloadJSON)
}

func TestEventForwarderBatches(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Respond("/Event/WriteEvents", map[string]any{})

	events := make([]*api.Event, 450)
	for i := range events {
		events[i] = &api.Event{Name: fmt.Sprintf("e%d", i)}
	}
	events = append(events, nil, &api.Event{})

	f := NewEventForwarder(client, Config{EventNamespace: "custom.test", EventEntity: &playfab.EntityKey{Id: "NS", Type: playfab.EntityTypeNamespace}})
	require.NoError(t, f.Forward(context.Background(), events...))

	reqs := srv.Requests()
	require.Len(t, reqs, 3)
	var sizes []int
	for _, r := range reqs {
		var body writtenEvents
		require.NoError(t, r.Decode(&body))
		sizes = append(sizes, len(body.Events))
		assert.Equal(t, "custom.test", body.Events[0].EventNamespace)
		assert.Equal(t, "NS", body.Events[0].Entity.Id)
	}
	assert.Equal(t, []int{200, 200, 50}, sizes)
}

func TestEventForwarderLogsFailure(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Fail("/Event/WriteEvents", playfab.APIError{HTTPCode: 400, ErrorName: "InvalidParams"})

	logger := newMockLogger()
	NewEventForwarder(client, Config{}).Handle(context.Background(), logger, &api.Event{Name: "boom"})

	logger.AssertCalled(t, "Error", "Failed to forward event to PlayFab: %v", mock.Anything)
}

func TestPlayFabPublisherSend(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Respond("/Event/WriteEvents", map[string]any{})
	p := NewPlayFabPublisher(NewEventForwarder(client, Config{}))

	p.Send(context.Background(), newMockLogger(), nil, "user-1", []*PublisherEvent{
		{Name: "achievement_claimed", Id: "evt-1", Timestamp: 1900000000, Value: "10", SourceId: "ach-1", Metadata: map[string]string{"tier": "gold"}},
		{Name: ""},
	})

	body := lastWrite(t, srv)
	require.Len(t, body.Events, 1)
	e := body.Events[0]
	assert.Equal(t, "achievement_claimed", e.Name)
	assert.Equal(t, "evt-1", e.OriginalId)
	assert.Equal(t, int64(1900000000), e.OriginalTimestamp.Unix())
	assert.Equal(t, map[string]any{
		"user_id":   "user-1",
		"value":     "10",
		"source_id": "ach-1",
		"metadata":  map[string]any{"tier": "gold"},
	}, e.Payload)
}

func TestPlayFabPublisherAuthenticate(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Respond("/Event/WriteEvents", map[string]any{})
	p := NewPlayFabPublisher(NewEventForwarder(client, Config{}))

	p.Authenticate(context.Background(), newMockLogger(), nil, "user-2", true)

	body := lastWrite(t, srv)
	require.Len(t, body.Events, 1)
	assert.Equal(t, "player_authenticated", body.Events[0].Name)
	assert.Equal(t, map[string]any{"created": "true"}, body.Events[0].Payload["metadata"])
}

func TestPlayFabPublisherAuthHooks(t *testing.T) {
	client, srv := newBridgeClient(t)
	srv.Respond("/Event/WriteEvents", map[string]any{})
	p := NewPlayFabPublisher(NewEventForwarder(client, Config{}))

	initializer := newFakeInitializer()
	require.NoError(t, p.RegisterAuthHooks(initializer))
	require.Len(t, initializer.afterAuth, 3)

	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, "user-3")
	for _, kind := range []string{"custom", "device", "email"} {
		t.Run(kind, func(t *testing.T) {
			before := len(srv.Requests())
			require.NoError(t, initializer.afterAuth[kind](ctx, newMockLogger(), nil, nil, &api.Session{Created: true}))

			require.Len(t, srv.Requests(), before+1)
			body := lastWrite(t, srv)
			require.Len(t, body.Events, 1)
			assert.Equal(t, "player_authenticated", body.Events[0].Name)
			assert.Equal(t, "user-3", body.Events[0].Payload["user_id"])
			assert.Equal(t, map[string]any{"created": "true"}, body.Events[0].Payload["metadata"])
		})
	}
}

func TestPlayFabPublisherAuthHookWithoutUser(t *testing.T) {
	client, srv := newBridgeClient(t)
	p := NewPlayFabPublisher(NewEventForwarder(client, Config{}))
	initializer := newFakeInitializer()
	require.NoError(t, p.RegisterAuthHooks(initializer))

	logger := newMockLogger()
	require.NoError(t, initializer.afterAuth["device"](context.Background(), logger, nil, nil, &api.Session{}))

	assert.Empty(t, srv.Requests())
	logger.AssertCalled(t, "Warn", "Authenticated session has no user id, skipping PlayFab event", mock.Anything)
}

func TestPlayFabPublisherAuthHooksFailure(t *testing.T) {
	client, _ := newBridgeClient(t)
	initializer := newFakeInitializer()
	initializer.failOn = "device"

	err := NewPlayFabPublisher(NewEventForwarder(client, Config{})).RegisterAuthHooks(initializer)
	assert.ErrorContains(t, err, "after authenticate device")
	assert.Contains(t, initializer.afterAuth, "custom")
	assert.NotContains(t, initializer.afterAuth, "email")
}

func TestInit(t *testing.T) {
	srv := playfabtest.NewServer()
	t.Cleanup(srv.Close)
	srv.Respond("/Authentication/GetEntityToken", map[string]any{
		"EntityToken":     "fresh",
		"TokenExpiration": "2030-01-01T00:00:00Z",
		"Entity":          map[string]any{"Id": "TITLE", "Type": "title"},
	})

	initializer := newFakeInitializer()
	reg := prometheus.NewRegistry()
	b, err := Init(context.Background(), newMockLogger(), initializer, Config{
		TitleID:          "TEST",
		SecretKey:        "secret",
		EndpointURL:      srv.URL,
		AllowedEndpoints: []string{"*"},
		Metrics:          reg,
	})
	require.NoError(t, err)
	t.Cleanup(func() { <-b.Refresher.Stop().Done() })

	assert.Equal(t, "fresh", b.Client.Credentials().Load().EntityToken)
	assert.Contains(t, initializer.rpcs, RpcIdCall)
	assert.Contains(t, initializer.rpcs, RpcIdEndpoints)
	assert.Len(t, initializer.events, 1)
	assert.Len(t, initializer.afterAuth, 3)
	assert.False(t, b.Refresher.Next().IsZero())

	req, _ := srv.LastRequest("/Authentication/GetEntityToken")
	assert.Equal(t, "secret", req.Header.Get("X-SecretKey"))

	n, err := testutil.GatherAndCount(reg, "fabforge_playfab_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestInitRequiresTitleAndKey(t *testing.T) {
	_, err := Init(context.Background(), newMockLogger(), newFakeInitializer(), Config{SecretKey: "s"})
	assert.ErrorContains(t, err, EnvTitleID)

	_, err = Init(context.Background(), newMockLogger(), newFakeInitializer(), Config{TitleID: "T"})
	assert.ErrorContains(t, err, EnvSecretKey)
}

func TestInitFailsWhenTokenUnavailable(t *testing.T) {
	srv := playfabtest.NewServer()
	t.Cleanup(srv.Close)
	srv.Fail("/Authentication/GetEntityToken", playfab.APIError{HTTPCode: 401, ErrorName: "InvalidSecretKey"})

	initializer := newFakeInitializer()
	_, err := Init(context.Background(), newMockLogger(), initializer, Config{TitleID: "TEST", SecretKey: "bad", EndpointURL: srv.URL})
	require.Error(t, err)
	assert.Empty(t, initializer.rpcs)
}
