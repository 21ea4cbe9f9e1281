package playfab

import (
	"context"
	"encoding/json"
)

// Client groups the typed API surfaces over one Dispatcher and one CredentialHolder.
type Client struct {
	dispatcher  *Dispatcher
	credentials *CredentialHolder

	Authentication *AuthenticationAPI
	Events         *EventsAPI
	Groups         *GroupsAPI
	Matchmaker     *MatchmakerAPI
	Multiplayer    *MultiplayerAPI
	Server         *ServerAPI
}

type clientConfig struct {
	credentials *CredentialHolder
	observers   []Observer
}

type ClientOption func(*clientConfig)

// WithCredentials makes the client read and update h instead of DefaultCredentials.
func WithCredentials(h *CredentialHolder) ClientOption {
	return func(c *clientConfig) {
		c.credentials = h
	}
}

// WithObservers registers dispatch observers.
func WithObservers(observers ...Observer) ClientOption {
	return func(c *clientConfig) {
		c.observers = append(c.observers, observers...)
	}
}

func NewClient(settings Settings, opts ...ClientOption) *Client {
	cfg := clientConfig{credentials: DefaultCredentials}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Client{
		dispatcher:  NewDispatcher(settings, cfg.observers...),
		credentials: cfg.credentials,
	}
	c.Authentication = &AuthenticationAPI{client: c}
	c.Events = &EventsAPI{client: c}
	c.Groups = &GroupsAPI{client: c}
	c.Matchmaker = &MatchmakerAPI{client: c}
	c.Multiplayer = &MultiplayerAPI{client: c}
	c.Server = &ServerAPI{client: c}
	return c
}

// Credentials returns the holder this client resolves default credentials from.
func (c *Client) Credentials() *CredentialHolder {
	return c.credentials
}

// ForgetAllCredentials clears the client's credential holder.
func (c *Client) ForgetAllCredentials() {
	c.credentials.Forget()
}

// Settings returns the effective settings.
func (c *Client) Settings() Settings {
	return c.dispatcher.Settings()
}

// CallRaw posts an already encoded JSON body to endpoint and returns the raw response data.
// Credentials resolve from WithAuthenticationContext or the client holder.
func (c *Client) CallRaw(ctx context.Context, endpoint Endpoint, body []byte, opts ...CallOption) (json.RawMessage, error) {
	o := newCallOptions(opts)
	ac := c.credentials.Load()
	if o.authCtx != nil {
		ac = *o.authCtx
	}
	var out json.RawMessage
	if err := c.dispatcher.Call(ctx, endpoint, rawBody(body), &ac, o, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// authCarrier is implemented by request records through RequestBase.
type authCarrier interface {
	attachedContext() *AuthenticationContext
}

// preparedCall is a request record with its resolved credentials.
type preparedCall[Req any] struct {
	record     *Req
	auth       AuthenticationContext
	fromHolder bool
	options    callOptions
}

// prepare builds the request record and resolves its credentials. A failure is reported to the
// observers as a dispatch of endpoint.
func prepare[Req any](ctx context.Context, c *Client, endpoint Endpoint, req *Req, opts []CallOption) (*preparedCall[Req], error) {
	o := newCallOptions(opts)
	record, err := buildRecord(req, o.overrides)
	if err != nil {
		return nil, c.dispatcher.reject(ctx, endpoint, o, err)
	}
	call := &preparedCall[Req]{record: record, options: o}
	switch {
	case o.authCtx != nil:
		call.auth = *o.authCtx
	default:
		if carrier, ok := any(record).(authCarrier); ok && carrier.attachedContext() != nil {
			call.auth = *carrier.attachedContext()
		} else {
			call.auth = c.credentials.Load()
			call.fromHolder = true
		}
	}
	return call, nil
}

func dispatch[Resp, Req any](ctx context.Context, c *Client, endpoint Endpoint, call *preparedCall[Req]) (*Resp, error) {
	var resp Resp
	if err := c.dispatcher.Call(ctx, endpoint, call.record, &call.auth, call.options, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// invoke is the body of every plain wrapper method.
func invoke[Resp, Req any](ctx context.Context, c *Client, endpoint Endpoint, req *Req, opts []CallOption) (*Resp, error) {
	call, err := prepare(ctx, c, endpoint, req, opts)
	if err != nil {
		return nil, err
	}
	return dispatch[Resp](ctx, c, endpoint, call)
}
