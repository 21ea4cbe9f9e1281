package playfab

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DispatchInfo describes one finished dispatch.
type DispatchInfo struct {
	Endpoint   Endpoint
	RequestID  string
	StatusCode int
	Duration   time.Duration
	Err        error
	CustomData any
}

// Observer is notified after every dispatch, including those that failed locally.
type Observer interface {
	ObserveDispatch(ctx context.Context, info DispatchInfo)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, info DispatchInfo)

func (f ObserverFunc) ObserveDispatch(ctx context.Context, info DispatchInfo) {
	f(ctx, info)
}

// Dispatcher serializes request records, attaches the credential header selected by the endpoint
// and posts them to the service. It makes exactly one attempt per call.
type Dispatcher struct {
	settings  Settings
	validate  *validator.Validate
	observers []Observer
	logger    *zap.Logger
}

func NewDispatcher(settings Settings, observers ...Observer) *Dispatcher {
	settings = settings.withDefaults()
	return &Dispatcher{
		settings:  settings,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		observers: observers,
		logger:    settings.Logger.With(zap.String("component", "playfab.dispatcher")),
	}
}

// Settings returns the effective settings, defaults applied.
func (d *Dispatcher) Settings() Settings {
	return d.settings
}

type responseEnvelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// rawBody is dispatched as-is, bypassing validation and serialization.
type rawBody []byte

// Call dispatches request to endpoint and decodes the response data into out.
// authCtx may be nil only when the endpoint requires no credential.
func (d *Dispatcher) Call(ctx context.Context, endpoint Endpoint, request any, authCtx *AuthenticationContext, opts callOptions, out any) (err error) {
	info := DispatchInfo{
		Endpoint:   endpoint,
		RequestID:  uuid.New().String(),
		CustomData: opts.customData,
	}
	started := time.Now()
	defer func() {
		info.Duration = time.Since(started)
		info.Err = err
		d.finish(ctx, info)
	}()

	url, err := d.settings.URL(endpoint.Path)
	if err != nil {
		return err
	}
	credHeader, credValue, err := d.credential(endpoint.Auth, authCtx)
	if err != nil {
		return err
	}
	body, err := d.encode(endpoint, request)
	if err != nil {
		return err
	}

	if d.settings.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.settings.RequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.WithMessagef(err, "build request for %s", endpoint.Path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(d.settings.Headers.SDK, d.settings.SDKVersion)
	for name, value := range opts.headers {
		req.Header.Set(name, value)
	}
	if credHeader != "" {
		req.Header.Set(credHeader, credValue)
	}

	resp, err := d.settings.HTTPClient.Do(req)
	if err != nil {
		return errors.WithMessagef(err, "post %s", endpoint.Path)
	}
	defer resp.Body.Close()
	info.StatusCode = resp.StatusCode

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithMessagef(err, "read response of %s", endpoint.Path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return d.decodeError(endpoint, resp, payload)
	}

	var envelope responseEnvelope
	if err := d.settings.Serializer.Unmarshal(payload, &envelope); err != nil {
		return errors.WithMessagef(err, "decode response envelope of %s", endpoint.Path)
	}
	if envelope.Error != "" || envelope.Code >= 300 {
		return d.decodeError(endpoint, resp, payload)
	}
	return d.decodeData(endpoint, envelope.Data, out)
}

func (d *Dispatcher) credential(authType AuthType, authCtx *AuthenticationContext) (string, string, error) {
	var value string
	switch authType {
	case AuthNone:
		return "", "", nil
	case AuthSessionTicket:
		if authCtx == nil || authCtx.SessionTicket == "" {
			return "", "", ErrSessionTicketNotSet
		}
		value = authCtx.SessionTicket
	case AuthEntityToken:
		if authCtx == nil || authCtx.EntityToken == "" {
			return "", "", ErrEntityTokenNotSet
		}
		value = authCtx.EntityToken
	case AuthDevSecretKey:
		if authCtx != nil && authCtx.DeveloperSecretKey != "" {
			value = authCtx.DeveloperSecretKey
		} else if d.settings.DeveloperSecretKey != "" {
			value = d.settings.DeveloperSecretKey
		} else {
			return "", "", ErrDeveloperSecretKeyNotSet
		}
	default:
		return "", "", &PreconditionError{Reason: "unknown auth type " + authType.String()}
	}
	return d.settings.Headers.ForAuth(authType), value, nil
}

func (d *Dispatcher) encode(endpoint Endpoint, request any) ([]byte, error) {
	if raw, ok := request.(rawBody); ok {
		if len(raw) == 0 {
			return []byte("{}"), nil
		}
		return raw, nil
	}
	if request == nil {
		return []byte("{}"), nil
	}
	if !d.settings.DisableValidation && isStruct(request) {
		if err := d.validate.Struct(request); err != nil {
			var fields validator.ValidationErrors
			if errors.As(err, &fields) {
				return nil, &ValidationError{Endpoint: endpoint.Name, Fields: fields}
			}
			return nil, errors.WithMessagef(err, "validate %s request", endpoint.Name)
		}
	}
	body, err := d.settings.Serializer.Marshal(request)
	if err != nil {
		return nil, errors.WithMessagef(err, "encode %s request", endpoint.Name)
	}
	return body, nil
}

func (d *Dispatcher) decodeData(endpoint Endpoint, data json.RawMessage, out any) error {
	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := d.settings.Serializer.Unmarshal(data, out); err != nil {
		return errors.WithMessagef(err, "decode %s response", endpoint.Name)
	}
	return nil
}

func (d *Dispatcher) decodeError(endpoint Endpoint, resp *http.Response, payload []byte) error {
	apiErr := &APIError{}
	if err := d.settings.Serializer.Unmarshal(payload, apiErr); err != nil || apiErr.ErrorName == "" {
		// Not an error envelope, usually a proxy or gateway page.
		apiErr = &APIError{
			ErrorName:    "ServiceUnavailable",
			ErrorMessage: string(bytes.TrimSpace(payload)),
		}
	}
	if apiErr.HTTPCode == 0 {
		apiErr.HTTPCode = resp.StatusCode
	}
	if apiErr.HTTPStatus == "" {
		apiErr.HTTPStatus = http.StatusText(resp.StatusCode)
	}
	apiErr.Path = endpoint.Path
	return apiErr
}

// reject reports a call that failed before it reached Call and returns err.
func (d *Dispatcher) reject(ctx context.Context, endpoint Endpoint, opts callOptions, err error) error {
	d.finish(ctx, DispatchInfo{
		Endpoint:   endpoint,
		RequestID:  uuid.New().String(),
		Err:        err,
		CustomData: opts.customData,
	})
	return err
}

func (d *Dispatcher) finish(ctx context.Context, info DispatchInfo) {
	fields := []zap.Field{
		zap.String("endpoint", info.Endpoint.FullName()),
		zap.Stringer("auth", info.Endpoint.Auth),
		zap.String("request_id", info.RequestID),
		zap.Int("status", info.StatusCode),
		zap.Duration("duration", info.Duration),
	}
	if info.Err != nil {
		d.logger.Debug("playfab call failed", append(fields, zap.Error(info.Err))...)
	} else {
		d.logger.Debug("playfab call", fields...)
	}
	for _, o := range d.observers {
		o.ObserveDispatch(ctx, info)
	}
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}
