package bridge

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"fabforge/playfab"
)

const (
	RpcIdCall      = "playfab_call"
	RpcIdEndpoints = "playfab_endpoints"
)

type CallRequest struct {
	Endpoint string          `json:"endpoint"`
	Request  json.RawMessage `json:"request,omitempty"`
}

type EndpointInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Auth string `json:"auth"`
}

type EndpointList struct {
	Endpoints []EndpointInfo `json:"endpoints"`
}

// RegisterRpcs registers playfab_call and playfab_endpoints.
func RegisterRpcs(initializer runtime.Initializer, client *playfab.Client, cfg Config) error {
	if err := initializer.RegisterRpc(RpcIdCall, rpcCall(client, cfg)); err != nil {
		return errors.WithMessagef(err, "register %s", RpcIdCall)
	}
	if err := initializer.RegisterRpc(RpcIdEndpoints, rpcEndpoints(cfg)); err != nil {
		return errors.WithMessagef(err, "register %s", RpcIdEndpoints)
	}
	return nil
}

// rpcCall forwards a raw JSON request to an allowlisted endpoint and returns the response data.
func rpcCall(client *playfab.Client, cfg Config) func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		var req CallRequest
		if err := sonic.ConfigStd.UnmarshalFromString(payload, &req); err != nil {
			logger.Error("Failed to unmarshal CallRequest: %v", err)
			return "", ErrPayloadDecode
		}
		if req.Endpoint == "" {
			return "", ErrEndpointMissing
		}
		ep, ok := playfab.LookupEndpoint(req.Endpoint)
		if !ok {
			return "", ErrEndpointNotFound
		}
		if !cfg.Allows(ep) {
			logger.Warn("Rejected call to %s: not in allowed endpoints", ep.FullName())
			return "", ErrEndpointForbidden
		}

		body := []byte(req.Request)
		if len(body) == 0 || string(body) == "null" {
			body = []byte("{}")
		}
		data, err := client.CallRaw(ctx, ep, body)
		if err != nil {
			logger.WithField("endpoint", ep.FullName()).Error("PlayFab call failed: %v", err)
			return "", toRuntimeError(err)
		}
		if len(data) == 0 {
			return "{}", nil
		}
		return string(data), nil
	}
}

func rpcEndpoints(cfg Config) func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		allowed := lo.Filter(playfab.Endpoints(), func(ep playfab.Endpoint, _ int) bool {
			return cfg.Allows(ep)
		})
		list := EndpointList{Endpoints: lo.Map(allowed, func(ep playfab.Endpoint, _ int) EndpointInfo {
			return EndpointInfo{Name: ep.FullName(), Path: ep.Path, Auth: ep.Auth.String()}
		})}

		data, err := sonic.ConfigStd.MarshalToString(list)
		if err != nil {
			logger.Error("Failed to marshal endpoint list: %v", err)
			return "", ErrPayloadEncode
		}
		return data, nil
	}
}

// toRuntimeError maps client errors onto runtime error codes.
func toRuntimeError(err error) error {
	if apiErr, ok := playfab.AsAPIError(err); ok {
		msg := fmt.Sprintf("%s: %s", apiErr.ErrorName, apiErr.ErrorMessage)
		switch apiErr.HTTPCode {
		case http.StatusBadRequest:
			return runtime.NewError(msg, INVALID_ARGUMENT_ERROR_CODE)
		case http.StatusUnauthorized, http.StatusForbidden:
			return runtime.NewError(msg, PERMISSION_DENIED_ERROR_CODE)
		case http.StatusNotFound:
			return runtime.NewError(msg, NOT_FOUND_ERROR_CODE)
		case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
			return runtime.NewError(msg, UNAVAILABLE_ERROR_CODE)
		default:
			return runtime.NewError(msg, INTERNAL_ERROR_CODE)
		}
	}
	var validationErr *playfab.ValidationError
	if errors.As(err, &validationErr) {
		return runtime.NewError(validationErr.Error(), INVALID_ARGUMENT_ERROR_CODE)
	}
	if playfab.IsLocal(err) {
		return runtime.NewError(err.Error(), FAILED_PRECONDITION_ERROR_CODE)
	}
	return runtime.NewError("playfab unavailable", UNAVAILABLE_ERROR_CODE)
}
