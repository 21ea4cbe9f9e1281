package playfab

import (
	"context"
	"time"
)

var (
	authenticationGetEntityToken      = register("Authentication", "GetEntityToken", "/Authentication/GetEntityToken", AuthEntityToken)
	authenticationValidateEntityToken = register("Authentication", "ValidateEntityToken", "/Authentication/ValidateEntityToken", AuthEntityToken)
)

type GetEntityTokenRequest struct {
	RequestBase
	// Entity defaults to the caller: the title when using the secret key, the player otherwise.
	Entity *EntityKey `json:"Entity,omitempty"`
}

type GetEntityTokenResponse struct {
	Entity          *EntityKey `json:"Entity,omitempty"`
	EntityToken     string     `json:"EntityToken,omitempty"`
	TokenExpiration *time.Time `json:"TokenExpiration,omitempty"`
}

type ValidateEntityTokenRequest struct {
	RequestBase
	EntityToken string `json:"EntityToken" validate:"required"`
}

type ValidateEntityTokenResponse struct {
	Entity                   *EntityKey     `json:"Entity,omitempty"`
	IdentifiedDeviceType     string         `json:"IdentifiedDeviceType,omitempty"`
	IdentityProvider         string         `json:"IdentityProvider,omitempty"`
	IdentityProviderIssuedId string         `json:"IdentityProviderIssuedId,omitempty"`
	Lineage                  *EntityLineage `json:"Lineage,omitempty"`
}

// AuthenticationAPI issues and validates entity tokens.
type AuthenticationAPI struct {
	client *Client
}

// GetEntityToken exchanges the best credential available for an entity token: the developer
// secret key first, then a session ticket, then an existing entity token.
// When the call used the client's own credentials the new token is stored in them.
func (a *AuthenticationAPI) GetEntityToken(ctx context.Context, req *GetEntityTokenRequest, opts ...CallOption) (*GetEntityTokenResponse, error) {
	endpoint := authenticationGetEntityToken
	call, err := prepare(ctx, a.client, endpoint, req, opts)
	if err != nil {
		return nil, err
	}

	switch {
	case call.auth.DeveloperSecretKey != "" || a.client.Settings().DeveloperSecretKey != "":
		endpoint.Auth = AuthDevSecretKey
	case call.auth.SessionTicket != "":
		endpoint.Auth = AuthSessionTicket
	default:
		endpoint.Auth = AuthEntityToken
	}

	resp, err := dispatch[GetEntityTokenResponse](ctx, a.client, endpoint, call)
	if err != nil {
		return nil, err
	}
	if call.fromHolder {
		a.client.credentials.Update(func(ac AuthenticationContext) AuthenticationContext {
			return ac.WithEntityToken(resp.EntityToken, resp.TokenExpiration, resp.Entity)
		})
	}
	return resp, nil
}

// ValidateEntityToken checks a token issued to another entity, typically a player connecting to
// a game server. The caller needs a title entity token.
func (a *AuthenticationAPI) ValidateEntityToken(ctx context.Context, req *ValidateEntityTokenRequest, opts ...CallOption) (*ValidateEntityTokenResponse, error) {
	return invoke[ValidateEntityTokenResponse](ctx, a.client, authenticationValidateEntityToken, req, opts)
}
