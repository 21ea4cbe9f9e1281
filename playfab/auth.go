package playfab

import (
	"time"

	"go.uber.org/atomic"
)

// AuthType selects which credential of an AuthenticationContext an endpoint requires.
type AuthType uint8

const (
	AuthNone AuthType = iota
	AuthSessionTicket
	AuthEntityToken
	AuthDevSecretKey
)

func (a AuthType) String() string {
	switch a {
	case AuthNone:
		return "None"
	case AuthSessionTicket:
		return "SessionTicket"
	case AuthEntityToken:
		return "EntityToken"
	case AuthDevSecretKey:
		return "DevSecretKey"
	default:
		return "Unknown"
	}
}

// AuthenticationContext is an immutable snapshot of the credential material available to a caller.
// Use the With* methods to derive updated snapshots.
type AuthenticationContext struct {
	PlayFabID             string     `json:"playFabId,omitempty"`
	SessionTicket         string     `json:"sessionTicket,omitempty"`
	EntityToken           string     `json:"entityToken,omitempty"`
	EntityTokenExpiration *time.Time `json:"entityTokenExpiration,omitempty"`
	Entity                EntityKey  `json:"entity"`
	DeveloperSecretKey    string     `json:"developerSecretKey,omitempty"`
}

// IsClientLoggedIn reports whether a session ticket is present.
func (c AuthenticationContext) IsClientLoggedIn() bool {
	return c.SessionTicket != ""
}

// IsEntityLoggedIn reports whether an entity token is present.
func (c AuthenticationContext) IsEntityLoggedIn() bool {
	return c.EntityToken != ""
}

// Has reports whether the context carries the credential selected by authType.
// The developer secret key configured in settings is not considered here.
func (c AuthenticationContext) Has(authType AuthType) bool {
	switch authType {
	case AuthNone:
		return true
	case AuthSessionTicket:
		return c.SessionTicket != ""
	case AuthEntityToken:
		return c.EntityToken != ""
	case AuthDevSecretKey:
		return c.DeveloperSecretKey != ""
	default:
		return false
	}
}

func (c AuthenticationContext) WithSessionTicket(playFabID, ticket string) AuthenticationContext {
	c.PlayFabID = playFabID
	c.SessionTicket = ticket
	return c
}

func (c AuthenticationContext) WithEntityToken(token string, expiration *time.Time, entity *EntityKey) AuthenticationContext {
	c.EntityToken = token
	if expiration != nil {
		exp := *expiration
		c.EntityTokenExpiration = &exp
	} else {
		c.EntityTokenExpiration = nil
	}
	if entity != nil {
		c.Entity = *entity
	}
	return c
}

func (c AuthenticationContext) WithDeveloperSecretKey(key string) AuthenticationContext {
	c.DeveloperSecretKey = key
	return c
}

// ForgetCredentials returns an empty context.
func (c AuthenticationContext) ForgetCredentials() AuthenticationContext {
	return AuthenticationContext{}
}

// CredentialHolder stores the current AuthenticationContext of a client. Readers always get a
// consistent snapshot; writers replace the whole snapshot atomically.
// The zero value holds an empty context and is ready to use.
type CredentialHolder struct {
	ptr atomic.Pointer[AuthenticationContext]
}

// DefaultCredentials is the process-wide holder used by clients created without WithCredentials.
var DefaultCredentials = NewCredentialHolder(nil)

func NewCredentialHolder(initial *AuthenticationContext) *CredentialHolder {
	h := &CredentialHolder{}
	if initial != nil {
		snapshot := *initial
		h.ptr.Store(&snapshot)
	}
	return h
}

// Load returns the current snapshot.
func (h *CredentialHolder) Load() AuthenticationContext {
	if current := h.ptr.Load(); current != nil {
		return *current
	}
	return AuthenticationContext{}
}

func (h *CredentialHolder) Store(ac AuthenticationContext) {
	h.ptr.Store(&ac)
}

// Update applies fn to the current snapshot and installs the result. fn may run more than once
// when writers race, so it must be free of side effects.
func (h *CredentialHolder) Update(fn func(AuthenticationContext) AuthenticationContext) AuthenticationContext {
	for {
		current := h.ptr.Load()
		var base AuthenticationContext
		if current != nil {
			base = *current
		}
		next := fn(base)
		if h.ptr.CompareAndSwap(current, &next) {
			return next
		}
	}
}

// Forget clears all credentials.
func (h *CredentialHolder) Forget() {
	h.ptr.Store(&AuthenticationContext{})
}

func (c AuthenticationContext) withLogin(res *ServerLoginResult) AuthenticationContext {
	c = c.WithSessionTicket(res.PlayFabId, res.SessionTicket)
	if res.EntityToken != nil {
		c = c.WithEntityToken(res.EntityToken.EntityToken, res.EntityToken.TokenExpiration, res.EntityToken.Entity)
	}
	return c
}
