package playfab

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SDKVersion is sent in the SDK header of every request.
const SDKVersion = "FabForgeGoSDK-0.3.0"

const defaultRequestTimeout = 30 * time.Second

// HeaderNames holds the HTTP header names used to carry each credential.
type HeaderNames struct {
	SessionTicket string
	EntityToken   string
	SecretKey     string
	SDK           string
}

func DefaultHeaderNames() HeaderNames {
	return HeaderNames{
		SessionTicket: "X-Authorization",
		EntityToken:   "X-EntityToken",
		SecretKey:     "X-SecretKey",
		SDK:           "X-PlayFabSDK",
	}
}

// ForAuth returns the header name carrying the credential for authType, or "" for AuthNone.
func (h HeaderNames) ForAuth(authType AuthType) string {
	switch authType {
	case AuthSessionTicket:
		return h.SessionTicket
	case AuthEntityToken:
		return h.EntityToken
	case AuthDevSecretKey:
		return h.SecretKey
	default:
		return ""
	}
}

// HTTPDoer sends a prepared request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Settings configures a Client and its Dispatcher.
type Settings struct {
	// TitleID is required unless EndpointURL is set.
	TitleID string
	// DeveloperSecretKey is used for DevSecretKey endpoints when the resolved context has none.
	DeveloperSecretKey string
	// EndpointURL overrides the https://<TitleID>.playfabapi.com base URL.
	EndpointURL string
	// RequestTimeout bounds a single dispatch. Zero uses the default, negative disables it.
	RequestTimeout time.Duration

	Headers    HeaderNames
	Serializer Serializer
	HTTPClient HTTPDoer
	Logger     *zap.Logger

	DisableValidation bool
	SDKVersion        string
}

func (s Settings) withDefaults() Settings {
	defaults := DefaultHeaderNames()
	if s.Headers.SessionTicket == "" {
		s.Headers.SessionTicket = defaults.SessionTicket
	}
	if s.Headers.EntityToken == "" {
		s.Headers.EntityToken = defaults.EntityToken
	}
	if s.Headers.SecretKey == "" {
		s.Headers.SecretKey = defaults.SecretKey
	}
	if s.Headers.SDK == "" {
		s.Headers.SDK = defaults.SDK
	}
	if s.Serializer == nil {
		s.Serializer = SonicSerializer()
	}
	if s.HTTPClient == nil {
		s.HTTPClient = http.DefaultClient
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = defaultRequestTimeout
	}
	if s.SDKVersion == "" {
		s.SDKVersion = SDKVersion
	}
	return s
}

// URL joins the base URL and an endpoint path.
func (s Settings) URL(path string) (string, error) {
	base := strings.TrimRight(s.EndpointURL, "/")
	if base == "" {
		if s.TitleID == "" {
			return "", ErrTitleIDNotSet
		}
		base = "https://" + strings.ToLower(s.TitleID) + ".playfabapi.com"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path, nil
}
