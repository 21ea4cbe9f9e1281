package bridge

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"

	"fabforge/playfab"
)

// Runtime environment keys read by ConfigFromEnv.
const (
	EnvTitleID          = "PLAYFAB_TITLE_ID"
	EnvSecretKey        = "PLAYFAB_SECRET_KEY"
	EnvEndpointURL      = "PLAYFAB_ENDPOINT_URL"
	EnvAllowedEndpoints = "PLAYFAB_ALLOWED_ENDPOINTS"
	EnvEventNamespace   = "PLAYFAB_EVENT_NAMESPACE"
	EnvRefreshSchedule  = "PLAYFAB_REFRESH_SCHEDULE"
	EnvRequestTimeout   = "PLAYFAB_REQUEST_TIMEOUT"
	EnvMetrics          = "PLAYFAB_METRICS"
)

const DefaultEventNamespace = "custom.nakama"

type Config struct {
	TitleID     string
	SecretKey   string
	EndpointURL string
	// RequestTimeout of zero keeps the client default.
	RequestTimeout time.Duration

	// AllowedEndpoints lists what playfab_call may reach. Entries are full names
	// ("Groups.CreateGroup"), an API wildcard ("Groups.*") or "*" for everything.
	// Empty allows nothing.
	AllowedEndpoints []string

	EventNamespace string
	// EventEntity receives forwarded events. Nil uses the entity of the current title token.
	EventEntity *playfab.EntityKey

	RefreshSchedule string

	// Metrics, when set, receives the client's request counters and latency histogram.
	Metrics prometheus.Registerer
}

// ConfigFromEnv reads the runtime environment map Nakama exposes under RUNTIME_CTX_ENV.
func ConfigFromEnv(env map[string]string) Config {
	cfg := Config{
		TitleID:         strings.TrimSpace(env[EnvTitleID]),
		SecretKey:       strings.TrimSpace(env[EnvSecretKey]),
		EndpointURL:     strings.TrimSpace(env[EnvEndpointURL]),
		EventNamespace:  strings.TrimSpace(env[EnvEventNamespace]),
		RefreshSchedule: strings.TrimSpace(env[EnvRefreshSchedule]),
	}
	if raw := env[EnvAllowedEndpoints]; raw != "" {
		cfg.AllowedEndpoints = lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		}))
	}
	if d, err := time.ParseDuration(strings.TrimSpace(env[EnvRequestTimeout])); err == nil {
		cfg.RequestTimeout = d
	}
	if enabled, _ := strconv.ParseBool(strings.TrimSpace(env[EnvMetrics])); enabled {
		cfg.Metrics = prometheus.DefaultRegisterer
	}
	if cfg.EventNamespace == "" {
		cfg.EventNamespace = DefaultEventNamespace
	}
	return cfg
}

// Settings converts the config into client settings.
func (c Config) Settings() playfab.Settings {
	return playfab.Settings{
		TitleID:            c.TitleID,
		DeveloperSecretKey: c.SecretKey,
		EndpointURL:        c.EndpointURL,
		RequestTimeout:     c.RequestTimeout,
	}
}

// Allows reports whether playfab_call may dispatch ep.
func (c Config) Allows(ep playfab.Endpoint) bool {
	return lo.ContainsBy(c.AllowedEndpoints, func(rule string) bool {
		switch {
		case rule == "*":
			return true
		case strings.HasSuffix(rule, ".*"):
			return strings.EqualFold(strings.TrimSuffix(rule, ".*"), ep.API)
		default:
			return strings.EqualFold(rule, ep.FullName())
		}
	})
}
