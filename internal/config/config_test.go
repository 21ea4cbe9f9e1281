package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fabforge/credstore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "playfab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PLAYFAB_TITLE_ID", "")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "file", cfg.Credentials.Store)
	assert.Equal(t, "default", cfg.Credentials.Key)
	assert.NotEmpty(t, cfg.Credentials.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `
title_id: FROMFILE
secret_key: file-secret
timeout: 5s
credentials:
  store: memory
  key: ci
log:
  level: info
`)
	t.Setenv("PLAYFAB_SECRET_KEY", "env-secret")
	t.Setenv("PLAYFAB_CREDENTIALS_KEY", "env-profile")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("title-id", "", "")
	fs.String("profile", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse([]string{"--title-id", "FROMFLAG"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "FROMFLAG", cfg.TitleID)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, "env-profile", cfg.Credentials.Key)
	assert.Equal(t, "memory", cfg.Credentials.Store)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.Log.Level, "unchanged flags do not override")
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown store", "credentials:\n  store: s3\n"},
		{"redis without address", "credentials:\n  store: redis\n"},
		{"bad log level", "log:\n  level: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), nil)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestSettings(t *testing.T) {
	logger := zap.NewNop()
	cfg := &Config{TitleID: "T", SecretKey: "k", EndpointURL: "http://localhost", Timeout: time.Second}

	s := cfg.Settings(logger)
	assert.Equal(t, "T", s.TitleID)
	assert.Equal(t, "k", s.DeveloperSecretKey)
	assert.Equal(t, "http://localhost", s.EndpointURL)
	assert.Equal(t, time.Second, s.RequestTimeout)
	assert.Same(t, logger, s.Logger)
}

func TestOpenStore(t *testing.T) {
	tests := []struct {
		creds Credentials
		want  any
	}{
		{Credentials{Store: "memory"}, &credstore.Memory{}},
		{Credentials{Store: "file", Dir: t.TempDir()}, &credstore.File{}},
		{Credentials{Store: "redis", RedisAddr: "127.0.0.1:0"}, &credstore.Redis{}},
	}
	for _, tt := range tests {
		t.Run(tt.creds.Store, func(t *testing.T) {
			store, closeFn, err := (&Config{Credentials: tt.creds}).OpenStore()
			require.NoError(t, err)
			assert.IsType(t, tt.want, store)
			assert.NoError(t, closeFn())
		})
	}

	_, _, err := (&Config{Credentials: Credentials{Store: "s3"}}).OpenStore()
	assert.Error(t, err)
}
