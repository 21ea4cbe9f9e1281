package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fabforge/credstore"
	"fabforge/playfab"
	"fabforge/playfabtest"
)

type cliFixture struct {
	srv  *playfabtest.Server
	dir  string
	args []string
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	srv := playfabtest.NewServer()
	t.Cleanup(srv.Close)
	for _, key := range []string{"PLAYFAB_TITLE_ID", "PLAYFAB_SECRET_KEY", "PLAYFAB_ENDPOINT_URL", "PLAYFAB_CREDENTIALS_STORE", "PLAYFAB_CREDENTIALS_KEY"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	cfg := filepath.Join(dir, "playfab.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("credentials:\n  store: file\n  dir: "+filepath.Join(dir, "creds")+"\n"), 0o600))

	return &cliFixture{
		srv:  srv,
		dir:  filepath.Join(dir, "creds"),
		args: []string{"--config", cfg, "--title-id", "TEST", "--endpoint-url", srv.URL},
	}
}

func (f *cliFixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &App{}
	defer a.Close()

	root := NewRootCommand(a)
	root.SetArgs(append(append([]string{}, f.args...), args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(`{"GroupName":"FromStdin"}`))
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func (f *cliFixture) stored(t *testing.T, profile string) (playfab.AuthenticationContext, error) {
	t.Helper()
	return credstore.NewFile(f.dir).Load(context.Background(), profile)
}

func TestEndpointsCommand(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "endpoints", "groups")
	require.NoError(t, err)

	var rows []endpointRow
	require.NoError(t, sonic.ConfigStd.UnmarshalFromString(out, &rows))
	assert.Len(t, rows, len(playfab.EndpointsByAPI("Groups")))
	assert.Contains(t, rows, endpointRow{Name: "Groups.CreateGroup", Path: "/Group/CreateGroup", Auth: "EntityToken"})

	_, err = f.run(t, "endpoints", "Nope")
	assert.ErrorContains(t, err, "unknown api")
}

func TestEndpointsCommandYAML(t *testing.T) {
	f := newCLIFixture(t)

	out, err := f.run(t, "-o", "yaml", "endpoints", "Matchmaker")
	require.NoError(t, err)

	var rows []endpointRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.NotEmpty(t, rows)
	assert.Equal(t, "DevSecretKey", rows[0].Auth)

	_, err = f.run(t, "-o", "xml", "endpoints")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestLoginTokenLogout(t *testing.T) {
	f := newCLIFixture(t)
	f.srv.Respond("/Server/LoginWithServerCustomId", map[string]any{
		"PlayFabId":     "P1",
		"SessionTicket": "ticket-1",
		"NewlyCreated":  true,
		"EntityToken": map[string]any{
			"EntityToken":     "player-token",
			"TokenExpiration": "2030-01-01T00:00:00Z",
			"Entity":          map[string]any{"Id": "TP1", "Type": "title_player_account"},
		},
	})
	f.srv.Respond("/Authentication/GetEntityToken", map[string]any{
		"EntityToken":     "title-token",
		"TokenExpiration": "2030-01-02T00:00:00Z",
		"Entity":          map[string]any{"Id": "TEST", "Type": "title"},
	})

	out, err := f.run(t, "--secret-key", "secret", "--profile", "p1", "login", "custom-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"playFabId": "P1",
		"newlyCreated": true,
		"entity": {"Id": "TP1", "Type": "title_player_account"},
		"tokenExpiration": "2030-01-01T00:00:00Z",
		"profile": "p1"
	}`, out)

	req, _ := f.srv.LastRequest("/Server/LoginWithServerCustomId")
	assert.JSONEq(t, `{"CreateAccount":true,"ServerCustomId":"custom-1"}`, string(req.Body))
	assert.Equal(t, "secret", req.Header.Get("X-SecretKey"))

	ac, err := f.stored(t, "p1")
	require.NoError(t, err)
	assert.Equal(t, "ticket-1", ac.SessionTicket)
	assert.Equal(t, "player-token", ac.EntityToken)

	// Without a secret key the stored session ticket is used.
	_, err = f.run(t, "--profile", "p1", "token")
	require.NoError(t, err)
	req, _ = f.srv.LastRequest("/Authentication/GetEntityToken")
	assert.Equal(t, "ticket-1", req.Header.Get("X-Authorization"))

	ac, err = f.stored(t, "p1")
	require.NoError(t, err)
	assert.Equal(t, "title-token", ac.EntityToken)
	assert.Equal(t, "ticket-1", ac.SessionTicket)

	_, err = f.run(t, "--profile", "p1", "logout")
	require.NoError(t, err)
	_, err = f.stored(t, "p1")
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestTokenWithoutCredentials(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.run(t, "token")
	require.Error(t, err)
	assert.True(t, playfab.IsLocal(err))
	assert.Empty(t, f.srv.Requests())
}

func TestCallCommand(t *testing.T) {
	f := newCLIFixture(t)
	f.srv.Respond("/Group/GetGroup", map[string]any{"GroupName": "Clan", "ProfileVersion": 3})

	ctx := context.Background()
	require.NoError(t, credstore.NewFile(f.dir).Save(ctx, "default", playfab.AuthenticationContext{EntityToken: "stored-token"}))

	out, err := f.run(t, "call", "Groups.GetGroup", `{"GroupName":"Clan"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"GroupName":"Clan","ProfileVersion":3}`, out)

	req, _ := f.srv.LastRequest("/Group/GetGroup")
	assert.Equal(t, "stored-token", req.Header.Get("X-EntityToken"))
	assert.JSONEq(t, `{"GroupName":"Clan"}`, string(req.Body))

	_, err = f.run(t, "call", "groups.getgroup", "-d", "-")
	require.NoError(t, err)
	req, _ = f.srv.LastRequest("/Group/GetGroup")
	assert.JSONEq(t, `{"GroupName":"FromStdin"}`, string(req.Body))

	bodyFile := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(bodyFile, []byte(`{"GroupName":"FromFile"}`), 0o600))
	_, err = f.run(t, "call", "Groups.GetGroup", "--data", "@"+bodyFile)
	require.NoError(t, err)
	req, _ = f.srv.LastRequest("/Group/GetGroup")
	assert.JSONEq(t, `{"GroupName":"FromFile"}`, string(req.Body))
}

func TestCallCommandErrors(t *testing.T) {
	f := newCLIFixture(t)
	require.NoError(t, credstore.NewFile(f.dir).Save(context.Background(), "default", playfab.AuthenticationContext{EntityToken: "t"}))
	f.srv.Fail("/Group/GetGroup", playfab.APIError{HTTPCode: 404, ErrorName: "GroupNotFound", ErrorMessage: "no such group"})

	_, err := f.run(t, "call", "Groups.Nope")
	assert.ErrorContains(t, err, "unknown endpoint")

	_, err = f.run(t, "call", "Groups.GetGroup", "{not json")
	assert.ErrorContains(t, err, "not valid JSON")

	_, err = f.run(t, "call", "Groups.GetGroup", `{"GroupName":"x"}`)
	apiErr, ok := playfab.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "GroupNotFound", apiErr.ErrorName)
}

func TestExecuteExitCode(t *testing.T) {
	f := newCLIFixture(t)
	var stdout, stderr bytes.Buffer

	code := Execute(context.Background(), append(f.args, "call", "Groups.Nope"), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown endpoint")

	code = Execute(context.Background(), append(f.args, "endpoints"), &stdout, &stderr)
	assert.Equal(t, 0, code)
}
