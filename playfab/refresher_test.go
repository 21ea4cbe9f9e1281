package playfab_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabforge/playfab"
	"fabforge/playfabtest"
)

func newRefresherClient(t *testing.T) (*playfab.Client, *playfabtest.Server, *atomic.Int32) {
	t.Helper()
	srv := playfabtest.NewServer()
	t.Cleanup(srv.Close)

	var issued atomic.Int32
	srv.Handle("/Authentication/GetEntityToken", func(playfabtest.Request) playfabtest.Reply {
		n := issued.Add(1)
		return playfabtest.Reply{Data: map[string]any{
			"EntityToken":     fmt.Sprintf("token-%d", n),
			"TokenExpiration": "2030-01-01T00:00:00Z",
			"Entity":          map[string]any{"Id": "TITLE", "Type": "title"},
		}}
	})

	settings := srv.Settings()
	settings.DeveloperSecretKey = "secret"
	return playfab.NewClient(settings, playfab.WithCredentials(playfab.NewCredentialHolder(nil))), srv, &issued
}

func TestRefreshNow(t *testing.T) {
	client, _, _ := newRefresherClient(t)

	var seen []string
	r := playfab.NewTokenRefresher(client, playfab.WithOnRefresh(func(ac playfab.AuthenticationContext) {
		seen = append(seen, ac.EntityToken)
	}))

	ac, err := r.RefreshNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", ac.EntityToken)
	assert.Equal(t, "TITLE", ac.Entity.Id)

	_, err = r.RefreshNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"token-1", "token-2"}, seen)
	assert.Equal(t, "token-2", client.Credentials().Load().EntityToken)
}

func TestRefresherRunsOnSchedule(t *testing.T) {
	client, _, issued := newRefresherClient(t)

	r := playfab.NewTokenRefresher(client, playfab.WithSchedule("@every 1s"))
	require.NoError(t, r.Start())
	assert.False(t, r.Next().IsZero())
	assert.Error(t, r.Start(), "second start must fail")

	require.Eventually(t, func() bool {
		return issued.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond)

	<-r.Stop().Done()
	assert.True(t, r.Next().IsZero())
	assert.True(t, client.Credentials().Load().IsEntityLoggedIn())
}

func TestRefresherRejectsBadSchedule(t *testing.T) {
	client, _, _ := newRefresherClient(t)

	r := playfab.NewTokenRefresher(client, playfab.WithSchedule("every now and then"))
	assert.Error(t, r.Start())

	// Stop without Start is a no-op.
	<-r.Stop().Done()
}

func TestRefreshFailureKeepsCredentials(t *testing.T) {
	client, srv, _ := newRefresherClient(t)
	client.Credentials().Store(playfab.AuthenticationContext{EntityToken: "old"})
	srv.Fail("/Authentication/GetEntityToken", playfab.APIError{HTTPCode: 401, ErrorName: "NotAuthenticated"})

	r := playfab.NewTokenRefresher(client, playfab.WithRefreshRequest(&playfab.GetEntityTokenRequest{
		Entity: &playfab.EntityKey{Id: "TITLE", Type: playfab.EntityTypeTitle},
	}))
	_, err := r.RefreshNow(context.Background())
	require.Error(t, err)
	assert.Equal(t, "old", client.Credentials().Load().EntityToken)

	req, _ := srv.LastRequest("/Authentication/GetEntityToken")
	assert.JSONEq(t, `{"Entity":{"Id":"TITLE","Type":"title"}}`, string(req.Body))
}
