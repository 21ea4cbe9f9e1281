package playfab

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTypeString(t *testing.T) {
	tests := map[AuthType]string{
		AuthNone:          "None",
		AuthSessionTicket: "SessionTicket",
		AuthEntityToken:   "EntityToken",
		AuthDevSecretKey:  "DevSecretKey",
		AuthType(42):      "Unknown",
	}
	for authType, want := range tests {
		if got := authType.String(); got != want {
			t.Errorf("AuthType(%d).String() = %q, want %q", authType, got, want)
		}
	}
}

func TestAuthenticationContextCopyOnWrite(t *testing.T) {
	base := AuthenticationContext{PlayFabID: "P1"}
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	withTicket := base.WithSessionTicket("P2", "ticket")
	withToken := withTicket.WithEntityToken("token", &exp, &EntityKey{Id: "E1", Type: EntityTypeTitlePlayerAccount})

	assert.Equal(t, "P1", base.PlayFabID)
	assert.False(t, base.IsClientLoggedIn())
	assert.True(t, withTicket.IsClientLoggedIn())
	assert.False(t, withTicket.IsEntityLoggedIn())
	assert.True(t, withToken.IsEntityLoggedIn())
	assert.Equal(t, "E1", withToken.Entity.Id)

	exp = exp.Add(time.Hour)
	assert.Equal(t, 2030, withToken.EntityTokenExpiration.Year())
	assert.NotEqual(t, exp, *withToken.EntityTokenExpiration)

	assert.Equal(t, AuthenticationContext{}, withToken.ForgetCredentials())
}

func TestAuthenticationContextHas(t *testing.T) {
	ac := AuthenticationContext{SessionTicket: "t"}
	assert.True(t, ac.Has(AuthNone))
	assert.True(t, ac.Has(AuthSessionTicket))
	assert.False(t, ac.Has(AuthEntityToken))
	assert.False(t, ac.Has(AuthDevSecretKey))
	assert.True(t, ac.WithDeveloperSecretKey("k").Has(AuthDevSecretKey))
}

func TestCredentialHolderZeroValue(t *testing.T) {
	var h CredentialHolder
	assert.Equal(t, AuthenticationContext{}, h.Load())

	h.Store(AuthenticationContext{EntityToken: "a"})
	assert.Equal(t, "a", h.Load().EntityToken)

	h.Forget()
	assert.False(t, h.Load().IsEntityLoggedIn())
}

func TestCredentialHolderSnapshotsAreIndependent(t *testing.T) {
	initial := AuthenticationContext{SessionTicket: "t1"}
	h := NewCredentialHolder(&initial)
	initial.SessionTicket = "mutated"

	snapshot := h.Load()
	snapshot.SessionTicket = "also mutated"

	assert.Equal(t, "t1", h.Load().SessionTicket)
}

func TestCredentialHolderConcurrentUpdates(t *testing.T) {
	h := NewCredentialHolder(nil)
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.Update(func(ac AuthenticationContext) AuthenticationContext {
				ac.PlayFabID += "x"
				ac.SessionTicket = fmt.Sprintf("ticket-%d", i)
				return ac
			})
			_ = h.Load()
		}(i)
	}
	wg.Wait()

	got := h.Load()
	require.Len(t, got.PlayFabID, writers, "every update must be applied exactly once")
	assert.Contains(t, got.SessionTicket, "ticket-")
}
