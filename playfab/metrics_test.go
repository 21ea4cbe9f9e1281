package playfab

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeLocalError, Outcome(ErrSessionTicketNotSet))
	assert.Equal(t, OutcomeLocalError, Outcome(&ValidationError{Endpoint: "CreateGroup"}))
	assert.Equal(t, OutcomeLocalError, Outcome(errors.WithMessage(ErrOverrideType, "got int")))
	assert.Equal(t, OutcomeAPIError, Outcome(&APIError{HTTPCode: http.StatusBadRequest}))
	assert.Equal(t, OutcomeTransportError, Outcome(errors.New("connection reset")))
}

func TestPrometheusObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	ctx := context.Background()
	o.ObserveDispatch(ctx, DispatchInfo{Endpoint: groupsCreateGroup, Duration: 20 * time.Millisecond})
	o.ObserveDispatch(ctx, DispatchInfo{Endpoint: groupsCreateGroup, Duration: 30 * time.Millisecond})
	o.ObserveDispatch(ctx, DispatchInfo{Endpoint: groupsCreateGroup, Err: ErrEntityTokenNotSet})
	o.ObserveDispatch(ctx, DispatchInfo{Endpoint: serverGetTitleData, Err: &APIError{HTTPCode: http.StatusForbidden}})

	assert.Equal(t, 2.0, testutil.ToFloat64(o.requests.WithLabelValues("Groups.CreateGroup", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.requests.WithLabelValues("Groups.CreateGroup", OutcomeLocalError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.requests.WithLabelValues("Server.GetTitleData", OutcomeAPIError)))
	assert.Equal(t, 2, testutil.CollectAndCount(o.duration, "fabforge_playfab_request_duration_seconds"))

	_, err = NewPrometheusObserver(reg)
	assert.Error(t, err, "registering twice must fail")
}

func TestObserverFunc(t *testing.T) {
	var got DispatchInfo
	var obs Observer = ObserverFunc(func(_ context.Context, info DispatchInfo) {
		got = info
	})
	obs.ObserveDispatch(context.Background(), DispatchInfo{RequestID: "r1"})
	assert.Equal(t, "r1", got.RequestID)
}
