// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/utils/logging"
)

var errUnhealthy = errors.New("unhealthy")

func newTestHealth(t *testing.T) *Health {
	h, err := New(logging.NoLog{}, "test", prometheus.NewRegistry())
	require.NoError(t, err)
	return h
}

func TestDuplicatedRegistration(t *testing.T) {
	require := require.New(t)
	h := newTestHealth(t)

	check := CheckerFunc(func(context.Context) (interface{}, error) {
		return "", nil
	})
	require.NoError(h.RegisterCheck("check", check))
	err := h.RegisterCheck("check", check)
	require.ErrorIs(err, errDuplicateCheck)
}

func TestNotYetRunIsUnhealthy(t *testing.T) {
	require := require.New(t)
	h := newTestHealth(t)

	require.NoError(h.RegisterCheck("check", CheckerFunc(func(context.Context) (interface{}, error) {
		return nil, nil
	})))

	results, healthy := h.Results()
	require.False(healthy)
	require.Equal(notYetRunResult, results["check"])
	require.InDelta(1, testutil.ToFloat64(h.failingChecks), 0)
}

func TestRunChecks(t *testing.T) {
	require := require.New(t)
	h := newTestHealth(t)

	var failing atomic.Bool
	require.NoError(h.RegisterCheck("flaky", CheckerFunc(func(context.Context) (interface{}, error) {
		if failing.Load() {
			return "down", errUnhealthy
		}
		return "up", nil
	})))

	h.runChecks(context.Background())
	results, healthy := h.Results()
	require.True(healthy)
	require.Equal("up", results["flaky"].Details)
	require.Zero(testutil.ToFloat64(h.failingChecks))

	failing.Store(true)
	h.runChecks(context.Background())
	h.runChecks(context.Background())
	results, healthy = h.Results()
	require.False(healthy)
	result := results["flaky"]
	require.Equal(errUnhealthy.Error(), *result.Error)
	require.Equal(int64(2), result.ContiguousFailures)
	require.NotNil(result.TimeOfFirstFailure)
	require.InDelta(1, testutil.ToFloat64(h.failingChecks), 0)

	failing.Store(false)
	h.runChecks(context.Background())
	_, healthy = h.Results()
	require.True(healthy)
	require.Zero(testutil.ToFloat64(h.failingChecks))
}

func TestStartStop(t *testing.T) {
	require := require.New(t)
	h := newTestHealth(t)

	ran := make(chan struct{}, 1)
	require.NoError(h.RegisterCheck("check", CheckerFunc(func(context.Context) (interface{}, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil, nil
	})))

	h.Start(context.Background(), time.Hour)
	<-ran
	h.Stop()
	h.Stop()
}

func TestGetHandler(t *testing.T) {
	require := require.New(t)
	h := newTestHealth(t)

	require.NoError(h.RegisterCheck("check", CheckerFunc(func(context.Context) (interface{}, error) {
		return nil, errUnhealthy
	})))

	handler := NewGetHandler(h)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(http.StatusServiceUnavailable, w.Code)

	var reply APIReply
	require.NoError(json.Unmarshal(w.Body.Bytes(), &reply))
	require.False(reply.Healthy)
	require.Contains(reply.Checks, "check")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(http.StatusMethodNotAllowed, w.Code)
}
