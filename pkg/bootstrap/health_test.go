package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitReady_EventuallyUp(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := WaitReady(ctx, server.URL, 10*time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&hits), int32(3))
}

func TestWaitReady_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := WaitReady(ctx, server.URL, 10*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready")
}

func TestBootstrap_WaitReady_UsesInstanceContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	b := testBootstrap(t, &fakeRunner{})
	require.NoError(t, b.WaitReady(server.URL, 10*time.Millisecond))

	// A cancelled instance context aborts the wait even while probes fail.
	var cancel context.CancelFunc
	b.Ctx, cancel = context.WithCancel(b.Ctx)
	cancel()

	err := b.WaitReady("http://127.0.0.1:1/", 10*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready")
}

func TestWaitReady_ConnectionRefused(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := WaitReady(ctx, "http://127.0.0.1:1/", 10*time.Millisecond)
	require.Error(t, err)
}
