package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pamsartech/jytechinvestment-admin/internal/config"
	"github.com/pamsartech/jytechinvestment-admin/internal/session"
)

type fakeSession struct {
	mu            sync.Mutex
	token         string
	invalidations int
}

func (s *fakeSession) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", session.ErrNoSession
	}
	return s.token, nil
}

func (s *fakeSession) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.invalidations++
}

func newTestClient(t *testing.T, handler http.Handler, sess TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.Config{APIBaseURL: srv.URL}, sess, nil)
}

func TestNoTokenShortCircuits(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}), &fakeSession{})

	_, err := c.ListCustomers(context.Background())
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Zero(t, hits.Load(), "no network call without a token")
}

func TestBearerHeaderAttached(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"usersData":[]}`))
	}), &fakeSession{token: "tok-abc"})

	customers, err := c.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Empty(t, customers)
}

func TestServerMessageNormalized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"adresse déjà invitée"}`))
	}), &fakeSession{token: "tok"})

	_, err := c.InviteCustomer(context.Background(), "dup@example.com")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "adresse déjà invitée", apiErr.Message)
	require.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestGenericFallbackWhenBodyUnusable(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}), &fakeSession{token: "tok"})

	_, err := c.ListPayments(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, genericMessage, apiErr.Message)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestNetworkFailureHasNoStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(config.Config{APIBaseURL: srv.URL}, &fakeSession{token: "tok"}, nil)

	_, err := c.ListReports(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 0, apiErr.Status)
	require.Equal(t, genericMessage, apiErr.Message)
}

func TestAuthFailureInvalidatesSession(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		sess := &fakeSession{token: "tok"}
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}), sess)

		_, err := c.ListCustomers(context.Background())
		require.ErrorIs(t, err, ErrSessionExpired)
		require.Equal(t, 1, sess.invalidations)
		require.Empty(t, sess.token, "token cleared")
	}
}

// Two concurrent requests both rejected with 401 must produce exactly one
// invalidation notification downstream.
func TestConcurrent401SingleNotification(t *testing.T) {
	t.Setenv("JYADMIN_TOKEN", "")
	mgr := session.NewManagerAt(t.TempDir())
	require.NoError(t, mgr.SetToken("tok"))

	var notified atomic.Int32
	mgr.OnInvalidate(func() { notified.Add(1) })

	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusUnauthorized)
	}), mgr)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.ListCustomers(context.Background())
		}(i)
	}
	close(release)
	wg.Wait()

	for _, err := range errs {
		require.ErrorIs(t, err, ErrSessionExpired)
	}
	require.Equal(t, int32(1), notified.Load())

	_, err := mgr.Token()
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestNoRetryOnServerError(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}), &fakeSession{token: "tok"})

	_, err := c.ListCustomers(context.Background())
	require.Error(t, err)
	require.Equal(t, int32(1), hits.Load(), "requests are issued at most once")
}

func TestMalformedSuccessBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}), &fakeSession{token: "tok"})

	_, err := c.ListCustomers(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusOK, apiErr.Status)
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		&fakeSession{token: "tok"})

	_, err := c.ListCustomers(ctx)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrSessionExpired))
}
