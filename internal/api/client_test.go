package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codementorhq/codementor-go/internal/session"
	"github.com/codementorhq/codementor-go/pkg/notify"
)

func newSession(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func newClient(t *testing.T, baseURL string, tokens TokenSource, notifier notify.Notifier, onUnauthorized func()) *Client {
	t.Helper()
	client, err := New(Config{
		BaseURL:        baseURL,
		Tokens:         tokens,
		Notifier:       notifier,
		OnUnauthorized: onUnauthorized,
	})
	require.NoError(t, err)
	return client
}

func TestBearerHeaderPresentWhenTokenStored(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	store := newSession(t)
	require.NoError(t, store.SetToken("tok-123"))

	client := newClient(t, srv.URL, store, &notify.Recorder{}, nil)
	var out map[string]string
	require.NoError(t, client.Get(context.Background(), "/anything", &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, newSession(t), &notify.Recorder{}, nil)
	require.NoError(t, client.Get(context.Background(), "/anything", nil))
	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader)
}

func TestUnauthorizedClearsTokenAndRedirectsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := newSession(t)
	require.NoError(t, store.SetToken("expired"))

	redirects := 0
	recorder := &notify.Recorder{}
	client := newClient(t, srv.URL, store, recorder, func() { redirects++ })

	err := client.Get(context.Background(), "/protected", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))

	assert.Empty(t, store.Token(), "401 must clear the stored token")
	assert.Equal(t, 1, redirects, "exactly one redirect per failing response")
	assert.Contains(t, recorder.Errors(), NoticeSessionExpired)
}

func TestStatusKeyedNotices(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"forbidden", http.StatusForbidden, "", NoticeForbidden},
		{"not found", http.StatusNotFound, "", NoticeNotFound},
		{"server error", http.StatusInternalServerError, "", NoticeServerError},
		{"other with message", http.StatusConflict, `{"message":"username already taken"}`, "username already taken"},
		{"other without message", http.StatusTeapot, "", NoticeGenericError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			recorder := &notify.Recorder{}
			client := newClient(t, srv.URL, newSession(t), recorder, nil)

			err := client.Get(context.Background(), "/x", nil)
			require.Error(t, err)
			assert.Equal(t, tt.status, StatusOf(err))
			require.Len(t, recorder.Errors(), 1)
			assert.Equal(t, tt.want, recorder.Errors()[0])
		})
	}
}

func TestNetworkFailureNotice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	recorder := &notify.Recorder{}
	client := newClient(t, srv.URL, newSession(t), recorder, nil)

	err := client.Get(context.Background(), "/x", nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Zero(t, StatusOf(err))
	assert.Contains(t, recorder.Errors(), NoticeNetworkError)
}

func TestQueryParamsAndBody(t *testing.T) {
	type echo struct {
		Name string `json:"name"`
	}
	var gotQuery map[string][]string
	var gotBody echo
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(echo{Name: "back"})
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, newSession(t), &notify.Recorder{}, nil)
	var out echo
	err := client.Post(context.Background(), "/echo", echo{Name: "hello"}, &out,
		WithParam("category", "react"),
		WithParam("difficulty", "beginner"),
	)
	require.NoError(t, err)
	assert.Equal(t, "hello", gotBody.Name)
	assert.Equal(t, "back", out.Name)
	assert.Equal(t, []string{"react"}, gotQuery["category"])
	assert.Equal(t, []string{"beginner"}, gotQuery["difficulty"])
}

func TestWithQueryMergesValues(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, newSession(t), &notify.Recorder{}, nil)
	q := url.Values{"tag": {"go", "react"}}
	require.NoError(t, client.Get(context.Background(), "/x", nil, WithQuery(q), WithParam("sortBy", "popularity")))
	assert.Equal(t, []string{"go", "react"}, gotQuery["tag"])
	assert.Equal(t, []string{"popularity"}, gotQuery["sortBy"])
}
