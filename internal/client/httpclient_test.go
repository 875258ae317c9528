package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackline/internal/common"
	"hackline/internal/logging"
	"hackline/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 2*time.Second, testLogger())
}

func TestHTTPClient_Stories(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"stories":[{"storyId":"s1","title":"T","author":"A","url":"https://example.com/x","username":"alice"}]}`))
	}))

	records, err := c.Stories(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "s1", records[0].StoryID)
}

func TestHTTPClient_StoryByID_NotFound(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"story not found"}}`))
	}))

	_, err := c.StoryByID(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "story not found", apiErr.Message)

	// 4xx is permanent, no retries.
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_Stories_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"stories":[]}`))
	}))

	records, err := c.Stories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPClient_CreateStory(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)

		var body struct {
			Token string            `json:"token"`
			Story models.StoryDraft `json:"story"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok-1", body.Token)
		assert.Equal(t, "T", body.Story.Title)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"story":{"storyId":"s9","title":"T","author":"A","url":"https://example.com/x","username":"alice"}}`))
	}))

	rec, err := c.CreateStory(context.Background(), "tok-1",
		models.StoryDraft{Title: "T", Author: "A", URL: "https://example.com/x"})
	require.NoError(t, err)
	assert.Equal(t, "s9", rec.StoryID)
}

func TestHTTPClient_CreateStory_Unauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid token"}}`))
	}))

	_, err := c.CreateStory(context.Background(), "bad", models.StoryDraft{Title: "T", Author: "A", URL: "https://e.com/x"})
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestHTTPClient_Signup(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)

		var body credentialsBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "Alice A", body.User.Name)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"tok-new","user":{"username":"alice","name":"Alice A","favorites":[],"stories":[]}}`))
	}))

	rec, token, err := c.Signup(context.Background(), "alice", "pw123", "Alice A")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
	assert.Equal(t, "alice", rec.Username)
}

func TestHTTPClient_Signup_Conflict(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"message":"username exists"}}`))
	}))

	_, _, err := c.Signup(context.Background(), "alice", "pw", "A")
	require.ErrorIs(t, err, common.ErrUsernameTaken)
}

func TestHTTPClient_Login_BadCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"incorrect password"}}`))
	}))

	_, _, err := c.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.NotErrorIs(t, err, common.ErrUnauthorized)
}

func TestHTTPClient_UserProfile_TokenInQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice", r.URL.Path)
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"user":{"username":"alice","name":"Alice A"}}`))
	}))

	rec, err := c.UserProfile(context.Background(), "tok-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.Username)
}

func TestHTTPClient_Favorites_PathsAndMethods(t *testing.T) {
	type call struct{ method, path, token string }
	var calls []call

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body tokenBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		calls = append(calls, call{r.Method, r.URL.Path, body.Token})
		w.WriteHeader(http.StatusOK)
	}))

	ctx := context.Background()
	require.NoError(t, c.AddFavorite(ctx, "tok-1", "alice", "s1"))
	require.NoError(t, c.RemoveFavorite(ctx, "tok-1", "alice", "s1"))

	require.Len(t, calls, 2)
	assert.Equal(t, call{http.MethodPost, "/users/alice/favorites/s1", "tok-1"}, calls[0])
	assert.Equal(t, call{http.MethodDelete, "/users/alice/favorites/s1", "tok-1"}, calls[1])
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, time.Second, testLogger())
	err := c.AddFavorite(context.Background(), "tok", "alice", "s1")
	require.ErrorIs(t, err, common.ErrRemote)
}
