package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"hackline/internal/common"
	"hackline/internal/logging"
	"hackline/internal/models"
)

// HTTPClient implements Client against the story/user HTTP API.
//
// Token placement follows the original service surface: mutating calls
// carry the token in the JSON body, the user-profile GET passes it as a
// query parameter. Idempotent GETs are retried with exponential backoff on
// transport failures and 5xx responses; mutating calls are never retried.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "httpclient"),
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Response envelopes of the story/user API.

type storiesEnvelope struct {
	Stories []models.StoryRecord `json:"stories"`
}

type storyEnvelope struct {
	Story models.StoryRecord `json:"story"`
}

type userEnvelope struct {
	User  models.UserRecord `json:"user"`
	Token string            `json:"token"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, common.ErrRemote)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%s %s: %v: %w", method, path, err, common.ErrRemote)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, common.ErrRemote)
		}
	}
	return nil
}

// getWithRetry wraps do for idempotent reads. APIErrors below 500 are
// permanent; everything else (transport errors, 5xx) is retried.
func (c *HTTPClient) getWithRetry(ctx context.Context, path string, query url.Values, out any) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, query, nil, out)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 {
			return err
		}
		return retry.RetryableError(err)
	})
}

func readErrorMessage(r io.Reader) string {
	var env errorEnvelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return ""
	}
	if env.Error.Message != "" {
		return env.Error.Message
	}
	return env.Message
}

func (c *HTTPClient) Stories(ctx context.Context) ([]models.StoryRecord, error) {
	var env storiesEnvelope
	if err := c.getWithRetry(ctx, "/stories", nil, &env); err != nil {
		return nil, err
	}
	return env.Stories, nil
}

func (c *HTTPClient) StoryByID(ctx context.Context, id string) (models.StoryRecord, error) {
	var env storyEnvelope
	if err := c.getWithRetry(ctx, "/stories/"+url.PathEscape(id), nil, &env); err != nil {
		return models.StoryRecord{}, err
	}
	return env.Story, nil
}

func (c *HTTPClient) CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.StoryRecord, error) {
	body := struct {
		Token string            `json:"token"`
		Story models.StoryDraft `json:"story"`
	}{Token: token, Story: draft}

	var env storyEnvelope
	if err := c.do(ctx, http.MethodPost, "/stories", nil, body, &env); err != nil {
		return models.StoryRecord{}, err
	}
	return env.Story, nil
}

type credentialsBody struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name,omitempty"`
	} `json:"user"`
}

func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (models.UserRecord, string, error) {
	var body credentialsBody
	body.User.Username = username
	body.User.Password = password
	body.User.Name = name

	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/signup", nil, body, &env); err != nil {
		return models.UserRecord{}, "", err
	}
	return env.User, env.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.UserRecord, string, error) {
	var body credentialsBody
	body.User.Username = username
	body.User.Password = password

	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &env); err != nil {
		// A 401 on login means bad credentials, not a rejected token.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return models.UserRecord{}, "", &APIError{
				Status:  apiErr.Status,
				Message: apiErr.Message,
				kind:    common.ErrInvalidCredentials,
			}
		}
		return models.UserRecord{}, "", err
	}
	return env.User, env.Token, nil
}

func (c *HTTPClient) UserProfile(ctx context.Context, token, username string) (models.UserRecord, error) {
	query := url.Values{"token": {token}}

	var env userEnvelope
	if err := c.getWithRetry(ctx, "/users/"+url.PathEscape(username), query, &env); err != nil {
		return models.UserRecord{}, err
	}
	return env.User, nil
}

type tokenBody struct {
	Token string `json:"token"`
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodPost, path, nil, tokenBody{Token: token}, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodDelete, path, nil, tokenBody{Token: token}, nil)
}
