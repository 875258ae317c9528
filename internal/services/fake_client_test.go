package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"hackline/internal/logging"
	"hackline/internal/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements client.Client for unit tests. Call arguments are
// recorded for assertions; per-call results are set via the *Ret/*Err fields.
type fakeClient struct {
	mu sync.Mutex

	CloseErr error

	StoriesRet []models.StoryRecord
	StoriesErr error

	StoryByIDRet models.StoryRecord
	StoryByIDErr error
	LastStoryID  string

	CreateStoryRet   models.StoryRecord
	CreateStoryErr   error
	LastCreateToken  string
	LastCreateDraft  models.StoryDraft
	CreateStoryCalls int

	SignupRet      models.UserRecord
	SignupToken    string
	SignupErr      error
	LastSignupUser string
	LastSignupName string

	LoginRet      models.UserRecord
	LoginToken    string
	LoginErr      error
	LastLoginUser string
	LastLoginPass string

	UserProfileRet  models.UserRecord
	UserProfileErr  error
	LastProfileUser string
	LastProfileTok  string

	AddFavoriteErr   error
	AddFavoriteCalls int
	// addFavoriteGate, when set, blocks AddFavorite until the gate closes.
	addFavoriteGate chan struct{}

	RemoveFavoriteErr   error
	RemoveFavoriteCalls int

	// CallOrder records the sequence of mutating favorite calls.
	CallOrder []string
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Stories(ctx context.Context) ([]models.StoryRecord, error) {
	return f.StoriesRet, f.StoriesErr
}

func (f *fakeClient) StoryByID(ctx context.Context, id string) (models.StoryRecord, error) {
	f.mu.Lock()
	f.LastStoryID = id
	f.mu.Unlock()
	return f.StoryByIDRet, f.StoryByIDErr
}

func (f *fakeClient) CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.StoryRecord, error) {
	f.mu.Lock()
	f.LastCreateToken = token
	f.LastCreateDraft = draft
	f.CreateStoryCalls++
	f.mu.Unlock()
	return f.CreateStoryRet, f.CreateStoryErr
}

func (f *fakeClient) Signup(ctx context.Context, username, password, name string) (models.UserRecord, string, error) {
	f.mu.Lock()
	f.LastSignupUser = username
	f.LastSignupName = name
	f.mu.Unlock()
	return f.SignupRet, f.SignupToken, f.SignupErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (models.UserRecord, string, error) {
	f.mu.Lock()
	f.LastLoginUser = username
	f.LastLoginPass = password
	f.mu.Unlock()
	return f.LoginRet, f.LoginToken, f.LoginErr
}

func (f *fakeClient) UserProfile(ctx context.Context, token, username string) (models.UserRecord, error) {
	f.mu.Lock()
	f.LastProfileTok = token
	f.LastProfileUser = username
	f.mu.Unlock()
	return f.UserProfileRet, f.UserProfileErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	f.mu.Lock()
	f.AddFavoriteCalls++
	f.CallOrder = append(f.CallOrder, "add")
	gate := f.addFavoriteGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return f.AddFavoriteErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	f.mu.Lock()
	f.RemoveFavoriteCalls++
	f.CallOrder = append(f.CallOrder, "remove")
	f.mu.Unlock()
	return f.RemoveFavoriteErr
}

func (f *fakeClient) favoriteCalls() (add, remove int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.AddFavoriteCalls, f.RemoveFavoriteCalls
}

func (f *fakeClient) callOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.CallOrder...)
}
