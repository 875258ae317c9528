// Package client talks to the remote story/user service. The Client
// interface is the narrow request contract the domain layer depends on;
// the HTTP implementation and its status mapping live behind it.
package client

import (
	"context"

	"hackline/internal/models"
)

// Client defines the remote operations the domain layer needs.
//
// Contract:
//   - Stories / StoryByID: unauthenticated reads.
//   - CreateStory, AddFavorite, RemoveFavorite: mutating calls, token required.
//   - Signup / Login: issue a fresh session token alongside the user record.
//   - UserProfile: token-authenticated lookup used for session restore.
//   - Close: release underlying transport resources.
//
// All methods must honor context cancellation/timeouts. Failures carry the
// sentinel taxonomy from internal/common and can be matched with errors.Is.
type Client interface {
	Close() error
	Stories(ctx context.Context) ([]models.StoryRecord, error)
	StoryByID(ctx context.Context, id string) (models.StoryRecord, error)
	CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.StoryRecord, error)
	Signup(ctx context.Context, username, password, name string) (models.UserRecord, string, error)
	Login(ctx context.Context, username, password string) (models.UserRecord, string, error)
	UserProfile(ctx context.Context, token, username string) (models.UserRecord, error)
	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
