package services

import (
	"context"
	"fmt"
	"slices"

	"hackline/internal/client"
	"hackline/internal/logging"
	"hackline/internal/models"
)

// FavoriteService toggles a story's favorite status, keeping the user's
// local Favorites collection consistent with the remote service.
//
// Semantics:
//   - The local collection is updated optimistically, so membership checks
//     reflect the new state without waiting on the network round trip.
//   - On request failure the local change is rolled back before the error
//     is surfaced, so observers never see a state the service did not
//     confirm.
//   - Favoriting an already-favorited story (and unfavoriting an absent
//     one) is a no-op and issues no request.
//   - Operations on the same (user, story) pair are serialized: a second
//     toggle waits for the first to settle before evaluating membership,
//     so back-to-back favorite/unfavorite cannot race into an inconsistent
//     state.
type FavoriteService interface {
	Favorite(ctx context.Context, user *models.User, story *models.Story) error
	Unfavorite(ctx context.Context, user *models.User, story *models.Story) error
}

type favoriteService struct {
	client client.Client
	locks  *keyedMutex
	log    logging.Logger
}

func NewFavoriteService(c client.Client, log logging.Logger) FavoriteService {
	return &favoriteService{
		client: c,
		locks:  newKeyedMutex(),
		log:    log.With("component", "favorites"),
	}
}

// lockKey separates users so that two users of one service instance never
// serialize against each other.
func lockKey(username, storyID string) string {
	return username + "\x00" + storyID
}

func favoriteIndex(favorites []*models.Story, storyID string) int {
	for i, f := range favorites {
		if f.StoryID == storyID {
			return i
		}
	}
	return -1
}

func (s *favoriteService) Favorite(ctx context.Context, user *models.User, story *models.Story) error {
	unlock := s.locks.lock(lockKey(user.Username, story.StoryID))
	defer unlock()

	if favoriteIndex(user.Favorites, story.StoryID) >= 0 {
		return nil
	}

	user.Favorites = append(user.Favorites, story)

	if err := s.client.AddFavorite(ctx, user.LoginToken, user.Username, story.StoryID); err != nil {
		// Roll back the optimistic addition; the caller sees the original error.
		idx := favoriteIndex(user.Favorites, story.StoryID)
		user.Favorites = slices.Delete(user.Favorites, idx, idx+1)
		s.log.Warn(ctx, "favorite rolled back", "storyId", story.StoryID, "err", err)
		return fmt.Errorf("favorite %s: %w", story.StoryID, err)
	}
	return nil
}

func (s *favoriteService) Unfavorite(ctx context.Context, user *models.User, story *models.Story) error {
	unlock := s.locks.lock(lockKey(user.Username, story.StoryID))
	defer unlock()

	idx := favoriteIndex(user.Favorites, story.StoryID)
	if idx < 0 {
		return nil
	}

	removed := user.Favorites[idx]
	user.Favorites = slices.Delete(user.Favorites, idx, idx+1)

	if err := s.client.RemoveFavorite(ctx, user.LoginToken, user.Username, story.StoryID); err != nil {
		// Restore the entry at its original position.
		user.Favorites = slices.Insert(user.Favorites, idx, removed)
		s.log.Warn(ctx, "unfavorite rolled back", "storyId", story.StoryID, "err", err)
		return fmt.Errorf("unfavorite %s: %w", story.StoryID, err)
	}
	return nil
}
