package models

import (
	"fmt"
	"time"

	"hackline/internal/common"
)

// UserRecord is the wire shape of a user as returned by the remote service.
// Session payloads carry the user's own stories under "stories"; locally
// they live on User.OwnStories.
type UserRecord struct {
	Username  string        `json:"username"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
	Favorites []StoryRecord `json:"favorites"`
	Stories   []StoryRecord `json:"stories"`
}

// User represents the current authenticated session. LoginToken is required
// for all mutating remote calls and belongs to exactly this user; nothing
// else caches it.
//
// OwnStories is populated at construction and not kept live afterwards.
// Favorites is actively synchronized by the favorite service and never
// contains two entries with the same StoryID.
type User struct {
	Username  string
	Name      string
	CreatedAt time.Time

	LoginToken string

	OwnStories []*Story
	Favorites  []*Story
}

// NewUser builds a User from a wire record plus its session token. Every
// story record in the favorites and own-stories arrays must be valid; one
// malformed record fails the whole construction.
func NewUser(r UserRecord, token string) (*User, error) {
	if r.Username == "" {
		return nil, fmt.Errorf("user record: missing username: %w", common.ErrValidation)
	}

	favorites, err := mapStories(r.Favorites)
	if err != nil {
		return nil, fmt.Errorf("user %s: favorites: %w", r.Username, err)
	}
	ownStories, err := mapStories(r.Stories)
	if err != nil {
		return nil, fmt.Errorf("user %s: stories: %w", r.Username, err)
	}

	return &User{
		Username:   r.Username,
		Name:       r.Name,
		CreatedAt:  r.CreatedAt,
		LoginToken: token,
		OwnStories: ownStories,
		Favorites:  favorites,
	}, nil
}

func mapStories(records []StoryRecord) ([]*Story, error) {
	stories := make([]*Story, 0, len(records))
	for _, r := range records {
		s, err := NewStory(r)
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, nil
}

// IsFavorite reports whether a story with the given id is currently in the
// user's favorites. Pure membership test by StoryID.
func (u *User) IsFavorite(story *Story) bool {
	if story == nil {
		return false
	}
	for _, f := range u.Favorites {
		if f.StoryID == story.StoryID {
			return true
		}
	}
	return false
}
