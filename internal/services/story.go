package services

import (
	"context"
	"fmt"

	"hackline/internal/client"
	"hackline/internal/common"
	"hackline/internal/models"
)

type StoryService interface {
	FetchAll(ctx context.Context) (*models.StoryList, error)
	FetchByID(ctx context.Context, id string) (*models.Story, error)
	AddStory(ctx context.Context, list *models.StoryList, user *models.User, draft models.StoryDraft) (*models.Story, error)
}

type storyService struct {
	client client.Client
}

func NewStoryService(c client.Client) StoryService {
	return &storyService{client: c}
}

// FetchAll returns a fresh list in the order the service returned it.
// Either the whole list builds or the call fails; no partial lists.
func (s *storyService) FetchAll(ctx context.Context) (*models.StoryList, error) {
	records, err := s.client.Stories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stories: %w", err)
	}

	stories := make([]*models.Story, 0, len(records))
	for _, r := range records {
		story, err := models.NewStory(r)
		if err != nil {
			return nil, fmt.Errorf("fetch stories: %w", err)
		}
		stories = append(stories, story)
	}

	return models.NewStoryList(stories), nil
}

func (s *storyService) FetchByID(ctx context.Context, id string) (*models.Story, error) {
	if id == "" {
		return nil, fmt.Errorf("fetch story: missing id: %w", common.ErrValidation)
	}

	record, err := s.client.StoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch story %s: %w", id, err)
	}

	story, err := models.NewStory(record)
	if err != nil {
		return nil, fmt.Errorf("fetch story %s: %w", id, err)
	}
	return story, nil
}

// AddStory persists the draft with the acting user's token and, only on
// confirmed success, prepends the echoed story to the list and returns it.
// The list is never mutated speculatively.
func (s *storyService) AddStory(ctx context.Context, list *models.StoryList, user *models.User, draft models.StoryDraft) (*models.Story, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("add story: %w", err)
	}
	if user == nil || user.LoginToken == "" {
		return nil, fmt.Errorf("add story: no session token: %w", common.ErrUnauthorized)
	}

	record, err := s.client.CreateStory(ctx, user.LoginToken, draft)
	if err != nil {
		return nil, fmt.Errorf("add story: %w", err)
	}

	story, err := models.NewStory(record)
	if err != nil {
		return nil, fmt.Errorf("add story: %w", err)
	}

	list.Prepend(story)
	return story, nil
}
