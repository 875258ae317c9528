// Package models defines the client-side domain entities of hackline:
// stories, the story list aggregate, and the current user. Entities are
// constructed from wire records and validated up front, so downstream code
// never sees a half-populated value.
package models

import (
	"fmt"
	"net/url"
	"time"

	"hackline/internal/common"
)

// StoryRecord is the wire shape of a story as returned by the remote
// service. Field names match the story/user API.
type StoryRecord struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// Story is one story record. The remote service assigns StoryID and
// CreatedAt; a Story is never mutated after construction.
type Story struct {
	StoryID   string
	Title     string
	Author    string
	URL       string
	Username  string
	CreatedAt time.Time
}

// NewStory builds a Story from a wire record, failing fast on missing
// required fields instead of letting empty values leak into the model.
func NewStory(r StoryRecord) (*Story, error) {
	switch {
	case r.StoryID == "":
		return nil, fmt.Errorf("story record: missing storyId: %w", common.ErrValidation)
	case r.Title == "":
		return nil, fmt.Errorf("story record %s: missing title: %w", r.StoryID, common.ErrValidation)
	case r.URL == "":
		return nil, fmt.Errorf("story record %s: missing url: %w", r.StoryID, common.ErrValidation)
	case r.Username == "":
		return nil, fmt.Errorf("story record %s: missing username: %w", r.StoryID, common.ErrValidation)
	}

	return &Story{
		StoryID:   r.StoryID,
		Title:     r.Title,
		Author:    r.Author,
		URL:       r.URL,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
	}, nil
}

// Hostname returns the host component of the story URL, for display.
// Fails with common.ErrInvalidURL when the URL is not well-formed and
// absolute. Pure, no side effects.
func (s *Story) Hostname() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("story %s: %q: %w", s.StoryID, s.URL, common.ErrInvalidURL)
	}
	return u.Hostname(), nil
}

// StoryDraft carries the user-supplied fields of a story to be created.
type StoryDraft struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Validate rejects drafts with empty fields before they reach the remote
// service.
func (d StoryDraft) Validate() error {
	switch {
	case d.Title == "":
		return fmt.Errorf("draft: missing title: %w", common.ErrValidation)
	case d.Author == "":
		return fmt.Errorf("draft: missing author: %w", common.ErrValidation)
	case d.URL == "":
		return fmt.Errorf("draft: missing url: %w", common.ErrValidation)
	}
	return nil
}

// StoryList is an ordered aggregate of stories, most recent first.
// A fetch-all always builds a fresh list; lists are never merged.
type StoryList struct {
	Stories []*Story
}

func NewStoryList(stories []*Story) *StoryList {
	return &StoryList{Stories: stories}
}

// Prepend inserts s at the front, keeping most-recent-first order.
func (l *StoryList) Prepend(s *Story) {
	l.Stories = append([]*Story{s}, l.Stories...)
}
