package cli

import (
	"context"
	"fmt"

	"hackline/internal/models"
)

func (a *App) ListStories(ctx context.Context) {
	list, err := a.stories.FetchAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load stories: %v\n", err)
		return
	}
	a.list = list
	a.renderStories(list.Stories)
}

func (a *App) AddStory(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	author, err := GetSimpleText(a.reader, "Author", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	url, err := GetSimpleText(a.reader, "URL", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if a.list == nil {
		list, err := a.stories.FetchAll(ctx)
		if err != nil {
			fmt.Fprintf(a.out, "Could not load stories: %v\n", err)
			return
		}
		a.list = list
	}

	draft := models.StoryDraft{Title: title, Author: author, URL: url}
	story, err := a.stories.AddStory(ctx, a.list, a.currentUser, draft)
	if err != nil {
		fmt.Fprintf(a.out, "Could not submit story: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Submitted %q (%s)\n", story.Title, story.StoryID)
}

func (a *App) ShowOwn(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return
	}
	if len(a.currentUser.OwnStories) == 0 {
		fmt.Fprintln(a.out, "You have not submitted any stories yet.")
		return
	}
	a.renderStories(a.currentUser.OwnStories)
}
