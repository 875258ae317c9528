package cli

import (
	"context"
	"fmt"
	"strconv"

	"hackline/internal/models"
)

// storyByArg resolves a 1-based index from the last listed stories.
func (a *App) storyByArg(arg string) (*models.Story, bool) {
	if a.list == nil || len(a.list.Stories) == 0 {
		fmt.Fprintln(a.out, "List stories first.")
		return nil, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.list.Stories) {
		fmt.Fprintf(a.out, "Pick a story number between 1 and %d.\n", len(a.list.Stories))
		return nil, false
	}
	return a.list.Stories[n-1], true
}

func (a *App) Favorite(ctx context.Context, arg string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return
	}
	story, ok := a.storyByArg(arg)
	if !ok {
		return
	}

	if err := a.favorites.Favorite(ctx, a.currentUser, story); err != nil {
		fmt.Fprintf(a.out, "Could not favorite %q: %v\n", story.Title, err)
		return
	}
	fmt.Fprintf(a.out, "Favorited %q\n", story.Title)
}

func (a *App) Unfavorite(ctx context.Context, arg string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return
	}
	story, ok := a.storyByArg(arg)
	if !ok {
		return
	}

	if err := a.favorites.Unfavorite(ctx, a.currentUser, story); err != nil {
		fmt.Fprintf(a.out, "Could not unfavorite %q: %v\n", story.Title, err)
		return
	}
	fmt.Fprintf(a.out, "Unfavorited %q\n", story.Title)
}

func (a *App) ShowFavorites(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in first.")
		return
	}
	if len(a.currentUser.Favorites) == 0 {
		fmt.Fprintln(a.out, "No favorites yet.")
		return
	}
	a.renderStories(a.currentUser.Favorites)
}
