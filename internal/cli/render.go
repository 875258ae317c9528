package cli

import (
	"fmt"

	"github.com/fatih/color"

	"hackline/internal/models"
)

var (
	titleColor = color.New(color.Bold)
	hostColor  = color.New(color.Faint)
	starColor  = color.New(color.FgYellow)
)

// renderStories prints stories one per line, with a star marker for the
// current user's favorites.
func (a *App) renderStories(stories []*models.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(a.out, "No stories.")
		return
	}

	for i, s := range stories {
		marker := "  "
		if a.currentUser != nil && a.currentUser.IsFavorite(s) {
			marker = starColor.Sprint("* ")
		}

		host, err := s.Hostname()
		if err != nil {
			host = s.URL
		}

		fmt.Fprintf(a.out, "%3d. %s%s %s by %s (%s)\n",
			i+1,
			marker,
			titleColor.Sprint(s.Title),
			hostColor.Sprintf("(%s)", host),
			s.Author,
			s.Username,
		)
	}
}
