// Package cli implements the interactive terminal client. It is a consumer
// of the domain services; no domain logic lives here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"hackline/internal/client"
	"hackline/internal/config"
	"hackline/internal/creds"
	"hackline/internal/logging"
	"hackline/internal/models"
	"hackline/internal/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	apiClient client.Client
	db        *sql.DB

	session   services.SessionService
	stories   services.StoryService
	favorites services.FavoriteService
	creds     creds.Repository

	currentUser *models.User
	list        *models.StoryList

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := creds.InitDatabase(ctx, cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("init credentials store: %w", err)
	}

	apiClient := client.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)

	return &App{
		config:    cfg,
		log:       log,
		apiClient: apiClient,
		db:        db,
		session:   services.NewSessionService(apiClient, log),
		stories:   services.NewStoryService(apiClient),
		favorites: services.NewFavoriteService(apiClient, log),
		creds:     creds.NewSQLiteRepository(db),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.apiClient.Close()
		_ = a.db.Close()
	}()

	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

func (a *App) status() string {
	if a.currentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.currentUser.Username)
}

// restoreSession tries the stored credentials once at startup. A stale or
// missing credential pair means staying logged out; no error is shown.
func (a *App) restoreSession(ctx context.Context) {
	username, token, err := a.creds.Load(ctx)
	if err != nil {
		return
	}

	user, err := a.session.Restore(ctx, token, username)
	if err != nil || user == nil {
		return
	}

	a.currentUser = user
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
}
