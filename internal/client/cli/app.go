package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/heartrisk/internal/client/client"
	"github.com/dmitrijs2005/heartrisk/internal/client/config"
	"github.com/dmitrijs2005/heartrisk/internal/client/services"
	"github.com/dmitrijs2005/heartrisk/internal/logging"
	"github.com/jmoiron/sqlx"
)

type App struct {
	config   *config.Config
	db       *sqlx.DB
	store    services.RecordStore
	pipeline *services.Pipeline
	logger   logging.Logger
	userID   int64
	email    string
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database and connects the assessment pipeline to
// the configured scorer.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	store := services.NewRecordStore(db, logger)
	scorer := client.NewHTTPScorer(c.ScorerEndpoint, c.ScorerTimeout, logger)

	a := &App{
		config:   c,
		db:       db,
		store:    store,
		pipeline: services.NewPipeline(store, scorer, logger),
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.pipeline.OnStateChange(a.showState)
	return a, nil
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	fmt.Fprintln(a.out, "Heart risk self-assessment (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.userID != 0
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

func (a *App) showState(s services.State) {
	if s == services.StateSubmitting {
		fmt.Fprintln(a.out, "Submitting...")
	}
}
