package app

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/tcg-tracker/internal/api"
	"github.com/Kamar-Folarin/tcg-tracker/internal/cards"
	"github.com/Kamar-Folarin/tcg-tracker/internal/catalog"
	"github.com/Kamar-Folarin/tcg-tracker/internal/config"
	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
	"github.com/Kamar-Folarin/tcg-tracker/internal/tcgapi"
)

// App holds the services shared by the server and the CLI
type App struct {
	Config   *config.Config
	Store    db.Store
	Client   *tcgapi.Client
	Searcher *tcgapi.Searcher
	Register *catalog.StatusRegister
	Engine   *catalog.Engine
	Matcher  *catalog.Matcher
	Catalog  *catalog.Service
	Cards    *cards.Service
	Logger   *logrus.Logger
}

// New wires every service on top of an opened store
func New(cfg *config.Config, store db.Store, logger *logrus.Logger) (*App, error) {
	client := tcgapi.NewClientFromConfig(cfg.CatalogAPI, logger)

	searcher, err := tcgapi.NewSearcher(client, cfg.Search, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create live searcher: %w", err)
	}

	register := catalog.NewStatusRegister()
	engine := catalog.NewEngine(client, store, register, cfg.Sync, logger)
	matcher := catalog.NewMatcher(store, logger)

	return &App{
		Config:   cfg,
		Store:    store,
		Client:   client,
		Searcher: searcher,
		Register: register,
		Engine:   engine,
		Matcher:  matcher,
		Catalog:  catalog.NewService(store, logger),
		Cards:    cards.NewService(store, store, matcher, client, logger),
		Logger:   logger,
	}, nil
}

// Handler builds the HTTP handler over the app's services
func (a *App) Handler() *api.Handler {
	return api.NewHandler(a.Cards, a.Catalog, a.Engine, a.Searcher, a.Store, a.Logger)
}

// NewLogger creates a logrus logger at the named level. JSON output is used
// for the server; the CLI uses the text formatter.
func NewLogger(out io.Writer, level string, jsonOutput bool) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logger, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}
