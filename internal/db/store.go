package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/Kamar-Folarin/tcg-tracker/internal/models"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	collectionTable = "pokemon_cards"
	catalogTable    = "tcg_catalog"
)

type PostgresStore struct {
	db *sql.DB
}

// CollectionStore persists user-owned cards
type CollectionStore interface {
	CreateCard(ctx context.Context, card *models.CollectionCard) (*models.CollectionCard, error)
	GetCard(ctx context.Context, id string) (*models.CollectionCard, error)
	UpdateCard(ctx context.Context, id string, update *models.CardUpdate) (*models.CollectionCard, error)
	DeleteCard(ctx context.Context, id string) error
	ListCards(ctx context.Context, filter models.CollectionFilter) ([]*models.CollectionCard, int, error)
	GetCollectionFilterOptions(ctx context.Context) (*models.CollectionFilterOptions, error)
	GetCollectionStats(ctx context.Context) (*models.CollectionStats, error)
}

// CatalogStore persists the mirrored reference catalog
type CatalogStore interface {
	UpsertCatalogCard(ctx context.Context, card *models.CatalogCard) (inserted bool, err error)
	GetCatalogCard(ctx context.Context, id string) (*models.CatalogCard, error)
	ListCatalog(ctx context.Context, filter models.CatalogFilter) ([]*models.CatalogCard, int, error)
	SearchCatalog(ctx context.Context, query string, limit int) ([]*models.CatalogCard, int, error)
	GetCatalogFilterOptions(ctx context.Context) (*models.CatalogFilterOptions, error)
	GetCatalogStats(ctx context.Context) (*models.CatalogStats, error)
	FindCatalogCandidates(ctx context.Context, q models.MatchQuery) ([]*models.CatalogCard, error)
}

// Store defines the interface for database operations
type Store interface {
	CollectionStore
	CatalogStore

	Migrate() error
	VerifyTables(ctx context.Context) ([]TableReport, error)
	Ping(ctx context.Context) error
	Close() error
}

func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromDB wraps an already opened connection pool
func NewPostgresStoreFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Migrate() error {
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
