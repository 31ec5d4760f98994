package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

const catalogColumns = `id, name, supertype, subtypes, hp, types, set_id, set_name, set_series, number,
	artist, rarity, flavor_text, national_pokedex_numbers, images_small, images_large,
	tcgplayer_url, cardmarket_url, price_normal_market, price_normal_mid, price_normal_low,
	price_holofoil_market, price_holofoil_mid, last_synced_at`

func scanCatalogCard(row rowScanner) (*models.CatalogCard, error) {
	var c models.CatalogCard
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Supertype,
		pq.Array(&c.Subtypes),
		&c.HP,
		pq.Array(&c.Types),
		&c.SetID,
		&c.SetName,
		&c.SetSeries,
		&c.Number,
		&c.Artist,
		&c.Rarity,
		&c.FlavorText,
		pq.Array(&c.NationalPokedexNumbers),
		&c.ImageSmallURL,
		&c.ImageLargeURL,
		&c.TCGPlayerURL,
		&c.CardmarketURL,
		&c.PriceNormalMarket,
		&c.PriceNormalMid,
		&c.PriceNormalLow,
		&c.PriceHolofoilMarket,
		&c.PriceHolofoilMid,
		&c.LastSyncedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) queryCatalogCards(ctx context.Context, query string, args ...interface{}) ([]*models.CatalogCard, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]*models.CatalogCard, 0)
	for rows.Next() {
		card, err := scanCatalogCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog cards: %w", err)
	}
	return cards, nil
}

// UpsertCatalogCard inserts or fully replaces a catalog row keyed by id and
// reports whether the row was newly inserted. last_synced_at takes
// card.LastSyncedAt, or the current time when it is unset.
func (s *PostgresStore) UpsertCatalogCard(ctx context.Context, card *models.CatalogCard) (bool, error) {
	if card == nil {
		return false, fmt.Errorf("card cannot be nil")
	}
	syncedAt := card.LastSyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}

	var inserted bool
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tcg_catalog (
			id, name, supertype, subtypes, hp, types, set_id, set_name, set_series, number,
			artist, rarity, flavor_text, national_pokedex_numbers, images_small, images_large,
			tcgplayer_url, cardmarket_url, price_normal_market, price_normal_mid, price_normal_low,
			price_holofoil_market, price_holofoil_mid, last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			supertype = EXCLUDED.supertype,
			subtypes = EXCLUDED.subtypes,
			hp = EXCLUDED.hp,
			types = EXCLUDED.types,
			set_id = EXCLUDED.set_id,
			set_name = EXCLUDED.set_name,
			set_series = EXCLUDED.set_series,
			number = EXCLUDED.number,
			artist = EXCLUDED.artist,
			rarity = EXCLUDED.rarity,
			flavor_text = EXCLUDED.flavor_text,
			national_pokedex_numbers = EXCLUDED.national_pokedex_numbers,
			images_small = EXCLUDED.images_small,
			images_large = EXCLUDED.images_large,
			tcgplayer_url = EXCLUDED.tcgplayer_url,
			cardmarket_url = EXCLUDED.cardmarket_url,
			price_normal_market = EXCLUDED.price_normal_market,
			price_normal_mid = EXCLUDED.price_normal_mid,
			price_normal_low = EXCLUDED.price_normal_low,
			price_holofoil_market = EXCLUDED.price_holofoil_market,
			price_holofoil_mid = EXCLUDED.price_holofoil_mid,
			last_synced_at = EXCLUDED.last_synced_at,
			updated_at = NOW()
		RETURNING (xmax = 0) AS inserted`,
		card.ID,
		card.Name,
		card.Supertype,
		pq.Array(card.Subtypes),
		card.HP,
		pq.Array(card.Types),
		card.SetID,
		card.SetName,
		card.SetSeries,
		card.Number,
		card.Artist,
		card.Rarity,
		card.FlavorText,
		pq.Array(card.NationalPokedexNumbers),
		card.ImageSmallURL,
		card.ImageLargeURL,
		card.TCGPlayerURL,
		card.CardmarketURL,
		card.PriceNormalMarket,
		card.PriceNormalMid,
		card.PriceNormalLow,
		card.PriceHolofoilMarket,
		card.PriceHolofoilMid,
		syncedAt,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("failed to upsert catalog card %s: %w", card.ID, err)
	}
	return inserted, nil
}

func (s *PostgresStore) GetCatalogCard(ctx context.Context, id string) (*models.CatalogCard, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+catalogColumns+" FROM tcg_catalog WHERE id = $1", id)
	card, err := scanCatalogCard(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewResourceNotFoundError("catalog card", id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get catalog card: %w", err)
	}
	return card, nil
}

func catalogWhere(filter models.CatalogFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.Search != "" {
		p := w.arg(containsPattern(filter.Search))
		w.add(fmt.Sprintf("(name ILIKE %[1]s OR set_name ILIKE %[1]s OR rarity ILIKE %[1]s)", p))
	}
	if filter.Set != "" {
		w.add("set_name = " + w.arg(filter.Set))
	}
	if filter.Rarity != "" {
		w.add("rarity = " + w.arg(filter.Rarity))
	}
	if filter.Series != "" {
		w.add("set_series = " + w.arg(filter.Series))
	}
	if filter.Type != "" {
		w.add(w.arg(filter.Type) + " = ANY(types)")
	}
	return w
}

// ListCatalog returns one page of catalog cards ordered by name, set and number
func (s *PostgresStore) ListCatalog(ctx context.Context, filter models.CatalogFilter) ([]*models.CatalogCard, int, error) {
	w := catalogWhere(filter)

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tcg_catalog"+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count catalog cards: %w", err)
	}

	offset := models.NewPagination(filter.Page, filter.Limit, total).Offset()
	query := fmt.Sprintf(`
		SELECT %s
		FROM tcg_catalog%s
		ORDER BY name ASC, set_name ASC, number ASC NULLS LAST, id ASC
		LIMIT %s OFFSET %s`, catalogColumns, w.String(), w.arg(filter.Limit), w.arg(offset))

	cards, err := s.queryCatalogCards(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query catalog: %w", err)
	}
	return cards, total, nil
}

// SearchCatalog matches name or set name as a substring
func (s *PostgresStore) SearchCatalog(ctx context.Context, query string, limit int) ([]*models.CatalogCard, int, error) {
	pattern := containsPattern(query)

	var total int
	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tcg_catalog
		WHERE name ILIKE $1 OR set_name ILIKE $1`, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count catalog search: %w", err)
	}

	cards, err := s.queryCatalogCards(ctx, `
		SELECT `+catalogColumns+`
		FROM tcg_catalog
		WHERE name ILIKE $1 OR set_name ILIKE $1
		ORDER BY name ASC, id ASC
		LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search catalog: %w", err)
	}
	return cards, total, nil
}

// GetCatalogFilterOptions lists the distinct facet values present in the catalog
func (s *PostgresStore) GetCatalogFilterOptions(ctx context.Context) (*models.CatalogFilterOptions, error) {
	var (
		opts models.CatalogFilterOptions
		err  error
	)

	if opts.Sets, err = s.queryStrings(ctx, `
		SELECT DISTINCT set_name FROM tcg_catalog
		WHERE set_name <> ''
		ORDER BY set_name ASC`); err != nil {
		return nil, fmt.Errorf("failed to get catalog sets: %w", err)
	}

	if opts.Rarities, err = s.queryStrings(ctx, `
		SELECT DISTINCT rarity FROM tcg_catalog
		WHERE rarity IS NOT NULL AND rarity <> ''
		ORDER BY rarity ASC`); err != nil {
		return nil, fmt.Errorf("failed to get catalog rarities: %w", err)
	}

	if opts.Series, err = s.queryStrings(ctx, `
		SELECT DISTINCT set_series FROM tcg_catalog
		WHERE set_series IS NOT NULL AND set_series <> ''
		ORDER BY set_series ASC`); err != nil {
		return nil, fmt.Errorf("failed to get catalog series: %w", err)
	}

	if opts.Types, err = s.queryStrings(ctx, `
		SELECT DISTINCT t.type
		FROM tcg_catalog
		CROSS JOIN LATERAL unnest(types) AS t(type)
		ORDER BY t.type ASC`); err != nil {
		return nil, fmt.Errorf("failed to get catalog types: %w", err)
	}

	return &opts, nil
}

// GetCatalogStats returns the row count and the most recent sync time
func (s *PostgresStore) GetCatalogStats(ctx context.Context) (*models.CatalogStats, error) {
	var (
		stats      models.CatalogStats
		lastSynced sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), MAX(last_synced_at) FROM tcg_catalog`).Scan(&stats.TotalCards, &lastSynced)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog stats: %w", err)
	}
	if lastSynced.Valid {
		t := lastSynced.Time
		stats.LastSynced = &t
	}
	return &stats, nil
}

// FindCatalogCandidates returns catalog rows whose name and set equal the
// query case-insensitively, narrowed by exact number and by rarity when given.
func (s *PostgresStore) FindCatalogCandidates(ctx context.Context, q models.MatchQuery) ([]*models.CatalogCard, error) {
	w := &whereBuilder{}
	w.add("LOWER(name) = LOWER(" + w.arg(q.Name) + ")")
	w.add("LOWER(set_name) = LOWER(" + w.arg(q.Set) + ")")
	if q.Number != "" {
		w.add("number = " + w.arg(q.Number))
	}
	if q.Rarity != "" {
		w.add("LOWER(rarity) = LOWER(" + w.arg(q.Rarity) + ")")
	}

	cards, err := s.queryCatalogCards(ctx, "SELECT "+catalogColumns+" FROM tcg_catalog"+w.String()+" ORDER BY id ASC", w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog candidates: %w", err)
	}
	return cards, nil
}
