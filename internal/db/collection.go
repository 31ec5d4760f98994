package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

const collectionColumns = `pc.id, pc.name, pc.set_name, pc.number, pc.rarity, pc.condition, pc.value,
	pc.quantity, pc.image_url, pc.is_psa, pc.psa_rating, pc.created_at, pc.updated_at`

// ownedInCatalog correlates a collection row (pc) with catalog rows (tc).
// An unnumbered collection card only matches unnumbered catalog cards.
const ownedInCatalog = `LOWER(tc.name) = LOWER(pc.name)
	AND LOWER(tc.set_name) = LOWER(pc.set_name)
	AND (tc.number = pc.number OR (pc.number IS NULL AND tc.number IS NULL))`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCollectionCard(row rowScanner) (*models.CollectionCard, error) {
	var c models.CollectionCard
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Set,
		&c.Number,
		&c.Rarity,
		&c.Condition,
		&c.Value,
		&c.Quantity,
		&c.ImageURL,
		&c.IsPSA,
		&c.PSARating,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCard inserts a collection card; the caller supplies the id
func (s *PostgresStore) CreateCard(ctx context.Context, card *models.CollectionCard) (*models.CollectionCard, error) {
	if card == nil {
		return nil, fmt.Errorf("card cannot be nil")
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO pokemon_cards AS pc (
			id, name, set_name, number, rarity, condition, value, quantity, image_url, is_psa, psa_rating
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING `+collectionColumns,
		card.ID,
		card.Name,
		card.Set,
		card.Number,
		card.Rarity,
		string(card.Condition),
		card.Value,
		card.Quantity,
		card.ImageURL,
		card.IsPSA,
		card.PSARating,
	)

	created, err := scanCollectionCard(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) GetCard(ctx context.Context, id string) (*models.CollectionCard, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+collectionColumns+`
		FROM pokemon_cards pc
		WHERE pc.id = $1`, id)

	card, err := scanCollectionCard(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewResourceNotFoundError("card", id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// UpdateCard applies only the fields present in update. A PSA rating is
// stored only while the resulting is_psa is true.
func (s *PostgresStore) UpdateCard(ctx context.Context, id string, update *models.CardUpdate) (*models.CollectionCard, error) {
	if update == nil || update.Empty() {
		return s.GetCard(ctx, id)
	}

	b := &setBuilder{}
	if update.Name != nil {
		b.set("name", *update.Name)
	}
	if update.Set != nil {
		b.set("set_name", *update.Set)
	}
	if update.ClearNumber {
		b.setExpr("number", "NULL")
	} else if update.Number != nil {
		b.set("number", *update.Number)
	}
	if update.ClearRarity {
		b.setExpr("rarity", "NULL")
	} else if update.Rarity != nil {
		b.set("rarity", *update.Rarity)
	}
	if update.Condition != nil {
		b.set("condition", string(*update.Condition))
	}
	if update.Value != nil {
		b.set("value", *update.Value)
	}
	if update.Quantity != nil {
		b.set("quantity", *update.Quantity)
	}
	if update.ClearImageURL {
		b.setExpr("image_url", "NULL")
	} else if update.ImageURL != nil {
		b.set("image_url", *update.ImageURL)
	}

	isPSAExpr := "is_psa"
	if update.IsPSA != nil {
		b.set("is_psa", *update.IsPSA)
		isPSAExpr = b.arg(*update.IsPSA) + "::boolean"
	}
	switch {
	case update.ClearPSARating:
		b.setExpr("psa_rating", "NULL")
	case update.PSARating != nil:
		b.setExpr("psa_rating", fmt.Sprintf("CASE WHEN %s THEN %s::integer ELSE NULL END", isPSAExpr, b.arg(*update.PSARating)))
	case update.IsPSA != nil && !*update.IsPSA:
		b.setExpr("psa_rating", "NULL")
	}
	b.setExpr("updated_at", "NOW()")

	query := fmt.Sprintf(`
		UPDATE pokemon_cards AS pc
		SET %s
		WHERE pc.id = %s
		RETURNING %s`, b.String(), b.arg(id), collectionColumns)

	card, err := scanCollectionCard(s.db.QueryRowContext(ctx, query, b.args...))
	if err == sql.ErrNoRows {
		return nil, errors.NewResourceNotFoundError("card", id)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	return card, nil
}

// DeleteCard removes a card by id
func (s *PostgresStore) DeleteCard(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pokemon_cards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewResourceNotFoundError("card", id)
	}
	return nil
}

func collectionWhere(filter models.CollectionFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.Search != "" {
		p := w.arg(containsPattern(filter.Search))
		w.add(fmt.Sprintf("(pc.name ILIKE %[1]s OR pc.set_name ILIKE %[1]s OR pc.rarity ILIKE %[1]s)", p))
	}
	if filter.Set != "" {
		w.add("pc.set_name = " + w.arg(filter.Set))
	}
	if filter.Rarity != "" {
		w.add("pc.rarity = " + w.arg(filter.Rarity))
	}
	if filter.Condition != "" {
		w.add("pc.condition = " + w.arg(filter.Condition))
	}
	if filter.Type != "" {
		w.add(fmt.Sprintf("EXISTS (SELECT 1 FROM tcg_catalog tc WHERE %s AND %s = ANY(tc.types))", ownedInCatalog, w.arg(filter.Type)))
	}
	if filter.Series != "" {
		w.add(fmt.Sprintf("EXISTS (SELECT 1 FROM tcg_catalog tc WHERE %s AND tc.set_series = %s)", ownedInCatalog, w.arg(filter.Series)))
	}
	return w
}

// ListCards returns one page of the collection, newest first, plus the total match count
func (s *PostgresStore) ListCards(ctx context.Context, filter models.CollectionFilter) ([]*models.CollectionCard, int, error) {
	w := collectionWhere(filter)

	var total int
	countQuery := "SELECT COUNT(*) FROM pokemon_cards pc" + w.String()
	if err := s.db.QueryRowContext(ctx, countQuery, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cards: %w", err)
	}

	offset := models.NewPagination(filter.Page, filter.Limit, total).Offset()
	query := fmt.Sprintf(`
		SELECT %s
		FROM pokemon_cards pc%s
		ORDER BY pc.created_at DESC, pc.id
		LIMIT %s OFFSET %s`, collectionColumns, w.String(), w.arg(filter.Limit), w.arg(offset))

	rows, err := s.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*models.CollectionCard, 0)
	for rows.Next() {
		card, err := scanCollectionCard(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating cards: %w", err)
	}

	return cards, total, nil
}

// GetCollectionFilterOptions lists the distinct facet values present in the collection
func (s *PostgresStore) GetCollectionFilterOptions(ctx context.Context) (*models.CollectionFilterOptions, error) {
	var (
		opts models.CollectionFilterOptions
		err  error
	)

	if opts.Sets, err = s.queryStrings(ctx, `
		SELECT DISTINCT set_name
		FROM pokemon_cards
		WHERE set_name <> ''
		ORDER BY set_name ASC`); err != nil {
		return nil, fmt.Errorf("failed to get sets: %w", err)
	}

	if opts.Rarities, err = s.queryStrings(ctx, `
		SELECT DISTINCT rarity
		FROM pokemon_cards
		WHERE rarity IS NOT NULL AND rarity <> ''
		ORDER BY rarity ASC`); err != nil {
		return nil, fmt.Errorf("failed to get rarities: %w", err)
	}

	if opts.Conditions, err = s.queryStrings(ctx, `
		SELECT condition
		FROM (SELECT DISTINCT condition FROM pokemon_cards) AS distinct_conditions
		ORDER BY
			CASE condition
				WHEN 'Mint' THEN 1
				WHEN 'Near Mint' THEN 2
				WHEN 'Excellent' THEN 3
				WHEN 'Good' THEN 4
				WHEN 'Fair' THEN 5
				WHEN 'Poor' THEN 6
				ELSE 7
			END`); err != nil {
		return nil, fmt.Errorf("failed to get conditions: %w", err)
	}

	if opts.Types, err = s.queryStrings(ctx, `
		SELECT DISTINCT t.type
		FROM pokemon_cards pc
		JOIN tcg_catalog tc ON `+ownedInCatalog+`
		CROSS JOIN LATERAL unnest(tc.types) AS t(type)
		ORDER BY t.type ASC`); err != nil {
		return nil, fmt.Errorf("failed to get types: %w", err)
	}

	return &opts, nil
}

// GetCollectionStats sums copies and value across the collection
func (s *PostgresStore) GetCollectionStats(ctx context.Context) (*models.CollectionStats, error) {
	var stats models.CollectionStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(value * quantity), 0),
			COUNT(*)
		FROM pokemon_cards`).Scan(&stats.TotalCards, &stats.TotalValue, &stats.UniqueCards)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection stats: %w", err)
	}
	stats.TotalValue = models.RoundCents(stats.TotalValue)
	return &stats, nil
}

func (s *PostgresStore) queryStrings(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
