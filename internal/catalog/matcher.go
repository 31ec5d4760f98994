package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

// CandidateFinder returns catalog rows whose name and set match
// case-insensitively, narrowed by number or rarity when given
type CandidateFinder interface {
	FindCatalogCandidates(ctx context.Context, q models.MatchQuery) ([]*models.CatalogCard, error)
}

// Matcher locates the catalog card that best prices a collection record
type Matcher struct {
	store  CandidateFinder
	logger *logrus.Logger
}

// NewMatcher creates a catalog matcher
func NewMatcher(store CandidateFinder, logger *logrus.Logger) *Matcher {
	return &Matcher{store: store, logger: logger}
}

// FindMatch tries an exact name, set and number match first, then falls back
// to name and set (plus rarity when given). A nil card with a nil error
// means nothing matched.
func (m *Matcher) FindMatch(ctx context.Context, q models.MatchQuery) (*models.CatalogCard, error) {
	q.Name = strings.TrimSpace(q.Name)
	q.Set = strings.TrimSpace(q.Set)
	q.Number = strings.TrimSpace(q.Number)
	q.Rarity = strings.TrimSpace(q.Rarity)

	logger := m.logger.WithFields(logrus.Fields{
		"name":   q.Name,
		"set":    q.Set,
		"number": q.Number,
	})

	if q.Number != "" {
		candidates, err := m.store.FindCatalogCandidates(ctx, models.MatchQuery{
			Name:   q.Name,
			Set:    q.Set,
			Number: q.Number,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to find exact catalog match: %w", err)
		}
		if best := bestExact(candidates); best != nil {
			logger.WithField("catalog_id", best.ID).Debug("Found exact catalog match")
			return best, nil
		}
	}

	candidates, err := m.store.FindCatalogCandidates(ctx, models.MatchQuery{
		Name:   q.Name,
		Set:    q.Set,
		Rarity: q.Rarity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog match: %w", err)
	}
	best := bestLoose(candidates)
	if best == nil {
		logger.Debug("No catalog match")
		return nil, nil
	}
	logger.WithField("catalog_id", best.ID).Debug("Found loose catalog match")
	return best, nil
}

func bestExact(candidates []*models.CatalogCard) *models.CatalogCard {
	var best *models.CatalogCard
	for _, c := range candidates {
		if best == nil || c.PriceRank() < best.PriceRank() {
			best = c
		}
	}
	return best
}

func bestLoose(candidates []*models.CatalogCard) *models.CatalogCard {
	if len(candidates) == 0 {
		return nil
	}
	ranked := make([]*models.CatalogCard, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return looseLess(ranked[i], ranked[j])
	})
	return ranked[0]
}

// looseLess orders by price rank, then cards with a number, then number
// ascending, then id
func looseLess(a, b *models.CatalogCard) bool {
	if ra, rb := a.PriceRank(), b.PriceRank(); ra != rb {
		return ra < rb
	}
	hasA, hasB := a.Number != nil, b.Number != nil
	if hasA != hasB {
		return hasA
	}
	if hasA && *a.Number != *b.Number {
		return *a.Number < *b.Number
	}
	return a.ID < b.ID
}
