package cards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/tcg-tracker/internal/catalog"
	"github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
	"github.com/Kamar-Folarin/tcg-tracker/internal/tcgapi"
	"github.com/Kamar-Folarin/tcg-tracker/internal/utils"
	pkgutils "github.com/Kamar-Folarin/tcg-tracker/pkg/utils"
)

// Store persists collection cards
type Store interface {
	CreateCard(ctx context.Context, card *models.CollectionCard) (*models.CollectionCard, error)
	GetCard(ctx context.Context, id string) (*models.CollectionCard, error)
	UpdateCard(ctx context.Context, id string, update *models.CardUpdate) (*models.CollectionCard, error)
	DeleteCard(ctx context.Context, id string) error
	ListCards(ctx context.Context, filter models.CollectionFilter) ([]*models.CollectionCard, int, error)
	GetCollectionFilterOptions(ctx context.Context) (*models.CollectionFilterOptions, error)
	GetCollectionStats(ctx context.Context) (*models.CollectionStats, error)
}

// CatalogLookup reads a mirrored catalog card
type CatalogLookup interface {
	GetCatalogCard(ctx context.Context, id string) (*models.CatalogCard, error)
}

// PriceMatcher finds the catalog card that prices a collection record
type PriceMatcher interface {
	FindMatch(ctx context.Context, q models.MatchQuery) (*models.CatalogCard, error)
}

// Upstream fetches a single card from the external catalog
type Upstream interface {
	GetCard(ctx context.Context, id string) (*tcgapi.Card, error)
}

// CardView is a collection card with its computed total value
type CardView struct {
	*models.CollectionCard
	TotalValue float64 `json:"totalValue"`
}

// NewCardView wraps card with its total value
func NewCardView(card *models.CollectionCard) *CardView {
	return &CardView{CollectionCard: card, TotalValue: card.TotalValue()}
}

// CatalogRef identifies the catalog card a price came from
type CatalogRef struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Set    string  `json:"set"`
	Number *string `json:"number"`
}

// PriceLookup pairs a collection card's stored value with catalog prices
type PriceLookup struct {
	CatalogCard  CatalogRef           `json:"catalogCard"`
	Prices       models.CatalogPrices `json:"prices"`
	CurrentValue float64              `json:"currentValue"`
}

// Service implements collection CRUD and price lookups
type Service struct {
	store    Store
	catalog  CatalogLookup
	matcher  PriceMatcher
	upstream Upstream
	logger   *logrus.Logger
	now      func() time.Time
}

// NewService creates a collection service. upstream may be nil, in which
// case add-from-catalog only uses the local catalog.
func NewService(store Store, catalogStore CatalogLookup, matcher PriceMatcher, upstream Upstream, logger *logrus.Logger) *Service {
	return &Service{
		store:    store,
		catalog:  catalogStore,
		matcher:  matcher,
		upstream: upstream,
		logger:   logger,
		now:      time.Now,
	}
}

func cardNotFound(id string) error {
	return errors.NewResourceNotFoundError("card", id)
}

// Create validates input, applies defaults and stores a new card
func (s *Service) Create(ctx context.Context, in CardInput) (*CardView, error) {
	card, err := in.toCard()
	if err != nil {
		return nil, err
	}
	card.ID = uuid.NewString()

	created, err := s.store.CreateCard(ctx, card)
	if err != nil {
		s.logger.WithError(err).WithField("name", card.Name).Error("Failed to create card")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"card_id": created.ID,
		"name":    created.Name,
		"set":     created.Set,
	}).Info("Card added to collection")
	return NewCardView(created), nil
}

// Get returns one card. Ids that are not UUIDs cannot exist and are reported
// as not found.
func (s *Service) Get(ctx context.Context, id string) (*CardView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, cardNotFound(id)
	}
	card, err := s.store.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewCardView(card), nil
}

// Update applies the fields present in patch
func (s *Service) Update(ctx context.Context, id string, patch CardPatch) (*CardView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, cardNotFound(id)
	}
	update, err := patch.toUpdate()
	if err != nil {
		return nil, err
	}

	card, err := s.store.UpdateCard(ctx, id, update)
	if err != nil {
		if !errors.IsNotFound(err) {
			s.logger.WithError(err).WithField("card_id", id).Error("Failed to update card")
		}
		return nil, err
	}
	return NewCardView(card), nil
}

// Delete removes a card
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return cardNotFound(id)
	}
	if err := s.store.DeleteCard(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("card_id", id).Info("Card removed from collection")
	return nil
}

// List returns one page of the collection, newest first
func (s *Service) List(ctx context.Context, filter models.CollectionFilter) (*models.PagedResult[*CardView], error) {
	filter.Page, filter.Limit = utils.Normalize(filter.Page, filter.Limit)
	filter.Search = strings.TrimSpace(filter.Search)

	cards, total, err := s.store.ListCards(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list cards")
		return nil, err
	}

	views := make([]*CardView, len(cards))
	for i, card := range cards {
		views[i] = NewCardView(card)
	}
	return &models.PagedResult[*CardView]{
		Data:       views,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Filters lists the facet values present in the collection
func (s *Service) Filters(ctx context.Context) (*models.CollectionFilterOptions, error) {
	return s.store.GetCollectionFilterOptions(ctx)
}

// Stats aggregates copies and value across the collection
func (s *Service) Stats(ctx context.Context) (*models.CollectionStats, error) {
	stats, err := s.store.GetCollectionStats(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalValue = models.RoundCents(stats.TotalValue)
	return stats, nil
}

// CatalogPrice finds the catalog card matching a collection card by name,
// set and number and returns its prices next to the stored value
func (s *Service) CatalogPrice(ctx context.Context, id string) (*PriceLookup, error) {
	view, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	card := view.CollectionCard

	q := models.MatchQuery{Name: card.Name, Set: card.Set}
	if card.Number != nil {
		q.Number = *card.Number
	}
	match, err := s.matcher.FindMatch(ctx, q)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, errors.NewNotFoundError("Card not found in catalog", nil)
	}

	return &PriceLookup{
		CatalogCard: CatalogRef{
			ID:     match.ID,
			Name:   match.Name,
			Set:    match.SetName,
			Number: match.Number,
		},
		Prices:       match.Prices(),
		CurrentValue: card.Value,
	}, nil
}

// AddFromCatalog copies a catalog card into the collection. The local
// catalog is consulted first, then the external source.
func (s *Service) AddFromCatalog(ctx context.Context, in FromCatalogInput) (*CardView, error) {
	catalogID := strings.TrimSpace(in.CatalogID)
	if catalogID == "" {
		return nil, errors.NewFieldValidationError("catalogId", "catalogId is required")
	}

	source, err := s.lookupCatalogCard(ctx, catalogID)
	if err != nil {
		return nil, err
	}

	input := CardInput{
		Name:      source.Name,
		Set:       source.SetName,
		Number:    source.Number,
		Rarity:    source.Rarity,
		Condition: in.Condition,
		Value:     in.Value,
		Quantity:  in.Quantity,
		ImageURL:  source.Image(),
	}
	if input.Value == nil {
		price, _ := source.BestPrice()
		v := pkgutils.Number(price)
		input.Value = &v
	}

	return s.Create(ctx, input)
}

func (s *Service) lookupCatalogCard(ctx context.Context, id string) (*models.CatalogCard, error) {
	card, err := s.catalog.GetCatalogCard(ctx, id)
	if err == nil {
		return card, nil
	}
	if !errors.IsNotFound(err) || s.upstream == nil {
		return nil, err
	}

	s.logger.WithField("catalog_id", id).Debug("Card not in local catalog, asking catalog API")
	remote, err := s.upstream.GetCard(ctx, id)
	if err != nil {
		if tcgapi.IsNotFound(err) {
			return nil, errors.NewResourceNotFoundError("catalog card", id)
		}
		return nil, fmt.Errorf("failed to fetch catalog card: %w", err)
	}
	return catalog.ToCatalogCard(*remote, s.now())
}
