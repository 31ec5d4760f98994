package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
	"github.com/Kamar-Folarin/tcg-tracker/internal/tcgapi"
)

// ToCatalogCard maps an upstream record onto a catalog row. Records without
// an id, a name or a set are rejected.
func ToCatalogCard(card tcgapi.Card, syncedAt time.Time) (*models.CatalogCard, error) {
	switch {
	case strings.TrimSpace(card.ID) == "":
		return nil, fmt.Errorf("record has no id")
	case strings.TrimSpace(card.Name) == "":
		return nil, fmt.Errorf("record %s has no name", card.ID)
	case card.Set.ID == "" || card.Set.Name == "":
		return nil, fmt.Errorf("record %s has no set", card.ID)
	}

	out := &models.CatalogCard{
		ID:                     card.ID,
		Name:                   card.Name,
		Supertype:              optString(card.Supertype),
		Subtypes:               nonNil(card.Subtypes),
		HP:                     optString(card.HP),
		Types:                  nonNil(card.Types),
		SetID:                  card.Set.ID,
		SetName:                card.Set.Name,
		SetSeries:              optString(card.Set.Series),
		Number:                 optString(card.Number),
		Artist:                 optString(card.Artist),
		Rarity:                 optString(card.Rarity),
		FlavorText:             optString(card.FlavorText),
		NationalPokedexNumbers: card.NationalPokedexNumbers,
		ImageSmallURL:          optString(card.Images.Small),
		ImageLargeURL:          optString(card.Images.Large),
		LastSyncedAt:           syncedAt,
	}
	if out.NationalPokedexNumbers == nil {
		out.NationalPokedexNumbers = []int64{}
	}

	if card.TCGPlayer != nil {
		out.TCGPlayerURL = optString(card.TCGPlayer.URL)
	}
	if card.Cardmarket != nil {
		out.CardmarketURL = optString(card.Cardmarket.URL)
	}

	if normal, ok := card.Price("normal"); ok {
		out.PriceNormalMarket = optPrice(normal.Market)
		out.PriceNormalMid = optPrice(normal.Mid)
		out.PriceNormalLow = optPrice(normal.Low)
	}
	if holo, ok := card.Price("holofoil"); ok {
		out.PriceHolofoilMarket = optPrice(holo.Market)
		out.PriceHolofoilMid = optPrice(holo.Mid)
	}

	return out, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optPrice treats a zero price as missing
func optPrice(p *float64) *float64 {
	if p == nil || *p == 0 {
		return nil
	}
	v := *p
	return &v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
