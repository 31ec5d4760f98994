package models

import "time"

// CatalogCard mirrors one record of the external catalog
type CatalogCard struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Supertype              *string   `json:"supertype"`
	Subtypes               []string  `json:"subtypes"`
	HP                     *string   `json:"hp"`
	Types                  []string  `json:"types"`
	SetID                  string    `json:"setId"`
	SetName                string    `json:"setName"`
	SetSeries              *string   `json:"setSeries"`
	Number                 *string   `json:"number"`
	Artist                 *string   `json:"artist"`
	Rarity                 *string   `json:"rarity"`
	FlavorText             *string   `json:"flavorText"`
	NationalPokedexNumbers []int64   `json:"nationalPokedexNumbers"`
	ImageSmallURL          *string   `json:"imageSmallUrl"`
	ImageLargeURL          *string   `json:"imageLargeUrl"`
	TCGPlayerURL           *string   `json:"tcgplayerUrl"`
	CardmarketURL          *string   `json:"cardmarketUrl"`
	PriceNormalMarket      *float64  `json:"priceNormalMarket"`
	PriceNormalMid         *float64  `json:"priceNormalMid"`
	PriceNormalLow         *float64  `json:"priceNormalLow"`
	PriceHolofoilMarket    *float64  `json:"priceHolofoilMarket"`
	PriceHolofoilMid       *float64  `json:"priceHolofoilMid"`
	LastSyncedAt           time.Time `json:"lastSyncedAt"`
}

// NoPriceRank is the completeness rank of a card without any price
const NoPriceRank = 5

// PriceRank orders cards by how complete their price data is; lower is better.
// normal market > normal mid > normal low > holofoil market > holofoil mid > none
func (c *CatalogCard) PriceRank() int {
	for rank, price := range c.pricesByCompleteness() {
		if price != nil {
			return rank
		}
	}
	return NoPriceRank
}

// BestPrice returns the first populated price in completeness order
func (c *CatalogCard) BestPrice() (float64, bool) {
	for _, price := range c.pricesByCompleteness() {
		if price != nil {
			return *price, true
		}
	}
	return 0, false
}

func (c *CatalogCard) pricesByCompleteness() [5]*float64 {
	return [5]*float64{
		c.PriceNormalMarket,
		c.PriceNormalMid,
		c.PriceNormalLow,
		c.PriceHolofoilMarket,
		c.PriceHolofoilMid,
	}
}

// Prices groups the five price fields for price lookups
func (c *CatalogCard) Prices() CatalogPrices {
	return CatalogPrices{
		Market:         c.PriceNormalMarket,
		Mid:            c.PriceNormalMid,
		Low:            c.PriceNormalLow,
		HolofoilMarket: c.PriceHolofoilMarket,
		HolofoilMid:    c.PriceHolofoilMid,
	}
}

// Image returns the large image, falling back to the small one
func (c *CatalogCard) Image() *string {
	if c.ImageLargeURL != nil && *c.ImageLargeURL != "" {
		return c.ImageLargeURL
	}
	return c.ImageSmallURL
}

// CatalogPrices is the price block returned by catalog-price lookups
type CatalogPrices struct {
	Market         *float64 `json:"market"`
	Mid            *float64 `json:"mid"`
	Low            *float64 `json:"low"`
	HolofoilMarket *float64 `json:"holofoilMarket"`
	HolofoilMid    *float64 `json:"holofoilMid"`
}

// CatalogStats summarizes the mirrored catalog
type CatalogStats struct {
	TotalCards int        `json:"totalCards"`
	LastSynced *time.Time `json:"lastSynced"`
}

// MatchQuery holds the descriptive fields used to find a catalog card
type MatchQuery struct {
	Name   string
	Set    string
	Number string
	Rarity string
}
