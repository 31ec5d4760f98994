package tcgapi

import "encoding/json"

// Card is one record as served by the catalog API
type Card struct {
	ID                     string      `json:"id"`
	Name                   string      `json:"name"`
	Supertype              string      `json:"supertype"`
	Subtypes               []string    `json:"subtypes"`
	HP                     string      `json:"hp"`
	Types                  []string    `json:"types"`
	EvolvesFrom            string      `json:"evolvesFrom,omitempty"`
	Set                    SetInfo     `json:"set"`
	Number                 string      `json:"number"`
	Artist                 string      `json:"artist"`
	Rarity                 string      `json:"rarity"`
	FlavorText             string      `json:"flavorText"`
	NationalPokedexNumbers []int64     `json:"nationalPokedexNumbers"`
	Images                 Images      `json:"images"`
	TCGPlayer              *TCGPlayer  `json:"tcgplayer,omitempty"`
	Cardmarket             *Cardmarket `json:"cardmarket,omitempty"`
}

type SetInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

type Images struct {
	Small string `json:"small"`
	Large string `json:"large"`
}

// TCGPlayer carries marketplace prices keyed by finish (normal, holofoil, ...)
type TCGPlayer struct {
	URL       string                `json:"url"`
	UpdatedAt string                `json:"updatedAt"`
	Prices    map[string]PriceBlock `json:"prices"`
}

type PriceBlock struct {
	Low       *float64 `json:"low"`
	Mid       *float64 `json:"mid"`
	High      *float64 `json:"high"`
	Market    *float64 `json:"market"`
	DirectLow *float64 `json:"directLow"`
}

type Cardmarket struct {
	URL       string `json:"url"`
	UpdatedAt string `json:"updatedAt"`
}

// Price returns the price block for a finish, if present
func (c *Card) Price(finish string) (PriceBlock, bool) {
	if c.TCGPlayer == nil || c.TCGPlayer.Prices == nil {
		return PriceBlock{}, false
	}
	block, ok := c.TCGPlayer.Prices[finish]
	return block, ok
}

// CardsPage is one page of the card listing; records stay raw so each can
// be decoded independently.
type CardsPage struct {
	Data       []json.RawMessage `json:"data"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	Count      int               `json:"count"`
	TotalCount int               `json:"totalCount"`
}

// SearchResult is a decoded page of cards for live search
type SearchResult struct {
	Data       []Card `json:"data"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	Count      int    `json:"count"`
	TotalCount int    `json:"totalCount"`
}

type cardEnvelope struct {
	Data Card `json:"data"`
}
