package models

import "math"

// Condition is the physical grade of an owned card
type Condition string

const (
	ConditionMint      Condition = "Mint"
	ConditionNearMint  Condition = "Near Mint"
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

// Conditions lists every condition from best to worst
var Conditions = []Condition{
	ConditionMint,
	ConditionNearMint,
	ConditionExcellent,
	ConditionGood,
	ConditionFair,
	ConditionPoor,
}

// Valid reports whether c is one of the known conditions
func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// CollectionCard is an owned card or a stack of identical copies
type CollectionCard struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Set       string    `json:"set"`
	Number    *string   `json:"number"`
	Rarity    *string   `json:"rarity"`
	Condition Condition `json:"condition"`
	Value     float64   `json:"value"`
	Quantity  int       `json:"quantity"`
	ImageURL  *string   `json:"imageUrl"`
	IsPSA     bool      `json:"isPsa"`
	PSARating *int      `json:"psaRating"`
	Timestamps
}

// TotalValue is value times quantity, rounded to cents
func (c *CollectionCard) TotalValue() float64 {
	return RoundCents(c.Value * float64(c.Quantity))
}

// RoundCents rounds v to two decimal places
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CollectionStats aggregates the whole collection
type CollectionStats struct {
	TotalCards  int     `json:"totalCards"`
	TotalValue  float64 `json:"totalValue"`
	UniqueCards int     `json:"uniqueCards"`
}

// CardUpdate is a partial update; nil fields are left unchanged.
// Clear* flags request the nullable column be set to NULL.
type CardUpdate struct {
	Name      *string
	Set       *string
	Number    *string
	Rarity    *string
	Condition *Condition
	Value     *float64
	Quantity  *int
	ImageURL  *string
	IsPSA     *bool
	PSARating *int

	ClearNumber    bool
	ClearRarity    bool
	ClearImageURL  bool
	ClearPSARating bool
}

// Empty reports whether the update changes nothing
func (u *CardUpdate) Empty() bool {
	return u.Name == nil && u.Set == nil && u.Number == nil && u.Rarity == nil &&
		u.Condition == nil && u.Value == nil && u.Quantity == nil && u.ImageURL == nil &&
		u.IsPSA == nil && u.PSARating == nil &&
		!u.ClearNumber && !u.ClearRarity && !u.ClearImageURL && !u.ClearPSARating
}
