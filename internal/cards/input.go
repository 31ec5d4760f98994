package cards

import (
	"fmt"
	"strings"

	"github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
	"github.com/Kamar-Folarin/tcg-tracker/pkg/utils"
)

const missingFieldsMessage = "Missing required fields: name, set, and value are required"

// CardInput is the body of a create request
type CardInput struct {
	Name      string             `json:"name"`
	Set       string             `json:"set"`
	Number    *string            `json:"number"`
	Rarity    *string            `json:"rarity"`
	Condition string             `json:"condition"`
	Value     *utils.LooseNumber `json:"value"`
	Quantity  *utils.LooseNumber `json:"quantity"`
	ImageURL  *string            `json:"imageUrl"`
	IsPSA     bool               `json:"isPsa"`
	PSARating *utils.LooseNumber `json:"psaRating"`
}

// CardPatch is the body of a partial update; absent keys are left unchanged
type CardPatch struct {
	Name      utils.Optional[string]            `json:"name"`
	Set       utils.Optional[string]            `json:"set"`
	Number    utils.Optional[string]            `json:"number"`
	Rarity    utils.Optional[string]            `json:"rarity"`
	Condition utils.Optional[string]            `json:"condition"`
	Value     utils.Optional[utils.LooseNumber] `json:"value"`
	Quantity  utils.Optional[utils.LooseNumber] `json:"quantity"`
	ImageURL  utils.Optional[string]            `json:"imageUrl"`
	IsPSA     utils.Optional[bool]              `json:"isPsa"`
	PSARating utils.Optional[utils.LooseNumber] `json:"psaRating"`
}

// FromCatalogInput is the body of an add-from-catalog request
type FromCatalogInput struct {
	CatalogID string             `json:"catalogId"`
	Condition string             `json:"condition"`
	Value     *utils.LooseNumber `json:"value"`
	Quantity  *utils.LooseNumber `json:"quantity"`
}

// toCard validates a create request and applies defaults
func (in *CardInput) toCard() (*models.CollectionCard, error) {
	name := strings.TrimSpace(in.Name)
	set := strings.TrimSpace(in.Set)
	switch {
	case name == "":
		return nil, errors.NewFieldValidationError("name", missingFieldsMessage)
	case set == "":
		return nil, errors.NewFieldValidationError("set", missingFieldsMessage)
	case in.Value == nil:
		return nil, errors.NewFieldValidationError("value", missingFieldsMessage)
	}

	value, err := parseValue(*in.Value)
	if err != nil {
		return nil, err
	}
	quantity, err := defaultQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	condition, err := parseCondition(in.Condition)
	if err != nil {
		return nil, err
	}

	card := &models.CollectionCard{
		Name:      name,
		Set:       set,
		Number:    nonEmpty(in.Number),
		Rarity:    nonEmpty(in.Rarity),
		Condition: condition,
		Value:     value,
		Quantity:  quantity,
		ImageURL:  nonEmpty(in.ImageURL),
		IsPSA:     in.IsPSA,
	}

	if in.IsPSA && in.PSARating != nil {
		if rating, ok := in.PSARating.Int(); ok {
			if err := checkRating(rating); err != nil {
				return nil, err
			}
			card.PSARating = &rating
		}
	}

	return card, nil
}

// toUpdate converts a patch into a store update
func (p *CardPatch) toUpdate() (*models.CardUpdate, error) {
	u := &models.CardUpdate{}

	if p.Name.Set {
		name := strings.TrimSpace(p.Name.Value)
		if p.Name.Null || name == "" {
			return nil, errors.NewFieldValidationError("name", "name cannot be empty")
		}
		u.Name = &name
	}
	if p.Set.Set {
		set := strings.TrimSpace(p.Set.Value)
		if p.Set.Null || set == "" {
			return nil, errors.NewFieldValidationError("set", "set cannot be empty")
		}
		u.Set = &set
	}

	u.Number, u.ClearNumber = optionalText(p.Number)
	u.Rarity, u.ClearRarity = optionalText(p.Rarity)
	u.ImageURL, u.ClearImageURL = optionalText(p.ImageURL)

	if p.Condition.Set {
		if p.Condition.Null || strings.TrimSpace(p.Condition.Value) == "" {
			return nil, errors.NewFieldValidationError("condition", "condition cannot be empty")
		}
		condition, err := parseCondition(p.Condition.Value)
		if err != nil {
			return nil, err
		}
		u.Condition = &condition
	}

	if p.Value.Set {
		if p.Value.Null {
			return nil, errors.NewFieldValidationError("value", "value must be a number")
		}
		value, err := parseValue(p.Value.Value)
		if err != nil {
			return nil, err
		}
		u.Value = &value
	}

	if p.Quantity.Set {
		quantity, ok := p.Quantity.Value.Int()
		if p.Quantity.Null || !ok {
			return nil, errors.NewFieldValidationError("quantity", "quantity must be a whole number")
		}
		if quantity < 1 {
			return nil, errors.NewFieldValidationError("quantity", "quantity must be at least 1")
		}
		u.Quantity = &quantity
	}

	if p.IsPSA.Set {
		isPSA := p.IsPSA.Value && !p.IsPSA.Null
		u.IsPSA = &isPSA
	}

	if p.PSARating.Set {
		rating, ok := p.PSARating.Value.Int()
		switch {
		case p.PSARating.Null:
			u.ClearPSARating = true
		case !ok:
			return nil, errors.NewFieldValidationError("psaRating", "psaRating must be a whole number")
		default:
			if err := checkRating(rating); err != nil {
				return nil, err
			}
			u.PSARating = &rating
		}
	}

	return u, nil
}

func parseValue(n utils.LooseNumber) (float64, error) {
	value, ok := n.Float()
	if !ok {
		return 0, errors.NewFieldValidationError("value", "value must be a number")
	}
	if value < 0 {
		return 0, errors.NewFieldValidationError("value", "value cannot be negative")
	}
	return models.RoundCents(value), nil
}

// defaultQuantity treats a missing, non-numeric or zero quantity as one copy
func defaultQuantity(n *utils.LooseNumber) (int, error) {
	if n == nil {
		return 1, nil
	}
	quantity, ok := n.Int()
	if !ok || quantity == 0 {
		return 1, nil
	}
	if quantity < 0 {
		return 0, errors.NewFieldValidationError("quantity", "quantity must be at least 1")
	}
	return quantity, nil
}

func parseCondition(raw string) (models.Condition, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.ConditionNearMint, nil
	}
	condition := models.Condition(raw)
	if !condition.Valid() {
		names := make([]string, len(models.Conditions))
		for i, c := range models.Conditions {
			names[i] = string(c)
		}
		return "", errors.NewFieldValidationError("condition",
			fmt.Sprintf("condition must be one of: %s", strings.Join(names, ", ")))
	}
	return condition, nil
}

func checkRating(rating int) error {
	if rating < 1 || rating > 10 {
		return errors.NewFieldValidationError("psaRating", "psaRating must be between 1 and 10")
	}
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// optionalText maps a nullable text field: null or blank clears it
func optionalText(o utils.Optional[string]) (*string, bool) {
	if !o.Set {
		return nil, false
	}
	v := strings.TrimSpace(o.Value)
	if o.Null || v == "" {
		return nil, true
	}
	return &v, false
}
