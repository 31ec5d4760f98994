package cards

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

func decodeInput(t *testing.T, body string) *CardInput {
	var in CardInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return &in
}

func decodePatch(t *testing.T, body string) *CardPatch {
	var p CardPatch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return &p
}

func TestCardInput_Defaults(t *testing.T) {
	in := decodeInput(t, `{"name": "Charizard", "set": "Base Set", "value": "50.00"}`)
	card, err := in.toCard()
	require.NoError(t, err)
	assert.Equal(t, 50.0, card.Value)
	assert.Equal(t, 1, card.Quantity)
	assert.Equal(t, models.ConditionNearMint, card.Condition)
	assert.Nil(t, card.Number)
	assert.False(t, card.IsPSA)
	assert.Nil(t, card.PSARating)
}

func TestCardInput_ValueAndQuantityParsing(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		value    float64
		quantity int
	}{
		{"numeric", `{"name": "a", "set": "b", "value": 12.346, "quantity": 3}`, 12.35, 3},
		{"strings", `{"name": "a", "set": "b", "value": "7.5", "quantity": "2"}`, 7.5, 2},
		{"trailing text", `{"name": "a", "set": "b", "value": "19.99 usd", "quantity": "4 copies"}`, 19.99, 4},
		{"non-numeric quantity", `{"name": "a", "set": "b", "value": 1, "quantity": "lots"}`, 1, 1},
		{"zero quantity", `{"name": "a", "set": "b", "value": 1, "quantity": 0}`, 1, 1},
		{"null quantity", `{"name": "a", "set": "b", "value": 0, "quantity": null}`, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := decodeInput(t, tt.body).toCard()
			require.NoError(t, err)
			assert.Equal(t, tt.value, card.Value)
			assert.Equal(t, tt.quantity, card.Quantity)
		})
	}
}

func TestCardInput_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"set": "b", "value": 1}`, "name"},
		{"blank set", `{"name": "a", "set": "  ", "value": 1}`, "set"},
		{"missing value", `{"name": "a", "set": "b"}`, "value"},
		{"unparsable value", `{"name": "a", "set": "b", "value": "priceless"}`, "value"},
		{"negative value", `{"name": "a", "set": "b", "value": -1}`, "value"},
		{"negative quantity", `{"name": "a", "set": "b", "value": 1, "quantity": -2}`, "quantity"},
		{"unknown condition", `{"name": "a", "set": "b", "value": 1, "condition": "Played"}`, "condition"},
		{"rating out of range", `{"name": "a", "set": "b", "value": 1, "isPsa": true, "psaRating": 11}`, "psaRating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeInput(t, tt.body).toCard()
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
		})
	}

	_, err := decodeInput(t, `{"set": "b", "value": 1}`).toCard()
	assert.Equal(t, "Missing required fields: name, set, and value are required", apperrors.MessageOf(err))
}

func TestCardInput_PSARating(t *testing.T) {
	card, err := decodeInput(t, `{"name": "a", "set": "b", "value": 1, "isPsa": true, "psaRating": "9"}`).toCard()
	require.NoError(t, err)
	assert.True(t, card.IsPSA)
	assert.Equal(t, 9, *card.PSARating)

	card, err = decodeInput(t, `{"name": "a", "set": "b", "value": 1, "isPsa": false, "psaRating": 9}`).toCard()
	require.NoError(t, err)
	assert.Nil(t, card.PSARating)
}

func TestCardPatch_OnlyPresentFields(t *testing.T) {
	update, err := decodePatch(t, `{"value": "75.5"}`).toUpdate()
	require.NoError(t, err)
	assert.Equal(t, 75.5, *update.Value)
	assert.Nil(t, update.Name)
	assert.Nil(t, update.Quantity)
	assert.False(t, update.ClearNumber)

	empty, err := decodePatch(t, `{}`).toUpdate()
	require.NoError(t, err)
	assert.True(t, empty.Empty())
}

func TestCardPatch_Clearing(t *testing.T) {
	update, err := decodePatch(t, `{"number": null, "rarity": "", "imageUrl": null, "psaRating": null, "isPsa": false}`).toUpdate()
	require.NoError(t, err)
	assert.True(t, update.ClearNumber)
	assert.True(t, update.ClearRarity)
	assert.True(t, update.ClearImageURL)
	assert.True(t, update.ClearPSARating)
	assert.False(t, *update.IsPSA)
}

func TestCardPatch_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"blank name", `{"name": ""}`, "name"},
		{"null set", `{"set": null}`, "set"},
		{"null value", `{"value": null}`, "value"},
		{"zero quantity", `{"quantity": 0}`, "quantity"},
		{"text quantity", `{"quantity": "many"}`, "quantity"},
		{"bad condition", `{"condition": "Pristine"}`, "condition"},
		{"empty condition", `{"condition": ""}`, "condition"},
		{"rating too low", `{"isPsa": true, "psaRating": 0}`, "psaRating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePatch(t, tt.body).toUpdate()
			require.Error(t, err)
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
		})
	}
}
