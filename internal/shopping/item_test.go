package shopping

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/listwise/internal/dictionary"
	"github.com/Veraticus/listwise/internal/model"
)

func TestCreateItemFromFreeText(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantName     string
		wantQuantity string
		wantUnit     string
		wantCategory string
	}{
		{name: "amount, unit and tag", text: "2 kg maçã @hortifruti", wantName: "maçã", wantQuantity: "2", wantUnit: "kg", wantCategory: "hortifruti"},
		{name: "last tag wins", text: "leite @laticinios @promo", wantName: "leite", wantQuantity: "1", wantUnit: "un", wantCategory: "promo"},
		{name: "defaults", text: "pão francês", wantName: "pão francês", wantQuantity: "1", wantUnit: "un", wantCategory: "outros"},
		{name: "glued known unit", text: "500g queijo", wantName: "queijo", wantQuantity: "500", wantUnit: "g", wantCategory: "outros"},
		{name: "fraction", text: "1/2 dz ovos", wantName: "ovos", wantQuantity: "0.5", wantUnit: "dz", wantCategory: "outros"},
		{name: "count without unit", text: "6 bananas", wantName: "bananas", wantQuantity: "6", wantUnit: "un", wantCategory: "outros"},
		{name: "glued custom unit", text: "2cx leite", wantName: "leite", wantQuantity: "2", wantUnit: "cx", wantCategory: "outros"},
		{name: "tag in the middle", text: "3 l @Bebidas suco de uva", wantName: "suco de uva", wantQuantity: "3", wantUnit: "l", wantCategory: "bebidas"},
		{name: "trailing number is part of the name", text: "pilha aa 4", wantName: "pilha aa 4", wantQuantity: "1", wantUnit: "un", wantCategory: "outros"},
		{name: "collapses whitespace", text: "  1,5   kg   carne  moída ", wantName: "carne moída", wantQuantity: "1.5", wantUnit: "kg", wantCategory: "outros"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreateItemFromFreeText(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantQuantity, got.Quantity.String())
			assert.Equal(t, tt.wantUnit, got.Unit)
			assert.Equal(t, tt.wantCategory, got.Category)
		})
	}
}

func TestCreateItemFromFreeText_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		text    string
	}{
		{name: "only amount and tag", text: "2 kg @hortifruti", wantErr: model.ErrEmptyItemName},
		{name: "empty", text: "", wantErr: model.ErrEmptyItemName},
		{name: "only tags", text: "@a @b", wantErr: model.ErrEmptyItemName},
		{name: "zero amount", text: "0 kg arroz", wantErr: model.ErrInvalidQuantity},
		{name: "zero denominator", text: "1/0 l leite", wantErr: model.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateItemFromFreeText(tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFactory_Locale(t *testing.T) {
	en := NewFactory(Options{Locale: "en-US"})

	got, err := en.FromFreeText("2 liters milk")
	require.NoError(t, err)
	assert.Equal(t, "l", got.Unit)
	assert.Equal(t, "milk", got.Name)

	override := NewFactory(Options{Locale: "pt", Dictionaries: dictionary.Map{"pt": {"fardo": "fd"}}})
	got, err = override.FromFreeText("1 fardo cerveja")
	require.NoError(t, err)
	assert.Equal(t, "fd", got.Unit)
	assert.Equal(t, "cerveja", got.Name)
}

func TestCreateItemFromFreeText_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := CreateItemFromFreeText("2 kg maçã @hortifruti")
			assert.NoError(t, err)
			assert.Equal(t, "maçã", got.Name)
		}()
	}
	wg.Wait()
}
