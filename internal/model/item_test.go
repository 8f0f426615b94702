package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingItem_Validate(t *testing.T) {
	valid := func() ShoppingItem {
		return ShoppingItem{ListName: "feira", Name: "maçã", Quantity: DefaultQuantity, Unit: "un"}
	}

	tests := []struct {
		mutate  func(*ShoppingItem)
		wantErr error
		name    string
	}{
		{name: "valid", mutate: func(*ShoppingItem) {}},
		{name: "missing name", mutate: func(i *ShoppingItem) { i.Name = "" }, wantErr: ErrEmptyItemName},
		{name: "zero quantity", mutate: func(i *ShoppingItem) { i.Quantity = Quantity{} }, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid()
			tt.mutate(&item)
			err := item.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	item := valid()
	item.ListName = ""
	assert.Error(t, item.Validate())

	item = valid()
	item.Unit = ""
	assert.Error(t, item.Validate())
}

func TestShoppingItem_Total(t *testing.T) {
	item := ShoppingItem{Name: "queijo", Quantity: DefaultQuantity}
	assert.Nil(t, item.Total())

	q, err := ParseQuantity("0.355")
	require.NoError(t, err)
	price := MoneyFromMinor(4990, "BRL")
	item = ShoppingItem{Name: "queijo", Quantity: q, Price: &price}

	total := item.Total()
	require.NotNil(t, total)
	// 0.355 x 49.90 = 17.7145
	assert.Equal(t, int64(1771), total.ToMinor())
	assert.Equal(t, "BRL", total.Currency())
}

func TestConfidence_String(t *testing.T) {
	assert.Equal(t, "low", ConfidenceLow.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "high", ConfidenceHigh.String())
}
