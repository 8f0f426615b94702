package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/listwise/internal/dictionary"
)

func strPtr(s string) *string { return &s }

func TestSmartInputParser_Parse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		ctx         InputContext
		wantList    *string
		wantSection *string
		wantQty     *string
		wantPrice   *float64
		wantTitle   string
		wantTypes   []HighlightType
	}{
		{
			name:      "plain text",
			text:      "comprar presente",
			wantTitle: "comprar presente",
		},
		{
			name:      "empty",
			text:      "",
			wantTitle: "",
		},
		{
			name:      "list reference",
			text:      "Duna @livros",
			wantList:  strPtr("livros"),
			wantTitle: "Duna",
			wantTypes: []HighlightType{HighlightList},
		},
		{
			name:        "list with section",
			text:        "maçã @feira:frutas",
			wantList:    strPtr("feira"),
			wantSection: strPtr("frutas"),
			wantTitle:   "maçã",
			wantTypes:   []HighlightType{HighlightList, HighlightSection},
		},
		{
			name:      "last list wins",
			text:      "@mercado pão @padaria",
			wantList:  strPtr("padaria"),
			wantTitle: "@mercado pão",
			wantTypes: []HighlightType{HighlightList},
		},
		{
			name:      "dangling colon stays with list",
			text:      "pão @padaria:",
			wantList:  strPtr("padaria"),
			wantTitle: "pão",
			wantTypes: []HighlightType{HighlightList},
		},
		{
			name:      "email is not a list",
			text:      "mandar para ana@exemplo.com",
			wantTitle: "mandar para ana@exemplo.com",
		},
		{
			name:        "bare section needs a current list",
			text:        "detergente :limpeza",
			ctx:         InputContext{CurrentListName: "mercado"},
			wantSection: strPtr("limpeza"),
			wantTitle:   "detergente",
			wantTypes:   []HighlightType{HighlightSection},
		},
		{
			name:      "bare section ignored outside a list",
			text:      "detergente :limpeza",
			wantTitle: "detergente :limpeza",
		},
		{
			name:        "list suffix beats bare section",
			text:        ":bebidas suco @mercado:hortifruti",
			ctx:         InputContext{CurrentListName: "feira"},
			wantList:    strPtr("mercado"),
			wantSection: strPtr("hortifruti"),
			wantTitle:   ":bebidas suco",
			wantTypes:   []HighlightType{HighlightList, HighlightSection},
		},
		{
			name:      "spaced quantity",
			text:      "2 kg maçã",
			wantQty:   strPtr("2 kg"),
			wantTitle: "maçã",
			wantTypes: []HighlightType{HighlightQuantity},
		},
		{
			name:      "glued quantity",
			text:      "arroz 5kg",
			wantQty:   strPtr("5 kg"),
			wantTitle: "arroz",
			wantTypes: []HighlightType{HighlightQuantity},
		},
		{
			name:      "fraction quantity",
			text:      "leite 1/2 l",
			wantQty:   strPtr("0.5 l"),
			wantTitle: "leite",
			wantTypes: []HighlightType{HighlightQuantity},
		},
		{
			name:      "comma decimal with long synonym",
			text:      "1,5 litros de suco",
			wantQty:   strPtr("1.5 l"),
			wantTitle: "de suco",
			wantTypes: []HighlightType{HighlightQuantity},
		},
		{
			name:      "english synonym under portuguese locale",
			text:      "2 liters water",
			wantQty:   strPtr("2 l"),
			wantTitle: "water",
			wantTypes: []HighlightType{HighlightQuantity},
		},
		{
			name:      "multiplier",
			text:      "iogurte 3x",
			wantQty:   strPtr("3 un"),
			wantTitle: "iogurte",
			wantTypes: []HighlightType{HighlightQuantity},
		},
		{
			name:      "first quantity wins",
			text:      "2 kg batata 1 kg cebola",
			wantQty:   strPtr("2 kg"),
			wantTitle: "batata 1 kg cebola",
			wantTypes: []HighlightType{HighlightQuantity},
		},
		{
			name:      "unit glued to word is not a quantity",
			text:      "2 gatos",
			wantTitle: "2 gatos",
		},
		{
			name:      "price ignored outside shopping lists",
			text:      "pizza R$ 40",
			wantTitle: "pizza R$ 40",
		},
		{
			name:      "prefixed price",
			text:      "pizza R$ 40,50",
			ctx:       InputContext{IsShoppingList: true},
			wantPrice: floatPtr(40.5),
			wantTitle: "pizza",
			wantTypes: []HighlightType{HighlightPrice},
		},
		{
			name:      "suffixed price",
			text:      "vinho 59,90 reais",
			ctx:       InputContext{IsShoppingList: true},
			wantPrice: floatPtr(59.9),
			wantTitle: "vinho",
			wantTypes: []HighlightType{HighlightPrice},
		},
		{
			name:        "everything at once",
			text:        "2 kg maçã @feira:frutas R$ 8,50",
			ctx:         InputContext{IsShoppingList: true},
			wantList:    strPtr("feira"),
			wantSection: strPtr("frutas"),
			wantQty:     strPtr("2 kg"),
			wantPrice:   floatPtr(8.5),
			wantTitle:   "maçã",
			wantTypes:   []HighlightType{HighlightQuantity, HighlightList, HighlightSection, HighlightPrice},
		},
	}

	p := New(Options{Locale: "pt-BR"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.text, tt.ctx)

			assert.Equal(t, tt.text, got.RawText)
			assert.Equal(t, tt.wantList, got.ListName)
			assert.Equal(t, tt.wantSection, got.SectionName)
			assert.Equal(t, tt.wantQty, got.Quantity)
			if tt.wantPrice == nil {
				assert.Nil(t, got.Price)
			} else {
				require.NotNil(t, got.Price)
				assert.InDelta(t, *tt.wantPrice, *got.Price, 1e-9)
			}
			assert.Equal(t, tt.wantTitle, got.Title)

			types := make([]HighlightType, 0, len(got.Highlights))
			for _, h := range got.Highlights {
				types = append(types, h.Type)
			}
			if len(tt.wantTypes) == 0 {
				assert.Empty(t, types)
			} else {
				assert.Equal(t, tt.wantTypes, types)
			}
		})
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestSmartInputParser_HighlightOffsets(t *testing.T) {
	text := "2 kg maçã @feira:frutas R$ 8,50"
	got := New(Options{}).Parse(text, InputContext{IsShoppingList: true})

	want := []Highlight{
		{Type: HighlightQuantity, Value: "2 kg", Start: 0, End: 4},
		{Type: HighlightList, Value: "@feira", Start: 12, End: 18},
		{Type: HighlightSection, Value: ":frutas", Start: 18, End: 25},
		{Type: HighlightPrice, Value: "R$ 8,50", Start: 26, End: 33},
	}
	assert.Equal(t, want, got.Highlights)
	assert.Equal(t, "BRL", got.Currency)
}

func TestSmartInputParser_PriceCurrencies(t *testing.T) {
	p := New(Options{})
	ctx := InputContext{IsShoppingList: true}

	tests := []struct {
		text     string
		currency string
		price    float64
	}{
		{text: "livro US$ 12.99", currency: "USD", price: 12.99},
		{text: "livro $12", currency: "USD", price: 12},
		{text: "queijo 8 euros", currency: "EUR", price: 8},
		{text: "queijo €8,50", currency: "EUR", price: 8.5},
		{text: "tv R$ 1.299,90", currency: "BRL", price: 1299.9},
		{text: "tv R$ 1.000", currency: "BRL", price: 1000},
		{text: "tv R$ 1.234", currency: "BRL", price: 1234},
		{text: "tv 2.500 reais", currency: "BRL", price: 2500},
		{text: "carro R$ 1.234.567", currency: "BRL", price: 1234567},
		{text: "tv R$ 1.234,56", currency: "BRL", price: 1234.56},
		{text: "laptop $1,299", currency: "USD", price: 1299},
		{text: "laptop $1,299.50", currency: "USD", price: 1299.5},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := p.Parse(tt.text, ctx)
			require.NotNil(t, got.Price)
			assert.InDelta(t, tt.price, *got.Price, 1e-9)
			assert.Equal(t, tt.currency, got.Currency)
		})
	}
}

func TestSmartInputParser_QuantityClaimedBeforePrice(t *testing.T) {
	// "5 l" is a quantity; the price pass must not reuse any of it.
	got := New(Options{}).Parse("água 5 l R$ 3", InputContext{IsShoppingList: true})

	require.NotNil(t, got.Quantity)
	assert.Equal(t, "5 l", *got.Quantity)
	require.NotNil(t, got.Price)
	assert.InDelta(t, 3.0, *got.Price, 1e-9)
	assert.Equal(t, "água", got.Title)
}

func TestSmartInputParser_QuantityCarriesAmount(t *testing.T) {
	got := New(Options{}).Parse("morango 2 bandejas", InputContext{IsShoppingList: true})

	require.NotNil(t, got.Quantity)
	require.NotNil(t, got.Amount)
	assert.Equal(t, "2 bdj", *got.Quantity)
	assert.Equal(t, *got.Quantity, got.Amount.Normalized())
	assert.Equal(t, "bdj", got.Amount.Unit.String())

	got = New(Options{}).Parse("morango", InputContext{IsShoppingList: true})
	assert.Nil(t, got.Quantity)
	assert.Nil(t, got.Amount)
}

func TestSmartInputParser_DictionaryOverride(t *testing.T) {
	p := New(Options{Locale: "pt", Dictionaries: dictionary.Map{"pt": {"cx": "cx", "caixa": "cx"}}})

	got := p.Parse("2 caixas de leite 1 kg", InputContext{})
	assert.Nil(t, got.Quantity, "caixas is not a synonym and kg is not in the override")

	got = p.Parse("leite 2 caixa", InputContext{})
	require.NotNil(t, got.Quantity)
	assert.Equal(t, "2 cx", *got.Quantity)
}

// Every parse yields sorted, disjoint highlights whose values match the raw text.
func TestSmartInputParser_HighlightInvariants(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"@",
		"@:",
		":",
		"@a:b:c @d",
		"@lista:seção 2kg 2 kg 2x R$2 2 reais",
		"R$ 2 kg",
		"2 kg R$ 3,50 @x:y :z",
		"1/2 l 1/2l 1 / 2 l",
		"ação 3x @café:manhã R$ 10 € 5",
		"@a @b @c :d :e 1 un 2 un",
		"2,5kg@feira",
		"preço: 10 reais, 1 dz ovos",
		strings.Repeat("2 kg @a:b R$ 1 ", 20),
		"\t2\tkg\tarroz\t",
		"日本 2 kg お米 @買い物",
	}

	p := New(Options{})
	contexts := []InputContext{
		{},
		{IsShoppingList: true},
		{CurrentListName: "casa"},
		{CurrentListName: "casa", IsShoppingList: true},
	}

	for _, text := range inputs {
		for _, ctx := range contexts {
			got := p.Parse(text, ctx)
			assert.Equal(t, text, got.RawText)

			for i, h := range got.Highlights {
				require.True(t, h.Start >= 0 && h.Start < h.End && h.End <= len(text), "bad span %+v in %q", h, text)
				assert.Equal(t, text[h.Start:h.End], h.Value, "value mismatch in %q", text)
				if i > 0 {
					prev := got.Highlights[i-1]
					assert.LessOrEqual(t, prev.End, h.Start, "overlap in %q: %+v %+v", text, prev, h)
				}
			}

			assert.Equal(t, strings.Join(strings.Fields(got.Title), " "), got.Title, "title must be whitespace-collapsed")
			if !ctx.IsShoppingList {
				assert.Nil(t, got.Price)
			}
		}
	}
}

func TestClaims(t *testing.T) {
	var c claims
	assert.True(t, c.claim(5, 10))
	assert.False(t, c.claim(9, 12), "overlapping claim")
	assert.False(t, c.claim(0, 6), "overlapping claim")
	assert.False(t, c.claim(3, 3), "empty claim")
	assert.True(t, c.claim(10, 12), "adjacent claim")
	assert.True(t, c.claim(0, 5), "adjacent claim")
	assert.Equal(t, []span{{0, 5}, {5, 10}, {10, 12}}, c.sorted())
}
