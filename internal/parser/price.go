package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Veraticus/listwise/internal/model"
)

// priceNumber allows thousands grouping and up to two decimals: "5", "5,50", "1.234,56".
const priceNumber = `\d+(?:[.,]\d{3})*(?:[.,]\d{1,2})?`

var (
	prefixPricePattern = regexp.MustCompile(`(?i)(r\$|us\$|\$|€|£)\s*(` + priceNumber + `)`)
	suffixPricePattern = regexp.MustCompile(`(?i)(` + priceNumber + `)\s*(reais|real|brl|usd|dólares|dolares|dollars?|euros?|eur|€)`)
)

// currencyBySign maps lowercased currency markers to ISO 4217 codes.
var currencyBySign = map[string]string{
	"r$":      "BRL",
	"reais":   "BRL",
	"real":    "BRL",
	"brl":     "BRL",
	"us$":     "USD",
	"$":       "USD",
	"usd":     "USD",
	"dólares": "USD",
	"dolares": "USD",
	"dollar":  "USD",
	"dollars": "USD",
	"€":       "EUR",
	"eur":     "EUR",
	"euro":    "EUR",
	"euros":   "EUR",
	"£":       "GBP",
}

type priceMatch struct {
	money model.Money
	start int
	end   int
}

type priceMatcher struct{}

func newPriceMatcher() *priceMatcher {
	return &priceMatcher{}
}

// findAll returns currency-prefixed and currency-suffixed amounts ordered by
// position.
func (pm *priceMatcher) findAll(text string) []priceMatch {
	var out []priceMatch

	for _, loc := range prefixPricePattern.FindAllStringSubmatchIndex(text, -1) {
		if !boundaryAfter(text, loc[1]) {
			continue
		}
		sign := text[loc[2]:loc[3]]
		if m, ok := toPrice(text[loc[4]:loc[5]], sign); ok {
			out = append(out, priceMatch{money: m, start: loc[0], end: loc[1]})
		}
	}

	for _, loc := range suffixPricePattern.FindAllStringSubmatchIndex(text, -1) {
		if !boundaryBefore(text, loc[0]) || !boundaryAfter(text, loc[1]) {
			continue
		}
		sign := text[loc[4]:loc[5]]
		if m, ok := toPrice(text[loc[2]:loc[3]], sign); ok {
			out = append(out, priceMatch{money: m, start: loc[0], end: loc[1]})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func toPrice(amount, sign string) (model.Money, bool) {
	code, ok := currencyBySign[strings.ToLower(sign)]
	if !ok {
		return model.Money{}, false
	}
	m, err := model.MoneyFromMajor(stripGrouping(amount), code)
	if err != nil {
		return model.Money{}, false
	}
	return m, true
}

// stripGrouping removes the separators priceNumber took as thousands groups.
// A last separator followed by exactly three digits is a group, so "1.000"
// is one thousand while "1.234,56" and "12.99" keep their decimals.
func stripGrouping(amount string) string {
	i := strings.LastIndexAny(amount, ".,")
	if i < 0 || len(amount)-i-1 != 3 {
		return amount
	}
	return strings.NewReplacer(".", "", ",", "").Replace(amount)
}
