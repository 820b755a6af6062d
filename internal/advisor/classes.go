package advisor

import (
	"strings"

	"marome-markets/internal/domain"
)

var classKeywords = map[string]domain.AssetClass{
	"indices": domain.ClassIndices,
	"index":   domain.ClassIndices,
	"spx":     domain.ClassIndices,
	"jse":     domain.ClassIndices,
	"nasdaq":  domain.ClassIndices,
	"dow":     domain.ClassIndices,

	"forex":      domain.ClassForex,
	"fx":         domain.ClassForex,
	"currency":   domain.ClassForex,
	"currencies": domain.ClassForex,
	"dollar":     domain.ClassForex,
	"usd":        domain.ClassForex,
	"eur":        domain.ClassForex,
	"euro":       domain.ClassForex,
	"gbp":        domain.ClassForex,
	"yen":        domain.ClassForex,

	"crypto":           domain.ClassCrypto,
	"cryptos":          domain.ClassCrypto,
	"cryptocurrency":   domain.ClassCrypto,
	"cryptocurrencies": domain.ClassCrypto,
	"bitcoin":          domain.ClassCrypto,
	"btc":              domain.ClassCrypto,
	"ethereum":         domain.ClassCrypto,
	"eth":              domain.ClassCrypto,
	"altcoin":          domain.ClassCrypto,
	"altcoins":         domain.ClassCrypto,

	"commodities": domain.ClassCommodities,
	"commodity":   domain.ClassCommodities,
	"gold":        domain.ClassCommodities,
	"silver":      domain.ClassCommodities,
	"oil":         domain.ClassCommodities,
	"platinum":    domain.ClassCommodities,

	"stocks": domain.ClassStocks,
	"stock":  domain.ClassStocks,
	"shares": domain.ClassStocks,
	"equity": domain.ClassStocks,
}

// ExtractClasses scans the user message for mentions of asset classes and
// well-known assets belonging to them. Returns deduplicated classes in
// order of first mention.
func ExtractClasses(text string) []domain.AssetClass {
	lower := strings.ToLower(text)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})

	seen := make(map[domain.AssetClass]bool)
	var result []domain.AssetClass
	for _, w := range words {
		if class, ok := classKeywords[w]; ok && !seen[class] {
			seen[class] = true
			result = append(result, class)
		}
	}
	return result
}
