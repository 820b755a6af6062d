package insights

import (
	"strconv"

	"marome-markets/internal/domain"
)

// Correlation strength buckets, inclusive at their upper-listed edges:
// 0.7 is already strong-positive, -0.3 still neutral.
func CorrelationClass(value float64) string {
	switch {
	case value >= 0.7:
		return "strong-positive"
	case value >= 0.3:
		return "moderate-positive"
	case value >= -0.3:
		return "neutral"
	case value >= -0.7:
		return "moderate-negative"
	default:
		return "strong-negative"
	}
}

var shortAssetNames = map[string]string{
	"USD Index":  "USD",
	"Gold":       "Gold",
	"Silver":     "Silver",
	"Crude Oil":  "Oil",
	"Platinum":   "Plat",
	"EUR/USD":    "EUR",
	"Bitcoin":    "BTC",
	"S&P 500":    "SPX",
	"JSE Top 40": "JSE",
}

// ShortAssetName abbreviates well-known asset names for tight table
// headers. Unknown assets pass through unchanged.
func ShortAssetName(asset string) string {
	if short, ok := shortAssetNames[asset]; ok {
		return short
	}
	return asset
}

// CorrelationCell is one rendered matrix entry.
type CorrelationCell struct {
	RowAsset   string  `json:"row_asset"`
	ColAsset   string  `json:"col_asset"`
	Value      float64 `json:"value"`
	Display    string  `json:"display"`
	ColorClass string  `json:"color_class"`
}

// CorrelationRow is one asset's row across every column asset.
type CorrelationRow struct {
	Asset     string            `json:"asset"`
	ShortName string            `json:"short_name"`
	Cells     []CorrelationCell `json:"cells"`
}

// CorrelationView is a render-ready correlation matrix. Headers and rows
// follow the provider's asset order exactly.
type CorrelationView struct {
	Assets  []string         `json:"assets"`
	Headers []string         `json:"headers"`
	Rows    []CorrelationRow `json:"rows"`
}

// RenderCorrelation turns raw correlation data into a display model.
// Pairs missing from the matrix render as 0.00 neutral cells.
func RenderCorrelation(data domain.CorrelationData) CorrelationView {
	view := CorrelationView{
		Assets:  data.Assets,
		Headers: make([]string, 0, len(data.Assets)),
		Rows:    make([]CorrelationRow, 0, len(data.Assets)),
	}
	for _, asset := range data.Assets {
		view.Headers = append(view.Headers, ShortAssetName(asset))
	}
	for _, rowAsset := range data.Assets {
		row := CorrelationRow{
			Asset:     rowAsset,
			ShortName: ShortAssetName(rowAsset),
			Cells:     make([]CorrelationCell, 0, len(data.Assets)),
		}
		for _, colAsset := range data.Assets {
			value := data.Matrix[rowAsset][colAsset]
			row.Cells = append(row.Cells, CorrelationCell{
				RowAsset:   rowAsset,
				ColAsset:   colAsset,
				Value:      value,
				Display:    strconv.FormatFloat(value, 'f', 2, 64),
				ColorClass: CorrelationClass(value),
			})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
