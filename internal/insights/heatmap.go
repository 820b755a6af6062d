package insights

import (
	"fmt"
	"math"
	"sort"

	"marome-markets/internal/domain"
)

// FormatPercent renders a timeframe change with an explicit sign, or "--"
// when the value is missing. Zero counts as positive: "+0.00%".
func FormatPercent(p *float64) string {
	if p == nil || math.IsNaN(*p) {
		return "--"
	}
	if *p >= 0 {
		return fmt.Sprintf("+%.2f%%", *p)
	}
	return fmt.Sprintf("%.2f%%", *p)
}

// HeatmapColor picks the cell style. Zero lands on the green side, and
// missing values carry no color at all.
func HeatmapColor(p *float64) string {
	if p == nil || math.IsNaN(*p) {
		return ""
	}
	if *p >= 0 {
		return "green-cell"
	}
	return "red-cell"
}

// HeatmapCell is one formatted timeframe entry.
type HeatmapCell struct {
	Timeframe  string `json:"timeframe"`
	Display    string `json:"display"`
	ColorClass string `json:"color_class"`
}

// HeatmapRow is one symbol's cells across every timeframe, in the
// canonical 1h, 4h, 1d, 1w order.
type HeatmapRow struct {
	Symbol string        `json:"symbol"`
	Cells  []HeatmapCell `json:"cells"`
}

// HeatmapView is a render-ready heatmap table.
type HeatmapView struct {
	Columns []string     `json:"columns"`
	Rows    []HeatmapRow `json:"rows"`
}

// FormatHeatmap builds the table model for a heatmap. Rows come out
// sorted by symbol so repeated renders of the same data are identical.
func FormatHeatmap(data domain.HeatmapData) HeatmapView {
	symbols := make([]string, 0, len(data))
	for sym := range data {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	view := HeatmapView{
		Columns: append([]string(nil), domain.Timeframes...),
		Rows:    make([]HeatmapRow, 0, len(symbols)),
	}
	for _, sym := range symbols {
		changes := data[sym]
		row := HeatmapRow{Symbol: sym, Cells: make([]HeatmapCell, 0, len(domain.Timeframes))}
		for _, frame := range domain.Timeframes {
			p := changes.At(frame)
			row.Cells = append(row.Cells, HeatmapCell{
				Timeframe:  frame,
				Display:    FormatPercent(p),
				ColorClass: HeatmapColor(p),
			})
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
