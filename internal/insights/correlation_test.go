package insights

import (
	"testing"

	"marome-markets/internal/domain"
)

func TestCorrelationClassBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1, "strong-positive"},
		{0.7, "strong-positive"},
		{0.69, "moderate-positive"},
		{0.3, "moderate-positive"},
		{0.29, "neutral"},
		{0, "neutral"},
		{-0.3, "neutral"},
		{-0.31, "moderate-negative"},
		{-0.7, "moderate-negative"},
		{-0.71, "strong-negative"},
		{-1, "strong-negative"},
	}
	for _, c := range cases {
		if got := CorrelationClass(c.value); got != c.want {
			t.Fatalf("CorrelationClass(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestShortAssetName(t *testing.T) {
	if got := ShortAssetName("Crude Oil"); got != "Oil" {
		t.Fatalf("ShortAssetName(Crude Oil) = %q", got)
	}
	if got := ShortAssetName("Copper"); got != "Copper" {
		t.Fatalf("unknown assets should pass through, got %q", got)
	}
}

func TestRenderCorrelation(t *testing.T) {
	data := domain.CorrelationData{
		Assets: []string{"Gold", "Bitcoin"},
		Matrix: map[string]map[string]float64{
			"Gold":    {"Gold": 1, "Bitcoin": 0.42},
			"Bitcoin": {"Gold": 0.42, "Bitcoin": 1},
		},
	}
	view := RenderCorrelation(data)

	if len(view.Rows) != 2 || len(view.Rows[0].Cells) != 2 {
		t.Fatalf("unexpected shape: %+v", view)
	}
	if view.Headers[0] != "Gold" || view.Headers[1] != "BTC" {
		t.Fatalf("headers = %v", view.Headers)
	}
	cell := view.Rows[0].Cells[1]
	if cell.Display != "0.42" || cell.ColorClass != "moderate-positive" {
		t.Fatalf("cell = %+v", cell)
	}
	diag := view.Rows[1].Cells[1]
	if diag.Display != "1.00" || diag.ColorClass != "strong-positive" {
		t.Fatalf("diagonal cell = %+v", diag)
	}
}

func TestRenderCorrelationMissingPair(t *testing.T) {
	data := domain.CorrelationData{
		Assets: []string{"Gold", "Silver"},
		Matrix: map[string]map[string]float64{
			"Gold": {"Gold": 1},
		},
	}
	view := RenderCorrelation(data)
	cell := view.Rows[1].Cells[0]
	if cell.Display != "0.00" || cell.ColorClass != "neutral" {
		t.Fatalf("missing pair should render neutral zero, got %+v", cell)
	}
}
