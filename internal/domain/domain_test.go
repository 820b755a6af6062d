package domain

import (
	"encoding/json"
	"testing"
)

func TestRawValueUnmarshalString(t *testing.T) {
	var q Quote
	if err := json.Unmarshal([]byte(`{"name":"Gold","symbol":"XAU","change":"+1.25%"}`), &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, ok := q.Change.Value()
	if !ok || text != "+1.25%" {
		t.Fatalf("expected raw token +1.25%%, got %q ok=%v", text, ok)
	}
}

func TestRawValueUnmarshalNumber(t *testing.T) {
	var q Quote
	if err := json.Unmarshal([]byte(`{"name":"BTC","change":-2.5}`), &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, ok := q.Change.Value()
	if !ok || text != "-2.5" {
		t.Fatalf("expected raw token -2.5, got %q ok=%v", text, ok)
	}
}

func TestRawValueUnmarshalNull(t *testing.T) {
	var q Quote
	if err := json.Unmarshal([]byte(`{"name":"BTC","change":null}`), &q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := q.Change.Value(); ok {
		t.Fatal("expected null change to report absent")
	}
}

func TestQuoteDisplayNamePrefersPair(t *testing.T) {
	q := Quote{Name: "Euro vs US Dollar", Pair: "EUR/USD"}
	if q.DisplayName() != "EUR/USD" {
		t.Fatalf("expected pair, got %s", q.DisplayName())
	}
	q = Quote{Name: "Gold", Symbol: "XAU"}
	if q.DisplayName() != "Gold" {
		t.Fatalf("expected name, got %s", q.DisplayName())
	}
}

func TestTimeframeChangesAt(t *testing.T) {
	v := 1.5
	tf := TimeframeChanges{D1: &v}
	if got := tf.At("1d"); got == nil || *got != 1.5 {
		t.Fatalf("expected 1.5 for 1d, got %v", got)
	}
	if tf.At("1h") != nil {
		t.Fatal("expected nil for missing 1h")
	}
	if tf.At("2d") != nil {
		t.Fatal("expected nil for unknown label")
	}
}

func TestAssetClassIsValid(t *testing.T) {
	if !ClassCrypto.IsValid() {
		t.Fatal("crypto should be a valid class")
	}
	if AssetClass("bonds").IsValid() {
		t.Fatal("bonds should not be a valid class")
	}
}
