package breakeven

import "testing"

func TestNewInventoryItem(t *testing.T) {
	it := NewInventoryItem(Record{
		"name":         "lipstick",
		"stock":        10.0,
		"sellingPrice": 20.0, // no "price" field, chain falls through
		"unitCost":     8.0,
	})

	if got, want := it.Name, "lipstick"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if got, want := it.Stock, int64(10); got != want {
		t.Errorf("Stock = %d, want %d", got, want)
	}
	if got, want := it.Price, M(20.0); !got.Equal(want) {
		t.Errorf("Price = %v, want %v", got, want)
	}
	if got, want := it.Cost, M(8.0); !got.Equal(want) {
		t.Errorf("Cost = %v, want %v", got, want)
	}
}

func TestNewInventoryItemDefaults(t *testing.T) {
	it := NewInventoryItem(Record{})
	if got, want := it.Name, "(unnamed)"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if got, want := it.Category, "(uncategorized)"; got != want {
		t.Errorf("Category = %q, want %q", got, want)
	}
	if !it.Price.IsZero() || !it.Cost.IsZero() || it.Stock != 0 {
		t.Errorf("zero record should derive a zero item, got %+v", it)
	}
	if it.Priced() {
		t.Error("Priced() = true for an unpriced item")
	}
}

func TestInventoryItemValues(t *testing.T) {
	it := InventoryItem{Name: "mascara", Stock: 5, Price: M(30.0), Cost: M(12.0)}

	if got, want := it.InventoryValue(), M(150.0); !got.Equal(want) {
		t.Errorf("InventoryValue() = %v, want %v", got, want)
	}
	if got, want := it.InventoryCost(), M(60.0); !got.Equal(want) {
		t.Errorf("InventoryCost() = %v, want %v", got, want)
	}
	if got, want := it.UnitMargin(), M(18.0); !got.Equal(want) {
		t.Errorf("UnitMargin() = %v, want %v", got, want)
	}
	if got, want := it.PotentialMargin(), M(90.0); !got.Equal(want) {
		t.Errorf("PotentialMargin() = %v, want %v", got, want)
	}
	if got, want := it.MarginRate(), Percent(60); got != want {
		t.Errorf("MarginRate() = %v, want %v", got, want)
	}
	if !it.Priced() {
		t.Error("Priced() = false for a fully priced item")
	}
}

func TestMarginRateWithoutPrice(t *testing.T) {
	it := InventoryItem{Stock: 5, Cost: M(12.0)}
	if got := it.MarginRate(); got != 0 {
		t.Errorf("MarginRate() = %v, want 0 when the price is unknown", got)
	}
}
