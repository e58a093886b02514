package breakeven

// InventoryItem is the typed view of one inventory record. Price and cost
// fields are resolved through the usual candidate-key chains since the
// upstream schema drifted over time (price vs sellingPrice vs unitPrice).
type InventoryItem struct {
	Name     string
	Category string
	Stock    int64
	Price    Money // unit selling price
	Cost     Money // unit acquisition cost
}

// NewInventoryItem derives a typed item from a backup record.
func NewInventoryItem(r Record) InventoryItem {
	return InventoryItem{
		Name:     r.TextOr("(unnamed)", "name", "itemName", "title"),
		Category: r.TextOr("(uncategorized)", "category"),
		Stock:    r.Int("stock", "quantity", "stockCount"),
		Price:    r.Amount("price", "sellingPrice", "unitPrice"),
		Cost:     r.Amount("cost", "unitCost", "costPrice"),
	}
}

// InventoryValue is the revenue the item would produce if the whole stock
// sold at the unit price.
func (it InventoryItem) InventoryValue() Money { return it.Price.MulInt(it.Stock) }

// InventoryCost is the capital tied up in the item's current stock.
func (it InventoryItem) InventoryCost() Money { return it.Cost.MulInt(it.Stock) }

// UnitMargin is price minus cost per unit.
func (it InventoryItem) UnitMargin() Money { return it.Price.Sub(it.Cost) }

// PotentialMargin is the margin over the whole stock.
func (it InventoryItem) PotentialMargin() Money { return it.UnitMargin().MulInt(it.Stock) }

// MarginRate is the unit margin as a share of the unit price, in percent.
// Zero when the price is unknown.
func (it InventoryItem) MarginRate() Percent {
	if !it.Price.IsPositive() {
		return 0
	}
	return Percent(100 * it.UnitMargin().AsFloat() / it.Price.AsFloat())
}

// Priced reports whether the item carries both a price and a cost, i.e.
// whether it can participate in margin analysis.
func (it InventoryItem) Priced() bool {
	return it.Price.IsPositive() && it.Cost.IsPositive()
}
