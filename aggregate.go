package breakeven

// This file turns the raw backup sections into aggregated summaries:
// total investment from purchases, total revenue from sales, monthly
// buckets for both, and the supporting inventory and activity views.

// PurchaseLine is one line item of a purchase order.
type PurchaseLine struct {
	Item     string
	Quantity int64
	UnitCost Money // unit cost including allocated shipping
}

// Purchase is the typed view of one purchase record. The four cost
// components are summed into the purchase's contribution to the total
// investment; absent components count as zero.
type Purchase struct {
	ID           string
	Date         string // raw date text, may be empty or unparseable
	Subtotal     Money
	Tax          Money
	ShippingUS   Money
	ShippingIntl Money
	Lines        []PurchaseLine
}

// TotalCost is subtotal + tax + domestic shipping + international shipping.
func (p Purchase) TotalCost() Money {
	return p.Subtotal.Add(p.Tax).Add(p.ShippingUS).Add(p.ShippingIntl)
}

// Month returns the calendar month of the purchase, when its date parses.
func (p Purchase) Month() (Month, bool) {
	t, ok := ParseRecordDate(p.Date)
	if !ok {
		return "", false
	}
	return MonthOf(t), true
}

// PurchaseSummary aggregates all purchases of the backup.
type PurchaseSummary struct {
	Purchases       []Purchase
	TotalInvestment Money
	ByMonth         MonthlyBuckets
}

// SummarizePurchases sums cost components across all purchase records.
// Every purchase contributes to the total investment; only purchases with
// a parseable date contribute to a monthly bucket.
func SummarizePurchases(records []Record) PurchaseSummary {
	s := PurchaseSummary{ByMonth: MonthlyBuckets{}}
	for _, r := range records {
		p := Purchase{
			ID:           r.TextOr("N/A", "id", "purchaseId"),
			Date:         r.Text("createdAt", "orderedDate", "date"),
			Subtotal:     r.Amount("subtotal"),
			Tax:          r.Amount("tax"),
			ShippingUS:   r.Amount("shippingUS", "shippingUs", "shippingDomestic"),
			ShippingIntl: r.Amount("shippingIntl", "shippingInternational"),
		}
		for _, line := range r.Records("lines") {
			p.Lines = append(p.Lines, PurchaseLine{
				Item:     line.TextOr("(unnamed)", "itemName", "name"),
				Quantity: line.Int("quantity"),
				UnitCost: line.Amount("unitCostPostShipping", "unitCost"),
			})
		}
		s.Purchases = append(s.Purchases, p)
		s.TotalInvestment = s.TotalInvestment.Add(p.TotalCost())
		if m, ok := p.Month(); ok {
			s.ByMonth.Add(m, p.TotalCost())
		}
	}
	return s
}

// SaleLine is one line item of a sale.
type SaleLine struct {
	Item      string
	Quantity  int64
	UnitPrice Money
	Total     Money
}

// Sale is the typed view of one sale record.
type Sale struct {
	ID            string
	Date          string
	Buyer         string
	PaymentMethod string
	Amount        Money
	Lines         []SaleLine
}

// Month returns the calendar month of the sale, when its date parses.
func (s Sale) Month() (Month, bool) {
	t, ok := ParseRecordDate(s.Date)
	if !ok {
		return "", false
	}
	return MonthOf(t), true
}

// SaleSummary aggregates all sales of the backup.
type SaleSummary struct {
	Sales        []Sale
	TotalRevenue Money
	ByMonth      MonthlyBuckets
}

// SummarizeSales sums each sale's total amount into the total revenue.
// Sales without a parseable date count in the grand total only.
func SummarizeSales(records []Record) SaleSummary {
	s := SaleSummary{ByMonth: MonthlyBuckets{}}
	for _, r := range records {
		sale := Sale{
			ID:            r.TextOr("N/A", "id", "saleId"),
			Date:          r.Text("createdAt", "date", "saleDate"),
			Buyer:         r.TextOr("N/A", "buyerName", "buyer", "customer"),
			PaymentMethod: r.TextOr("N/A", "paymentMethod"),
			Amount:        r.Amount("totalAmount", "total", "amount"),
		}
		for _, line := range r.Records("lines") {
			sl := SaleLine{
				Item:      line.TextOr("(unnamed)", "itemName", "name"),
				Quantity:  line.Int("quantity"),
				UnitPrice: line.Amount("unitPrice", "price"),
				Total:     line.Amount("totalAmount"),
			}
			if sl.Total.IsZero() {
				sl.Total = sl.UnitPrice.MulInt(sl.Quantity)
			}
			sale.Lines = append(sale.Lines, sl)
		}
		s.Sales = append(s.Sales, sale)
		s.TotalRevenue = s.TotalRevenue.Add(sale.Amount)
		if m, ok := sale.Month(); ok {
			s.ByMonth.Add(m, sale.Amount)
		}
	}
	return s
}

// InventorySummary aggregates the current inventory. Potential revenue and
// margin only count items that carry both a price and a cost; an item
// missing either cannot participate in margin analysis.
type InventorySummary struct {
	Items            []InventoryItem
	TotalValue       Money // stock x price over all items
	TotalCost        Money // stock x cost over all items
	PotentialRevenue Money // stock x price over priced items
	PotentialMargin  Money // stock x (price - cost) over priced items
}

// SummarizeInventory derives typed items and their aggregate values.
func SummarizeInventory(records []Record) InventorySummary {
	var s InventorySummary
	for _, r := range records {
		it := NewInventoryItem(r)
		s.Items = append(s.Items, it)
		s.TotalValue = s.TotalValue.Add(it.InventoryValue())
		s.TotalCost = s.TotalCost.Add(it.InventoryCost())
		if it.Priced() {
			s.PotentialRevenue = s.PotentialRevenue.Add(it.InventoryValue())
			s.PotentialMargin = s.PotentialMargin.Add(it.PotentialMargin())
		}
	}
	return s
}

// MiscTransaction is one entry of the free-form transactions section.
type MiscTransaction struct {
	Description string
	Type        string
	Category    string
	Amount      Money
}

// Withdrawal is one revenue withdrawal.
type Withdrawal struct {
	Amount Money
	Reason string
	When   string
}

// ActivitySummary covers the sections reported for visibility but kept out
// of the break-even math: misc transactions and revenue withdrawals.
type ActivitySummary struct {
	Transactions   []MiscTransaction
	Withdrawals    []Withdrawal
	TotalWithdrawn Money
}

// SummarizeActivity types the transactions and withdrawals sections.
func SummarizeActivity(transactions, withdrawals []Record) ActivitySummary {
	var s ActivitySummary
	for _, r := range transactions {
		s.Transactions = append(s.Transactions, MiscTransaction{
			Description: r.TextOr("(no description)", "description"),
			Type:        r.TextOr("N/A", "type"),
			Category:    r.TextOr("N/A", "category"),
			Amount:      r.Amount("amount", "total"),
		})
	}
	for _, r := range withdrawals {
		w := Withdrawal{
			Amount: r.Amount("amount"),
			Reason: r.TextOr("(no reason)", "reason"),
			When:   r.TextOr("N/A", "withdrawnAt", "date"),
		}
		s.Withdrawals = append(s.Withdrawals, w)
		s.TotalWithdrawn = s.TotalWithdrawn.Add(w.Amount)
	}
	return s
}
