package renderer

import (
	"strings"
	"testing"

	"github.com/nanis/breakeven"
)

func report(t *testing.T, doc string) *breakeven.BreakevenReport {
	t.Helper()
	b, err := breakeven.DecodeBackup(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeBackup() error: %v", err)
	}
	return breakeven.NewBreakevenReport(
		breakeven.SummarizePurchases(b.Purchases),
		breakeven.SummarizeSales(b.Sales),
	)
}

func TestBreakevenMarkdownRecovered(t *testing.T) {
	r := report(t, `{
		"purchases": [{"subtotal": 100, "tax": 10, "shippingUS": 5, "createdAt": "2025-01-15T00:00:00Z"}],
		"sales": [{"totalAmount": 200, "createdAt": "2025-02-01T00:00:00Z"}]
	}`)

	got := BreakevenMarkdown(r)

	for _, want := range []string{
		"# Break-even Analysis",
		"$115.00", // total investment
		"$200.00", // total revenue
		"+$85.00", // net profit
		"ROI",
		"recovered its investment",
		"reached in month 1",
		"Recommendations",
		"reinvesting profits",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BreakevenMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestBreakevenMarkdownUnreachable(t *testing.T) {
	r := report(t, `{
		"purchases": [{"subtotal": 100}],
		"sales": [{"totalAmount": 0, "createdAt": "2025-01-20"}]
	}`)

	got := BreakevenMarkdown(r)

	if !strings.Contains(got, "unreachable") {
		t.Errorf("BreakevenMarkdown() missing the unreachable outcome in:\n%s", got)
	}
	if !strings.Contains(got, "away from break-even") {
		t.Errorf("BreakevenMarkdown() missing the deficit line in:\n%s", got)
	}
}

func TestBreakevenMarkdownTrend(t *testing.T) {
	r := report(t, `{
		"sales": [
			{"totalAmount": 100, "createdAt": "2025-01-05"},
			{"totalAmount": 300, "createdAt": "2025-02-05"}
		]
	}`)

	got := BreakevenMarkdown(r)
	if !strings.Contains(got, "Positive trend") || !strings.Contains(got, "+200.0%") {
		t.Errorf("BreakevenMarkdown() missing the trend section in:\n%s", got)
	}
}

func TestPurchasesMarkdown(t *testing.T) {
	s := breakeven.SummarizePurchases([]breakeven.Record{
		{
			"id":        "p1",
			"subtotal":  100.0,
			"tax":       10.0,
			"createdAt": "2025-01-15",
			"lines": []any{
				map[string]any{"itemName": "lipstick", "quantity": 5.0, "unitCostPostShipping": 10.0},
			},
		},
	})

	got := PurchasesMarkdown(s)

	for _, want := range []string{
		"# Purchases (Investment)",
		"$110.00",
		"p1",
		"lipstick: 5 units @ $10.00 each",
		"## Investment by Month",
		"2025-01",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PurchasesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSalesMarkdown(t *testing.T) {
	s := breakeven.SummarizeSales([]breakeven.Record{
		{"id": "s1", "totalAmount": 200.0, "createdAt": "2025-02-01", "buyerName": "Ana", "paymentMethod": "cash"},
	})

	got := SalesMarkdown(s)

	for _, want := range []string{
		"# Sales (Revenue)",
		"$200.00",
		"Ana",
		"cash",
		"## Revenue by Month",
		"2025-02",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SalesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestInventoryMarkdownWithFallback(t *testing.T) {
	inv := breakeven.SummarizeInventory([]breakeven.Record{
		{"name": "lipstick", "stock": 10.0, "price": 20.0, "cost": 10.0},
	})
	fb := breakeven.NewInventoryBreakeven(inv, breakeven.M(50.0))

	got := InventoryMarkdown(inv, fb)

	for _, want := range []string{
		"# Inventory Analysis",
		"lipstick",
		"## Break-even from Inventory",
		"full inventory liquidates",
		"50.0%", // margin rate
		"## Recovery Time Scenarios",
		"moderate sales",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("InventoryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestInventoryMarkdownInfeasibleWarning(t *testing.T) {
	inv := breakeven.SummarizeInventory([]breakeven.Record{
		{"name": "lipstick", "stock": 10.0, "price": 20.0, "cost": 10.0},
	})
	fb := breakeven.NewInventoryBreakeven(inv, breakeven.M(500.0))

	got := InventoryMarkdown(inv, fb)
	if !strings.Contains(got, "Warning: the investment") {
		t.Errorf("InventoryMarkdown() missing the infeasibility warning in:\n%s", got)
	}
}

func TestActivityMarkdown(t *testing.T) {
	s := breakeven.SummarizeActivity(
		[]breakeven.Record{{"description": "booth rental", "type": "expense", "amount": 30.0}},
		[]breakeven.Record{{"amount": 50.0, "reason": "owner draw", "withdrawnAt": "2025-03-01"}},
	)

	got := ActivityMarkdown(s)

	for _, want := range []string{
		"# Additional Activity",
		"booth rental",
		"owner draw",
		"Total withdrawn: $50.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ActivityMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestOverviewMarkdown(t *testing.T) {
	b, err := breakeven.DecodeBackup(strings.NewReader(`{
		"items": [{}, {}],
		"sales": [{}]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	got := OverviewMarkdown(b)

	for _, want := range []string{
		"# Backup Overview",
		"2 products in inventory",
		"1 sales",
		"0 purchases",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("OverviewMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
