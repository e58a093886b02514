package breakeven

import "fmt"

// Recovery is the estimated number of months to reach break-even.
// A zero average of monthly sales makes the estimate unbounded; that case
// is a distinct unreachable outcome, never a division or an infinity.
type Recovery struct {
	Months      float64
	Reached     bool // break-even already crossed; Months counts the elapsed months
	Unreachable bool
}

func (r Recovery) String() string {
	if r.Unreachable {
		return "unreachable"
	}
	if r.Reached {
		return fmt.Sprintf("reached in month %.0f", r.Months)
	}
	return fmt.Sprintf("%.1f months", r.Months)
}

// Trend compares the average revenue of the earlier half of the last
// active months against the later half.
type Trend struct {
	EarlierAvg Money
	LaterAvg   Money
	Change     Percent // positive growth, negative decline
}

// Growing reports whether the later half outperformed the earlier half.
func (t Trend) Growing() bool { return t.LaterAvg.AsFloat() > t.EarlierAvg.AsFloat() }

// BreakevenReport is the structured outcome of the break-even analysis.
// It is pure data; rendering lives in the renderer package.
type BreakevenReport struct {
	TotalInvestment Money
	TotalRevenue    Money
	Profit          Money // revenue - investment, may be negative

	HasROI bool // ROI is only reported when the investment is positive
	ROI    Percent

	MonthsWithSales   int
	AvgMonthlyRevenue Money

	HasRecovery bool // false when no sale carried a parseable date
	Recovery    Recovery

	// Margin figures, only when both totals are positive.
	HasMargins   bool
	ProfitMargin Percent // profit as a share of revenue
	Markup       Percent // profit as a share of investment

	Trend *Trend // nil when fewer than two active months
}

// Recovered reports whether revenue already covers the investment.
func (r *BreakevenReport) Recovered() bool {
	return r.TotalRevenue.GreaterThanOrEqual(r.TotalInvestment)
}

// Deficit is the revenue still missing to reach break-even; zero once
// recovered.
func (r *BreakevenReport) Deficit() Money {
	if r.Recovered() {
		return Money{}
	}
	return r.TotalInvestment.Sub(r.TotalRevenue)
}

// NewBreakevenReport combines the aggregated purchase and sale summaries
// into the full break-even analysis.
func NewBreakevenReport(purchases PurchaseSummary, sales SaleSummary) *BreakevenReport {
	investment := purchases.TotalInvestment
	revenue := sales.TotalRevenue

	r := &BreakevenReport{
		TotalInvestment: investment,
		TotalRevenue:    revenue,
		Profit:          revenue.Sub(investment),
		MonthsWithSales: len(sales.ByMonth),
	}

	if investment.IsPositive() {
		r.HasROI = true
		r.ROI = Percent(100 * r.Profit.AsFloat() / investment.AsFloat())
	}
	if revenue.IsPositive() && investment.IsPositive() {
		r.HasMargins = true
		r.ProfitMargin = Percent(100 * r.Profit.AsFloat() / revenue.AsFloat())
		r.Markup = Percent(100 * r.Profit.AsFloat() / investment.AsFloat())
	}

	if r.MonthsWithSales > 0 {
		// The average spans months that had any recorded sale; revenue
		// without a parseable date still contributes to the numerator.
		r.AvgMonthlyRevenue = revenue.DivFloat(float64(r.MonthsWithSales))
		r.HasRecovery = true
		if revenue.LessThan(investment) {
			r.Recovery = estimateRecovery(r.Deficit(), r.AvgMonthlyRevenue)
		} else {
			r.Recovery = elapsedRecovery(sales.ByMonth, investment)
		}
	}

	r.Trend = salesTrend(sales.ByMonth)
	return r
}

// estimateRecovery divides the remaining deficit by the average monthly
// revenue. Zero average yields the unreachable outcome.
func estimateRecovery(deficit, avgMonthly Money) Recovery {
	if !avgMonthly.IsPositive() {
		return Recovery{Unreachable: true}
	}
	return Recovery{Months: deficit.AsFloat() / avgMonthly.AsFloat()}
}

// elapsedRecovery walks the sorted months accumulating revenue until the
// cumulative value first meets or exceeds the investment, and reports the
// month count at which the threshold was crossed.
func elapsedRecovery(byMonth MonthlyBuckets, investment Money) Recovery {
	var cumulative Money
	count := 0
	for _, m := range byMonth.Months() {
		cumulative = cumulative.Add(byMonth[m])
		count++
		if cumulative.GreaterThanOrEqual(investment) {
			return Recovery{Months: float64(count), Reached: true}
		}
	}
	// Revenue >= investment overall but the dated share never crosses the
	// threshold (the rest came from undatable sales). Report the full span.
	return Recovery{Months: float64(count), Reached: true}
}

// salesTrend compares the earlier and later halves of the last up-to-3
// active months. It returns nil when fewer than two months had sales, or
// when the earlier half averaged zero and no direction can be derived.
func salesTrend(byMonth MonthlyBuckets) *Trend {
	months := byMonth.Months()
	if len(months) < 2 {
		return nil
	}
	if len(months) > 3 {
		months = months[len(months)-3:]
	}

	half := len(months) / 2
	var earlier, later Money
	for _, m := range months[:half] {
		earlier = earlier.Add(byMonth[m])
	}
	for _, m := range months[half:] {
		later = later.Add(byMonth[m])
	}
	earlierAvg := earlier.DivFloat(float64(half))
	laterAvg := later.DivFloat(float64(len(months) - half))

	if !earlierAvg.IsPositive() {
		return nil
	}
	change := Percent(100 * (laterAvg.AsFloat() - earlierAvg.AsFloat()) / earlierAvg.AsFloat())
	return &Trend{EarlierAvg: earlierAvg, LaterAvg: laterAvg, Change: change}
}

// RecoveryScenario is one hypothetical monthly sales rate and the months
// to break even at that rate.
type RecoveryScenario struct {
	Label          string
	MonthlyRevenue Money
	Months         float64
}

// InventoryBreakeven is the fallback analysis used when the backup records
// no explicit sales. It assumes the entire inventory liquidates at the
// full margin rate, which may overstate recoverable revenue; the report
// copy flags that assumption.
type InventoryBreakeven struct {
	TotalInvestment  Money
	PotentialRevenue Money
	PotentialMargin  Money
	MarginRate       Percent // overall margin as a share of potential revenue

	BreakevenRevenue Money   // revenue needed to recover the investment
	InventoryShare   Percent // share of the inventory to sell to break even

	// Feasible is true when the potential revenue exceeds the investment.
	Feasible        bool
	PotentialProfit Money
	PotentialROI    Percent
	Scenarios       []RecoveryScenario
}

// NewInventoryBreakeven computes the inventory-based fallback. It returns
// nil when no item carries both price and cost, or when the margin is not
// positive: no break-even revenue exists then.
func NewInventoryBreakeven(inv InventorySummary, totalInvestment Money) *InventoryBreakeven {
	if !inv.PotentialRevenue.IsPositive() || !inv.PotentialMargin.IsPositive() {
		return nil
	}

	marginRate := inv.PotentialMargin.AsFloat() / inv.PotentialRevenue.AsFloat()
	breakevenRevenue := totalInvestment.DivFloat(marginRate)

	b := &InventoryBreakeven{
		TotalInvestment:  totalInvestment,
		PotentialRevenue: inv.PotentialRevenue,
		PotentialMargin:  inv.PotentialMargin,
		MarginRate:       Percent(100 * marginRate),
		BreakevenRevenue: breakevenRevenue,
		InventoryShare:   Percent(100 * breakevenRevenue.AsFloat() / inv.PotentialRevenue.AsFloat()),
	}

	if inv.PotentialRevenue.AsFloat() > totalInvestment.AsFloat() {
		b.Feasible = true
		b.PotentialProfit = inv.PotentialMargin
		if totalInvestment.IsPositive() {
			b.PotentialROI = Percent(100 * inv.PotentialMargin.AsFloat() / totalInvestment.AsFloat())
		}
		// Hypothetical monthly sales rates as shares of the
		// break-even revenue.
		for _, sc := range []struct {
			label string
			rate  float64
		}{
			{"very low sales", 0.10},
			{"low sales", 0.20},
			{"moderate sales", 0.33},
			{"high sales", 0.50},
		} {
			monthly := breakevenRevenue.AsFloat() * sc.rate
			b.Scenarios = append(b.Scenarios, RecoveryScenario{
				Label:          sc.label,
				MonthlyRevenue: M(monthly),
				Months:         breakevenRevenue.AsFloat() / monthly,
			})
		}
	}
	return b
}
