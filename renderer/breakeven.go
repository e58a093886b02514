// Package renderer turns the computed report structs into markdown text.
// It holds no business logic: every figure is computed upstream and only
// formatted here.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/nanis/breakeven"
	md "github.com/nao1215/markdown"
)

// BreakevenMarkdown renders the full break-even analysis.
func BreakevenMarkdown(r *breakeven.BreakevenReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Break-even Analysis")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total investment", r.TotalInvestment.String()},
			{"Total revenue", r.TotalRevenue.String()},
			{"Net profit/loss", r.Profit.SignedString()},
		},
	}
	if r.HasROI {
		table.Rows = append(table.Rows, []string{"ROI", r.ROI.SignedString()})
	}
	if r.HasMargins {
		table.Rows = append(table.Rows,
			[]string{"Profit margin", r.ProfitMargin.String()},
			[]string{"Markup over cost", r.Markup.String()},
		)
	}
	doc.Table(table)

	if !r.Recovered() {
		doc.PlainText(fmt.Sprintf("Still %s in sales away from break-even.", r.Deficit()))
	} else if r.TotalRevenue.IsPositive() {
		doc.PlainText("The business has recovered its investment.")
	}

	if r.HasRecovery {
		doc.H2("Recovery Timeline")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Metric", "Value"},
			Rows: [][]string{
				{"Months with sales", fmt.Sprintf("%d", r.MonthsWithSales)},
				{"Average monthly revenue", r.AvgMonthlyRevenue.String()},
				{"Time to break-even", r.Recovery.String()},
			},
		})
	}

	if r.Trend != nil {
		doc.H2("Sales Trend")
		direction := "Negative trend"
		if r.Trend.Growing() {
			direction = "Positive trend"
		}
		doc.PlainText(fmt.Sprintf("%s: %s change in monthly sales (earlier avg %s, later avg %s).",
			direction, r.Trend.Change.SignedString(), r.Trend.EarlierAvg, r.Trend.LaterAvg))
	}

	doc.H2("Recommendations")
	if r.Recovered() && r.TotalRevenue.IsPositive() {
		doc.BulletList(
			"Consider reinvesting profits to expand the inventory.",
			"Review which products carry the best margin and focus on them.",
		)
	} else {
		doc.BulletList(
			"Focus on products with the highest margin.",
			"Consider marketing pushes to raise monthly sales.",
			"Review selling prices to keep margins healthy.",
			"Audit shipping and other operating costs.",
		)
	}

	return doc.String()
}
