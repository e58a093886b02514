package renderer

import (
	"bytes"
	"fmt"

	"github.com/nanis/breakeven"
	md "github.com/nao1215/markdown"
)

// InventoryMarkdown renders the per-item margin analysis, and the
// inventory-based break-even fallback when one was computed.
func InventoryMarkdown(s breakeven.InventorySummary, fb *breakeven.InventoryBreakeven) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Analysis")
	doc.PlainText(fmt.Sprintf("%d products. Inventory value %s, inventory cost %s.",
		len(s.Items), s.TotalValue, s.TotalCost))

	if len(s.Items) > 0 {
		doc.H2("Margin per Product")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight,
				md.AlignRight, md.AlignRight, md.AlignRight,
			},
			Header: []string{"Product", "Stock", "Price", "Cost", "Unit margin", "Margin rate", "Potential revenue"},
		}
		for _, it := range s.Items {
			table.Rows = append(table.Rows, []string{
				it.Name,
				fmt.Sprintf("%d", it.Stock),
				it.Price.String(),
				it.Cost.String(),
				it.UnitMargin().String(),
				it.MarginRate().String(),
				it.InventoryValue().String(),
			})
		}
		doc.Table(table)
	}

	if fb != nil {
		doc.H2("Break-even from Inventory")
		doc.PlainText("No explicit sales recorded; estimates assume the full inventory liquidates at the current margin rate, which may overstate recoverable revenue.")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Metric", "Value"},
			Rows: [][]string{
				{"Total investment", fb.TotalInvestment.String()},
				{"Potential revenue", fb.PotentialRevenue.String()},
				{"Potential margin", fb.PotentialMargin.String()},
				{"Average margin rate", fb.MarginRate.String()},
				{"Break-even revenue", fb.BreakevenRevenue.String()},
				{"Share of inventory to sell", fb.InventoryShare.String()},
			},
		})

		if fb.Feasible {
			doc.PlainText(fmt.Sprintf("Potential profit %s (potential ROI %s).",
				fb.PotentialProfit, fb.PotentialROI))
			doc.H2("Recovery Time Scenarios")
			table := md.TableSet{
				Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
				Header:    []string{"Scenario", "Monthly sales", "Months to break-even"},
			}
			for _, sc := range fb.Scenarios {
				table.Rows = append(table.Rows, []string{
					sc.Label,
					sc.MonthlyRevenue.String(),
					fmt.Sprintf("%.1f", sc.Months),
				})
			}
			doc.Table(table)
		} else {
			doc.PlainText(fmt.Sprintf("Warning: the investment (%s) exceeds the potential revenue (%s). Review selling prices or product costs.",
				fb.TotalInvestment, fb.PotentialRevenue))
		}
	}

	return doc.String()
}
