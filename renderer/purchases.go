package renderer

import (
	"bytes"
	"fmt"

	"github.com/nanis/breakeven"
	md "github.com/nao1215/markdown"
)

// PurchasesMarkdown renders the purchase (investment) breakdown.
func PurchasesMarkdown(s breakeven.PurchaseSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Purchases (Investment)")
	doc.PlainText(fmt.Sprintf("Total investment: %s across %d purchases.",
		s.TotalInvestment, len(s.Purchases)))

	if len(s.Purchases) > 0 {
		doc.H2("Purchase Breakdown")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignLeft,
				md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			},
			Header: []string{"ID", "Date", "Subtotal", "Tax", "Shipping US", "Shipping Intl", "Total"},
		}
		for _, p := range s.Purchases {
			table.Rows = append(table.Rows, []string{
				p.ID,
				orNA(p.Date),
				p.Subtotal.String(),
				p.Tax.String(),
				p.ShippingUS.String(),
				p.ShippingIntl.String(),
				p.TotalCost().String(),
			})
		}
		doc.Table(table)

		for _, p := range s.Purchases {
			if len(p.Lines) == 0 {
				continue
			}
			doc.H2(fmt.Sprintf("Items in purchase %s", p.ID))
			var lines []string
			for _, l := range p.Lines {
				lines = append(lines, fmt.Sprintf("%s: %d units @ %s each", l.Item, l.Quantity, l.UnitCost))
			}
			doc.BulletList(lines...)
		}
	}

	if len(s.ByMonth) > 0 {
		doc.H2("Investment by Month")
		doc.Table(monthlyTable(s.ByMonth))
	}

	return doc.String()
}

// monthlyTable renders a bucket map as a chronologically sorted table.
func monthlyTable(b breakeven.MonthlyBuckets) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Month", "Amount"},
	}
	for _, m := range b.Months() {
		table.Rows = append(table.Rows, []string{string(m), b[m].String()})
	}
	return table
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
