package renderer

import (
	"bytes"
	"fmt"

	"github.com/nanis/breakeven"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the sales (revenue) breakdown.
func SalesMarkdown(s breakeven.SaleSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales (Revenue)")
	doc.PlainText(fmt.Sprintf("Total revenue: %s across %d sales.",
		s.TotalRevenue, len(s.Sales)))

	if len(s.Sales) > 0 {
		doc.H2("Sale Breakdown")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight,
			},
			Header: []string{"ID", "Date", "Buyer", "Payment", "Total"},
		}
		for _, sale := range s.Sales {
			table.Rows = append(table.Rows, []string{
				sale.ID,
				orNA(sale.Date),
				sale.Buyer,
				sale.PaymentMethod,
				sale.Amount.String(),
			})
		}
		doc.Table(table)

		for _, sale := range s.Sales {
			if len(sale.Lines) == 0 {
				continue
			}
			doc.H2(fmt.Sprintf("Items in sale %s", sale.ID))
			var lines []string
			for _, l := range sale.Lines {
				lines = append(lines, fmt.Sprintf("%s: %d units @ %s = %s",
					l.Item, l.Quantity, l.UnitPrice, l.Total))
			}
			doc.BulletList(lines...)
		}
	}

	if len(s.ByMonth) > 0 {
		doc.H2("Revenue by Month")
		doc.Table(monthlyTable(s.ByMonth))
	}

	return doc.String()
}
