package renderer

import (
	"bytes"
	"fmt"

	"github.com/nanis/breakeven"
	md "github.com/nao1215/markdown"
)

// ActivityMarkdown renders the misc transactions and revenue withdrawals.
// These sections are informational only; the break-even math excludes them.
func ActivityMarkdown(s breakeven.ActivitySummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Additional Activity")

	doc.H2(fmt.Sprintf("Transactions (%d)", len(s.Transactions)))
	if len(s.Transactions) > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Description", "Type", "Category", "Amount"},
		}
		for _, t := range s.Transactions {
			table.Rows = append(table.Rows, []string{t.Description, t.Type, t.Category, t.Amount.String()})
		}
		doc.Table(table)
	}

	doc.H2(fmt.Sprintf("Revenue Withdrawals (%d)", len(s.Withdrawals)))
	if len(s.Withdrawals) > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Reason", "Amount"},
		}
		for _, w := range s.Withdrawals {
			table.Rows = append(table.Rows, []string{w.When, w.Reason, w.Amount.String()})
		}
		doc.Table(table)
	}
	doc.PlainText(fmt.Sprintf("Total withdrawn: %s", s.TotalWithdrawn))

	return doc.String()
}

// OverviewMarkdown renders the section counts of a loaded backup.
func OverviewMarkdown(b *breakeven.Backup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Backup Overview")
	doc.BulletList(
		fmt.Sprintf("%d products in inventory", len(b.Items)),
		fmt.Sprintf("%d purchases", len(b.Purchases)),
		fmt.Sprintf("%d sales", len(b.Sales)),
		fmt.Sprintf("%d additional transactions", len(b.Transactions)),
		fmt.Sprintf("%d revenue withdrawals", len(b.Withdrawals)),
	)

	return doc.String()
}
