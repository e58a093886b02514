package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/nanis/breakeven"
	"github.com/nanis/breakeven/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	backupFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "run the full financial analysis of the backup" }
func (*reportCmd) Usage() string {
	return `bep report [-f <backup-file>]

  Loads the inventory backup and prints the complete financial snapshot:
  section overview, total investment, total revenue, profit, ROI,
  break-even point, recovery time estimate and sales trend. When the
  backup records no sales, the break-even falls back to an inventory-based
  estimate.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.backupFile, "f", breakeven.DefaultBackupFile, "Path to the backup JSON file.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	backup, status := loadBackup(c.backupFile)
	if backup == nil {
		return status
	}

	purchases := breakeven.SummarizePurchases(backup.Purchases)
	sales := breakeven.SummarizeSales(backup.Sales)
	activity := breakeven.SummarizeActivity(backup.Transactions, backup.Withdrawals)

	var b strings.Builder
	b.WriteString(renderer.OverviewMarkdown(backup))

	if len(backup.Sales) == 0 {
		// No explicit sales: fall back to the inventory-based estimate.
		inventory := breakeven.SummarizeInventory(backup.Items)
		investment := purchases.TotalInvestment
		if !investment.IsPositive() {
			investment = inventory.TotalCost
		}
		fallback := breakeven.NewInventoryBreakeven(inventory, investment)
		b.WriteString(renderer.InventoryMarkdown(inventory, fallback))
	} else {
		report := breakeven.NewBreakevenReport(purchases, sales)
		b.WriteString(renderer.BreakevenMarkdown(report))
	}

	b.WriteString(renderer.ActivityMarkdown(activity))

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
