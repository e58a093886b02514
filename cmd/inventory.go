package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nanis/breakeven"
	"github.com/nanis/breakeven/renderer"
)

type inventoryCmd struct {
	backupFile string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display the per-product margin analysis" }
func (*inventoryCmd) Usage() string {
	return `bep inventory [-f <backup-file>]

  Displays every product with stock, unit price, unit cost, margin and
  potential revenue. When the backup has no sales, also shows the
  inventory-based break-even estimate and recovery time scenarios.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.backupFile, "f", breakeven.DefaultBackupFile, "Path to the backup JSON file.")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	backup, status := loadBackup(c.backupFile)
	if backup == nil {
		return status
	}

	inventory := breakeven.SummarizeInventory(backup.Items)

	// The fallback estimate only applies when there are no explicit sales.
	var fallback *breakeven.InventoryBreakeven
	if len(backup.Sales) == 0 {
		investment := breakeven.SummarizePurchases(backup.Purchases).TotalInvestment
		if !investment.IsPositive() {
			investment = inventory.TotalCost
		}
		fallback = breakeven.NewInventoryBreakeven(inventory, investment)
	}

	printMarkdown(renderer.InventoryMarkdown(inventory, fallback))
	return subcommands.ExitSuccess
}
