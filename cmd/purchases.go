package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nanis/breakeven"
	"github.com/nanis/breakeven/renderer"
)

type purchasesCmd struct {
	backupFile string
}

func (*purchasesCmd) Name() string     { return "purchases" }
func (*purchasesCmd) Synopsis() string { return "display the purchase (investment) breakdown" }
func (*purchasesCmd) Usage() string {
	return `bep purchases [-f <backup-file>]

  Displays every purchase with its cost components (subtotal, tax,
  domestic and international shipping), the purchased line items, and the
  investment grouped by calendar month.
`
}

func (c *purchasesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.backupFile, "f", breakeven.DefaultBackupFile, "Path to the backup JSON file.")
}

func (c *purchasesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	backup, status := loadBackup(c.backupFile)
	if backup == nil {
		return status
	}
	printMarkdown(renderer.PurchasesMarkdown(breakeven.SummarizePurchases(backup.Purchases)))
	return subcommands.ExitSuccess
}
