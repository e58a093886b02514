package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nanis/breakeven"
	"github.com/nanis/breakeven/renderer"
)

type salesCmd struct {
	backupFile string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display the sales (revenue) breakdown" }
func (*salesCmd) Usage() string {
	return `bep sales [-f <backup-file>]

  Displays every sale with buyer, payment method and sold line items, and
  the revenue grouped by calendar month.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.backupFile, "f", breakeven.DefaultBackupFile, "Path to the backup JSON file.")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	backup, status := loadBackup(c.backupFile)
	if backup == nil {
		return status
	}
	printMarkdown(renderer.SalesMarkdown(breakeven.SummarizeSales(backup.Sales)))
	return subcommands.ExitSuccess
}
