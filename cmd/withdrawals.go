package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nanis/breakeven"
	"github.com/nanis/breakeven/renderer"
)

type withdrawalsCmd struct {
	backupFile string
}

func (*withdrawalsCmd) Name() string { return "withdrawals" }
func (*withdrawalsCmd) Synopsis() string {
	return "display misc transactions and revenue withdrawals"
}
func (*withdrawalsCmd) Usage() string {
	return `bep withdrawals [-f <backup-file>]

  Displays the additional transactions and the revenue withdrawals of the
  backup. These amounts are shown for visibility; they do not enter the
  break-even calculation.
`
}

func (c *withdrawalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.backupFile, "f", breakeven.DefaultBackupFile, "Path to the backup JSON file.")
}

func (c *withdrawalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	backup, status := loadBackup(c.backupFile)
	if backup == nil {
		return status
	}
	printMarkdown(renderer.ActivityMarkdown(
		breakeven.SummarizeActivity(backup.Transactions, backup.Withdrawals)))
	return subcommands.ExitSuccess
}
