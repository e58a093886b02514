// Package breakeven computes financial summary metrics from a JSON export
// of an inventory/sales backup: total investment, total revenue, profit,
// ROI, break-even revenue and an estimate of the time needed to recover the
// initial investment.
//
// The core functionalities include:
//   - Backup Loading: Reading the backup file into a generic tree and
//     extracting the top-level sections (items, purchases, sales,
//     transactions, revenue withdrawals), tolerating missing sections.
//   - Record Access: Looking up fields in loosely-structured records
//     through an ordered chain of candidate key names, since the source
//     schema is not fixed.
//   - Aggregation: Summing cost components per purchase and revenue per
//     sale, grouping amounts by calendar month from best-effort date
//     parsing.
//   - Break-even Analysis: Combining aggregated sums into profit, ROI,
//     break-even revenue, recovery time estimates and a sales trend, with
//     an inventory-based fallback when the backup records no sales.
//
// This package is the foundational logic for the `bep` command-line tool.
// All computation is a single synchronous pass; nothing is persisted.
package breakeven
