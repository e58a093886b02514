package breakeven

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultBackupFile is the fixed path the analysis runs against when no
// other file is given on the command line.
const DefaultBackupFile = "Cosmetics Backup 2025-09-26.json"

// Backup holds the top-level sections of the inventory backup. Sections
// missing from the file are simply empty; everything else about a record
// stays loosely typed.
type Backup struct {
	Items        []Record
	Purchases    []Record
	Sales        []Record
	Transactions []Record
	Withdrawals  []Record
}

// LoadBackup reads and decodes the backup file at path. Loading is
// all-or-nothing: a missing file or malformed JSON yields an error and no
// partial Backup. The file handle is released as soon as the document is
// in memory.
func LoadBackup(path string) (*Backup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open backup file %q: %w", path, err)
	}
	defer f.Close()

	b, err := DecodeBackup(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode backup file %q: %w", path, err)
	}
	return b, nil
}

// DecodeBackup parses the backup JSON document from r into its sections.
func DecodeBackup(r io.Reader) (*Backup, error) {
	var tree any
	if err := json.NewDecoder(r).Decode(&tree); err != nil {
		return nil, fmt.Errorf("parsing backup JSON: %w", err)
	}
	return &Backup{
		Items:        section(tree, "items"),
		Purchases:    section(tree, "purchases"),
		Sales:        section(tree, "sales"),
		Transactions: section(tree, "transactions"),
		Withdrawals:  section(tree, "revenueWithdrawals"),
	}, nil
}

// section extracts a named top-level array of records from the generic
// tree. A missing key, or a value of the wrong shape, yields nil: the
// backup producers do not guarantee every section is present.
func section(tree any, name string) []Record {
	jval, err := jsonpath.Get("$."+name, tree)
	if err != nil {
		return nil
	}
	list, ok := jval.([]any)
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}
