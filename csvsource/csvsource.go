// Package csvsource parses a BalanceGraph from CSV input. It auto-detects
// between two row shapes — node rows (name, balance) and edge rows (payer,
// payee, amount) — by trying to parse as nodes first and falling back to
// edges if that fails, the same strategy a caller fumbling an unlabeled
// CSV file would use by hand.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paybacklab/payback/ledger"
)

// ErrUnparsable is returned when input matches neither the node-row nor
// the edge-row CSV shape. Its message is the one the CLI surfaces
// verbatim to the user; the underlying per-form failures are wrapped in
// for debugging but not part of the user-facing text.
var ErrUnparsable = errors.New("Unable to parse string into graph.")

// Parse reads r as CSV and builds a BalanceGraph, trying the node-row
// form (name, balance) first and the edge-row form (payer, payee, amount)
// if that fails. Rows are read with a variable field count disabled, so a
// malformed row fails fast rather than silently truncating.
func Parse(r io.Reader) (*ledger.BalanceGraph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("csvsource: reading input: %w", err)
	}

	g, nodeErr := parseNodes(raw)
	if nodeErr == nil {
		return g, nil
	}
	g, edgeErr := parseEdges(raw)
	if edgeErr == nil {
		return g, nil
	}
	return nil, fmt.Errorf("%w (as nodes: %v; as edges: %v)", ErrUnparsable, nodeErr, edgeErr)
}

func newReader(raw []byte) *csv.Reader {
	cr := csv.NewReader(strings.NewReader(string(raw)))
	cr.TrimLeadingSpace = true
	return cr
}

func parseNodes(raw []byte) (*ledger.BalanceGraph, error) {
	cr := newReader(raw)
	var rows []ledger.NamedBalance
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != 2 {
			return nil, fmt.Errorf("node row wants 2 fields, got %d", len(rec))
		}
		balance, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing balance %q: %w", rec[1], err)
		}
		rows = append(rows, ledger.NamedBalance{Name: strings.TrimSpace(rec[0]), Balance: balance})
	}
	if len(rows) == 0 {
		return nil, errors.New("no rows")
	}
	return ledger.FromNamedBalances(rows)
}

func parseEdges(raw []byte) (*ledger.BalanceGraph, error) {
	cr := newReader(raw)
	var entries []ledger.LedgerEntry
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("edge row wants 3 fields, got %d", len(rec))
		}
		amount, err := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", rec[2], err)
		}
		entries = append(entries, ledger.LedgerEntry{
			Payer:  strings.TrimSpace(rec[0]),
			Payee:  strings.TrimSpace(rec[1]),
			Amount: amount,
		})
	}
	if len(entries) == 0 {
		return nil, errors.New("no rows")
	}
	return ledger.FromLedgerEntries(entries)
}
