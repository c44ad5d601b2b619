// Package ledger holds the data model shared by every payback solver: a
// Participant carries a signed balance, a TransferEdge names a directed
// payment between two participants, and a BalanceGraph is the immutable,
// deduplicated collection of participants a solver runs against.
//
// A BalanceGraph is built once by one of the From* constructors and never
// mutated afterwards, so it carries no internal locking:
// concurrent readers never race because there is nothing left to write.
package ledger

import "fmt"

// Participant is one account in a settlement problem: a stable integer ID
// (its index in iteration order), a display name, and a signed balance.
// Balance is fixed-point: positive means the participant is owed money,
// negative means the participant owes money, and zero means the
// participant is already settled.
type Participant struct {
	ID      int
	Name    string
	Balance int64
}

// TransferEdge names a directed payment from Payer to Payee, both
// participant IDs. It is comparable, so it doubles as a map key for
// settlement amounts (see settle.Solution).
type TransferEdge struct {
	Payer int
	Payee int
}

// String renders an edge as "payer->payee" for debug output.
func (e TransferEdge) String() string {
	return fmt.Sprintf("%d->%d", e.Payer, e.Payee)
}

// BalanceGraph is an immutable set of participants. Every From*
// constructor assigns dense ids 0..n-1 in first-occurrence order;
// Subgraph is the one exception, preserving the ids of its parent graph
// so a caller can always translate a sub-settlement's edges back
// without a lookup table of its own. byID maps a (possibly non-dense,
// for a subgraph) participant id to its position in participants.
type BalanceGraph struct {
	participants []Participant
	byName       map[string]int
	byID         map[int]int
}

// NamedBalance is one row of the ordered (name, balance) constructor form.
type NamedBalance struct {
	Name    string
	Balance int64
}

// LedgerEntry is one row of the edge-keyed constructor form: a transfer of
// Amount owed by Payer to Payee, reduced into net per-participant balances.
type LedgerEntry struct {
	Payer  string
	Payee  string
	Amount int64
}

// accumulator builds a BalanceGraph by folding named balance deltas in
// first-seen order, matching the dedup-by-name rule shared by every
// constructor below.
type accumulator struct {
	order []string
	index map[string]int
	bal   map[string]int64
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int), bal: make(map[string]int64)}
}

func (a *accumulator) add(name string, delta int64) {
	if _, ok := a.index[name]; !ok {
		a.index[name] = len(a.order)
		a.order = append(a.order, name)
	}
	a.bal[name] += delta
}

func (a *accumulator) build() *BalanceGraph {
	g := &BalanceGraph{
		participants: make([]Participant, len(a.order)),
		byName:       make(map[string]int, len(a.order)),
		byID:         make(map[int]int, len(a.order)),
	}
	for idx, name := range a.order {
		g.participants[idx] = Participant{ID: idx, Name: name, Balance: a.bal[name]}
		g.byName[name] = idx
		g.byID[idx] = idx
	}
	return g
}

// FromNamedBalances builds a BalanceGraph from an ordered list of (name,
// balance) pairs. A name repeated later in the list is not a new
// participant: its balance is summed into the first occurrence, and dense
// IDs are assigned in first-occurrence order.
//
// Returns ErrEmptyName if any row names the empty string.
func FromNamedBalances(rows []NamedBalance) (*BalanceGraph, error) {
	acc := newAccumulator()
	for _, r := range rows {
		if r.Name == "" {
			return nil, ErrEmptyName
		}
		acc.add(r.Name, r.Balance)
	}
	return acc.build(), nil
}

// FromBalances builds a BalanceGraph from a bare list of balances. Names
// are auto-assigned as the stringified positional index ("0", "1", ...),
// so no two rows can collide and every entry becomes its own participant.
func FromBalances(balances []int64) *BalanceGraph {
	acc := newAccumulator()
	for i, b := range balances {
		acc.add(fmt.Sprintf("%d", i), b)
	}
	return acc.build()
}

// FromLedgerEntries builds a BalanceGraph from a keyed collection of
// (payer, payee) -> amount records, reducing them into net per-participant
// balances: each entry debits its payer and credits its payee by Amount.
// Participant names are deduplicated exactly as in FromNamedBalances.
//
// Returns ErrEmptyName or ErrSelfTransfer if a record is malformed.
func FromLedgerEntries(entries []LedgerEntry) (*BalanceGraph, error) {
	acc := newAccumulator()
	for _, e := range entries {
		if e.Payer == "" || e.Payee == "" {
			return nil, ErrEmptyName
		}
		if e.Payer == e.Payee {
			return nil, ErrSelfTransfer
		}
		acc.add(e.Payer, -e.Amount)
		acc.add(e.Payee, e.Amount)
	}
	return acc.build(), nil
}
