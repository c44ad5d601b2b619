package ledger

import (
	"fmt"
	"strings"
)

// String renders the graph as one "name: balance" line per participant,
// in dense-ID order. Solvers log this at debug level before they run.
func (g *BalanceGraph) String() string {
	var b strings.Builder
	for _, p := range g.participants {
		fmt.Fprintf(&b, "%s: %d\n", p.Name, p.Balance)
	}
	return b.String()
}

// Nodes returns every participant in dense-ID order. The returned slice is
// a fresh copy; mutating it does not affect the graph.
//
// Complexity: O(n).
func (g *BalanceGraph) Nodes() []Participant {
	out := make([]Participant, len(g.participants))
	copy(out, g.participants)
	return out
}

// Count returns the number of participants in the graph.
func (g *BalanceGraph) Count() int {
	return len(g.participants)
}

// LookupByID returns the participant with the given ID, and false if no
// such participant exists. IDs are dense (0..n-1) for every graph except
// one built by Subgraph, which preserves its parent's ids verbatim.
func (g *BalanceGraph) LookupByID(id int) (Participant, bool) {
	idx, ok := g.byID[id]
	if !ok {
		return Participant{}, false
	}
	return g.participants[idx], true
}

// LookupByName returns the participant with the given name, and false if
// no such participant exists.
func (g *BalanceGraph) LookupByName(name string) (Participant, bool) {
	idx, ok := g.byName[name]
	if !ok {
		return Participant{}, false
	}
	return g.participants[idx], true
}

// NameOr returns the display name of participant id, or fallback if id is
// out of range. Solvers and renderers use this so a malformed ID never
// blanks out a rendered transaction line.
func (g *BalanceGraph) NameOr(id int, fallback string) string {
	if p, ok := g.LookupByID(id); ok {
		return p.Name
	}
	return fallback
}

// AverageBalance returns the arithmetic mean of all participant balances.
// A solvable instance has an average of exactly zero; any nonzero average
// means the ledger does not balance and no settlement can exist.
func (g *BalanceGraph) AverageBalance() float64 {
	if len(g.participants) == 0 {
		return 0
	}
	var sum int64
	for _, p := range g.participants {
		sum += p.Balance
	}
	return float64(sum) / float64(len(g.participants))
}

// Subgraph returns a new BalanceGraph containing exactly the participants
// named by ids, in the order ids is given. Unlike every other
// constructor, it preserves g's original ids rather than renumbering: a
// solver handed a subgraph can build TransferEdge values directly from
// it and a caller can merge them back into a solution over g with no
// translation step. It is used to hand an isolated zero-sum block off to
// an approximation solver.
//
// Returns ErrUnknownParticipant if any id does not exist in g.
func (g *BalanceGraph) Subgraph(ids []int) (*BalanceGraph, error) {
	sub := &BalanceGraph{
		participants: make([]Participant, 0, len(ids)),
		byName:       make(map[string]int, len(ids)),
		byID:         make(map[int]int, len(ids)),
	}
	for idx, id := range ids {
		p, ok := g.LookupByID(id)
		if !ok {
			return nil, ErrUnknownParticipant
		}
		sub.participants = append(sub.participants, p)
		sub.byName[p.Name] = idx
		sub.byID[p.ID] = idx
	}
	return sub, nil
}
