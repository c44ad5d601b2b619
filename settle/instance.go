// Package settle turns a ledger.BalanceGraph into a settlement: a minimal
// (or near-minimal) set of transfers that zeroes out every participant's
// balance.
//
// Two approximations, StarExpand and GreedySatisfaction, settle a graph
// directly in linear time with at most a factor-2 blowup in transfer
// count. Three exact packing strategies, NaivePartition, BranchingPartition
// and PatcasDP, instead search for the largest zero-sum set packing of the
// participants and hand each block to an approximation, which is optimal
// on a single zero-sum block; combined, they give an exact minimum-
// transfer settlement at exponential cost.
package settle

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/paybacklab/payback/ledger"
)

// Instance wraps a BalanceGraph with the operations needed to decide
// whether it is solvable and to settle it by any of the eight methods.
type Instance struct {
	g *ledger.BalanceGraph
}

// NewInstance wraps g for solving. g is not copied; callers must not
// mutate participants they've already built a graph from (ledger
// constructors never expose a way to, so this holds automatically).
func NewInstance(g *ledger.BalanceGraph) *Instance {
	return &Instance{g: g}
}

// Graph returns the wrapped balance graph.
func (inst *Instance) Graph() *ledger.BalanceGraph {
	return inst.g
}

// IsSolvable reports whether the instance's balances sum to zero. A
// nonzero sum means no settlement exists regardless of method.
func (inst *Instance) IsSolvable() bool {
	return inst.g.AverageBalance() == 0
}

// OptimalLowerBound returns the minimum total amount that must
// change hands to settle every participant: half the sum of absolute
// balances. Every correct settlement moves at least this much money,
// independent of how many transfers it uses.
func (inst *Instance) OptimalLowerBound() float64 {
	var sumAbs int64
	for _, p := range inst.g.Nodes() {
		if p.Balance < 0 {
			sumAbs -= p.Balance
		} else {
			sumAbs += p.Balance
		}
	}
	return float64(sumAbs) / 2
}

// Solve settles the instance using the named method. It returns ok=false,
// with a nil Solution, if the instance is not solvable (see IsSolvable).
//
// ApproxStarExpand and ApproxGreedySatisfaction run their approximation
// directly over the whole graph. The remaining six methods first search
// for a maximum zero-sum set packing (via exhaustive enumeration,
// branch-and-bound, or exact bitmask DP) and then settle each block of
// the packing independently with the named approximation, which is exact
// on a single zero-sum block — so these six methods are exact overall.
func (inst *Instance) Solve(method Method) (Solution, bool) {
	slog.Debug("solving instance", "method", method.String(), "participants", inst.g.Count())
	slog.Debug(inst.g.String())
	if !inst.IsSolvable() {
		return nil, false
	}
	switch method {
	case ApproxStarExpand:
		return StarExpand(inst.g), true
	case ApproxGreedySatisfaction:
		return GreedySatisfaction(inst.g), true
	case PartitionStarExpand:
		return solveByPacking(inst.g, NaivePartition, StarExpand)
	case PartitionGreedySatisfaction:
		return solveByPacking(inst.g, NaivePartition, GreedySatisfaction)
	case BranchStarExpand:
		return solveByPacking(inst.g, BranchingPartition, StarExpand)
	case BranchGreedySatisfaction:
		return solveByPacking(inst.g, BranchingPartition, GreedySatisfaction)
	case DPStarExpand:
		if CheckDPCapacity(inst.g) != nil {
			return nil, false
		}
		return solveByPacking(inst.g, PatcasDP, StarExpand)
	case DPGreedySatisfaction:
		if CheckDPCapacity(inst.g) != nil {
			return nil, false
		}
		return solveByPacking(inst.g, PatcasDP, GreedySatisfaction)
	default:
		return nil, false
	}
}

// FormatSolution renders sol as one `"payer" to "payee": amount` line
// per transfer, amount as a decimal real, sorted by payer then payee
// name for deterministic output. Package render's Transactions does the
// same thing with more formatting options for the CLI; this method
// exists so Instance alone is enough for a caller that just wants to
// print a result (it cannot import render, which itself imports settle).
func (inst *Instance) FormatSolution(sol Solution) string {
	var b strings.Builder
	for _, e := range sortedSolutionEdges(inst.g, sol) {
		fmt.Fprintf(&b, "%q to %q: %.1f\n",
			inst.g.NameOr(e.Payer, fmt.Sprintf("#%d", e.Payer)),
			inst.g.NameOr(e.Payee, fmt.Sprintf("#%d", e.Payee)),
			float64(sol[e]))
	}
	return b.String()
}

// FormatSolutionDOT renders sol as a graphviz directed graph. Fails with
// ledger.ErrUnknownParticipant if sol names a payer or payee id inst's
// graph does not contain.
func (inst *Instance) FormatSolutionDOT(sol Solution) (string, error) {
	var b strings.Builder
	b.WriteString("digraph payback {\n")
	for _, e := range sortedSolutionEdges(inst.g, sol) {
		payer, ok := inst.g.LookupByID(e.Payer)
		if !ok {
			return "", fmt.Errorf("%w: %d", ledger.ErrUnknownParticipant, e.Payer)
		}
		payee, ok := inst.g.LookupByID(e.Payee)
		if !ok {
			return "", fmt.Errorf("%w: %d", ledger.ErrUnknownParticipant, e.Payee)
		}
		fmt.Fprintf(&b, "\t%q -> %q [label=%q];\n", payer.Name, payee.Name, fmt.Sprintf("%d", sol[e]))
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func sortedSolutionEdges(g *ledger.BalanceGraph, sol Solution) []ledger.TransferEdge {
	edges := make([]ledger.TransferEdge, 0, len(sol))
	for e := range sol {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		an, bn := g.NameOr(a.Payer, ""), g.NameOr(b.Payer, "")
		if an != bn {
			return an < bn
		}
		return g.NameOr(a.Payee, "") < g.NameOr(b.Payee, "")
	})
	return edges
}

// packingFunc finds a zero-sum set packing of g's participants: a list of
// blocks, each a set of participant IDs whose balances sum to zero, no two
// blocks sharing an ID. Every participant with a nonzero balance appears
// in exactly one block; participants already at zero may be omitted.
type packingFunc func(g *ledger.BalanceGraph) [][]int

// blockFunc settles a single zero-sum BalanceGraph with an approximation.
type blockFunc func(g *ledger.BalanceGraph) Solution

// solveByPacking finds a packing of g with pack, then settles each block
// independently with solve. Subgraph preserves g's participant ids, so a
// block's settlement already uses g's own ids and every block's edges
// merge directly into the result with no translation step.
func solveByPacking(g *ledger.BalanceGraph, pack packingFunc, solve blockFunc) (Solution, bool) {
	blocks := pack(g)
	slog.Debug("packing computed", "blocks", len(blocks))
	out := make(Solution)
	for _, block := range blocks {
		if len(block) < 2 {
			continue
		}
		sub, err := g.Subgraph(block)
		if err != nil {
			return nil, false
		}
		for edge, amount := range solve(sub) {
			out[edge] = amount
		}
	}
	return out, true
}
