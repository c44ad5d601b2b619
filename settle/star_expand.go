package settle

import "github.com/paybacklab/payback/ledger"

// StarExpand settles g by routing every payment through a single hub
// participant: each debtor pays the hub what they owe, and the hub pays
// each creditor what they're owed. It produces at most n-1 transfers for
// an n-participant zero-sum graph, a 2-approximation of the optimal
// transfer count, in O(n) time.
//
// The hub is the participant with the greatest balance, ties broken by
// first occurrence in g. Participants already at zero are skipped and
// never touch the hub.
func StarExpand(g *ledger.BalanceGraph) Solution {
	nodes := g.Nodes()
	out := make(Solution)
	if len(nodes) == 0 {
		return out
	}
	hub := nodes[0].ID
	hubBalance := nodes[0].Balance
	for _, p := range nodes[1:] {
		if p.Balance > hubBalance {
			hub = p.ID
			hubBalance = p.Balance
		}
	}
	for _, p := range nodes {
		if p.ID == hub || p.Balance == 0 {
			continue
		}
		if p.Balance > 0 {
			out[ledger.TransferEdge{Payer: hub, Payee: p.ID}] = p.Balance
		} else {
			out[ledger.TransferEdge{Payer: p.ID, Payee: hub}] = -p.Balance
		}
	}
	return out
}
