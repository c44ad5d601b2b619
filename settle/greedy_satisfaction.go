package settle

import "github.com/paybacklab/payback/ledger"

// residual tracks how much of a participant's balance is still unsettled
// as GreedySatisfaction consumes it from both sides.
type residual struct {
	id     int
	amount int64 // always positive: amount still owed (debtor) or due (creditor)
}

// GreedySatisfaction settles g by walking its debtors and creditors in
// parallel, each in the order g lists its participants, and matching off as much of the
// current debtor's and current creditor's residual balance as possible on
// every step. Like StarExpand it is a 2-approximation of the optimal
// transfer count, but it tends to produce fewer transfers in practice
// because it never routes money through an uninvolved third party.
//
// Complexity: O(n). Participants are taken in g's own order, with no sort.
func GreedySatisfaction(g *ledger.BalanceGraph) Solution {
	var debtors, creditors []residual
	for _, p := range g.Nodes() {
		switch {
		case p.Balance < 0:
			debtors = append(debtors, residual{id: p.ID, amount: -p.Balance})
		case p.Balance > 0:
			creditors = append(creditors, residual{id: p.ID, amount: p.Balance})
		}
	}

	out := make(Solution)
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		d, c := &debtors[i], &creditors[j]
		switch {
		case d.amount < c.amount:
			out[ledger.TransferEdge{Payer: d.id, Payee: c.id}] += d.amount
			c.amount -= d.amount
			i++
		case d.amount > c.amount:
			out[ledger.TransferEdge{Payer: d.id, Payee: c.id}] += c.amount
			d.amount -= c.amount
			j++
		default:
			out[ledger.TransferEdge{Payer: d.id, Payee: c.id}] += d.amount
			i++
			j++
		}
	}
	return out
}
