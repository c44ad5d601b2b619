// Package render formats a settle.Solution for human and machine
// consumption: a plain transaction listing, a graphviz DOT digraph, and a
// dense settlement matrix.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paybacklab/payback/ledger"
	"github.com/paybacklab/payback/settle"
)

// sortedEdges returns sol's edges in a deterministic order: by payer
// name, then payee name, so repeated runs of the same instance render
// identical output regardless of map iteration order.
func sortedEdges(g *ledger.BalanceGraph, sol settle.Solution) []ledger.TransferEdge {
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

// Transactions renders sol as one line per transfer: `"payer" to
// "payee": amount`, amount as a decimal real. Settlements with no
// transfers render as the empty string.
func Transactions(g *ledger.BalanceGraph, sol settle.Solution) string {
	var b strings.Builder
	for _, e := range sortedEdges(g, sol) {
		fmt.Fprintf(&b, "%q to %q: %.1f\n",
			g.NameOr(e.Payer, fmt.Sprintf("#%d", e.Payer)),
			g.NameOr(e.Payee, fmt.Sprintf("#%d", e.Payee)),
			float64(sol[e]),
		)
	}
	return b.String()
}
