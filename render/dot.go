package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paybacklab/payback/ledger"
	"github.com/paybacklab/payback/settle"
)

// ErrUnknownParticipant is returned by DOT when sol names a payer or
// payee id that g does not contain.
var ErrUnknownParticipant = errors.New("render: solution references a participant id not present in the graph")

// DOT renders sol as a graphviz directed graph: one node per participant
// that appears in some transfer, one labeled edge per transfer. Fails
// with ErrUnknownParticipant if any edge names an id g doesn't have.
func DOT(g *ledger.BalanceGraph, sol settle.Solution) (string, error) {
	var b strings.Builder
	b.WriteString("digraph payback {\n")
	for _, e := range sortedEdges(g, sol) {
		payer, ok := g.LookupByID(e.Payer)
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrUnknownParticipant, e.Payer)
		}
		payee, ok := g.LookupByID(e.Payee)
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrUnknownParticipant, e.Payee)
		}
		fmt.Fprintf(&b, "\t%q -> %q [label=%q];\n", payer.Name, payee.Name, fmt.Sprintf("%d", sol[e]))
	}
	b.WriteString("}\n")
	return b.String(), nil
}
