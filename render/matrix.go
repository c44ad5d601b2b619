package render

import (
	"fmt"
	"strings"

	"github.com/paybacklab/payback/ledger"
	"github.com/paybacklab/payback/settle"
)

// SettlementMatrix is a dense n×n view of a Solution: At(payer, payee) is
// the amount payer owes payee, zero where no transfer exists. It gives
// callers random access to transfer amounts without walking the sparse
// Solution map, through a Rows/Cols/At accessor shape.
type SettlementMatrix struct {
	names []string
	cells [][]int64
}

// NewSettlementMatrix builds a SettlementMatrix sized to g's participant
// count, populated from sol.
func NewSettlementMatrix(g *ledger.BalanceGraph, sol settle.Solution) *SettlementMatrix {
	nodes := g.Nodes()
	n := len(nodes)
	m := &SettlementMatrix{
		names: make([]string, n),
		cells: make([][]int64, n),
	}
	for i, p := range nodes {
		m.names[i] = p.Name
		m.cells[i] = make([]int64, n)
	}
	for e, amount := range sol {
		if e.Payer < n && e.Payee < n {
			m.cells[e.Payer][e.Payee] = amount
		}
	}
	return m
}

// Rows returns the number of participants represented.
func (m *SettlementMatrix) Rows() int { return len(m.names) }

// Cols returns the number of participants represented (always Rows()).
func (m *SettlementMatrix) Cols() int { return len(m.names) }

// At returns the amount participant `payer` pays participant `payee`,
// zero if there is no such transfer.
func (m *SettlementMatrix) At(payer, payee int) int64 {
	if payer < 0 || payer >= len(m.names) || payee < 0 || payee >= len(m.names) {
		return 0
	}
	return m.cells[payer][payee]
}

// Matrix renders sol as a whitespace-aligned settlement matrix, row
// participant pays column participant.
func Matrix(g *ledger.BalanceGraph, sol settle.Solution) string {
	m := NewSettlementMatrix(g, sol)
	var b strings.Builder
	fmt.Fprint(&b, "\\")
	for _, name := range m.names {
		fmt.Fprintf(&b, "\t%s", name)
	}
	b.WriteString("\n")
	for i, name := range m.names {
		fmt.Fprint(&b, name)
		for j := range m.names {
			fmt.Fprintf(&b, "\t%d", m.At(i, j))
		}
		b.WriteString("\n")
	}
	return b.String()
}
