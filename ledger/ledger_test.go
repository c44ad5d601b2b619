package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paybacklab/payback/ledger"
)

func TestFromNamedBalances_Dedup(t *testing.T) {
	g, err := ledger.FromNamedBalances([]ledger.NamedBalance{
		{Name: "alice", Balance: -5},
		{Name: "bob", Balance: 3},
		{Name: "alice", Balance: -2},
		{Name: "carol", Balance: 4},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Count())

	alice, ok := g.LookupByName("alice")
	require.True(t, ok)
	require.Equal(t, 0, alice.ID)
	require.Equal(t, int64(-7), alice.Balance)

	bob, ok := g.LookupByName("bob")
	require.True(t, ok)
	require.Equal(t, 1, bob.ID)

	carol, ok := g.LookupByName("carol")
	require.True(t, ok)
	require.Equal(t, 2, carol.ID)
}

func TestFromNamedBalances_EmptyName(t *testing.T) {
	_, err := ledger.FromNamedBalances([]ledger.NamedBalance{{Name: "", Balance: 1}})
	require.ErrorIs(t, err, ledger.ErrEmptyName)
}

func TestFromBalances_PositionalNames(t *testing.T) {
	g := ledger.FromBalances([]int64{-1, 2, -1})
	require.Equal(t, 3, g.Count())

	p, ok := g.LookupByName("1")
	require.True(t, ok)
	require.Equal(t, int64(2), p.Balance)
	require.Equal(t, 1, p.ID)
}

func TestFromLedgerEntries_NetsBalances(t *testing.T) {
	g, err := ledger.FromLedgerEntries([]ledger.LedgerEntry{
		{Payer: "A", Payee: "B", Amount: 10},
		{Payer: "B", Payee: "C", Amount: 4},
	})
	require.NoError(t, err)

	a, _ := g.LookupByName("A")
	b, _ := g.LookupByName("B")
	c, _ := g.LookupByName("C")
	require.Equal(t, int64(-10), a.Balance)
	require.Equal(t, int64(6), b.Balance)
	require.Equal(t, int64(4), c.Balance)
	require.Equal(t, 0.0, g.AverageBalance())
}

func TestFromLedgerEntries_SelfTransfer(t *testing.T) {
	_, err := ledger.FromLedgerEntries([]ledger.LedgerEntry{{Payer: "A", Payee: "A", Amount: 1}})
	require.ErrorIs(t, err, ledger.ErrSelfTransfer)
}

func TestAverageBalance_Unsolvable(t *testing.T) {
	g := ledger.FromBalances([]int64{1, 1, -1})
	require.InDelta(t, 1.0/3.0, g.AverageBalance(), 1e-9)
}

func TestNameOr_Fallback(t *testing.T) {
	g := ledger.FromBalances([]int64{1, -1})
	require.Equal(t, "0", g.NameOr(0, "?"))
	require.Equal(t, "?", g.NameOr(99, "?"))
}

func TestSubgraph_PreservesParentIDs(t *testing.T) {
	g := ledger.FromBalances([]int64{-3, 1, 2})
	sub, err := g.Subgraph([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Count())

	// Subgraph keeps the parent's ids (2 and 0), unlike every other
	// constructor, so a solver run over sub can hand its transfer edges
	// straight back to the parent without translation.
	p2, ok := sub.LookupByID(2)
	require.True(t, ok)
	require.Equal(t, "2", p2.Name)
	require.Equal(t, int64(2), p2.Balance)

	p0, ok := sub.LookupByID(0)
	require.True(t, ok)
	require.Equal(t, "0", p0.Name)
	require.Equal(t, int64(-3), p0.Balance)

	_, ok = sub.LookupByID(1)
	require.False(t, ok, "id 1 was excluded from the subgraph and must not resolve")
}

func TestSubgraph_UnknownID(t *testing.T) {
	g := ledger.FromBalances([]int64{1, -1})
	_, err := g.Subgraph([]int{5})
	require.ErrorIs(t, err, ledger.ErrUnknownParticipant)
}

func TestNodes_IsCopy(t *testing.T) {
	g := ledger.FromBalances([]int64{1, -1})
	nodes := g.Nodes()
	nodes[0].Balance = 999
	p0, _ := g.LookupByID(0)
	require.Equal(t, int64(1), p0.Balance)
}
