package settle

import "github.com/paybacklab/payback/ledger"

// NaivePartition finds a maximum zero-sum set packing of g's nonzero-
// balance participants by brute-force enumeration of every partition of
// that set (a Bell-number search space), keeping the partition with the
// most blocks among those where every block sums to zero.
//
// This is the simplest correct packing strategy and the slowest: it has
// no business running past a handful of participants. It exists as the
// reference a faster strategy (BranchingPartition, PatcasDP) can be
// checked against.
//
// Contract: g must be solvable (balances sum to zero); Instance.Solve
// checks this before dispatching here.
func NaivePartition(g *ledger.BalanceGraph) [][]int {
	var ids []int
	balance := make(map[int]int64)
	for _, p := range g.Nodes() {
		if p.Balance != 0 {
			ids = append(ids, p.ID)
			balance[p.ID] = p.Balance
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var best [][]int
	bestLen := -1
	for _, partition := range enumeratePartitions(ids) {
		if !allZeroSum(partition, balance) {
			continue
		}
		if len(partition) > bestLen {
			best = partition
			bestLen = len(partition)
		}
	}
	return best
}

// enumeratePartitions returns every set partition of elems, built by
// recursively either appending the next element to an existing block or
// starting a new block with it.
func enumeratePartitions(elems []int) [][][]int {
	if len(elems) == 0 {
		return [][][]int{{}}
	}
	head, tail := elems[0], elems[1:]
	var out [][][]int
	for _, p := range enumeratePartitions(tail) {
		withNewBlock := make([][]int, len(p), len(p)+1)
		copy(withNewBlock, p)
		withNewBlock = append(withNewBlock, []int{head})
		out = append(out, withNewBlock)

		for i := range p {
			extended := make([][]int, len(p))
			copy(extended, p)
			block := make([]int, len(p[i]), len(p[i])+1)
			copy(block, p[i])
			extended[i] = append(block, head)
			out = append(out, extended)
		}
	}
	return out
}

func allZeroSum(partition [][]int, balance map[int]int64) bool {
	for _, block := range partition {
		var sum int64
		for _, id := range block {
			sum += balance[id]
		}
		if sum != 0 {
			return false
		}
	}
	return true
}
