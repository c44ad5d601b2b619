package settle

import (
	"math/bits"
	"sort"

	"github.com/paybacklab/payback/ledger"
)

// BranchingPartition finds a zero-sum set packing of g's nonzero-balance
// participants by branch-and-bound: it commits a cancelling pair as soon
// as one is found (no other block beats a pair for those two
// participants), then branches over every larger zero-sum subset of what
// remains, keeping whichever branch yields the most blocks. The whole
// remaining set is always zero-sum, so recursion always has a fallback
// and never fails to terminate with a packing.
//
// This prunes the Bell-number search NaivePartition performs down to
// roughly the zero-sum subsets actually present, which is exponentially
// smaller in practice but still exponential in the worst case.
//
// Contract: g must be solvable (balances sum to zero); Instance.Solve
// checks this before dispatching here.
func BranchingPartition(g *ledger.BalanceGraph) [][]int {
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
	return bestPartitionRec(ids, balance)
}

func bestPartitionRec(remaining []int, balance map[int]int64) [][]int {
	if len(remaining) == 0 {
		return [][]int{}
	}

	subsets := zeroSumSubsets(remaining, balance)

	for _, s := range subsets {
		if len(s) != 2 {
			continue
		}
		rest := bestPartitionRec(without(remaining, s), balance)
		if rest == nil {
			continue
		}
		return append([][]int{s}, rest...)
	}

	var best [][]int
	for _, s := range subsets {
		if len(s) < 3 {
			continue
		}
		rest := bestPartitionRec(without(remaining, s), balance)
		if rest == nil {
			continue
		}
		candidate := append([][]int{s}, rest...)
		if best == nil || len(candidate) > len(best) {
			best = candidate
		}
	}
	if best != nil {
		return best
	}

	whole := append([]int{}, remaining...)
	return [][]int{whole}
}

// zeroSumSubsets returns every nonempty subset of remaining whose
// balances sum to zero, ordered by ascending size and then lexicographic
// member order, so branching is deterministic.
func zeroSumSubsets(remaining []int, balance map[int]int64) [][]int {
	n := len(remaining)
	var out [][]int
	for mask := 1; mask < (1 << n); mask++ {
		var sum int64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sum += balance[remaining[i]]
			}
		}
		if sum != 0 {
			continue
		}
		subset := make([]int, 0, bits.OnesCount(uint(mask)))
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, remaining[i])
			}
		}
		out = append(out, subset)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

// without returns a fresh copy of remaining with every id in s removed.
func without(remaining []int, s []int) []int {
	excl := make(map[int]bool, len(s))
	for _, id := range s {
		excl[id] = true
	}
	out := make([]int, 0, len(remaining)-len(s))
	for _, id := range remaining {
		if !excl[id] {
			out = append(out, id)
		}
	}
	return out
}
