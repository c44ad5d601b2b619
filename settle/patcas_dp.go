package settle

import "github.com/paybacklab/payback/ledger"

// dpKey is the memo key for dp: a pair of bitmasks over the positive
// and negative balance buckets respectively.
type dpKey struct {
	i, j mask128
}

// dpEntry is a memoized DP result: the minimum number of transfers needed
// to settle the participants named by (i,j), and the first block (a,b)
// that achieves it.
type dpEntry struct {
	cost int
	a, b mask128
}

// CheckDPCapacity reports ErrTooManyParticipants if g has more nonzero-
// balance participants than PatcasDP's 128-bit bitmask universe can
// represent. Callers should check this before invoking a DP-based
// Method so the failure is reported distinctly from "not solvable".
func CheckDPCapacity(g *ledger.BalanceGraph) error {
	n := 0
	for _, p := range g.Nodes() {
		if p.Balance != 0 {
			n++
		}
	}
	if n > maxMaskBits {
		return ErrTooManyParticipants
	}
	return nil
}

// PatcasDP finds a maximum zero-sum set packing of g's nonzero-balance
// participants exactly, via bitmask dynamic programming. Participants
// split into a positive bucket and a negative bucket; the DP state
// (i,j) is a pair of submasks, one per bucket, and dp(i,j) is the fewest
// transfers needed to settle exactly the participants named by i and j.
// Each transition peels off one zero-sum block (a,b) — a ⊆ i, b ⊆ j,
// weight(a) = -weight(b) — paying popcount(a)+popcount(b)-1 transfers for
// it and recursing on what's left. Minimizing total transfers is
// equivalent to maximizing block count, since transfers = participants -
// blocks for a fixed participant count.
//
// Contract: g must be solvable (balances sum to zero). Instance.Solve
// checks this before dispatching here; called directly on an unsolvable
// graph this has no defined result.
//
// Returns nil if g has more than 128 nonzero-balance participants; check
// CheckDPCapacity first to distinguish that from "zero blocks needed".
func PatcasDP(g *ledger.BalanceGraph) [][]int {
	var leftIDs, rightIDs []int
	var leftW, rightW []int64
	for _, p := range g.Nodes() {
		switch {
		case p.Balance > 0:
			leftIDs = append(leftIDs, p.ID)
			leftW = append(leftW, p.Balance)
		case p.Balance < 0:
			rightIDs = append(rightIDs, p.ID)
			rightW = append(rightW, p.Balance)
		}
	}
	if len(leftIDs)+len(rightIDs) > maxMaskBits {
		return nil
	}
	if len(leftIDs) == 0 && len(rightIDs) == 0 {
		return nil
	}

	fullI := fullMask(len(leftIDs))
	fullJ := fullMask(len(rightIDs))
	memo := make(map[dpKey]dpEntry)
	dpSolve(fullI, fullJ, leftW, rightW, memo)

	var blocks [][]int
	i, j := fullI, fullJ
	for !i.isZero() || !j.isZero() {
		e := memo[dpKey{i, j}]
		block := append(translateMask(e.a, leftIDs), translateMask(e.b, rightIDs)...)
		blocks = append(blocks, block)
		i, j = i.xor(e.a), j.xor(e.b)
	}
	return blocks
}

func fullMask(n int) mask128 {
	m := mask128{}
	for i := 0; i < n; i++ {
		m = m.or(bit128(i))
	}
	return m
}

func translateMask(m mask128, ids []int) []int {
	out := make([]int, 0, m.popcount())
	for _, idx := range m.indices() {
		out = append(out, ids[idx])
	}
	return out
}

func sumMask(m mask128, weights []int64) int64 {
	var sum int64
	for _, idx := range m.indices() {
		sum += weights[idx]
	}
	return sum
}

// dpSolve fills memo with the entry for (i,j) and every state the search
// visits along the way, returning that entry.
func dpSolve(i, j mask128, leftW, rightW []int64, memo map[dpKey]dpEntry) dpEntry {
	key := dpKey{i, j}
	if e, ok := memo[key]; ok {
		return e
	}
	if i.isZero() && j.isZero() {
		e := dpEntry{cost: 0}
		memo[key] = e
		return e
	}

	best := dpEntry{cost: -1}
	forEachSubmask(i, func(a mask128) {
		forEachSubmask(j, func(b mask128) {
			if a.isZero() && b.isZero() {
				return
			}
			if sumMask(a, leftW)+sumMask(b, rightW) != 0 {
				return
			}
			rest := dpSolve(i.xor(a), j.xor(b), leftW, rightW, memo)
			cost := rest.cost + a.popcount() + b.popcount() - 1
			if best.cost == -1 || cost < best.cost {
				best = dpEntry{cost: cost, a: a, b: b}
			}
		})
	})
	memo[key] = best
	return best
}
