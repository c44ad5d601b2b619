package settle

import (
	"fmt"
	"strings"

	"github.com/paybacklab/payback/ledger"
)

// Solution maps each transfer a settlement performs to the amount it
// moves. A nil Solution paired with ok=false (the (Solution, bool) return
// convention used throughout this package) means the instance could not
// be settled.
type Solution map[ledger.TransferEdge]int64

// Method names one of the eight ways payback can settle an instance: a
// packing strategy (none, exhaustive partitioning, branch-and-bound
// partitioning, or exact bitmask DP) crossed with the approximation used
// to settle each resulting zero-sum block (StarExpand or
// GreedySatisfaction).
type Method int

const (
	ApproxStarExpand Method = iota
	ApproxGreedySatisfaction
	PartitionStarExpand
	PartitionGreedySatisfaction
	BranchStarExpand
	BranchGreedySatisfaction
	DPStarExpand
	DPGreedySatisfaction
)

var methodNames = map[Method]string{
	ApproxStarExpand:            "approx-star-expand",
	ApproxGreedySatisfaction:    "approx-greedy-satisfaction",
	PartitionStarExpand:         "partitioning-star-expand",
	PartitionGreedySatisfaction: "partitioning-greedy-satisfaction",
	BranchStarExpand:            "branching-partition-star-expand",
	BranchGreedySatisfaction:    "branching-partition-greedy-satisfaction",
	DPStarExpand:                "dp-star-expand",
	DPGreedySatisfaction:        "dp-greedy-satisfaction",
}

// String returns the CLI spelling of m.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses the CLI spelling of a Method, case-insensitively.
// Returns ErrUnknownMethod if s names none of the eight methods.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}
