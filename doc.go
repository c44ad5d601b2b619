// Package payback solves the debt-settlement (payback) problem: given a set
// of participants whose signed balances sum to zero, it computes a set of
// directed, weighted transfers that settles every balance while using as few
// transfers as possible.
//
// The minimum-transfer variant is NP-hard. payback offers two linear-time
// 2-approximations and three exact exponential-time solvers, so callers can
// trade runtime for optimality:
//
//	ledger/      — Participant, TransferEdge and BalanceGraph: the data model
//	settle/      — Instance facade and all five solving algorithms
//	csvsource/   — auto-detecting node/edge CSV parser
//	render/      — transaction listing, graphviz DOT, and matrix formatters
//	logging/     — slog façade shared by the solvers and the CLI
//	cmd/payback/ — command-line front-end
//
// The key insight behind every exact solver: an optimal settlement on n
// participants with nonzero balance uses exactly n-k transfers, where k is
// the maximum number of nonempty, pairwise-disjoint, zero-sum subsets (a
// zero-sum set packing) the participants admit. Once such a packing is
// chosen, each block is settled independently with an approximation, which
// is optimal on a single zero-sum block.
//
//	go get github.com/paybacklab/payback
package payback
