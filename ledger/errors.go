package ledger

import "errors"

// Sentinel errors returned by package ledger. Callers should compare with
// errors.Is, never with ==, since constructors may wrap these with
// additional context.
var (
	// ErrEmptyName is returned when a participant name is the empty string.
	ErrEmptyName = errors.New("ledger: participant name must not be empty")

	// ErrUnknownParticipant is returned by Subgraph when asked to include an
	// id that does not exist in the parent graph.
	ErrUnknownParticipant = errors.New("ledger: unknown participant id")

	// ErrSelfTransfer is returned by the edge-keyed constructor when a record
	// names the same participant as both payer and payee.
	ErrSelfTransfer = errors.New("ledger: payer and payee must differ")
)
