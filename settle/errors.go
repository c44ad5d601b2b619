package settle

import "errors"

// Sentinel errors returned by package settle. Callers should compare with
// errors.Is.
var (
	// ErrUnknownMethod is returned by ParseMethod when given a string that
	// does not name one of the eight solving methods.
	ErrUnknownMethod = errors.New("settle: unknown solving method")

	// ErrTooManyParticipants is returned by CheckDPCapacity when the instance has
	// more than 128 participants with nonzero balance: the DP's bitmask
	// universe has no more room.
	ErrTooManyParticipants = errors.New("settle: too many nonzero-balance participants for exact DP (limit 128)")
)
