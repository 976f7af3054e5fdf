package game

import "errors"

var (
	// ErrRoomNotFound is returned for lookups with an unknown room code.
	ErrRoomNotFound = errors.New("room not found")

	// ErrCodeSpaceExhausted is returned when the registry cannot find a
	// free room code. It is the only failure that is not a plain
	// transition rejection.
	ErrCodeSpaceExhausted = errors.New("room code space exhausted")
)

// RejectedError marks a legal-but-disallowed transition. The room state is
// guaranteed unchanged when one is returned.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return e.Reason
}

func reject(reason string) error {
	return &RejectedError{Reason: reason}
}

// IsRejected reports whether err is a transition rejection, and if so
// returns the reason.
func IsRejected(err error) (string, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Reason, true
	}
	return "", false
}
