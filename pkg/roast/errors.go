package roast

import "errors"

// Input validation errors. Their messages are user-facing and returned on the
// same turn, before any remote call.
var (
	ErrUnknownLevel  = errors.New("Invalid roast level. Choose 'mild', 'medium', or 'savage'.")
	ErrUnknownGender = errors.New("Invalid gender. Choose 'male' or 'female'.")
	ErrEmptyText     = errors.New("Abeg, type something make I fit roast you.")
)

// DispatchUserMessage is the only thing end users ever see when the remote
// provider call fails. The real cause goes to the log.
const DispatchUserMessage = "Something don go wrong o! Try again later."

// DispatchError wraps any failure from the completion provider.
type DispatchError struct {
	Cause error
}

func (e *DispatchError) Error() string {
	return DispatchUserMessage
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// IsInvalidInput reports whether err is a pre-dispatch validation failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrUnknownLevel) || errors.Is(err, ErrUnknownGender) || errors.Is(err, ErrEmptyText)
}
