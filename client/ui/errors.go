package ui

// ActionableError carries a message that can be shown to the player as is.
type ActionableError struct {
	Message string
	Err     error
}

func (e *ActionableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ActionableError) Unwrap() error {
	return e.Err
}

// UserMessage returns the player-facing text for err, falling back to fallback.
func UserMessage(err error, fallback string) string {
	if actionable, ok := err.(*ActionableError); ok {
		return actionable.Message
	}
	return fallback
}
