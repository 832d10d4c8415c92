package service

// Domain error taxonomy. Handlers map these to HTTP statuses; anything else
// that escapes a service is a server fault and becomes a 500.

// ValidationError reports malformed or missing input, including password
// policy failures (all violations surfaced together in Errors).
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a duplicate email or duplicate history entry.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError reports bad credentials. The message is deliberately the same for
// unknown emails and wrong passwords.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError reports a missing user, movie, offer, or collection.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
