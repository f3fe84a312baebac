// Package errors defines the domain error taxonomy shared by the ledger
// services and repositories.
package errors

// DomainError is a typed application error with a stable code that callers
// can match on without parsing messages.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is lets errors.Is match two DomainErrors by code, so wrapped copies of a
// sentinel still compare equal to it.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
