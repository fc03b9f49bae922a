package apperror

import "fmt"

// ValidationError means a precondition was not met. Nothing was mutated and
// no remote call was attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ServiceError means the external transform failed or returned no usable
// artifact. Inside a batch run it is captured per item; single-item flows
// surface it to the caller.
type ServiceError struct {
	Op      string // "analyze", "generate", "edit"
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewService(op, message string, err error) *ServiceError {
	return &ServiceError{Op: op, Message: message, Err: err}
}

// PersistenceError means a key-value read or write failed or returned
// unparseable data. It never propagates past the store boundary; stores log
// it and fall back to in-memory state.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %q: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistence(key string, err error) *PersistenceError {
	return &PersistenceError{Key: key, Err: err}
}
