package apperr

import "fmt"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// QueryExecutionError wraps a store-level failure of a single query.
// Failures are treated as permanent, callers never retry.
type QueryExecutionError struct {
	Query string
	Err   error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("query execution failed: %v", e.Err)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

func NewQueryExecution(query string, err error) *QueryExecutionError {
	return &QueryExecutionError{Query: query, Err: err}
}

// CatalogSyncError reports that the declarative catalog source could not be
// loaded or written. The previously stored catalog stays in place.
type CatalogSyncError struct {
	Source string
	Err    error
}

func (e *CatalogSyncError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("catalog sync failed: %v", e.Err)
	}
	return fmt.Sprintf("catalog sync from %s failed: %v", e.Source, e.Err)
}

func (e *CatalogSyncError) Unwrap() error {
	return e.Err
}

func NewCatalogSync(source string, err error) *CatalogSyncError {
	return &CatalogSyncError{Source: source, Err: err}
}

type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found: " + e.Key
}

func NewNotFound(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}
