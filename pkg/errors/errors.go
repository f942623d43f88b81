package errors

import (
	"errors"
	"fmt"
	"strings"
)

// StorageError is returned when the database engine rejects a statement.
type StorageError struct {
	Statement string
	Err       error
}

func NewStorageError(statement string, err error) *StorageError {
	return &StorageError{Statement: compact(statement), Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %v (statement: %s)", e.Err, e.Statement)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}

// ValidationError is raised before any statement is issued.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func NewRequiredFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func NewResourceNotFoundError(resource string, id any) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource, ID: fmt.Sprint(id)}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// SchemaInitError is fatal: no repository call may run after it.
type SchemaInitError struct {
	Err error
}

func NewSchemaInitError(err error) *SchemaInitError {
	return &SchemaInitError{Err: err}
}

func (e *SchemaInitError) Error() string {
	return fmt.Sprintf("failed to initialize schema: %v", e.Err)
}

func (e *SchemaInitError) Unwrap() error {
	return e.Err
}

func IsSchemaInitError(err error) bool {
	var e *SchemaInitError
	return errors.As(err, &e)
}

func compact(statement string) string {
	return strings.Join(strings.Fields(statement), " ")
}
