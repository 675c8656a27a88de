package hdwallet

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a class of caller input defect.
type ErrorKind string

const (
	UnsupportedMnemonicLength ErrorKind = "UnsupportedMnemonicLength"
	InvalidExtendedKeyLength  ErrorKind = "InvalidExtendedKeyLength"
	NotARootKey               ErrorKind = "NotARootKey"
	MalformedSeed             ErrorKind = "MalformedSeed"
	MalformedExtendedKey      ErrorKind = "MalformedExtendedKey"
	InvalidMnemonic           ErrorKind = "InvalidMnemonic"
	InvalidPath               ErrorKind = "InvalidPath"
	UnknownNetwork            ErrorKind = "UnknownNetwork"
	AlreadyInitialized        ErrorKind = "AlreadyInitialized"
)

// ValidationError is returned for every rejected input. It is never transient.
type ValidationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsValidationError checks if error is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsKind checks if error is a ValidationError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}

// KindOf returns the kind of a ValidationError, or "" for any other error.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}

// FileExistsError is an error when the keystore file already exists and is not empty
type FileExistsError struct {
	Message string
}

func (e *FileExistsError) Error() string {
	return e.Message
}

// IsFileExistsError checks if error is FileExistsError
func IsFileExistsError(err error) bool {
	var fe *FileExistsError
	return errors.As(err, &fe)
}
