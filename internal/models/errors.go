package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrFileOp ErrorType = iota
	ErrKeyParse
	ErrSigning
	ErrSignatureDecode
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrFileOp:
		return "FileOp"
	case ErrKeyParse:
		return "KeyParse"
	case ErrSigning:
		return "Signing"
	case ErrSignatureDecode:
		return "SignatureDecode"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// SignError represents an error while loading keys, signing or verifying
type SignError struct {
	Type ErrorType
	Path string
	Err  error
}

// Error implements the error interface
func (e *SignError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *SignError) Unwrap() error {
	return e.Err
}
