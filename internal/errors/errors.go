// Package errors provides centralized error definitions and error handling
// utilities for the Parley codebase. It defines domain-specific error types,
// sentinel errors, and constructors with context wrapping.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - ConfigError: errors in session or model configuration
//   - ProviderError: errors from a completion backend
//   - StorageError: errors from a per-model response store
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewConfigError("loading config file", baseErr)
//	err := errors.NewStorageError(dbPath, baseErr)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrDuplicateRound) { ... }
//
//	var provErr *errors.ProviderError
//	if errors.As(err, &provErr) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Configuration sentinel errors
var (
	// ErrUnknownProvider indicates an unsupported model provider tag.
	ErrUnknownProvider = New("unknown model provider")
	// ErrNoParticipants indicates that no models were configured.
	ErrNoParticipants = New("no models configured")
	// ErrTooFewRounds indicates a max-interactions value below the minimum of 2.
	ErrTooFewRounds = New("max interactions must be at least 2")
)

// Storage sentinel errors
var (
	// ErrDuplicateRound indicates an insert colliding with an existing
	// round number. This signals an orchestrator defect, not a condition
	// to recover from.
	ErrDuplicateRound = New("duplicate round number")
)

// ConfigError represents an error in session or model configuration.
// Configuration errors are always fatal and detected before any round runs.
type ConfigError struct {
	Op  string // what was being configured
	Err error
}

// NewConfigError creates a ConfigError wrapping an underlying error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("config: %s", e.Op)
	}
	return fmt.Sprintf("config: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ProviderError represents a failure from a completion backend.
type ProviderError struct {
	Provider string // provider tag, e.g. "openai-chatgpt"
	Model    string // participant name
	Err      error
}

// NewProviderError creates a ProviderError wrapping an underlying error.
func NewProviderError(provider, model string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Model: model, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s (model %s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// StorageError represents a failure in a per-model response store.
// Storage errors are fatal and surfaced immediately.
type StorageError struct {
	Path string // store file path
	Err  error
}

// NewStorageError creates a StorageError wrapping an underlying error.
func NewStorageError(path string, err error) *StorageError {
	return &StorageError{Path: path, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
