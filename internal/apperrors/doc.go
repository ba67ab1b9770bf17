// Package apperrors defines the typed error taxonomy shared by the
// bigint/montgomery/modexp core and its CLI collaborator, allowing callers
// to distinguish error classes with errors.Is/errors.As and letting the CLI
// map any failure to a stable process exit code.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with
// %w. All error types implement Unwrap() so the underlying Kind can be
// recovered with errors.Is.
package apperrors
