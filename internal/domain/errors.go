package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNotFound       = errors.New("not found")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrNoResults      = errors.New("no cargo matched the query")
	ErrSchemaMismatch = errors.New("response does not match the expected schema")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage             ErrorKind = "usage"
	KindNotFound          ErrorKind = "not_found"
	KindInvalidConfig     ErrorKind = "invalid_config"
	KindTransport         ErrorKind = "transport"
	KindHTTPStatus        ErrorKind = "http_status"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindSchemaMismatch    ErrorKind = "schema_mismatch"
	KindNoResults         ErrorKind = "no_results"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: config file path or JSON field path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// UsageError builds a usage OpError for the CLI boundary.
func UsageError(msg string) error {
	return &OpError{
		Op:   "cli.args",
		Kind: KindUsage,
		Err:  fmt.Errorf("%w: %s", ErrUsage, msg),
	}
}
