package speech

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure so the CLI layer can pick the
// message and exit code without inspecting provider errors.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindPermission
	KindUnintelligible
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermission:
		return "permission"
	case KindUnintelligible:
		return "unintelligible"
	case KindRequest:
		return "request"
	default:
		return "internal"
	}
}

// Error wraps a provider or filesystem failure with its classification
// and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the classification of err, or KindInternal for errors
// that did not come out of this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
