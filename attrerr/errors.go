package attrerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bramblecore/attrflow/attrid"
)

var (
	// ErrCycle indicates the transform dependency graph contains a cycle.
	ErrCycle = errors.New("attrflow: dependency cycle detected")
	// ErrMissingRead indicates a transform was about to run while one of its
	// declared reads had no resolved value in the resolver's cache.
	ErrMissingRead = errors.New("attrflow: transform read has no resolved value")
	// ErrMissingSource indicates a direct resolve targeted an identifier
	// that was never registered and never declared as a read.
	ErrMissingSource = errors.New("attrflow: identifier has no registered source or transform")
	// ErrInvalidTransform indicates a transform rejected its own input or
	// dependency values.
	ErrInvalidTransform = errors.New("attrflow: transform rejected its input")
)

// CycleError reports a dependency cycle, preserving the exact identifier
// path that closes the loop (path[0] == path[len(path)-1]).
type CycleError struct {
	Path []attrid.Identifier
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = id.String()
	}
	return fmt.Sprintf("%v: %s", ErrCycle, strings.Join(parts, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// MissingReadError reports the declared read that had no resolved value
// when the transform reading it ran.
type MissingReadError struct {
	ID attrid.Identifier
}

func (e *MissingReadError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingRead, e.ID.String())
}

func (e *MissingReadError) Unwrap() error { return ErrMissingRead }

// MissingSourceError reports the identifier a direct resolve targeted that
// has no registration anywhere.
type MissingSourceError struct {
	ID attrid.Identifier
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingSource, e.ID.String())
}

func (e *MissingSourceError) Unwrap() error { return ErrMissingSource }

// InvalidTransformError reports a transform that rejected its input, along
// with the message it returned.
type InvalidTransformError struct {
	ID      attrid.Identifier
	Message string
}

func (e *InvalidTransformError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidTransform, e.ID.String(), e.Message)
}

func (e *InvalidTransformError) Unwrap() error { return ErrInvalidTransform }
