package graphio

import "github.com/pkg/errors"

// ErrInput is matched by every malformed-input error of this package.
var ErrInput = errors.New("graphio: invalid input")

// inputError is a specific malformed-input sentinel that also matches ErrInput.
type inputError struct{ msg string }

func (e *inputError) Error() string { return "graphio: " + e.msg }

// Is reports ErrInput as a match.
func (e *inputError) Is(target error) bool { return target == ErrInput }

var (
	// ErrMissingHeader indicates input without an "n m" line.
	ErrMissingHeader error = &inputError{"missing \"n m\" header"}

	// ErrMalformedHeader indicates a header that is not two non-negative integers.
	ErrMalformedHeader error = &inputError{"malformed header"}

	// ErrMalformedLine indicates a body line with a non-integer field.
	ErrMalformedLine error = &inputError{"malformed adjacency line"}

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange error = &inputError{"vertex id out of range"}

	// ErrEdgeCountMismatch indicates the normalized edge count differs from m.
	ErrEdgeCountMismatch error = &inputError{"edge count does not match header"}

	// ErrMalformedGraph6 indicates an invalid graph6 string.
	ErrMalformedGraph6 error = &inputError{"malformed graph6 string"}
)
