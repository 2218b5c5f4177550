package essa

import (
	"errors"

	"github.com/ProtonEvgeny/essa/decompose"
)

var (
	// ErrConfiguration signals invalid construction parameters: a window
	// length outside [2, N], an unrecognized method or a component count
	// exceeding the window length.
	ErrConfiguration = errors.New("essa: invalid configuration")

	// ErrState signals that Reconstruct was called before Decompose.
	ErrState = errors.New("essa: decompose before reconstruct")

	// ErrComponentIndex signals a group referencing a component outside
	// [0, rank).
	ErrComponentIndex = errors.New("essa: component index out of range")

	// ErrDegenerateComponent signals a zero projection norm on the Toeplitz
	// path for a retained component.
	ErrDegenerateComponent = decompose.ErrDegenerateComponent
)
