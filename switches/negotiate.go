package switches

import (
	"errors"
	"fmt"
)

// Flags the negotiation step reasons about. Everything else in a switch
// string is opaque and passed through to the kernel untouched.
const (
	flagNeighbors = 'n'
	flagFaces     = 'f'
)

// ErrBadSwitchType reports a switch argument that is not one of the accepted
// representations.
var ErrBadSwitchType = errors.New("switches must be string, []byte, or []rune")

// Normalize converts any accepted switch representation into a freshly owned
// canonical byte sequence.
func Normalize(sw any) ([]byte, error) {
	switch v := sw.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case []rune:
		return []byte(string(v)), nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrBadSwitchType, sw)
	}
}

// Negotiate normalizes the switch argument and, when boundary-face
// reconstruction is requested, guarantees the neighbor ('n') and face ('f')
// output flags are present, appending whichever are missing in that order.
// Flags already present are never duplicated, so the operation is idempotent.
func Negotiate(sw any, computeBoundaryFaces bool) ([]byte, error) {
	buf, err := Normalize(sw)
	if err != nil {
		return nil, err
	}
	if !computeBoundaryFaces {
		return buf, nil
	}
	var hasN, hasF bool
	for _, c := range buf {
		if c == flagNeighbors {
			hasN = true
		}
		if c == flagFaces {
			hasF = true
		}
	}
	if !hasN {
		buf = append(buf, flagNeighbors)
	}
	if !hasF {
		buf = append(buf, flagFaces)
	}
	return buf, nil
}
