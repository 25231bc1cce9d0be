package fieldaccess

import (
	"fieldaccess/internal/common"
)

// AccessError is the closed set of failures of field access. Compare with == or
// errors.Is; the text returned by Error is for display only.
type AccessError int

const (
	// ErrNoSuchField reports a name absent from the record's declared field set.
	ErrNoSuchField AccessError = iota + 1
	// ErrTypeMismatch reports a declared field whose value cannot be read or
	// written as the requested type.
	ErrTypeMismatch
)

func (e AccessError) Error() string {
	switch e {
	case ErrNoSuchField:
		return "no such field"
	case ErrTypeMismatch:
		return "type mismatch"
	default:
		return common.UnknownStr
	}
}
