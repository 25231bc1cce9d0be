package primitive

import (
	"math"

	"fieldaccess/utils"
)

// FitsSigned reports whether v is representable by the signed integer kind to.
func FitsSigned(v int64, to KindEnum) bool {
	if !to.IsSigned() {
		return false
	}

	bits := to.Bits()
	if bits >= 64 {
		return true
	}

	limit := int64(1) << (bits - 1)

	return utils.IsInRange(-limit, v, limit-1)
}

// FitsUnsigned reports whether v is representable by the unsigned integer kind to.
func FitsUnsigned(v uint64, to KindEnum) bool {
	if !to.IsUnsigned() {
		return false
	}

	bits := to.Bits()
	if bits >= 64 {
		return true
	}

	return utils.IsInRange(0, v, uint64(math.MaxUint64)>>(64-bits))
}
