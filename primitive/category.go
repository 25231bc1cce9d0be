package primitive

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategoryWidening   CategoryEnum = 1 << iota // integer widening within one signedness, float32 -> float64, complex64 -> complex128
	CategoryChecked                             // integer narrowing within one signedness: lossless only if the stored value fits
	CategoryStringView                          // []byte -> string: the buffer is viewed as a string without copying

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	// CategoryWidening and CategoryChecked: integers never cross signedness
	conversionPairs[CategoryWidening] = map[ConversionPair]struct{}{}
	conversionPairs[CategoryChecked] = map[ConversionPair]struct{}{}
	for fromKind := KindEnum(0); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsInteger() {
			continue
		}

		for toKind := KindEnum(0); int(toKind) < KindTotal; toKind++ {
			if !toKind.IsInteger() || fromKind == toKind || fromKind.IsSigned() != toKind.IsSigned() {
				continue
			}

			pair := ConversionPair{fromKind, toKind}
			if fromKind.Bits() <= toKind.Bits() {
				conversionPairs[CategoryWidening][pair] = struct{}{}
			} else {
				conversionPairs[CategoryChecked][pair] = struct{}{}
			}
		}
	}

	// narrowing of floating point values is never attempted
	conversionPairs[CategoryWidening][ConversionPair{KindFloat32, KindFloat64}] = struct{}{}
	conversionPairs[CategoryWidening][ConversionPair{KindComplex64, KindComplex128}] = struct{}{}

	conversionPairs[CategoryStringView] = map[ConversionPair]struct{}{
		{KindBytes, KindString}: {},
	}
}

// Classify returns the single category under which a value stored as from may be
// read as to, or CategoryNone. Identical kinds are not a conversion and classify
// as CategoryNone as well.
func Classify(from, to KindEnum) CategoryEnum {
	pair := ConversionPair{from, to}
	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if _, ok := conversionPairs[category][pair]; ok {
			return category
		}
	}

	return CategoryNone
}
